package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "face-verify",
	Short: "A face comparison service",
	Long: `Face Verify decides whether two face images depict the same person.
It extracts a facial descriptor from each image using a dlib-based
recognizer and compares the descriptors by Euclidean distance against
a configurable threshold.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
