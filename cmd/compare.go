package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/face-verify/internal/config"
	"github.com/kozaktomas/face-verify/internal/imageloader"
	"github.com/kozaktomas/face-verify/internal/match"
	"github.com/kozaktomas/face-verify/internal/recognizer"
)

var compareCmd = &cobra.Command{
	Use:   "compare <selfie> <id-photo>",
	Short: "Compare two face images without starting the server",
	Long: `Compare two face images from the command line. Each argument is
either a local file path or an http(s) URL. Prints the descriptor
distance and the verdict.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().Float64("threshold", 0, "Match distance threshold (overrides MATCH_THRESHOLD)")
	compareCmd.Flags().String("models", "", "Directory with dlib model files (overrides MODELS_DIR)")
}

// resolveSource turns a CLI argument into an image source.
func resolveSource(fetcher *imageloader.Fetcher, ref string) imageloader.Source {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return fetcher.Source(ref)
	}
	return imageloader.FileSource(ref)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("threshold") {
		cfg.MatchThreshold = mustGetFloat64(cmd, "threshold")
	}
	if models := mustGetString(cmd, "models"); models != "" {
		cfg.ModelsDir = models
	}

	rec, err := recognizer.Open(cfg.ModelsDir)
	if err != nil {
		return err
	}
	defer rec.Close()

	matcher := match.NewService(rec, nil, cfg.MatchThreshold)
	fetcher := imageloader.NewFetcher(cfg.FetchTimeout, cfg.FetchInsecureTLS)

	ctx := context.Background()
	detections := make([]match.Detection, 2)
	for i, ref := range args {
		det, err := matcher.Extract(ctx, resolveSource(fetcher, ref))
		if err != nil {
			return fmt.Errorf("processing %s: %w", ref, err)
		}
		if !det.Found {
			fmt.Printf("No face detected in %s\n", ref)
			return nil
		}
		detections[i] = det
	}

	distance := match.EuclideanDistance(detections[0].Descriptor, detections[1].Descriptor)
	result := match.Compare(detections[0], detections[1], cfg.MatchThreshold)

	fmt.Printf("Distance:  %.4f\n", distance)
	fmt.Printf("Threshold: %.2f\n", cfg.MatchThreshold)
	fmt.Printf("Verdict:   %s\n", *result.Match)
	return nil
}
