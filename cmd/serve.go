package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/face-verify/internal/cache"
	"github.com/kozaktomas/face-verify/internal/config"
	"github.com/kozaktomas/face-verify/internal/imageloader"
	"github.com/kozaktomas/face-verify/internal/logging"
	"github.com/kozaktomas/face-verify/internal/match"
	"github.com/kozaktomas/face-verify/internal/recognizer"
	"github.com/kozaktomas/face-verify/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the face comparison server",
	Long: `Start the Face Verify HTTP server.
The server exposes POST /compare-faces/url and POST /compare-faces/base64
for comparing a selfie against an ID photo. Model loading happens in the
background; GET /ready reports 200 once the service can serve requests.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().String("host", "", "Host to bind to (overrides HOST)")
	serveCmd.Flags().Float64("threshold", 0, "Match distance threshold (overrides MATCH_THRESHOLD)")
	serveCmd.Flags().String("models", "", "Directory with dlib model files (overrides MODELS_DIR)")
}

// applyServeFlags lets command-line flags override environment config.
func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	if port := mustGetInt(cmd, "port"); port != 0 {
		cfg.Port = port
	}
	if host := mustGetString(cmd, "host"); host != "" {
		cfg.Host = host
	}
	if cmd.Flags().Changed("threshold") {
		cfg.MatchThreshold = mustGetFloat64(cmd, "threshold")
	}
	if models := mustGetString(cmd, "models"); models != "" {
		cfg.ModelsDir = models
	}
}

// newDetectionCache picks the cache implementation from config:
// unbounded by default, LRU when a cap is set.
func newDetectionCache(cfg *config.Config) cache.Cache[match.Detection] {
	if cfg.CacheMaxEntries > 0 {
		return cache.NewLRU[match.Detection](cfg.CacheMaxEntries)
	}
	return cache.NewMemory[match.Detection]()
}

func runServe(cmd *cobra.Command, args []string) error {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyServeFlags(cmd, cfg)

	lazy := match.NewLazyRecognizer()
	matcher := match.NewService(lazy, newDetectionCache(cfg), cfg.MatchThreshold)
	fetcher := imageloader.NewFetcher(cfg.FetchTimeout, cfg.FetchInsecureTLS)
	server := web.NewServer(cfg, matcher, fetcher, lazy)

	// Load the dlib models in the background so the transport can start
	// listening immediately. /ready flips to 200 once this finishes.
	go func() {
		start := time.Now()
		log.Info().Str("dir", cfg.ModelsDir).Msg("loading recognizer models")

		rec, err := recognizer.Open(cfg.ModelsDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load recognizer models")
		}
		lazy.Set(rec)

		log.Info().Dur("took", time.Since(start)).Msg("recognizer models loaded, service ready")
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error during shutdown")
		}
	}()

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
