package web

import (
	"github.com/kozaktomas/face-verify/internal/imageloader"
	"github.com/kozaktomas/face-verify/internal/match"
	"github.com/kozaktomas/face-verify/internal/web/handlers"
)

func (s *Server) setupRoutes(matcher *match.Service, fetcher *imageloader.Fetcher, ready handlers.ReadyChecker) {
	compareHandler := handlers.NewCompareHandler(matcher, fetcher)
	readyHandler := handlers.NewReadyHandler(ready)

	// Liveness and readiness (model loading takes a while at startup)
	s.router.Get("/health", handlers.HealthCheck)
	s.router.Get("/ready", readyHandler.Check)

	// Face comparison
	s.router.Post("/compare-faces/url", compareHandler.CompareURLs)
	s.router.Post("/compare-faces/base64", compareHandler.CompareBase64)
}
