package match

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/kozaktomas/face-verify/internal/cache"
	"github.com/kozaktomas/face-verify/internal/imageloader"
)

// Service orchestrates descriptor extraction and comparison. Detection
// results are memoized in the cache keyed by the raw image reference;
// concurrent first-time requests for the same reference are coalesced
// into a single extraction.
type Service struct {
	recognizer Recognizer
	cache      cache.Cache[Detection]
	threshold  float64
	inflight   singleflight.Group
}

// NewService creates a comparison service. A nil cache disables
// memoization entirely.
func NewService(rec Recognizer, c cache.Cache[Detection], threshold float64) *Service {
	if c == nil {
		c = cache.NewMemory[Detection]()
	}
	return &Service{
		recognizer: rec,
		cache:      c,
		threshold:  threshold,
	}
}

// Threshold returns the configured match-distance threshold.
func (s *Service) Threshold() float64 { return s.threshold }

// Extract returns the face detection for an image source, consulting
// the cache first. Load and decode failures propagate to the caller and
// are never cached, so transient fetch errors can be retried. A
// completed "no face" outcome is cached like any other result.
func (s *Service) Extract(ctx context.Context, src imageloader.Source) (Detection, error) {
	key := src.Key()
	if det, ok := s.cache.Lookup(key); ok {
		return det, nil
	}

	v, err, _ := s.inflight.Do(key, func() (any, error) {
		// Another caller may have completed while we queued.
		if det, ok := s.cache.Lookup(key); ok {
			return det, nil
		}

		img, err := src.Load(ctx)
		if err != nil {
			return NotDetected, err
		}

		jpegData, err := imageloader.EncodeJPEG(img)
		if err != nil {
			return NotDetected, err
		}

		det, err := s.recognizer.ExtractDescriptor(jpegData)
		if err != nil {
			return NotDetected, err
		}

		s.cache.Store(key, det)
		return det, nil
	})
	if err != nil {
		return NotDetected, err
	}
	return v.(Detection), nil
}

// CompareSources extracts descriptors for both sources concurrently and
// compares them. The two extractions are independent I/O-bound work;
// the first failure cancels the other.
func (s *Service) CompareSources(ctx context.Context, a, b imageloader.Source) (Result, error) {
	var detA, detB Detection

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detA, err = s.Extract(ctx, a)
		return err
	})
	g.Go(func() error {
		var err error
		detB, err = s.Extract(ctx, b)
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return Compare(detA, detB, s.threshold), nil
}
