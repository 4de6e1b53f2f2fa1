package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/kozaktomas/face-verify/internal/cache"
	"github.com/kozaktomas/face-verify/internal/imageloader"
	"github.com/kozaktomas/face-verify/internal/match"
)

// scriptedRecognizer returns queued detections in order and counts
// invocations. Descriptor assignment to the two request sides is
// arbitrary because extractions run concurrently; tests use symmetric
// expectations.
type scriptedRecognizer struct {
	mu          sync.Mutex
	results     []match.Detection
	invocations int
}

func (r *scriptedRecognizer) ExtractDescriptor(jpegData []byte) (match.Detection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invocations++
	if len(r.results) == 0 {
		return match.NotDetected, nil
	}
	det := r.results[0]
	r.results = r.results[1:]
	return det, nil
}

func (r *scriptedRecognizer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invocations
}

// descriptorPair builds two descriptors at exactly the given Euclidean
// distance from each other.
func descriptorPair(distance float64) (match.Descriptor, match.Descriptor) {
	a := make(match.Descriptor, match.DescriptorLength)
	b := make(match.Descriptor, match.DescriptorLength)
	b[0] = float32(distance)
	return a, b
}

// newTestHandler builds a CompareHandler around a scripted recognizer
// with a fresh cache per test.
func newTestHandler(rec match.Recognizer) *CompareHandler {
	matcher := match.NewService(rec, cache.NewMemory[match.Detection](), match.DefaultThreshold)
	fetcher := imageloader.NewFetcher(2*time.Second, false)
	return NewCompareHandler(matcher, fetcher)
}

// parseJSONResponse parses a JSON response body into the target type
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// assertJSONError checks if the response is a JSON error with the expected message
func assertJSONError(t *testing.T, recorder *httptest.ResponseRecorder, expectedMessage string) {
	t.Helper()
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, recorder.Body.String())
	}
	if result["error"] != expectedMessage {
		t.Errorf("expected error '%s', got '%s'", expectedMessage, result["error"])
	}
}

// assertMatchResult checks the comparison verdict in the response body.
// verdict == "" asserts a null match field.
func assertMatchResult(t *testing.T, recorder *httptest.ResponseRecorder, verdict string, samePerson bool) {
	t.Helper()

	var result match.Result
	parseJSONResponse(t, recorder, &result)

	if verdict == "" {
		if result.Match != nil {
			t.Errorf("expected null match, got '%s'", *result.Match)
		}
	} else if result.Match == nil || *result.Match != verdict {
		t.Errorf("expected match '%s', got %v", verdict, result.Match)
	}
	if result.SamePerson != samePerson {
		t.Errorf("expected samePerson %v, got %v", samePerson, result.SamePerson)
	}
}
