package match

import (
	"errors"
	"sync"
)

// ErrNotReady is returned while the recognizer models are still loading.
var ErrNotReady = errors.New("recognizer models are not loaded yet")

// LazyRecognizer gates descriptor extraction on model loading. The HTTP
// transport can start listening immediately while the dlib artifacts
// load in the background; extraction fails with ErrNotReady until Set
// is called, and the readiness endpoint reflects the same state.
type LazyRecognizer struct {
	mu  sync.RWMutex
	rec Recognizer
}

// NewLazyRecognizer creates an empty, not-yet-ready recognizer.
func NewLazyRecognizer() *LazyRecognizer {
	return &LazyRecognizer{}
}

// Set installs the loaded recognizer and marks the service ready.
func (l *LazyRecognizer) Set(rec Recognizer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rec = rec
}

// Ready reports whether the underlying recognizer has been installed.
func (l *LazyRecognizer) Ready() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rec != nil
}

func (l *LazyRecognizer) ExtractDescriptor(jpegData []byte) (Detection, error) {
	l.mu.RLock()
	rec := l.rec
	l.mu.RUnlock()

	if rec == nil {
		return NotDetected, ErrNotReady
	}
	return rec.ExtractDescriptor(jpegData)
}
