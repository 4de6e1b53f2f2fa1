// Package recognizer wraps the dlib face pipeline (go-face) behind the
// match.Recognizer interface. It is the only package touching cgo; the
// rest of the service depends on the interface and stays testable
// without the native library.
package recognizer

import (
	"fmt"

	"github.com/Kagami/go-face"

	"github.com/kozaktomas/face-verify/internal/match"
)

// Dlib runs face detection, landmarking and descriptor extraction using
// the dlib models loaded from a local directory.
type Dlib struct {
	rec *face.Recognizer
}

// Open loads the three dlib model artifacts (frontal face detector,
// shape predictor, descriptor network) from modelsDir. Loading takes
// several seconds; callers should gate readiness on completion.
func Open(modelsDir string) (*Dlib, error) {
	rec, err := face.NewRecognizer(modelsDir)
	if err != nil {
		return nil, fmt.Errorf("loading dlib models from %s: %w", modelsDir, err)
	}
	return &Dlib{rec: rec}, nil
}

// ExtractDescriptor runs the single-face pipeline on JPEG bytes.
// An image without a recognizable face yields a NotDetected outcome,
// not an error.
func (d *Dlib) ExtractDescriptor(jpegData []byte) (match.Detection, error) {
	f, err := d.rec.RecognizeSingle(jpegData)
	if err != nil {
		return match.NotDetected, fmt.Errorf("recognizing face: %w", err)
	}
	if f == nil {
		return match.NotDetected, nil
	}

	desc := make(match.Descriptor, len(f.Descriptor))
	for i, v := range f.Descriptor {
		desc[i] = v
	}
	return match.Detected(desc), nil
}

// Close releases the native dlib resources.
func (d *Dlib) Close() {
	d.rec.Close()
}
