package imageloader

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testPNG encodes a small solid-color PNG for loader tests.
func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

// testDataURI wraps PNG bytes in a data URI.
func testDataURI(t *testing.T, data []byte) string {
	t.Helper()
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}

// assertDecodeError checks that err is a *DecodeError.
func assertDecodeError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("expected *DecodeError, got %T: %v", err, err)
	}
}

// assertFetchError checks that err is a *FetchError and returns it.
func assertFetchError(t *testing.T, err error) *FetchError {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T: %v", err, err)
	}
	return fetchErr
}
