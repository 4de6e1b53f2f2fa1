package imageloader

import (
	"bytes"
	"image"
	"testing"
)

func TestEncodeJPEG_RoundTrip(t *testing.T) {
	src, err := decodeImage(testPNG(t, 20, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := EncodeJPEG(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("re-encoded bytes do not decode: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected jpeg output, got %s", format)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 20 || bounds.Dy() != 10 {
		t.Errorf("expected natural dimensions 20x10 preserved, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestDecodeImage_InvalidBytes(t *testing.T) {
	_, err := decodeImage([]byte{0x00, 0x01, 0x02})

	assertDecodeError(t, err)
}
