package imageloader

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// decodeImage decodes raw bytes into a raster image using any of the
// registered formats (jpeg, png, gif, bmp, webp).
func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return img, nil
}

// EncodeJPEG renders a decoded image onto an RGBA canvas sized to its
// natural dimensions and re-encodes it as JPEG. The recognizer consumes
// JPEG bytes only, so every input format is normalized through here.
func EncodeJPEG(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
