package imageloader

import (
	"context"
	"image"
	"os"
)

// FileSource wraps a local file path as an image Source. Used by the
// one-shot CLI comparison; the HTTP handlers never read local files.
func FileSource(path string) Source {
	return fileSource(path)
}

type fileSource string

func (s fileSource) Key() string { return string(s) }

func (s fileSource) Load(_ context.Context) (image.Image, error) {
	data, err := os.ReadFile(string(s))
	if err != nil {
		return nil, err
	}
	return decodeImage(data)
}
