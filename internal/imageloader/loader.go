// Package imageloader resolves image references into decoded raster
// images. A reference is either a remote URL, an inline base64/data-URI
// payload, or a local file path; all variants are unified behind the
// Source interface so descriptor extraction stays agnostic to origin.
package imageloader

import (
	"context"
	"fmt"
	"image"
)

// Source is a single image reference. Key identifies the reference for
// caching (the raw URL or payload string); Load produces the decoded image.
type Source interface {
	Key() string
	Load(ctx context.Context) (image.Image, error)
}

// FetchError reports a failed remote image download: transport errors,
// timeouts, or a non-success HTTP status.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports bytes or an inline payload that do not form a
// valid image in any supported encoding.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
