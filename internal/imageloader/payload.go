package imageloader

import (
	"context"
	"encoding/base64"
	"image"
	"strings"
)

// PayloadSource wraps an embedded image payload - a data URI or a bare
// base64 string - as an image Source. The raw payload string is the
// cache identity, exactly as submitted.
func PayloadSource(payload string) Source {
	return payloadSource(payload)
}

type payloadSource string

func (s payloadSource) Key() string { return string(s) }

func (s payloadSource) Load(_ context.Context) (image.Image, error) {
	data, err := base64.StdEncoding.DecodeString(stripDataURIHeader(string(s)))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return decodeImage(data)
}

// stripDataURIHeader removes a "data:<mediatype>;base64," prefix if
// present, leaving the raw base64 body.
func stripDataURIHeader(payload string) string {
	if !strings.HasPrefix(payload, "data:") {
		return payload
	}
	if idx := strings.IndexByte(payload, ','); idx >= 0 {
		return payload[idx+1:]
	}
	return payload
}
