package imageloader

import (
	"context"
	"crypto/tls"
	"image"
	"io"
	"net/http"
	"time"
)

// Fetcher builds URL sources sharing one HTTP client. The client applies
// an explicit per-fetch timeout so a slow remote host cannot pile up
// requests, and optionally skips TLS certificate verification so images
// behind self-signed endpoints remain reachable.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher. insecureTLS disables certificate
// verification for image downloads; see config.FetchInsecureTLS for the
// trade-off.
func NewFetcher(timeout time.Duration, insecureTLS bool) *Fetcher {
	transport := http.DefaultTransport
	if insecureTLS {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // documented policy, see FETCH_INSECURE_TLS
		}
	}
	return &Fetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// Source wraps a remote URL as an image Source.
func (f *Fetcher) Source(url string) Source {
	return &urlSource{url: url, client: f.client}
}

type urlSource struct {
	url    string
	client *http.Client
}

func (s *urlSource) Key() string { return s.url }

func (s *urlSource) Load(ctx context.Context) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &FetchError{URL: s.url, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: s.url, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: s.url, Err: err}
	}

	return decodeImage(data)
}
