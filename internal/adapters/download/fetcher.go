// Package download fetches release artifacts over HTTP.
package download

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/vvm-tools/vvm/internal/core/domain"
	"github.com/vvm-tools/vvm/internal/core/ports"
	"go.trai.ch/zerr"
)

const userAgent = "vvm"

// Fetcher downloads artifacts into memory. Binaries are a few megabytes, so
// buffering the whole body keeps placement atomic for the caller.
type Fetcher struct {
	client *http.Client
}

var _ ports.ArtifactFetcher = (*Fetcher)(nil)

// NewFetcher returns a fetcher whose requests are bounded by timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads url and returns the raw body. Any non-2xx status is
// reported as an UnsuccessfulResponseError.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build download request"), "url", url)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "download request failed"), "url", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.UnsuccessfulResponseError{URL: url, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read download body"), "url", url)
	}
	return data, nil
}
