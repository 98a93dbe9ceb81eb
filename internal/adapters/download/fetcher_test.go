package download_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvm-tools/vvm/internal/adapters/download"
	"github.com/vvm-tools/vvm/internal/core/domain"
)

func TestFetch_ReturnsBody(t *testing.T) {
	payload := []byte("\x7fELF binary bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "vvm", r.Header.Get("User-Agent"))
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	fetcher := download.NewFetcher(5 * time.Second)
	data, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	fetcher := download.NewFetcher(5 * time.Second)
	_, err := fetcher.Fetch(context.Background(), srv.URL)

	var respErr *domain.UnsuccessfulResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusNotFound, respErr.Status)
}

func TestFetch_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := download.NewFetcher(5 * time.Second)
	_, err := fetcher.Fetch(ctx, srv.URL)
	assert.Error(t, err)
}
