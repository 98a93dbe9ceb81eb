package ports

import "context"

// ArtifactFetcher downloads release artifact bytes.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type ArtifactFetcher interface {
	// Fetch downloads the artifact at url. The call blocks until the full
	// payload is received or the configured timeout elapses.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
