package ports

import (
	"context"

	"github.com/vvm-tools/vvm/internal/core/domain"
)

// ReleaseCatalog resolves the set of published versions and their
// platform-specific artifact names.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type ReleaseCatalog interface {
	// AllReleases fetches the releases published for the host platform.
	AllReleases(ctx context.Context) (*domain.Releases, error)
}
