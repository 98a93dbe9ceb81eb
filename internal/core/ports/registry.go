package ports

import "github.com/Masterminds/semver/v3"

// VersionRegistry exposes which versions are installed and which is active.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type VersionRegistry interface {
	// List returns the installed versions sorted ascending.
	List() ([]*semver.Version, error)

	// Current returns the global version, or nil when none is set.
	Current() (*semver.Version, error)

	// Use sets the global version pointer. It does not verify that the
	// version is installed; callers check before calling.
	Use(v *semver.Version) error

	// Unset clears the global version pointer.
	Unset() error

	// Remove deletes the version's directory subtree. It does not touch the
	// global version pointer.
	Remove(v *semver.Version) error
}
