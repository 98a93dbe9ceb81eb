// Package registry manages the installed versions and the global version
// pointer on disk.
package registry

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/vvm-tools/vvm/internal/core/domain"
	"github.com/vvm-tools/vvm/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry scans the vvm home directory. Every directory entry except the
// pointer file, the lock files, and the cache directory must be a version
// directory.
type Registry struct {
	layout domain.Layout
	logger ports.Logger
}

var _ ports.VersionRegistry = (*Registry)(nil)

// New creates a registry over the given layout.
func New(layout domain.Layout, logger ports.Logger) *Registry {
	return &Registry{layout: layout, logger: logger}
}

// List returns the installed versions sorted ascending. Entries owned by the
// layout itself (pointer file, lock files, cache directory) are skipped; any
// other entry that is not a parseable version fails the scan.
func (r *Registry) List() ([]*semver.Version, error) {
	entries, err := os.ReadDir(r.layout.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read home directory"), "path", r.layout.Root)
	}

	versions := make([]*semver.Version, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if r.owned(name) {
			continue
		}
		v, err := domain.ParseVersion(name)
		if err != nil {
			return nil, zerr.With(err, "entry", name)
		}
		versions = append(versions, v)
	}

	domain.SortVersions(versions)
	return versions, nil
}

func (r *Registry) owned(name string) bool {
	return name == domain.GlobalVersionFile ||
		name == domain.SettingsFile ||
		name == domain.CacheDirName ||
		strings.HasPrefix(name, domain.LockFilePrefix)
}

// Current returns the global version, or nil when the pointer file is
// missing, empty, or unreadable as a version. A corrupt pointer is logged
// and treated as unset rather than failing every command.
func (r *Registry) Current() (*semver.Version, error) {
	path := r.layout.GlobalVersionPath()
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the layout root
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read global version file"), "path", path)
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return nil, nil
	}

	v, err := domain.ParseVersion(raw)
	if err != nil {
		r.logger.Warn(fmt.Sprintf("ignoring malformed global version %q", raw))
		return nil, nil
	}
	return v, nil
}

// Use sets the global version pointer.
func (r *Registry) Use(v *semver.Version) error {
	path := r.layout.GlobalVersionPath()
	if err := os.WriteFile(path, []byte(v.String()), 0o644); err != nil { //nolint:gosec // Pointer file must stay world-readable
		return zerr.With(zerr.Wrap(err, "failed to write global version file"), "path", path)
	}
	return nil
}

// Unset clears the global version pointer.
func (r *Registry) Unset() error {
	path := r.layout.GlobalVersionPath()
	if err := os.WriteFile(path, nil, 0o644); err != nil { //nolint:gosec // Pointer file must stay world-readable
		return zerr.With(zerr.Wrap(err, "failed to clear global version file"), "path", path)
	}
	return nil
}

// Remove deletes the version directory. Removing a version that is not
// installed is reported as ErrUnknownVersion.
func (r *Registry) Remove(v *semver.Version) error {
	dir := r.layout.VersionDir(v)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return zerr.With(domain.ErrUnknownVersion, "version", v.String())
		}
		return zerr.With(zerr.Wrap(err, "failed to stat version directory"), "path", dir)
	}

	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove version directory"), "path", dir)
	}
	return nil
}
