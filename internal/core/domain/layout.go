package domain

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

const (
	// ToolName is the name of the managed compiler binary.
	ToolName = "vyper"

	// GlobalVersionFile is the name of the global version pointer file.
	GlobalVersionFile = ".global-version"

	// SettingsFile is the optional user settings file inside the home
	// directory.
	SettingsFile = "config.yaml"

	// LockFilePrefix prefixes the transient per-version install lock files.
	LockFilePrefix = ".lock-" + ToolName + "-"

	// CacheDirName is the compilation cache subdirectory under the root.
	CacheDirName = "cache"

	// CacheFileName is the compilation cache document inside CacheDirName.
	CacheFileName = "vvm-vyper-files-cache.json"
)

// Layout derives every path under the vvm home directory. The root is
// injected explicitly so components can run against isolated temporary roots.
type Layout struct {
	Root string
}

// NewLayout creates a Layout rooted at the given directory.
func NewLayout(root string) Layout {
	return Layout{Root: filepath.Clean(root)}
}

// VersionDir returns the directory holding one installed version.
func (l Layout) VersionDir(v *semver.Version) string {
	return filepath.Join(l.Root, v.String())
}

// BinaryPath returns the path of the installed binary for a version,
// named "<tool>-<version>" inside the version directory.
func (l Layout) BinaryPath(v *semver.Version) string {
	return filepath.Join(l.VersionDir(v), fmt.Sprintf("%s-%s", ToolName, v))
}

// GlobalVersionPath returns the path of the global version pointer file.
func (l Layout) GlobalVersionPath() string {
	return filepath.Join(l.Root, GlobalVersionFile)
}

// LockPath returns the install lock file path for a version.
func (l Layout) LockPath(v *semver.Version) string {
	return filepath.Join(l.Root, LockFilePrefix+v.String())
}

// CacheDir returns the compilation cache directory.
func (l Layout) CacheDir() string {
	return filepath.Join(l.Root, CacheDirName)
}

// CacheFilePath returns the compilation cache document path.
func (l Layout) CacheFilePath() string {
	return filepath.Join(l.CacheDir(), CacheFileName)
}

// EnsureRoot creates the root directory and an empty global version pointer
// if they do not exist yet. Safe to call repeatedly.
func (l Layout) EnsureRoot() error {
	if err := os.MkdirAll(l.Root, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create home directory"), "path", l.Root)
	}

	pointer := l.GlobalVersionPath()
	if _, err := os.Stat(pointer); os.IsNotExist(err) {
		if err := os.WriteFile(pointer, nil, 0o644); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create global version file"), "path", pointer)
		}
	}
	return nil
}

// EnsureVersionDir creates the directory for a version if missing and
// returns its path.
func (l Layout) EnsureVersionDir(v *semver.Version) (string, error) {
	dir := l.VersionDir(v)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create version directory"), "path", dir)
	}
	return dir, nil
}
