// Package installer downloads and places compiler binaries under the vvm
// home directory.
package installer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/vvm-tools/vvm/internal/core/domain"
	"github.com/vvm-tools/vvm/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer turns a release artifact into an executable binary on disk.
// Installs of the same version are serialized through an exclusive file
// lock, so concurrent vvm processes never corrupt a binary.
type Installer struct {
	layout  domain.Layout
	fetcher ports.ArtifactFetcher
	logger  ports.Logger
}

// New creates an Installer over the given layout.
func New(layout domain.Layout, fetcher ports.ArtifactFetcher, logger ports.Logger) *Installer {
	return &Installer{
		layout:  layout,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Installed reports whether the version's binary is already on disk.
func (i *Installer) Installed(v *semver.Version) bool {
	_, err := os.Stat(i.layout.BinaryPath(v))
	return err == nil
}

// Install downloads the artifact for v, places it as an executable binary,
// and returns the binary path. A version without an artifact for this
// platform is reported as ErrUnknownVersion. Installing an
// already-installed version is a no-op.
func (i *Installer) Install(ctx context.Context, releases *domain.Releases, v *semver.Version) (string, error) {
	artifact, ok := releases.Artifact(v)
	if !ok {
		return "", zerr.With(domain.ErrUnknownVersion, "version", v.String())
	}

	if err := i.layout.EnsureRoot(); err != nil {
		return "", err
	}

	path := i.layout.BinaryPath(v)

	lock, err := acquireLock(i.layout.LockPath(v))
	if err != nil {
		return "", err
	}
	defer lock.release()

	// Another process may have finished this install while we waited.
	if i.Installed(v) {
		i.logger.Info(fmt.Sprintf("vyper %s is already installed", v))
		return path, nil
	}

	url := domain.ArtifactURL(v, artifact)
	i.logger.Info(fmt.Sprintf("downloading vyper %s", v))

	data, err := i.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", zerr.With(err, "version", v.String())
	}

	if expected := releases.Checksum(v); expected != "" {
		sum := sha256.Sum256(data)
		if actual := hex.EncodeToString(sum[:]); actual != expected {
			return "", zerr.With(zerr.With(zerr.With(domain.ErrChecksumMismatch,
				"version", v.String()),
				"expected", expected),
				"actual", actual)
		}
	}

	// The version directory is created only once the payload is verified,
	// so a failed download never leaves a phantom installed version behind.
	if _, err := i.layout.EnsureVersionDir(v); err != nil {
		return "", err
	}

	if err := i.place(v, data); err != nil {
		return "", err
	}
	return path, nil
}

// place writes the binary and marks it executable. The write happens under
// the version lock, so a partially written file is never visible to another
// locked installer.
func (i *Installer) place(v *semver.Version, data []byte) error {
	path := i.layout.BinaryPath(v)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755) //nolint:gosec // Binary must be executable
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create binary"), "path", path)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, "failed to write binary"), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close binary"), "path", path)
	}

	// The umask may have stripped the exec bits on create.
	if err := os.Chmod(path, 0o755); err != nil { //nolint:gosec // Binary must be executable
		return zerr.With(zerr.Wrap(err, "failed to mark binary executable"), "path", path)
	}

	i.logger.Info(fmt.Sprintf("installed vyper %s", v))
	return nil
}
