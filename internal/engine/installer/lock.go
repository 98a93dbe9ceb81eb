package installer

import (
	"os"

	"go.trai.ch/zerr"
)

// fileLock serializes installs of one version across processes. The lock
// file lives next to the version directories and is removed on release.
type fileLock struct {
	path string
	file *os.File
}

// acquireLock opens (or creates) the lock file and blocks until the
// exclusive lock is granted.
func acquireLock(path string) (*fileLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644) //nolint:gosec // Lock file under the managed root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open lock file"), "path", path)
	}

	if err := flock(f); err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to acquire lock"), "path", path)
	}
	return &fileLock{path: path, file: f}, nil
}

// release unlocks and removes the lock file. Removal is best effort; a
// concurrent process may already hold a new lock on the same path.
func (l *fileLock) release() {
	_ = funlock(l.file)
	_ = l.file.Close()
	_ = os.Remove(l.path)
}
