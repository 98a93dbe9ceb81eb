package installer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLock_Exclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".lock-vyper-0.3.10")

	held, err := acquireLock(path)
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		second, err := acquireLock(path)
		assert.NoError(t, err)
		second.release()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while the first was held")
	case <-time.After(100 * time.Millisecond):
	}

	held.release()

	select {
	case <-acquired:
	case <-time.After(5 * time.Second):
		t.Fatal("second lock was never acquired")
	}
}

func TestFileLock_RemovedOnRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".lock-vyper-0.3.3")

	lock, err := acquireLock(path)
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	lock.release()

	_, statErr = os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
