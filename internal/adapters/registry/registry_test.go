package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvm-tools/vvm/internal/adapters/registry"
	"github.com/vvm-tools/vvm/internal/core/domain"
	"github.com/vvm-tools/vvm/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRegistry(t *testing.T) (*registry.Registry, domain.Layout, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	layout := domain.NewLayout(t.TempDir())
	require.NoError(t, layout.EnsureRoot())
	return registry.New(layout, logger), layout, logger
}

func installVersion(t *testing.T, layout domain.Layout, raw string) {
	t.Helper()
	v, err := domain.ParseVersion(raw)
	require.NoError(t, err)
	_, err = layout.EnsureVersionDir(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(layout.BinaryPath(v), []byte("bin"), 0o755))
}

func TestList_SortedAndSkipsOwnedEntries(t *testing.T) {
	reg, layout, _ := newRegistry(t)

	installVersion(t, layout, "0.3.10")
	installVersion(t, layout, "0.2.16")
	installVersion(t, layout, "0.3.3")

	// Layout-owned entries must not break the scan.
	require.NoError(t, os.MkdirAll(layout.CacheDir(), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(layout.Root, ".lock-vyper-0.3.3"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(layout.Root, domain.SettingsFile), []byte("downloadTimeoutSeconds: 5\n"), 0o644))

	versions, err := reg.List()
	require.NoError(t, err)

	got := make([]string, 0, len(versions))
	for _, v := range versions {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"0.2.16", "0.3.3", "0.3.10"}, got)
}

func TestList_ForeignEntryFails(t *testing.T) {
	reg, layout, _ := newRegistry(t)
	require.NoError(t, os.MkdirAll(filepath.Join(layout.Root, "not-a-version"), 0o750))

	_, err := reg.List()
	assert.ErrorIs(t, err, domain.ErrUnknownVersion)
}

func TestCurrent_RoundTrip(t *testing.T) {
	reg, _, _ := newRegistry(t)

	current, err := reg.Current()
	require.NoError(t, err)
	assert.Nil(t, current)

	v, err := domain.ParseVersion("0.3.10")
	require.NoError(t, err)
	require.NoError(t, reg.Use(v))

	current, err = reg.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "0.3.10", current.String())

	require.NoError(t, reg.Unset())
	current, err = reg.Current()
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestCurrent_MalformedPointerIsUnset(t *testing.T) {
	reg, layout, logger := newRegistry(t)
	require.NoError(t, os.WriteFile(layout.GlobalVersionPath(), []byte("garbage\n"), 0o644))

	logger.EXPECT().Warn(gomock.Any())

	current, err := reg.Current()
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestRemove(t *testing.T) {
	reg, layout, _ := newRegistry(t)
	installVersion(t, layout, "0.3.3")

	v, err := domain.ParseVersion("0.3.3")
	require.NoError(t, err)
	require.NoError(t, reg.Remove(v))

	_, statErr := os.Stat(layout.VersionDir(v))
	assert.True(t, os.IsNotExist(statErr))

	assert.ErrorIs(t, reg.Remove(v), domain.ErrUnknownVersion)
}
