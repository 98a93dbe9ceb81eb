package app_test

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvm-tools/vvm/internal/adapters/registry"
	"github.com/vvm-tools/vvm/internal/app"
	"github.com/vvm-tools/vvm/internal/core/domain"
	"github.com/vvm-tools/vvm/internal/core/ports/mocks"
	"github.com/vvm-tools/vvm/internal/engine/installer"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app      *app.App
	layout   domain.Layout
	catalog  *mocks.MockReleaseCatalog
	fetcher  *mocks.MockArtifactFetcher
	prompter *mocks.MockPrompter
	out      bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	layout := domain.NewLayout(t.TempDir())
	require.NoError(t, layout.EnsureRoot())

	f := &fixture{
		layout:   layout,
		catalog:  mocks.NewMockReleaseCatalog(ctrl),
		fetcher:  mocks.NewMockArtifactFetcher(ctrl),
		prompter: mocks.NewMockPrompter(ctrl),
	}

	reg := registry.New(layout, logger)
	inst := installer.New(layout, f.fetcher, logger)
	f.app = app.New(f.catalog, reg, inst, f.prompter, logger, &f.out)
	return f
}

func (f *fixture) releases(rawVersions ...string) *domain.Releases {
	releases := &domain.Releases{Releases: map[string]string{}}
	for _, raw := range rawVersions {
		releases.Releases[raw] = "vyper." + raw + "+commit.abcdef01.linux"
	}
	return releases
}

func (f *fixture) place(t *testing.T, raw string) {
	t.Helper()
	v, err := domain.ParseVersion(raw)
	require.NoError(t, err)
	_, err = f.layout.EnsureVersionDir(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(f.layout.BinaryPath(v), []byte("bin"), 0o755))
}

func (f *fixture) current(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.layout.GlobalVersionPath())
	require.NoError(t, err)
	return string(data)
}

func TestList(t *testing.T) {
	f := newFixture(t)
	f.place(t, "0.3.3")
	require.NoError(t, os.WriteFile(f.layout.GlobalVersionPath(), []byte("0.3.3"), 0o644))

	f.catalog.EXPECT().AllReleases(gomock.Any()).Return(f.releases("0.3.3", "0.3.10"), nil)

	require.NoError(t, f.app.List(context.Background()))

	out := f.out.String()
	assert.Contains(t, out, "0.3.3")
	assert.Contains(t, out, "0.3.10")
}

func TestInstall_FreshInstallBecomesGlobal(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().AllReleases(gomock.Any()).Return(f.releases("0.3.10"), nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return([]byte("binary"), nil)

	require.NoError(t, f.app.Install(context.Background(), []string{"0.3.10"}))

	v, _ := domain.ParseVersion("0.3.10")
	_, err := os.Stat(f.layout.BinaryPath(v))
	require.NoError(t, err)

	assert.Equal(t, "0.3.10", f.current(t))
	assert.Contains(t, f.out.String(), "global version set")
}

func TestInstall_ExistingGlobalIsKept(t *testing.T) {
	f := newFixture(t)
	f.place(t, "0.3.3")
	require.NoError(t, os.WriteFile(f.layout.GlobalVersionPath(), []byte("0.3.3"), 0o644))

	f.catalog.EXPECT().AllReleases(gomock.Any()).Return(f.releases("0.3.3", "0.3.10"), nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return([]byte("binary"), nil)

	require.NoError(t, f.app.Install(context.Background(), []string{"0.3.10"}))
	assert.Equal(t, "0.3.3", f.current(t))
}

func TestInstall_MultipleVersions(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().AllReleases(gomock.Any()).Return(f.releases("0.3.3", "0.3.10"), nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return([]byte("binary"), nil).Times(2)

	require.NoError(t, f.app.Install(context.Background(), []string{"0.3.3", "0.3.10"}))

	for _, raw := range []string{"0.3.3", "0.3.10"} {
		v, _ := domain.ParseVersion(raw)
		_, err := os.Stat(f.layout.BinaryPath(v))
		assert.NoError(t, err)
	}
}

func TestInstall_AlreadyInstalledOffersGlobal(t *testing.T) {
	f := newFixture(t)
	f.place(t, "0.3.3")

	f.catalog.EXPECT().AllReleases(gomock.Any()).Return(f.releases("0.3.3"), nil)
	f.prompter.EXPECT().Confirm(gomock.Any()).Return(true, nil)

	require.NoError(t, f.app.Install(context.Background(), []string{"0.3.3"}))
	assert.Equal(t, "0.3.3", f.current(t))
}

func TestInstall_AlreadyInstalledDeclined(t *testing.T) {
	f := newFixture(t)
	f.place(t, "0.3.3")

	f.catalog.EXPECT().AllReleases(gomock.Any()).Return(f.releases("0.3.3"), nil)
	f.prompter.EXPECT().Confirm(gomock.Any()).Return(false, nil)

	require.NoError(t, f.app.Install(context.Background(), []string{"0.3.3"}))
	assert.Empty(t, f.current(t))
}

func TestInstall_UnsupportedVersion(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().AllReleases(gomock.Any()).Return(f.releases("0.3.10"), nil)

	require.NoError(t, f.app.Install(context.Background(), []string{"9.9.9"}))
	assert.Contains(t, f.out.String(), "not available")
}

func TestUse_InstalledVersion(t *testing.T) {
	f := newFixture(t)
	f.place(t, "0.3.3")

	require.NoError(t, f.app.Use(context.Background(), "0.3.3"))
	assert.Equal(t, "0.3.3", f.current(t))
}

func TestUse_AvailableVersionInstallsOnConfirm(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().AllReleases(gomock.Any()).Return(f.releases("0.3.10"), nil)
	f.prompter.EXPECT().Confirm(gomock.Any()).Return(true, nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return([]byte("binary"), nil)

	require.NoError(t, f.app.Use(context.Background(), "0.3.10"))
	assert.Equal(t, "0.3.10", f.current(t))
}

func TestUse_AssumeYesSkipsPrompt(t *testing.T) {
	f := newFixture(t)
	f.app.SetAssumeYes(true)

	f.catalog.EXPECT().AllReleases(gomock.Any()).Return(f.releases("0.3.10"), nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return([]byte("binary"), nil)

	// No Confirm expectation: prompting would fail the test.
	require.NoError(t, f.app.Use(context.Background(), "0.3.10"))
	assert.Equal(t, "0.3.10", f.current(t))
}

func TestUse_UnsupportedVersion(t *testing.T) {
	f := newFixture(t)

	f.catalog.EXPECT().AllReleases(gomock.Any()).Return(f.releases("0.3.10"), nil)

	require.NoError(t, f.app.Use(context.Background(), "0.2.1"))
	assert.Contains(t, f.out.String(), "not available")
	assert.Empty(t, f.current(t))
}

func TestRemove_CurrentFallsBackToGreatestRemaining(t *testing.T) {
	f := newFixture(t)
	f.app.SetAssumeYes(true)
	f.place(t, "0.2.16")
	f.place(t, "0.3.3")
	f.place(t, "0.3.10")
	require.NoError(t, os.WriteFile(f.layout.GlobalVersionPath(), []byte("0.3.10"), 0o644))

	require.NoError(t, f.app.Remove(context.Background(), "0.3.10"))

	assert.Equal(t, "0.3.3", f.current(t))
}

func TestRemove_LastVersionUnsetsGlobal(t *testing.T) {
	f := newFixture(t)
	f.app.SetAssumeYes(true)
	f.place(t, "0.3.3")
	require.NoError(t, os.WriteFile(f.layout.GlobalVersionPath(), []byte("0.3.3"), 0o644))

	require.NoError(t, f.app.Remove(context.Background(), "0.3.3"))

	assert.Empty(t, f.current(t))
	assert.Contains(t, f.out.String(), "global version unset")
}

func TestRemove_OtherVersionKeepsGlobal(t *testing.T) {
	f := newFixture(t)
	f.app.SetAssumeYes(true)
	f.place(t, "0.3.3")
	f.place(t, "0.3.10")
	require.NoError(t, os.WriteFile(f.layout.GlobalVersionPath(), []byte("0.3.10"), 0o644))

	require.NoError(t, f.app.Remove(context.Background(), "0.3.3"))
	assert.Equal(t, "0.3.10", f.current(t))
}

func TestRemove_All(t *testing.T) {
	f := newFixture(t)
	f.app.SetAssumeYes(true)
	f.place(t, "0.3.3")
	f.place(t, "0.3.10")
	require.NoError(t, os.WriteFile(f.layout.GlobalVersionPath(), []byte("0.3.10"), 0o644))

	require.NoError(t, f.app.Remove(context.Background(), app.RemoveAll))

	reg := f.out.String()
	assert.Contains(t, reg, "removed 0.3.3")
	assert.Contains(t, reg, "removed 0.3.10")
	assert.Empty(t, f.current(t))
}

func TestRemove_Declined(t *testing.T) {
	f := newFixture(t)
	f.place(t, "0.3.3")

	f.prompter.EXPECT().Confirm(gomock.Any()).Return(false, nil)

	require.NoError(t, f.app.Remove(context.Background(), "0.3.3"))

	v, _ := domain.ParseVersion("0.3.3")
	_, err := os.Stat(f.layout.BinaryPath(v))
	assert.NoError(t, err)
}
