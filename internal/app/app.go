// Package app implements the application layer for vvm.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/vvm-tools/vvm/internal/build"
	"github.com/vvm-tools/vvm/internal/core/domain"
	"github.com/vvm-tools/vvm/internal/core/ports"
	"github.com/vvm-tools/vvm/internal/engine/installer"
	"github.com/vvm-tools/vvm/internal/ui/print"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// RemoveAll is the sentinel argument that removes every installed version.
const RemoveAll = "ALL"

// App drives the version-manager flows behind the vvm commands.
type App struct {
	catalog   ports.ReleaseCatalog
	registry  ports.VersionRegistry
	installer *installer.Installer
	prompter  ports.Prompter
	logger    ports.Logger
	printer   *print.Printer

	assumeYes bool
}

// New creates a new App instance printing to out.
func New(
	catalog ports.ReleaseCatalog,
	registry ports.VersionRegistry,
	inst *installer.Installer,
	prompter ports.Prompter,
	logger ports.Logger,
	out io.Writer,
) *App {
	return &App{
		catalog:   catalog,
		registry:  registry,
		installer: inst,
		prompter:  prompter,
		logger:    logger,
		printer:   print.New(out),
	}
}

// SetAssumeYes makes every confirmation answer yes without prompting.
func (a *App) SetAssumeYes(yes bool) {
	a.assumeYes = yes
}

func (a *App) confirm(question string) (bool, error) {
	if a.assumeYes {
		return true, nil
	}
	return a.prompter.Confirm(question)
}

// List prints the current version, the installed versions, and the versions
// still available for this platform.
func (a *App) List(ctx context.Context) error {
	current, err := a.registry.Current()
	if err != nil {
		return err
	}
	installed, err := a.registry.List()
	if err != nil {
		return err
	}

	a.printer.CurrentVersion(current)
	a.printer.InstalledVersions(installed, current)

	releases, err := a.catalog.AllReleases(ctx)
	if err != nil {
		return err
	}
	available, err := releases.Versions()
	if err != nil {
		return err
	}

	a.printer.AvailableVersions(available, installed)
	return nil
}

// Install installs the requested versions. Versions already on disk are
// offered as the new global version instead; installs of the remaining
// versions run concurrently since they touch disjoint subtrees. When no
// global version was set, the first freshly installed one becomes global.
func (a *App) Install(ctx context.Context, rawVersions []string) error {
	releases, err := a.catalog.AllReleases(ctx)
	if err != nil {
		return err
	}

	toInstall := make([]*semver.Version, 0, len(rawVersions))
	for _, raw := range rawVersions {
		v, err := domain.ParseVersion(raw)
		if err != nil {
			a.printer.Unsupported(raw)
			continue
		}

		switch {
		case a.installer.Installed(v):
			ok, err := a.confirm(fmt.Sprintf("vyper %s is already installed. Set it as the global version?", v))
			if err != nil {
				return err
			}
			if ok {
				if err := a.registry.Use(v); err != nil {
					return err
				}
				a.printer.GlobalVersionSet(v)
			}
		case releases.Contains(v):
			toInstall = append(toInstall, v)
		default:
			a.printer.Unsupported(raw)
		}
	}

	if len(toInstall) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, v := range toInstall {
		g.Go(func() error {
			_, err := a.installer.Install(gctx, releases, v)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	current, err := a.registry.Current()
	if err != nil {
		return err
	}
	if current == nil {
		first := toInstall[0]
		if err := a.registry.Use(first); err != nil {
			return err
		}
		a.printer.GlobalVersionSet(first)
	}
	return nil
}

// Use makes a version the global one, offering to install it first when it
// is available but not yet on disk.
func (a *App) Use(ctx context.Context, raw string) error {
	v, err := domain.ParseVersion(raw)
	if err != nil {
		a.printer.Unsupported(raw)
		return nil
	}

	if a.installer.Installed(v) {
		if err := a.registry.Use(v); err != nil {
			return err
		}
		a.printer.GlobalVersionSet(v)
		return nil
	}

	releases, err := a.catalog.AllReleases(ctx)
	if err != nil {
		return err
	}
	if !releases.Contains(v) {
		a.printer.Unsupported(raw)
		return nil
	}

	ok, err := a.confirm(fmt.Sprintf("vyper %s is not installed. Install it?", v))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if _, err := a.installer.Install(ctx, releases, v); err != nil {
		return err
	}
	if err := a.registry.Use(v); err != nil {
		return err
	}
	a.printer.GlobalVersionSet(v)
	return nil
}

// Remove deletes an installed version, or every installed version when
// target is "ALL". Removing the global version re-points the pointer at the
// greatest remaining version, or unsets it when none remain.
func (a *App) Remove(ctx context.Context, target string) error {
	if target == RemoveAll {
		return a.removeAll()
	}

	v, err := domain.ParseVersion(target)
	if err != nil {
		return err
	}

	ok, err := a.confirm(fmt.Sprintf("Remove vyper %s?", v))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.registry.Remove(v); err != nil {
		return err
	}
	a.printer.Removed(v)

	current, err := a.registry.Current()
	if err != nil {
		return err
	}
	if current == nil || !current.Equal(v) {
		return nil
	}

	remaining, err := a.registry.List()
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		if err := a.registry.Unset(); err != nil {
			return err
		}
		a.printer.GlobalVersionUnset()
		return nil
	}

	next := remaining[len(remaining)-1]
	if err := a.registry.Use(next); err != nil {
		return err
	}
	a.printer.GlobalVersionSet(next)
	return nil
}

func (a *App) removeAll() error {
	installed, err := a.registry.List()
	if err != nil {
		return err
	}
	if len(installed) == 0 {
		return nil
	}

	ok, err := a.confirm("Remove all installed vyper versions?")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	for _, v := range installed {
		if err := a.registry.Remove(v); err != nil {
			return zerr.With(err, "version", v.String())
		}
		a.printer.Removed(v)
	}

	if err := a.registry.Unset(); err != nil {
		return err
	}
	a.printer.GlobalVersionUnset()
	return nil
}

// Version prints the vvm build version.
func (a *App) Version() {
	a.printer.Version(build.Version)
}
