// Package print renders command results for the terminal.
package print

import (
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/lipgloss"
	"github.com/vvm-tools/vvm/internal/core/domain"
	"github.com/vvm-tools/vvm/internal/ui/style"
)

var (
	activeStyle    = lipgloss.NewStyle().Foreground(style.Green)
	installedStyle = lipgloss.NewStyle().Foreground(style.Slate)
	missingStyle   = lipgloss.NewStyle().Foreground(style.Yellow)
)

// Printer writes human-readable command output. It holds the writer so
// tests can capture output without touching os.Stdout.
type Printer struct {
	out io.Writer
}

// New creates a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// CurrentVersion prints the active global version, or a hint when none is
// set.
func (p *Printer) CurrentVersion(v *semver.Version) {
	if v == nil {
		fmt.Fprintln(p.out, missingStyle.Render(style.Circle), "no global version set (run 'vvm use <version>')")
		return
	}
	fmt.Fprintln(p.out, activeStyle.Render(style.Dot), v.String())
}

// InstalledVersions prints the installed versions, marking the active one.
func (p *Printer) InstalledVersions(installed []*semver.Version, current *semver.Version) {
	if len(installed) == 0 {
		fmt.Fprintln(p.out, "no versions installed (run 'vvm install <version>')")
		return
	}
	for _, v := range installed {
		if current != nil && v.Equal(current) {
			fmt.Fprintln(p.out, activeStyle.Render(style.Dot), v.String())
			continue
		}
		fmt.Fprintln(p.out, installedStyle.Render(style.Circle), v.String())
	}
}

// AvailableVersions prints every published version, marking installed ones.
func (p *Printer) AvailableVersions(available, installed []*semver.Version) {
	for _, v := range available {
		if domain.ContainsVersion(installed, v) {
			fmt.Fprintln(p.out, activeStyle.Render(style.Check), v.String())
			continue
		}
		fmt.Fprintln(p.out, installedStyle.Render(" "), v.String())
	}
}

// GlobalVersionSet announces a new global version.
func (p *Printer) GlobalVersionSet(v *semver.Version) {
	fmt.Fprintln(p.out, activeStyle.Render(style.Check), "global version set to", v.String())
}

// GlobalVersionUnset announces that no global version remains.
func (p *Printer) GlobalVersionUnset() {
	fmt.Fprintln(p.out, missingStyle.Render(style.Circle), "global version unset")
}

// Removed announces a removed version.
func (p *Printer) Removed(v *semver.Version) {
	fmt.Fprintln(p.out, activeStyle.Render(style.Check), "removed", v.String())
}

// Unsupported announces a version that has no release for this platform.
func (p *Printer) Unsupported(raw string) {
	fmt.Fprintln(p.out, lipgloss.NewStyle().Foreground(style.Red).Render(style.Cross),
		"vyper", raw, "is not available for this platform")
}

// Version prints the vvm build version.
func (p *Printer) Version(version string) {
	fmt.Fprintln(p.out, "vvm", version)
}
