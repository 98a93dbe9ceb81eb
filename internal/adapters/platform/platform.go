// Package platform detects the host platform token used in release asset names.
package platform

import (
	"runtime"

	"github.com/vvm-tools/vvm/internal/core/domain"
	"go.trai.ch/zerr"
)

// Platform is the canonical token a release asset name carries for one
// operating system ("linux", "darwin", "windows").
type Platform string

const (
	Linux   Platform = "linux"
	MacOS   Platform = "darwin"
	Windows Platform = "windows"
)

func (p Platform) String() string {
	return string(p)
}

// Detect maps the build's GOOS/GOARCH pair onto the asset naming token.
// Only the pairs the release host actually publishes binaries for are
// supported.
func Detect() (Platform, error) {
	return detect(runtime.GOOS, runtime.GOARCH)
}

func detect(goos, goarch string) (Platform, error) {
	switch goos {
	case "linux":
		if goarch == "amd64" || goarch == "arm64" {
			return Linux, nil
		}
	case "darwin":
		if goarch == "amd64" || goarch == "arm64" {
			return MacOS, nil
		}
	case "windows":
		if goarch == "amd64" {
			return Windows, nil
		}
	}
	return "", zerr.With(zerr.With(domain.ErrUnsupportedPlatform, "os", goos), "arch", goarch)
}
