package domain

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DownloadBaseURL is the host serving release artifacts.
const DownloadBaseURL = "https://github.com/vyperlang/vyper/releases/download"

// BuildInfo carries the published checksum for one release binary.
// Vyper does not publish checksums today, so Sha256 is typically empty;
// when present it is verified before installing.
type BuildInfo struct {
	Version string `json:"version"`
	Sha256  string `json:"sha256"`
}

// Releases maps available versions to the artifact name resolved for the
// host platform.
type Releases struct {
	Builds   []BuildInfo       `json:"builds"`
	Releases map[string]string `json:"releases"`
}

// Artifact returns the platform artifact name for a version, if published.
func (r *Releases) Artifact(v *semver.Version) (string, bool) {
	artifact, ok := r.Releases[v.String()]
	return artifact, ok
}

// Checksum returns the hex sha256 digest published for a version, or the
// empty string when none is known.
func (r *Releases) Checksum(v *semver.Version) string {
	for _, build := range r.Builds {
		if build.Version == v.String() {
			return build.Sha256
		}
	}
	return ""
}

// Contains reports whether a version has an artifact for this platform.
func (r *Releases) Contains(v *semver.Version) bool {
	_, ok := r.Releases[v.String()]
	return ok
}

// Versions returns all available versions sorted ascending.
func (r *Releases) Versions() ([]*semver.Version, error) {
	versions := make([]*semver.Version, 0, len(r.Releases))
	for raw := range r.Releases {
		v, err := ParseVersion(raw)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	SortVersions(versions)
	return versions, nil
}

// ArtifactURL builds the canonical download URL for a release artifact.
// GitHub serves asset names with '+' percent-encoded.
func ArtifactURL(v *semver.Version, artifact string) string {
	return fmt.Sprintf("%s/v%s/%s", DownloadBaseURL, v, strings.ReplaceAll(artifact, "+", "%2B"))
}
