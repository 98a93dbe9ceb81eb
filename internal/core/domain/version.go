package domain

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// ParseVersion parses a strict semantic version string
// (major.minor.patch with optional pre-release and build metadata).
func ParseVersion(s string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(strings.TrimSpace(s))
	if err != nil {
		return nil, zerr.With(ErrUnknownVersion, "version", s)
	}
	return v, nil
}

// SortVersions sorts versions ascending in semantic-version order, in place.
func SortVersions(versions []*semver.Version) {
	sort.Sort(semver.Collection(versions))
}

// ContainsVersion reports whether versions includes v.
func ContainsVersion(versions []*semver.Version, v *semver.Version) bool {
	for _, candidate := range versions {
		if candidate.Equal(v) {
			return true
		}
	}
	return false
}
