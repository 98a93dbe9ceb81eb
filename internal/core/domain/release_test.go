package domain_test

import (
	"errors"
	"testing"

	"github.com/vvm-tools/vvm/internal/core/domain"
)

func TestArtifactURL_PercentEncodesPlus(t *testing.T) {
	v, err := domain.ParseVersion("0.3.3")
	if err != nil {
		t.Fatalf("ParseVersion failed: %v", err)
	}

	got := domain.ArtifactURL(v, "vyper.0.3.3+commit.48e326f0.darwin")
	want := "https://github.com/vyperlang/vyper/releases/download/v0.3.3/vyper.0.3.3%2Bcommit.48e326f0.darwin"
	if got != want {
		t.Errorf("ArtifactURL = %q, want %q", got, want)
	}
}

func TestReleases_ArtifactAndChecksum(t *testing.T) {
	r := &domain.Releases{
		Builds: []domain.BuildInfo{
			{Version: "0.3.3", Sha256: "ab12"},
		},
		Releases: map[string]string{
			"0.3.3": "vyper.0.3.3+commit.48e326f0.linux",
		},
	}

	v033, _ := domain.ParseVersion("0.3.3")
	v010, _ := domain.ParseVersion("0.1.0")

	artifact, ok := r.Artifact(v033)
	if !ok || artifact != "vyper.0.3.3+commit.48e326f0.linux" {
		t.Errorf("Artifact = %q, %v", artifact, ok)
	}
	if _, ok := r.Artifact(v010); ok {
		t.Error("Artifact returned ok for unknown version")
	}
	if got := r.Checksum(v033); got != "ab12" {
		t.Errorf("Checksum = %q", got)
	}
	if got := r.Checksum(v010); got != "" {
		t.Errorf("Checksum for unknown version = %q", got)
	}
}

func TestReleases_VersionsSorted(t *testing.T) {
	r := &domain.Releases{
		Releases: map[string]string{
			"0.3.10": "c",
			"0.2.16": "a",
			"0.3.3":  "b",
		},
	}

	versions, err := r.Versions()
	if err != nil {
		t.Fatalf("Versions failed: %v", err)
	}

	var got []string
	for _, v := range versions {
		got = append(got, v.String())
	}
	want := []string{"0.2.16", "0.3.3", "0.3.10"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Versions = %v, want %v", got, want)
		}
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, raw := range []string{"", "not-a-version", "1.2", "v0.3.3"} {
		if _, err := domain.ParseVersion(raw); !errors.Is(err, domain.ErrUnknownVersion) {
			t.Errorf("ParseVersion(%q) error = %v, want ErrUnknownVersion", raw, err)
		}
	}
}

func TestParseVersion_TrimsWhitespace(t *testing.T) {
	v, err := domain.ParseVersion("0.3.3\n")
	if err != nil {
		t.Fatalf("ParseVersion failed: %v", err)
	}
	if v.String() != "0.3.3" {
		t.Errorf("ParseVersion = %q", v)
	}
}
