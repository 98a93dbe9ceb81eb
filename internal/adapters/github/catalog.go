// Package github resolves published Vyper releases from the GitHub API.
package github

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/vvm-tools/vvm/internal/adapters/platform"
	"github.com/vvm-tools/vvm/internal/core/domain"
	"github.com/vvm-tools/vvm/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultReleasesURL lists all Vyper releases, newest first.
const DefaultReleasesURL = "https://api.github.com/repos/vyperlang/vyper/releases?per_page=100"

const (
	userAgent      = "vvm"
	requestTimeout = 30 * time.Second
)

var _ ports.ReleaseCatalog = (*Catalog)(nil)

// Catalog implements ports.ReleaseCatalog against the GitHub releases API.
type Catalog struct {
	client   *http.Client
	url      string
	platform platform.Platform
}

// NewCatalog creates a catalog for the given releases URL and host platform.
func NewCatalog(url string, p platform.Platform) *Catalog {
	return &Catalog{
		client:   &http.Client{Timeout: requestTimeout},
		url:      url,
		platform: p,
	}
}

type assetDTO struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

type releaseDTO struct {
	TagName string     `json:"tag_name"`
	Assets  []assetDTO `json:"assets"`
}

// AllReleases fetches the release list and keeps the assets published for
// this platform. When a release carries several matching assets, the last
// one in the response wins.
func (c *Catalog) AllReleases(ctx context.Context) (*domain.Releases, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build releases request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	// GitHub rejects requests without a User-Agent.
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch releases")
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UnsuccessfulResponseError{URL: c.url, Status: resp.StatusCode}
	}

	var releases []releaseDTO
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, zerr.Wrap(err, "failed to decode releases response")
	}

	return c.collect(releases)
}

func (c *Catalog) collect(releases []releaseDTO) (*domain.Releases, error) {
	out := &domain.Releases{
		Releases: make(map[string]string),
	}

	token := c.platform.String()
	for _, release := range releases {
		for _, asset := range release.Assets {
			if !strings.Contains(asset.Name, token) {
				continue
			}
			v, err := domain.ParseVersion(strings.TrimPrefix(release.TagName, "v"))
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "malformed release tag"), "tag", release.TagName)
			}
			if !out.Contains(v) {
				out.Builds = append(out.Builds, domain.BuildInfo{Version: v.String()})
			}
			out.Releases[v.String()] = asset.Name
		}
	}

	return out, nil
}
