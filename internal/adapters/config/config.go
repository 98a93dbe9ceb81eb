// Package config resolves the vvm home directory and optional settings file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/vvm-tools/vvm/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvHome overrides the vvm home directory, mainly for tests and CI.
	EnvHome = "VVM_HOME"

	homeDirName = ".vvm"

	// DefaultDownloadTimeout bounds a single artifact download.
	DefaultDownloadTimeout = 120 * time.Second
)

// Settings is the optional config.yaml schema inside the vvm home.
type Settings struct {
	ReleasesURL            string `yaml:"releasesUrl"`
	DownloadTimeoutSeconds int    `yaml:"downloadTimeoutSeconds"`
}

// Config carries the resolved runtime configuration. The layout is injected
// into every component constructor; nothing reads a process-wide root.
type Config struct {
	Layout          domain.Layout
	ReleasesURL     string
	DownloadTimeout time.Duration
}

// Load resolves the home directory ($VVM_HOME, else ~/.vvm) and merges the
// optional settings file on top of the defaults. A missing settings file is
// not an error; a malformed one is.
func Load() (*Config, error) {
	root := os.Getenv(EnvHome)
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, zerr.Wrap(err, "could not detect user home directory")
		}
		root = filepath.Join(home, homeDirName)
	}

	cfg := &Config{
		Layout:          domain.NewLayout(root),
		DownloadTimeout: DefaultDownloadTimeout,
	}

	path := filepath.Join(root, domain.SettingsFile)
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the resolved home
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
	}

	if settings.ReleasesURL != "" {
		cfg.ReleasesURL = settings.ReleasesURL
	}
	if settings.DownloadTimeoutSeconds > 0 {
		cfg.DownloadTimeout = time.Duration(settings.DownloadTimeoutSeconds) * time.Second
	}

	return cfg, nil
}
