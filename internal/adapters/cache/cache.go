// Package cache persists compilation results keyed by source content hash.
package cache

import (
	"crypto/md5" //nolint:gosec // Content fingerprint, not a security boundary
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/vvm-tools/vvm/internal/core/domain"
	"github.com/vvm-tools/vvm/internal/core/ports"
	"go.trai.ch/zerr"
)

// FormatVersion tags the cache document schema. Documents carrying any other
// tag are discarded wholesale.
const FormatVersion = "vvm-vyper-files-cache-1"

// document is the on-disk JSON schema of the cache file.
type document struct {
	Format string                       `json:"_format"`
	Files  map[string]domain.CacheEntry `json:"files"`
}

// FilesCache holds one entry per source file, keyed by the canonicalized
// absolute source path. Loading is best effort; writing reports errors so
// callers can decide how loud to be about them.
type FilesCache struct {
	path   string
	logger ports.Logger
	files  map[string]domain.CacheEntry
}

// Load reads the cache document under the layout's cache directory. A
// missing, unreadable, malformed, or differently-tagged document yields an
// empty cache with a warning, never an error.
func Load(layout domain.Layout, logger ports.Logger) *FilesCache {
	c := &FilesCache{
		path:   layout.CacheFilePath(),
		logger: logger,
		files:  map[string]domain.CacheEntry{},
	}

	data, err := os.ReadFile(c.path) //nolint:gosec // Path is derived from the layout root
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not read compilation cache, starting empty")
		}
		return c
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("compilation cache is malformed, starting empty")
		return c
	}
	if doc.Format != FormatVersion {
		logger.Warn("compilation cache has an unknown format, starting empty")
		return c
	}
	if doc.Files != nil {
		c.files = doc.Files
	}
	return c
}

// Entry returns the cached entry for a source file name.
func (c *FilesCache) Entry(sourceName string) (domain.CacheEntry, bool) {
	entry, ok := c.files[sourceName]
	return entry, ok
}

// IsFresh reports whether the cached entry for sourceName matches the given
// content hash.
func (c *FilesCache) IsFresh(sourceName, contentHash string) bool {
	entry, ok := c.files[sourceName]
	return ok && entry.ContentHash == contentHash
}

// AddEntry inserts or replaces the entry for its source file name.
func (c *FilesCache) AddEntry(entry domain.CacheEntry) {
	c.files[entry.SourceName] = entry
}

// Write persists the cache document, creating the cache directory if needed.
func (c *FilesCache) Write() error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", dir)
	}

	doc := document{Format: FormatVersion, Files: c.files}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode compilation cache")
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil { //nolint:gosec // Cache is shared tool state
		return zerr.With(zerr.Wrap(err, "failed to write compilation cache"), "path", c.path)
	}
	return nil
}

// ContentHash fingerprints source bytes for freshness checks.
func ContentHash(data []byte) string {
	sum := md5.Sum(data) //nolint:gosec // Content fingerprint, not a security boundary
	return hex.EncodeToString(sum[:])
}
