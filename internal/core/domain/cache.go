package domain

// CacheEntry records the last successful compile of one source file.
// ContentHash is recomputed from the current file bytes whenever freshness
// is checked; it is never trusted from a prior run.
type CacheEntry struct {
	ContentHash      string `json:"contentHash"`
	SourceName       string `json:"sourceName"`
	DeployedBytecode string `json:"deployedBytecode"`
}
