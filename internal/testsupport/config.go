package testsupport

import (
	"path/filepath"
	"testing"

	"driftsort/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp paths per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CatalogPath = filepath.Join(base, "catalog.db")
	cfg.Scan.PageDelayMS = 0

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithSimilarityThreshold overrides the matching threshold.
func WithSimilarityThreshold(threshold float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.SimilarityThreshold = threshold
	}
}

// WithoutCatalog disables catalog persistence.
func WithoutCatalog() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.CatalogPath = ""
	}
}
