package config

import (
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScan()
	c.normalizeRetry()
	c.normalizeMatching()
	c.normalizeLogging()
	if c.Remote.PageSize <= 0 {
		c.Remote.PageSize = defaultPageSize
	}
	c.Remote.RootID = strings.TrimSpace(c.Remote.RootID)
	return nil
}

func (c *Config) normalizePaths() error {
	catalog, err := expandPath(c.Paths.CatalogPath)
	if err != nil {
		return err
	}
	c.Paths.CatalogPath = catalog

	renewals, err := expandPath(c.Paths.RenewalTablePath)
	if err != nil {
		return err
	}
	c.Paths.RenewalTablePath = renewals

	export, err := expandPath(c.Remote.ExportDir)
	if err != nil {
		return err
	}
	c.Remote.ExportDir = export
	return nil
}

func (c *Config) normalizeScan() {
	if c.Scan.MaxDepth <= 0 {
		c.Scan.MaxDepth = defaultMaxDepth
	}
	if c.Scan.MinFileSize < 0 {
		c.Scan.MinFileSize = 0
	}
	if c.Scan.PageDelayMS < 0 {
		c.Scan.PageDelayMS = 0
	}
	excludes := make([]string, 0, len(c.Scan.ExcludeFolders))
	for _, name := range c.Scan.ExcludeFolders {
		trimmed := strings.ToLower(strings.TrimSpace(name))
		if trimmed != "" {
			excludes = append(excludes, trimmed)
		}
	}
	c.Scan.ExcludeFolders = excludes

	patterns := make([]string, 0, len(c.Scan.IncludePatterns))
	for _, p := range c.Scan.IncludePatterns {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}
	c.Scan.IncludePatterns = patterns
}

func (c *Config) normalizeRetry() {
	if c.Retry.MaxAttempts <= 0 {
		c.Retry.MaxAttempts = defaultRetryMaxAttempts
	}
	if c.Retry.BaseDelaySeconds <= 0 {
		c.Retry.BaseDelaySeconds = defaultRetryBaseSeconds
	}
	if c.Retry.MaxDelaySeconds <= 0 {
		c.Retry.MaxDelaySeconds = defaultRetryMaxSeconds
	}
	if c.Retry.BackoffMultiplier <= 1 {
		c.Retry.BackoffMultiplier = defaultBackoffMultiplier
	}
	if c.Retry.CacheTTLSeconds <= 0 {
		c.Retry.CacheTTLSeconds = defaultCacheTTLSeconds
	}
}

func (c *Config) normalizeMatching() {
	if c.Matching.SimilarityThreshold <= 0 {
		c.Matching.SimilarityThreshold = defaultSimilarity
	}
	if c.Matching.ConfidenceFloor < 0 {
		c.Matching.ConfidenceFloor = 0
	}
}

func (c *Config) normalizeLogging() {
	if strings.TrimSpace(c.Logging.Format) == "" {
		c.Logging.Format = defaultLogFormat
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaultLogLevel
	}
}
