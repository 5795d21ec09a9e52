package config

const (
	defaultCatalogPath       = "~/.local/share/driftsort/catalog.db"
	defaultMaxDepth          = 10
	defaultMinFileSize       = 1024
	defaultPageDelayMS       = 200
	defaultPageSize          = 100
	defaultRetryMaxAttempts  = 3
	defaultRetryBaseSeconds  = 1.0
	defaultRetryMaxSeconds   = 10.0
	defaultBackoffMultiplier = 1.5
	defaultCacheTTLSeconds   = 300
	defaultSimilarity        = 0.7
	defaultConfidenceFloor   = 20
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

func defaultExcludeFolders() []string {
	return []string{"trash", "archive", "old", "backup"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Remote: Remote{
			PageSize: defaultPageSize,
		},
		Scan: Scan{
			MaxDepth:       defaultMaxDepth,
			MinFileSize:    defaultMinFileSize,
			ExcludeFolders: defaultExcludeFolders(),
			PageDelayMS:    defaultPageDelayMS,
			Learning:       true,
		},
		Retry: Retry{
			MaxAttempts:       defaultRetryMaxAttempts,
			BaseDelaySeconds:  defaultRetryBaseSeconds,
			MaxDelaySeconds:   defaultRetryMaxSeconds,
			BackoffMultiplier: defaultBackoffMultiplier,
			CacheTTLSeconds:   defaultCacheTTLSeconds,
		},
		Matching: Matching{
			SimilarityThreshold: defaultSimilarity,
			ConfidenceFloor:     defaultConfidenceFloor,
		},
		Paths: Paths{
			CatalogPath: defaultCatalogPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
