package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Remote contains the remote store entry point.
type Remote struct {
	// RootID is the folder identifier the scan starts from.
	RootID string `toml:"root_id"`
	// ExportDir is a local directory mirroring the remote tree. When set,
	// the filesystem-backed store adapter is used instead of a live store.
	ExportDir string `toml:"export_dir"`
	// PageSize bounds how many children a single listing call returns.
	PageSize int `toml:"page_size"`
}

// Scan contains traversal and admission settings.
type Scan struct {
	MaxDepth       int      `toml:"max_depth"`
	MinFileSize    int64    `toml:"min_file_size_bytes"`
	ExcludeFolders []string `toml:"exclude_folders"`
	// IncludePatterns overrides the built-in recording-indicative patterns
	// when non-empty. Matched case-insensitively against file names.
	IncludePatterns []string `toml:"include_patterns"`
	PageDelayMS     int      `toml:"page_delay_ms"`
	// Learning toggles the convention-learning pre-pass of the domain
	// pattern extension.
	Learning bool `toml:"learning"`
}

// Retry contains the remote accessor retry policy.
type Retry struct {
	MaxAttempts       int     `toml:"max_attempts"`
	BaseDelaySeconds  float64 `toml:"base_delay_seconds"`
	MaxDelaySeconds   float64 `toml:"max_delay_seconds"`
	BackoffMultiplier float64 `toml:"backoff_multiplier"`
	CacheTTLSeconds   int     `toml:"cache_ttl_seconds"`
}

// Matching contains session clustering thresholds.
type Matching struct {
	SimilarityThreshold float64 `toml:"similarity_threshold"`
	ConfidenceFloor     int     `toml:"confidence_floor"`
}

// Paths contains file locations the tool reads and writes.
type Paths struct {
	// CatalogPath is the sqlite database persisted scan results go to.
	// Empty disables the catalog.
	CatalogPath string `toml:"catalog_path"`
	// RenewalTablePath points at a TOML table of known renewal students.
	// Empty uses the embedded default table.
	RenewalTablePath string `toml:"renewal_table_path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for driftsort.
//
// Configuration sections by subsystem:
//   - Remote: store entry point and listing page size
//   - Scan: traversal depth, admission filters, inter-page delay
//   - Retry: accessor retry policy and folder-metadata cache TTL
//   - Matching: similarity threshold and validation confidence floor
//   - Paths: catalog database and renewal-student table locations
//   - Logging: log format and level
type Config struct {
	Remote   Remote   `toml:"remote"`
	Scan     Scan     `toml:"scan"`
	Retry    Retry    `toml:"retry"`
	Matching Matching `toml:"matching"`
	Paths    Paths    `toml:"paths"`
	Logging  Logging  `toml:"logging"`
}

// PageDelay returns the inter-page listing delay as a duration.
func (c *Config) PageDelay() time.Duration {
	if c.Scan.PageDelayMS <= 0 {
		return 0
	}
	return time.Duration(c.Scan.PageDelayMS) * time.Millisecond
}

// BaseDelay returns the retry base delay as a duration.
func (c *Config) BaseDelay() time.Duration {
	return time.Duration(c.Retry.BaseDelaySeconds * float64(time.Second))
}

// MaxDelay returns the retry delay cap as a duration.
func (c *Config) MaxDelay() time.Duration {
	return time.Duration(c.Retry.MaxDelaySeconds * float64(time.Second))
}

// CacheTTL returns the folder-metadata cache lifetime as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Retry.CacheTTLSeconds) * time.Second
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/driftsort/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second return is
// the resolved path; the third reports whether a file existed there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("driftsort.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// EnsureDirectories creates directories the configuration points into.
func (c *Config) EnsureDirectories() error {
	if c.Paths.CatalogPath != "" {
		if err := os.MkdirAll(filepath.Dir(c.Paths.CatalogPath), 0o755); err != nil {
			return fmt.Errorf("ensure catalog dir: %w", err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	trimmed := strings.TrimSpace(pathValue)
	if trimmed == "" {
		return "", nil
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		if trimmed == "~" {
			trimmed = home
		} else if strings.HasPrefix(trimmed, "~/") {
			trimmed = filepath.Join(home, trimmed[2:])
		}
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", pathValue, err)
	}
	return abs, nil
}

// ExpandPath exposes path expansion to commands that accept path flags.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
