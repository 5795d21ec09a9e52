package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks cross-field constraints after normalization.
func (c *Config) Validate() error {
	var problems []string

	if c.Retry.MaxDelaySeconds < c.Retry.BaseDelaySeconds {
		problems = append(problems, "retry.max_delay_seconds must be >= retry.base_delay_seconds")
	}
	if c.Matching.SimilarityThreshold > 1 {
		problems = append(problems, "matching.similarity_threshold must be in (0, 1]")
	}
	if c.Matching.ConfidenceFloor > 100 {
		problems = append(problems, "matching.confidence_floor must be in [0, 100]")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q is not one of console, json", c.Logging.Format))
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
