package main

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"driftsort/internal/config"
	"driftsort/internal/logging"
	"driftsort/internal/remote"
	"driftsort/internal/remote/fsremote"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
}

// openRemote builds the remote store the scan reads from. Only the
// filesystem adapter over an exported tree is wired in; a live store client
// would slot in here.
func (c *commandContext) openRemote() (remote.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Remote.ExportDir == "" {
		return nil, errors.New("remote.export_dir is not configured; point it at an exported copy of the remote tree")
	}
	return fsremote.New(cfg.Remote.ExportDir, fsremote.WithPageSize(cfg.Remote.PageSize))
}

func (c *commandContext) retryPolicy() remote.Policy {
	cfg := c.config
	if cfg == nil {
		return remote.DefaultPolicy()
	}
	return remote.Policy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.BaseDelay(),
		MaxDelay:    cfg.MaxDelay(),
		Multiplier:  cfg.Retry.BackoffMultiplier,
		CacheTTL:    cfg.CacheTTL(),
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
