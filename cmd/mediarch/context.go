package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mediarch/internal/config"
	"mediarch/internal/fileutil"
	"mediarch/internal/logging"
)

const lockFileName = ".mediarch.lock"

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the run logger once per invocation. Every record
// carries a fresh run ID so interleaved log files stay attributable.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		for _, path := range cfg.LogPaths() {
			switch path {
			case "stdout", "stderr":
			default:
				if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
					c.loggerErr = fmt.Errorf("create log directory: %w", err)
					return
				}
			}
		}
		logger, err := logging.New(logging.Options{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			OutputPaths: cfg.LogPaths(),
		})
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
	})
	return c.logger, c.loggerErr
}

// withTargetLock serializes archive mutation: a second mediarch run against
// the same target must fail fast instead of interleaving moves.
func (c *commandContext) withTargetLock(target string, fn func() error) error {
	if err := fileutil.EnsureDir(target); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}
	lock := flock.New(filepath.Join(target, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire archive lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another mediarch run is already working on %s", target)
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return fn()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
