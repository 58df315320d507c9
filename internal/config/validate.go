package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMedia(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMedia() error {
	photo := map[string]struct{}{}
	for _, ext := range c.Media.PhotoExtensions {
		photo[ext] = struct{}{}
	}
	for _, ext := range c.Media.VideoExtensions {
		if _, ok := photo[ext]; ok {
			return fmt.Errorf("media.photo_extensions and media.video_extensions must be disjoint: %q appears in both", ext)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

// ValidateSourceDir confirms a usable source directory for the organize pass.
func (c *Config) ValidateSourceDir() error {
	if strings.TrimSpace(c.Paths.SourceDir) == "" {
		return errors.New("paths.source_dir must be set (flag --source or config)")
	}
	return nil
}

// ValidateTargetDir confirms a usable target directory.
func (c *Config) ValidateTargetDir() error {
	if strings.TrimSpace(c.Paths.TargetDir) == "" {
		return errors.New("paths.target_dir must be set (flag --target or config)")
	}
	return nil
}

// ValidateEventsFile confirms an events definition file is configured.
func (c *Config) ValidateEventsFile() error {
	if strings.TrimSpace(c.Paths.EventsFile) == "" {
		return errors.New("paths.events_file must be set (flag --events-file or config)")
	}
	return nil
}
