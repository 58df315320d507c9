package main

import (
	"fmt"
	"strings"

	"mediarch/internal/config"
)

// resolvePath prefers the flag value over the configured one. When the
// flag is empty the config-level validator decides whether the configured
// value is usable.
func resolvePath(flagValue, configured string, validate func() error) (string, error) {
	if v := strings.TrimSpace(flagValue); v != "" {
		return config.ExpandPath(v)
	}
	if err := validate(); err != nil {
		return "", err
	}
	return configured, nil
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
