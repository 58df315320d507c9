// Package config loads, normalizes, and validates the mediarch
// configuration file.
//
// Configuration sections:
//   - Paths: source, target, log, and events file locations
//   - Media: photo/video extension overrides
//   - Tools: external binary names (ffprobe)
//   - Logging: log format and level
//
// There is no ambient default state: every pass receives an explicit
// *Config. Lookup order for the file itself is --config, then
// ~/.config/mediarch/config.toml, then ./mediarch.toml.
package config
