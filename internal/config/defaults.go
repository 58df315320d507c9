package config

const (
	defaultLogDir        = "~/.local/share/mediarch/logs"
	defaultEventsFile    = "~/.config/mediarch/events.toml"
	defaultLogLevel      = "info"
	defaultFFprobeBinary = "ffprobe"
)

// Default returns a Config populated with repository defaults. Source and
// target directories have no default on purpose: the spec requires them to
// be explicit rather than ambient, so commands demand flags or config.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:     defaultLogDir,
			EventsFile: defaultEventsFile,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
