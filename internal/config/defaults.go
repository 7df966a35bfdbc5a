package config

const (
	defaultStateDir         = "~/.local/share/dtcheck"
	defaultLogDir           = "~/.local/share/dtcheck/logs"
	defaultSidecarExtension = ".xmp"
	defaultMinRating        = -1 // include rejected photos
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Scan: Scan{
			SidecarExtension: defaultSidecarExtension,
			MinRating:        defaultMinRating,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
