package config

const (
	defaultDataDir   = "~/.local/share/prodbook"
	defaultImagesDir = "~/.local/share/prodbook/images"
	defaultLogDir    = "~/.local/share/prodbook/logs"
	defaultPageTitle = "Production Entries"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			ImagesDir: defaultImagesDir,
			LogDir:    defaultLogDir,
		},
		Export: Export{
			PageTitle: defaultPageTitle,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
