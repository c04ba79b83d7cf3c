package logger

// LoggingConfig defines the configuration for logging.
type LoggingConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	Path       string `yaml:"path"`        // log file; empty logs to stderr
	MaxSize    int    `yaml:"max_size"`    // megabytes before rotation
	MaxBackups int    `yaml:"max_backups"` // rotated files to keep
	MaxAge     int    `yaml:"max_age"`     // days to keep rotated files
	Compress   bool   `yaml:"compress"`
}
