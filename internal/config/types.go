package config

// Config represents the application configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Hooks   HooksConfig   `mapstructure:"hooks" yaml:"hooks"`
}

// LoggingConfig contains logging configuration. Diagnostics go to a file
// only; stdout and stderr stay clean for hook framework communication.
type LoggingConfig struct {
	Level   string `mapstructure:"level" yaml:"level"`
	Format  string `mapstructure:"format" yaml:"format"`
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
}

// HooksConfig contains timeouts applied to discovered hook scripts
type HooksConfig struct {
	TransformTimeoutSeconds int `mapstructure:"transform_timeout_seconds" yaml:"transform_timeout_seconds"`
	NotifyTimeoutSeconds    int `mapstructure:"notify_timeout_seconds" yaml:"notify_timeout_seconds"`
}
