package config

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	Logging: LoggingConfig{
		Level:   "info",
		Format:  "json",
		LogFile: "", // Empty = logging disabled, set path to enable file logging
	},
	Hooks: HooksConfig{
		TransformTimeoutSeconds: 5,
		NotifyTimeoutSeconds:    30,
	},
}

// AppDirName is the subdirectory used under the XDG config and data homes.
// The command log lives at <data-home>/mine/command_log.jsonl and user hook
// scripts at <config-home>/mine/hooks.
const AppDirName = "mine"

// CommandLogFilename is the JSON Lines file the notify recorder appends to
const CommandLogFilename = "command_log.jsonl"
