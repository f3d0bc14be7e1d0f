package config

import (
	"os"
	"path/filepath"
)

// LookupEnv returns the value of an environment variable or "" when unset.
// Paths take it as a parameter so tests can resolve directories without
// mutating the real environment.
type LookupEnv func(key string) string

// DataDir resolves the base data directory: XDG_DATA_HOME when set and
// non-empty, otherwise ~/.local/share.
func DataDir(lookup LookupEnv) string {
	if dir := lookup("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".local", "share")
	}
	return filepath.Join(home, ".local", "share")
}

// ConfigDir resolves the base config directory: XDG_CONFIG_HOME when set and
// non-empty, otherwise ~/.config.
func ConfigDir(lookup LookupEnv) string {
	if dir := lookup("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config"
	}
	return filepath.Join(home, ".config")
}

// CommandLogPath returns the path of the command log JSON Lines file
func CommandLogPath(lookup LookupEnv) string {
	return filepath.Join(DataDir(lookup), AppDirName, CommandLogFilename)
}

// HooksDir returns the directory scanned for user hook scripts
func HooksDir(lookup LookupEnv) string {
	return filepath.Join(ConfigDir(lookup), AppDirName, "hooks")
}

// GetDefaultConfigDir returns the directory searched for config.yaml and .env
func GetDefaultConfigDir() string {
	return filepath.Join(ConfigDir(os.Getenv), AppDirName)
}
