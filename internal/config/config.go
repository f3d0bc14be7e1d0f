package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig initializes the configuration using Viper
func InitConfig(configPath string) error {
	// Load .env file if it exists (fail silently if not found)
	loadEnvFiles()

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(GetDefaultConfigDir())
		viper.AddConfigPath(".")
	}

	// Set defaults
	viper.SetDefault("logging.level", DefaultConfig.Logging.Level)
	viper.SetDefault("logging.format", DefaultConfig.Logging.Format)
	viper.SetDefault("logging.log_file", DefaultConfig.Logging.LogFile)
	viper.SetDefault("hooks.transform_timeout_seconds", DefaultConfig.Hooks.TransformTimeoutSeconds)
	viper.SetDefault("hooks.notify_timeout_seconds", DefaultConfig.Hooks.NotifyTimeoutSeconds)

	// Enable environment variable overrides
	viper.SetEnvPrefix("MINEHOOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file (it's okay if it doesn't exist)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config; %w", err)
		}
	}

	return nil
}

// GetConfig returns the current configuration
func GetConfig() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config; %w", err)
	}

	return &cfg, nil
}

// loadEnvFiles loads environment variables from .env files
// It tries multiple locations and fails silently if files don't exist
func loadEnvFiles() {
	locations := []string{
		".env", // Current directory
		filepath.Join(GetDefaultConfigDir(), ".env"), // Config directory (~/.config/mine/.env)
	}

	// Also try .env.local for local overrides
	localLocations := []string{
		".env.local",
		filepath.Join(GetDefaultConfigDir(), ".env.local"),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			_ = godotenv.Load(location) // Fail silently
		}
	}

	// Load .env.local files (override .env)
	for _, location := range localLocations {
		if _, err := os.Stat(location); err == nil {
			_ = godotenv.Load(location) // Fail silently
		}
	}
}
