package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// FileName is the config file looked up by Load.
const FileName = "scene_reader.cfg.json"

// ReaderConfig holds document reader settings
type ReaderConfig struct {
	DefaultLayer string `json:"defaultLayer" mapstructure:"defaultLayer"`
	MaxFileSize  int64  `json:"maxFileSize" mapstructure:"maxFileSize"`
}

// SetDefaults registers default values. Load calls it; it is exported so
// callers without a config file get the same defaults.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFormat", "text")
	viper.SetDefault("logFile", "")

	viper.SetDefault("reader.defaultLayer", "Default")
	viper.SetDefault("reader.maxFileSize", 0)
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// Reader returns the reader section.
func Reader() (ReaderConfig, error) {
	rc := ReaderConfig{
		DefaultLayer: viper.GetString("reader.defaultLayer"),
		MaxFileSize:  viper.GetInt64("reader.maxFileSize"),
	}
	if rc.MaxFileSize < 0 {
		return rc, fmt.Errorf("reader.maxFileSize must not be negative, got %d", rc.MaxFileSize)
	}
	return rc, nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}
