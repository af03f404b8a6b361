package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const appName = "ygodeck"

const (
	EnvDefaultURL = "DEFAULT_URL"
	EnvLogLevel   = "LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	DefaultURL          string `toml:"default_url"`
	OutputDir           string `toml:"output_dir"`
	ImageDir            string `toml:"image_dir"`
	Concurrency         int    `toml:"concurrency"`
	BatchDelayMS        int    `toml:"batch_delay_ms"`
	PageTimeoutSeconds  int    `toml:"page_timeout_seconds"`
	ImageTimeoutSeconds int    `toml:"image_timeout_seconds"`
	UserAgent           string `toml:"user_agent"`
	CloudflareBypass    bool   `toml:"cloudflare_bypass"`
	LogLevel            string `toml:"log_level"`
}

// Default returns the configuration used when no file sets a value.
func Default() Config {
	return Config{
		OutputDir:           filepath.Join(GetXDGDataHome(), appName, "decks"),
		ImageDir:            filepath.Join(GetXDGDataHome(), appName, "cards"),
		Concurrency:         5,
		BatchDelayMS:        1000,
		PageTimeoutSeconds:  30,
		ImageTimeoutSeconds: 30,
		LogLevel:            "info",
	}
}

func (c Config) BatchDelay() time.Duration {
	return time.Duration(c.BatchDelayMS) * time.Millisecond
}

func (c Config) PageTimeout() time.Duration {
	return time.Duration(c.PageTimeoutSeconds) * time.Second
}

func (c Config) ImageTimeout() time.Duration {
	return time.Duration(c.ImageTimeoutSeconds) * time.Second
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{homeDir}, fallback...)...)
}

// GetCacheDir returns the directory for derived files such as rendered art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), appName)
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// GetLocalConfigFilePath returns the path of the optional override file
func GetLocalConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.local.toml")
}

// LoadConfig loads the config file, creating it with defaults on first use.
// Values from config.local.toml override the file, the environment (and a
// .env file in the working directory) overrides both.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	config := Default()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := writeConfig(configPath, config); err != nil {
			return nil, err
		}
	} else if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	localPath := GetLocalConfigFilePath()
	if _, err := os.Stat(localPath); err == nil {
		var override Config
		md, err := toml.DecodeFile(localPath, &override)
		if err != nil {
			return nil, fmt.Errorf("error decoding local config file: %w", err)
		}
		if err := mergo.Merge(&config, override, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging local config: %w", err)
		}
		// mergo skips zero values, so keys set to false, 0 or "" are copied here
		applyDefined(&config, override, md)
		slog.Debug("merging config with local overrides", "local", localPath)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}
	if v := os.Getenv(EnvDefaultURL); v != "" {
		config.DefaultURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}

	return &config, nil
}

// applyDefined copies every field of src whose toml key is present in md.
func applyDefined(dst *Config, src Config, md toml.MetaData) {
	dv := reflect.ValueOf(dst).Elem()
	sv := reflect.ValueOf(src)
	for i := 0; i < sv.NumField(); i++ {
		key := sv.Type().Field(i).Tag.Get("toml")
		if key != "" && md.IsDefined(key) {
			dv.Field(i).Set(sv.Field(i))
		}
	}
}

// SetDefaultURL sets the default deck url in the config file
func SetDefaultURL(url string) error {
	configPath := GetConfigFilePath()

	config := Default()
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, &config); err != nil {
			return fmt.Errorf("error decoding config file: %w", err)
		}
	}

	config.DefaultURL = url
	return writeConfig(configPath, config)
}

func writeConfig(path string, config Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}
