package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/genricoloni/snowcap/internal/capture"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	configName        = "snowcap"
	envPrefix         = "SNOWCAP"
	defaultOutputDir  = "~/Pictures/snowcap"
	defaultFormat     = "png"
	defaultPermission = "auto"
	defaultAppID      = ""
)

// FilePath is an explicit config file path; empty means search the default locations
type FilePath string

// AppConfig holds application configuration
type AppConfig struct {
	OutputDir           string   `mapstructure:"output_dir"`
	Format              string   `mapstructure:"format"`
	PlaceholderDisplays []string `mapstructure:"placeholder_displays"`
	Permission          string   `mapstructure:"permission"`
	AppID               string   `mapstructure:"app_id"`
	Workers             int      `mapstructure:"workers"`
}

// NewAppConfig loads configuration from an optional YAML file and SNOWCAP_* environment variables
func NewAppConfig(logger *zap.Logger, path FilePath) (*AppConfig, error) {
	v := viper.New()

	// 1. Defaults double as the list of keys the environment may override
	v.SetDefault("output_dir", defaultOutputDir)
	v.SetDefault("format", defaultFormat)
	v.SetDefault("placeholder_displays", []string{capture.DefaultPlaceholderDisplay})
	v.SetDefault("permission", defaultPermission)
	v.SetDefault("app_id", defaultAppID)
	v.SetDefault("workers", runtime.NumCPU())

	// 2. Config file
	if path != "" {
		v.SetConfigFile(string(path))
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
		v.AddConfigPath(".")
	}

	// 3. Environment variable support
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		logger.Debug("No config file found, using defaults and environment")
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// 4. Normalize
	cfg.OutputDir = expandPath(cfg.OutputDir)
	cfg.Format = strings.ToLower(strings.TrimPrefix(cfg.Format, "."))
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if len(cfg.PlaceholderDisplays) == 0 {
		cfg.PlaceholderDisplays = []string{capture.DefaultPlaceholderDisplay}
	}

	logger.Info("Configuration loaded",
		zap.String("file", v.ConfigFileUsed()),
		zap.String("outputDir", cfg.OutputDir),
		zap.String("format", cfg.Format),
		zap.String("permission", cfg.Permission),
		zap.Strings("placeholders", cfg.PlaceholderDisplays),
		zap.Int("workers", cfg.Workers))

	return cfg, nil
}

// expandPath expands environment variables and a leading ~
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if len(p) > 0 && p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

// GetOutputDir returns the directory captures are written to by default
func (c *AppConfig) GetOutputDir() string {
	return c.OutputDir
}

// GetFormat returns the default image format extension
func (c *AppConfig) GetFormat() string {
	return c.Format
}

// GetPlaceholderDisplays returns display names that never produce real pixels
func (c *AppConfig) GetPlaceholderDisplays() []string {
	return c.PlaceholderDisplays
}

// GetPermission returns the permission gate mode
func (c *AppConfig) GetPermission() string {
	return c.Permission
}

// GetAppID returns the application id used for permission lookups
func (c *AppConfig) GetAppID() string {
	return c.AppID
}

// GetWorkers returns the fan-out limit for parallel capture
func (c *AppConfig) GetWorkers() int {
	return c.Workers
}
