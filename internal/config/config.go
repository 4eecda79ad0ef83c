// Package config provides configuration management for the lipsync service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Aligner AlignerConfig `mapstructure:"aligner"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// AlignerConfig configures the external forced-alignment tool
type AlignerConfig struct {
	BinaryPath string        `mapstructure:"binary_path"` // rhubarb executable
	WorkDir    string        `mapstructure:"work_dir"`    // staging dir for transient audio
	Timeout    time.Duration `mapstructure:"timeout"`
}

// LoggingConfig configures log output
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	LogDir  string `mapstructure:"log_dir"`
	Console bool   `mapstructure:"console"`
}

// DefaultConfig returns sensible default configuration. Port 8003
// matches the slot the lipsync service occupies next to the agent and
// memory services.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8003,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Aligner: AlignerConfig{
			BinaryPath: "rhubarb",
			WorkDir:    os.TempDir(),
			Timeout:    30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogDir:  filepath.Join(home, ".desktop-partner", "logs"),
			Console: true,
		},
	}
}

// Load reads configuration from file and environment. With an empty
// path it searches ~/.desktop-partner and the working directory;
// otherwise the given file is used. A missing config file is not an
// error: defaults apply, overridable via LIPSYNC_* env vars.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		v.SetConfigName("config")
		v.AddConfigPath(filepath.Join(home, ".desktop-partner"))
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("LIPSYNC")
	v.AutomaticEnv()

	// A config file is optional when searching the default paths.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Aligner.BinaryPath == "" {
		return fmt.Errorf("aligner binary path must not be empty")
	}
	if c.Aligner.Timeout <= 0 {
		return fmt.Errorf("aligner timeout must be positive, got %v", c.Aligner.Timeout)
	}
	return nil
}

// Save writes the configuration to the default location.
func Save(cfg *Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configDir := filepath.Join(home, ".desktop-partner")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	v := viper.New()
	v.Set("server", cfg.Server)
	v.Set("aligner", cfg.Aligner)
	v.Set("logging", cfg.Logging)

	return v.WriteConfigAs(filepath.Join(configDir, "config.yaml"))
}
