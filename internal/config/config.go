package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Workout   WorkoutConfig   `yaml:"workout"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// WorkoutConfig holds session defaults applied when the client does not
// supply values.
type WorkoutConfig struct {
	DefaultRestSeconds int `yaml:"default_rest_seconds"`
	DefaultSetCount    int `yaml:"default_set_count"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix IRONLOG_ and underscore-separated paths:
//
//	IRONLOG_SERVER_HOST, IRONLOG_SERVER_PORT,
//	IRONLOG_DB_PATH,
//	IRONLOG_WORKOUT_REST_SECONDS, IRONLOG_WORKOUT_SET_COUNT,
//	IRONLOG_AUTH_API_KEY,
//	IRONLOG_TS_ENABLED, IRONLOG_TS_HOSTNAME, IRONLOG_TS_STATE_DIR
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("IRONLOG_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("IRONLOG_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("IRONLOG_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("IRONLOG_WORKOUT_REST_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.Workout.DefaultRestSeconds = secs
		}
	}
	if v := os.Getenv("IRONLOG_WORKOUT_SET_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workout.DefaultSetCount = n
		}
	}
	if v := os.Getenv("IRONLOG_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("IRONLOG_TS_ENABLED"); v != "" {
		cfg.Tailscale.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("IRONLOG_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("IRONLOG_TS_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Workout.DefaultRestSeconds == 0 {
		cfg.Workout.DefaultRestSeconds = 90
	}
	if cfg.Workout.DefaultSetCount == 0 {
		cfg.Workout.DefaultSetCount = 3
	}
	if cfg.Tailscale.Hostname == "" {
		cfg.Tailscale.Hostname = "ironlog"
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 && !c.Tailscale.Enabled {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Workout.DefaultRestSeconds < 0 {
		return fmt.Errorf("workout.default_rest_seconds must not be negative")
	}
	if c.Workout.DefaultSetCount < 1 {
		return fmt.Errorf("workout.default_set_count must be at least 1")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	return nil
}
