// Package config loads process configuration from a YAML file, a .env file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jjenkins/lobbying/internal/logging"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full process configuration
type Config struct {
	Database Database `yaml:"database"`
	Server   Server   `yaml:"server"`
	Runner   Runner   `yaml:"runner"`
	Fetch    Fetch    `yaml:"fetch"`
	Log      Log      `yaml:"log"`
}

type Database struct {
	URL string `yaml:"url"`
}

type Server struct {
	Port string `yaml:"port"`
}

type Runner struct {
	Workers int `yaml:"workers"`
}

// Fetch configures the House portal client
type Fetch struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
	Retries int           `yaml:"retries"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Database: Database{URL: "sqlite://lobbying.db"},
		Server:   Server{Port: "8080"},
		Runner:   Runner{Workers: 4},
		Fetch: Fetch{
			URL:     "http://disclosures.house.gov/ld/LDDownload.aspx",
			Timeout: 120 * time.Second,
			Retries: 3,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults, then applies a .env file in the working
// directory and the environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// A missing .env is not an error. Variables already set win.
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("LOBBYING_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: LOBBYING_WORKERS=%q is not a number", ErrInvalidConfig, v)
		}
		c.Runner.Workers = n
	}
	if v := os.Getenv("LOBBYING_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Runner.Workers < 1 {
		return fmt.Errorf("%w: runner.workers must be at least 1, got %d", ErrInvalidConfig, c.Runner.Workers)
	}
	if c.Fetch.Retries < 1 {
		return fmt.Errorf("%w: fetch.retries must be at least 1, got %d", ErrInvalidConfig, c.Fetch.Retries)
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("%w: fetch.timeout must be positive", ErrInvalidConfig)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("%w: server.port is required", ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
