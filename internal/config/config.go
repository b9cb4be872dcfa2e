package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Board struct {
		IP     string `yaml:"ip"`
		APIKey string `yaml:"api_key"`
	} `yaml:"board"`
	Source struct {
		GoldURL        string `yaml:"gold_url"`
		SilverURL      string `yaml:"silver_url"`
		Strategy       string `yaml:"strategy"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"source"`
	Schedule struct {
		MetalsCron string `yaml:"metals_cron"`
	} `yaml:"schedule"`
	API struct {
		Port int `yaml:"port"`
	} `yaml:"api"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("BOARD_IP"); v != "" {
		cfg.Board.IP = v
	}
	if v := os.Getenv("BOARD_API_KEY"); v != "" {
		cfg.Board.APIKey = v
	}
	if v := os.Getenv("SCRAPE_STRATEGY"); v != "" {
		cfg.Source.Strategy = v
	}
	if v := os.Getenv("SOURCE_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Source.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("METALS_CRON"); v != "" {
		cfg.Schedule.MetalsCron = v
	}
	if v := os.Getenv("API_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.API.Port = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Source.GoldURL == "" {
		cfg.Source.GoldURL = "https://www.kitco.com/charts/gold"
	}
	if cfg.Source.SilverURL == "" {
		cfg.Source.SilverURL = "https://www.kitco.com/charts/silver"
	}
	if cfg.Source.Strategy == "" {
		cfg.Source.Strategy = "nextdata"
	}
	if cfg.Source.TimeoutSeconds == 0 {
		cfg.Source.TimeoutSeconds = 15
	}
	if cfg.Schedule.MetalsCron == "" {
		cfg.Schedule.MetalsCron = "0 * * * * *"
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = 7860
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/spotboard.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Board.IP == "" {
		return fmt.Errorf("board.ip is required")
	}
	if c.Board.APIKey == "" {
		return fmt.Errorf("board.api_key is required")
	}
	if c.Source.TimeoutSeconds <= 0 {
		return fmt.Errorf("source.timeout_seconds must be positive")
	}
	if c.API.Port <= 0 {
		return fmt.Errorf("api.port must be positive")
	}
	return nil
}
