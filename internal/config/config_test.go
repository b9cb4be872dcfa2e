package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source.GoldURL != "https://www.kitco.com/charts/gold" {
		t.Errorf("unexpected gold url: %s", cfg.Source.GoldURL)
	}
	if cfg.Source.Strategy != "nextdata" {
		t.Errorf("unexpected default strategy: %s", cfg.Source.Strategy)
	}
	if cfg.Source.TimeoutSeconds != 15 {
		t.Errorf("unexpected default timeout: %d", cfg.Source.TimeoutSeconds)
	}
	if cfg.Schedule.MetalsCron != "0 * * * * *" {
		t.Errorf("unexpected default cron: %s", cfg.Schedule.MetalsCron)
	}
	if cfg.API.Port != 7860 {
		t.Errorf("unexpected default port: %d", cfg.API.Port)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("board:\n  ip: 10.0.0.5\n  api_key: file-key\napi:\n  port: 9000\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BOARD_API_KEY", "env-key")
	t.Setenv("SCRAPE_STRATEGY", "markup")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Board.IP != "10.0.0.5" {
		t.Errorf("expected file value for ip, got %s", cfg.Board.IP)
	}
	if cfg.Board.APIKey != "env-key" {
		t.Errorf("env must override file, got %s", cfg.Board.APIKey)
	}
	if cfg.Source.Strategy != "markup" {
		t.Errorf("expected env strategy, got %s", cfg.Source.Strategy)
	}
	if cfg.API.Port != 9000 {
		t.Errorf("expected file port, got %d", cfg.API.Port)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure without board credentials")
	}

	cfg.Board.IP = "10.1.10.61"
	cfg.Board.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}
