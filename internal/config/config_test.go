package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Defaults.Model != "base" {
		t.Errorf("Default model = %s, want base", cfg.Defaults.Model)
	}
	if cfg.Defaults.Mode != "bleep" {
		t.Errorf("Default mode = %s, want bleep", cfg.Defaults.Mode)
	}
	if cfg.Defaults.PaddingMs != 80 {
		t.Errorf("Default padding = %d, want 80", cfg.Defaults.PaddingMs)
	}
	if cfg.Defaults.CacheTTL != "7d" {
		t.Errorf("Default cache TTL = %s, want 7d", cfg.Defaults.CacheTTL)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		wantSecs int64
		wantErr  bool
	}{
		{"24h", 86400, false},
		{"7d", 604800, false},
		{"30d", 2592000, false},
		{"1h", 3600, false},
		{"invalid", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dur, err := ParseDuration(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDuration(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if err == nil && int64(dur.Seconds()) != tt.wantSecs {
				t.Errorf("ParseDuration(%s) = %v, want %d seconds", tt.input, dur, tt.wantSecs)
			}
		})
	}
}

func TestConfig_Save_Load(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Defaults.Model = "large"
	cfg.Defaults.Mode = "silence"
	cfg.Paths.Wordlist = "/srv/banned.txt"

	err := cfg.Save(configPath)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Defaults.Model != "large" {
		t.Errorf("Loaded model = %s, want large", loaded.Defaults.Model)
	}
	if loaded.Defaults.Mode != "silence" {
		t.Errorf("Loaded mode = %s, want silence", loaded.Defaults.Mode)
	}
	if loaded.WordlistPath() != "/srv/banned.txt" {
		t.Errorf("WordlistPath() = %s, want override", loaded.WordlistPath())
	}
}

func TestConfig_Load_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() of missing file error = %v, want defaults", err)
	}
	if cfg.Defaults.Model != "base" {
		t.Errorf("missing config should yield defaults, got model %s", cfg.Defaults.Model)
	}
}
