package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	// A developer machine may carry ~/.typefall/configs/typefall.yaml;
	// compare only when the embedded file was used.
	if _, source, _ := ReadFirst("", "typefall.yaml", defaultYAML); source != "" {
		t.Skipf("config found at %s", source)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("timing:\n  fall_interval: 20ms\nrules:\n  target_words: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.FallInterval != 20*time.Millisecond {
		t.Errorf("FallInterval = %v, expected 20ms", cfg.Timing.FallInterval)
	}
	if cfg.Rules.TargetWords != 3 {
		t.Errorf("TargetWords = %d, expected 3", cfg.Rules.TargetWords)
	}
	if cfg.Lane.Height != 400 {
		t.Errorf("Lane.Height = %v, expected default 400", cfg.Lane.Height)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  target_words: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero height", func(c *Config) { c.Lane.Height = 0 }, false},
		{"step above height", func(c *Config) { c.Lane.Step = 500 }, false},
		{"zero interval", func(c *Config) { c.Timing.FallInterval = 0 }, false},
		{"zero flash", func(c *Config) { c.Timing.FlashDuration = 0 }, false},
		{"zero factor", func(c *Config) { c.Rules.MaxInputFactor = 0 }, false},
		{"time limit ok", func(c *Config) { c.Rules.TimeLimit.Enabled = true }, true},
		{"time limit inverted", func(c *Config) {
			c.Rules.TimeLimit = TimeLimitConfig{Enabled: true, MinSeconds: 10, MaxSeconds: 5}
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
	p, err := ParseDifficulty("")
	if err != nil || p != DifficultyNormal {
		t.Errorf("ParseDifficulty(\"\") = %q, %v", p, err)
	}

	cfg := DefaultConfig()
	ApplyDifficulty(&cfg, DifficultyNormal)
	if cfg != DefaultConfig() {
		t.Error("normal preset should not change the config")
	}

	ApplyDifficulty(&cfg, DifficultyHard)
	if cfg.Timing.FallInterval >= DefaultConfig().Timing.FallInterval {
		t.Error("hard preset should shorten the fall interval")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path")
	if err != nil || got != "/abs/path" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/x.db")
	if err != nil || got != filepath.Join(home, "x.db") {
		t.Errorf("ExpandHome(~/x.db) = %q, %v", got, err)
	}
}
