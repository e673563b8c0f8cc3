package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draugrs.toml")
	body := `
[waves]
base_enemies = 7

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Waves.BaseEnemies != 7 {
		t.Fatalf("base_enemies = %d, want override 7", cfg.Waves.BaseEnemies)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging level = %q, want override", cfg.Logging.Level)
	}
	// Untouched section keeps the default.
	if cfg.Player.MaxHealth != 100 {
		t.Fatalf("max_health = %.1f, want default 100", cfg.Player.MaxHealth)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{
			name:    "crit chance above one",
			mutate:  func(c *Config) { c.Player.CritChance = 1.5 },
			wantSub: "crit_chance",
		},
		{
			name:    "crit multiplier below one",
			mutate:  func(c *Config) { c.Player.CritMultiplier = 0.5 },
			wantSub: "crit_multiplier",
		},
		{
			name:    "spawn margin eats the arena",
			mutate:  func(c *Config) { c.Arena.SpawnMargin = 900 },
			wantSub: "spawn_margin",
		},
		{
			name:    "min interval above base",
			mutate:  func(c *Config) { c.Waves.MinSpawnIntervalMs = 2000 },
			wantSub: "min_spawn_interval_ms",
		},
		{
			name:    "max enemies below base",
			mutate:  func(c *Config) { c.Waves.MaxEnemies = 1 },
			wantSub: "max_enemies",
		},
		{
			name:    "distribution weights off hundred",
			mutate:  func(c *Config) { c.Waves.Distribution[0].Basic = 90 },
			wantSub: "sums to",
		},
		{
			name: "distribution breakpoints not increasing",
			mutate: func(c *Config) {
				c.Waves.Distribution[1].Wave = c.Waves.Distribution[0].Wave
			},
			wantSub: "strictly increasing",
		},
		{
			name:    "soul drops inverted",
			mutate:  func(c *Config) { c.Souls.MinDrop, c.Souls.MaxDrop = 5, 2 },
			wantSub: "max_drop",
		},
		{
			name:    "unknown logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantSub: "format",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}
