package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/jumper/parameter"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultMatchesParameters(t *testing.T) {
	cfg := Default()

	if cfg.Geometry.Player.W != parameter.PlayerWidth || cfg.Geometry.Player.H != parameter.PlayerHeight {
		t.Errorf("player size mismatch: %+v", cfg.Geometry.Player)
	}
	if cfg.Geometry.Platform.W != 100 || cfg.Geometry.Platform.H != 20 {
		t.Errorf("platform size mismatch: %+v", cfg.Geometry.Platform)
	}
	if cfg.Physics.Gravity != 1500 || cfg.Physics.LaunchScale != 2000 {
		t.Errorf("physics mismatch: %+v", cfg.Physics)
	}
	if cfg.Spawn.MinOffsetY != 50 || cfg.Spawn.MaxOffsetY != 150 || cfg.Spawn.MaxAttempts != 64 {
		t.Errorf("spawn mismatch: %+v", cfg.Spawn)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeFile(t, "jumper.toml", `
seed = 1234

[physics]
gravity = 900.5

[geometry.platform]
width = 120
height = 20

[spawn]
max_offset_y = 200
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Seed != 1234 {
		t.Errorf("Seed: got %d", cfg.Seed)
	}
	if cfg.Physics.Gravity != 900.5 {
		t.Errorf("Gravity: got %v", cfg.Physics.Gravity)
	}
	if cfg.Physics.LaunchScale != parameter.LaunchScale {
		t.Errorf("LaunchScale should keep default, got %v", cfg.Physics.LaunchScale)
	}
	if cfg.Geometry.Platform.W != 120 {
		t.Errorf("Platform width: got %v", cfg.Geometry.Platform.W)
	}
	if cfg.Spawn.MinOffsetY != parameter.SpawnMinOffsetY || cfg.Spawn.MaxOffsetY != 200 {
		t.Errorf("Spawn offsets: got %+v", cfg.Spawn)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "jumper.toml", `
[physics]
gravty = 10
`)

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unknown key, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero player width", func(c *Config) { c.Geometry.Player.W = 0 }},
		{"negative platform height", func(c *Config) { c.Geometry.Platform.H = -1 }},
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"zero launch scale", func(c *Config) { c.Physics.LaunchScale = 0 }},
		{"negative epsilon", func(c *Config) { c.Physics.HighestEpsilon = -1 }},
		{"zero min offset", func(c *Config) { c.Spawn.MinOffsetY = 0 }},
		{"inverted offsets", func(c *Config) { c.Spawn.MinOffsetY, c.Spawn.MaxOffsetY = 150, 50 }},
		{"zero attempts", func(c *Config) { c.Spawn.MaxAttempts = 0 }},
		{"negative margin", func(c *Config) { c.Camera.MarginY = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadOptionsFromEnvFile(t *testing.T) {
	path := writeFile(t, "test.env", "JUMPER_CONFIG=/tmp/jumper.toml\nJUMPER_SPECTATE=:9090\nJUMPER_DEBUG=true\n")

	// t.Setenv registers cleanup; empty values are then replaced by the file
	for _, k := range []string{EnvConfigPath, EnvSpectate, EnvDebug} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	opts := LoadOptions(path)
	if opts.ConfigPath != "/tmp/jumper.toml" {
		t.Errorf("ConfigPath: got %q", opts.ConfigPath)
	}
	if opts.SpectateAddr != ":9090" {
		t.Errorf("SpectateAddr: got %q", opts.SpectateAddr)
	}
	if !opts.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoadOptionsEnvironmentWins(t *testing.T) {
	path := writeFile(t, "test.env", "JUMPER_SPECTATE=:9090\n")
	t.Setenv(EnvSpectate, ":7000")
	t.Setenv(EnvDebug, "not-a-bool")

	opts := LoadOptions(path)
	if opts.SpectateAddr != ":7000" {
		t.Errorf("SpectateAddr: got %q, want environment value", opts.SpectateAddr)
	}
	if opts.Debug {
		t.Error("unparseable debug flag should read as false")
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	opts := LoadOptions(filepath.Join(t.TempDir(), "missing.env"))
	if opts.ConfigPath != "" {
		t.Errorf("ConfigPath: got %q", opts.ConfigPath)
	}
}

func TestExampleFileMatchesDefault(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "jumper.example.toml"))
	if err != nil {
		t.Fatalf("Load example: %v", err)
	}
	if cfg != Default() {
		t.Errorf("example config = %+v, want defaults %+v", cfg, Default())
	}
}
