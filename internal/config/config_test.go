package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultBreakoutConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadBreakoutCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ball:\n  radius: 8\npowerups:\n  durations:\n    sticky: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() error = %v", err)
	}
	if cfg.Ball.Radius != 8 {
		t.Errorf("Ball.Radius = %g, expected 8", cfg.Ball.Radius)
	}
	if cfg.PowerUps.Durations.Sticky != 3 {
		t.Errorf("Durations.Sticky = %g, expected 3", cfg.PowerUps.Durations.Sticky)
	}
	if cfg.Paddle.Width != 100 {
		t.Errorf("Paddle.Width = %g, expected default 100", cfg.Paddle.Width)
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBreakout(missing) error = nil, expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("world: [not, a, map"), 0o600)
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("LoadBreakout(bad yaml) error = nil, expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("physics:\n  clamp_mode: round\n"), 0o600)
	_, err := LoadBreakout(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadBreakout(invalid) error = %v, expected ErrInvalid", err)
	}
}

func TestLoadBreakoutUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".breakout", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, configFile), []byte("paddle:\n  speed: 250\n"), 0o600)

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() error = %v", err)
	}
	if cfg.Paddle.Speed != 250 {
		t.Errorf("Paddle.Speed = %g, expected 250 from user config", cfg.Paddle.Speed)
	}
}

func TestLoadBreakoutFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() error = %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("LoadBreakout(\"\") = %+v, expected defaults", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
	}{
		{"zero world", func(c *BreakoutConfig) { c.World.Width = 0 }},
		{"paddle too wide", func(c *BreakoutConfig) { c.Paddle.Width = 1000 }},
		{"negative radius", func(c *BreakoutConfig) { c.Ball.Radius = -1 }},
		{"zero chance", func(c *BreakoutConfig) { c.PowerUps.RareChance = 0 }},
		{"unknown clamp", func(c *BreakoutConfig) { c.Physics.ClampMode = "" }},
		{"zero speed factor", func(c *BreakoutConfig) { c.Ball.SpeedFactor = 0 }},
		{"negative speed factor", func(c *BreakoutConfig) { c.Ball.SpeedFactor = -1.2 }},
		{"zero bounce strength", func(c *BreakoutConfig) { c.Physics.BounceStrength = 0 }},
		{"zero fall speed", func(c *BreakoutConfig) { c.PowerUps.FallSpeed = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}

	normal := DefaultBreakoutConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != DefaultBreakoutConfig() {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultBreakoutConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Paddle.Width <= normal.Paddle.Width || easy.Ball.VelocityY <= normal.Ball.VelocityY {
		t.Errorf("easy preset should widen the paddle and slow the ball, got %+v", easy)
	}

	hard := DefaultBreakoutConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Paddle.Width >= normal.Paddle.Width || hard.PowerUps.CommonChance <= normal.PowerUps.CommonChance {
		t.Errorf("hard preset should shrink the paddle and make power-ups rarer, got %+v", hard)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset Validate() = %v", err)
	}
}
