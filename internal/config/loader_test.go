package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML and Default() differ:\nyaml:    %+v\ndefault: %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() should be valid: %v", err)
	}
	if cfg.Bricks.Rows*cfg.Bricks.Cols != 50 {
		t.Errorf("default grid should have 50 bricks, got %d", cfg.Bricks.Rows*cfg.Bricks.Cols)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("default lives = %d, expected 3", cfg.Gameplay.Lives)
	}
}

func TestLoadCustomPathPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nbricks:\n  rows: 2\n  row_hits: [3, 0]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Bricks.Rows != 2 {
		t.Errorf("rows = %d, expected 2", cfg.Bricks.Rows)
	}
	// Unspecified keys keep defaults
	if cfg.Bricks.Cols != 10 {
		t.Errorf("cols = %d, expected default 10", cfg.Bricks.Cols)
	}
	if cfg.Arena.Floor != -15 {
		t.Errorf("floor = %v, expected default -15", cfg.Arena.Floor)
	}
	if cfg.Bricks.HitsForRow(0) != 3 || cfg.Bricks.HitsForRow(1) != 0 {
		t.Errorf("row hits = %d/%d, expected 3/0", cfg.Bricks.HitsForRow(0), cfg.Bricks.HitsForRow(1))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero lives should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Breakout)
	}{
		{"empty grid", func(c *Breakout) { c.Bricks.Cols = 0 }},
		{"too many row hits", func(c *Breakout) { c.Bricks.RowHits = make([]int, c.Bricks.Rows+1) }},
		{"inverted track", func(c *Breakout) { c.Arena.TrackMin, c.Arena.TrackMax = 5, -5 }},
		{"floor above ceiling", func(c *Breakout) { c.Arena.Floor = 20 }},
		{"no walls", func(c *Breakout) { c.Arena.WallX = 0 }},
		{"no lives", func(c *Breakout) { c.Gameplay.Lives = 0 }},
		{"zero max delta", func(c *Breakout) { c.Gameplay.MaxDelta = 0 }},
		{"flat ball", func(c *Breakout) { c.Ball.Scale.Y = 0 }},
		{"paddle wider than track", func(c *Breakout) { c.Paddle.Scale.X = 20 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestMarshalRoundTripKeepsValidity(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() of marshalled default failed: %v", err)
	}
	if cfg.Bricks.Cols != Default().Bricks.Cols {
		t.Errorf("cols = %d after round trip", cfg.Bricks.Cols)
	}
}
