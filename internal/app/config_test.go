package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if *cfg != *NewConfig() {
		t.Fatalf("expected defaults, got %+v", *cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	if err := os.WriteFile(path, []byte(`{"width": 40, "height": 30, "pattern": "checkered"}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LIFE_WIDTH", "50")
	t.Setenv("LIFE_TPS", "30")
	t.Setenv("LIFE_CONFIG", path)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, []string{"-height", "12"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 40 {
		t.Fatalf("width %d, expected file value 40 over env", cfg.Width)
	}
	if cfg.Height != 12 {
		t.Fatalf("height %d, expected flag value 12 over file", cfg.Height)
	}
	if cfg.TPS != 30 {
		t.Fatalf("tps %d, expected env value 30", cfg.TPS)
	}
	if cfg.Pattern != PatternCheckered {
		t.Fatalf("pattern %q, expected file value", cfg.Pattern)
	}
}

func TestConfigLoadKeepsBase(t *testing.T) {
	cfg := NewConfig()
	cfg.Gliders = 8
	if err := cfg.Load(flag.NewFlagSet("test", flag.ContinueOnError), nil); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gliders != 8 {
		t.Fatalf("gliders %d, expected base value 8", cfg.Gliders)
	}

	cfg = NewConfig()
	cfg.Gliders = 8
	if err := cfg.Load(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-gliders", "0"}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gliders != 0 {
		t.Fatalf("gliders %d, expected flag value 0 over base", cfg.Gliders)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("bad env", func(t *testing.T) {
		t.Setenv("LIFE_WIDTH", "wide")
		_, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
		if err == nil || !strings.Contains(err.Error(), "[LoadEnv]") {
			t.Fatalf("expected env error, got %v", err)
		}
	})
	t.Run("missing file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "nope.json")
		_, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-config", missing})
		if err == nil || !strings.Contains(err.Error(), "failed to read file") {
			t.Fatalf("expected read error, got %v", err)
		}
	})
	t.Run("bad json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte(`{"width": "x"}`), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		_, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-config", path})
		if err == nil || !strings.Contains(err.Error(), "failed to unmarshal") {
			t.Fatalf("expected unmarshal error, got %v", err)
		}
	})
	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-width", "0"})
		if err == nil || !strings.Contains(err.Error(), "invalid config") {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Config) {}, ok: true},
		{name: "zero height", mutate: func(c *Config) { c.Height = 0 }},
		{name: "zero scale", mutate: func(c *Config) { c.Scale = 0 }},
		{name: "zero tps", mutate: func(c *Config) { c.TPS = 0 }},
		{name: "negative gliders", mutate: func(c *Config) { c.Gliders = -1 }},
		{name: "unknown pattern", mutate: func(c *Config) { c.Pattern = "pulsar" }},
		{name: "empty pattern", mutate: func(c *Config) { c.Pattern = PatternEmpty }, ok: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); (err == nil) != tc.ok {
				t.Fatalf("validate returned %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}
