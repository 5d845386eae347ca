package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/rejschaap/game-of-life/internal/core"
)

// Seed patterns accepted by Config.Pattern.
const (
	PatternGlider    = "glider"
	PatternCheckered = "checkered"
	PatternEmpty     = "empty"
)

// Config represents the run parameters shared by every frontend.
type Config struct {
	Width   int    `json:"width" env:"LIFE_WIDTH"`
	Height  int    `json:"height" env:"LIFE_HEIGHT"`
	Scale   int    `json:"scale" env:"LIFE_SCALE"`
	TPS     int    `json:"tps" env:"LIFE_TPS"`
	Seed    int64  `json:"seed" env:"LIFE_SEED"`
	Pattern string `json:"pattern" env:"LIFE_PATTERN"`
	Gliders int    `json:"gliders" env:"LIFE_GLIDERS"`
	File    string `json:"-" env:"LIFE_CONFIG"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   32,
		Height:  20,
		Scale:   10,
		TPS:     core.DefaultTPS,
		Pattern: PatternGlider,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random gliders (0 picks one)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: glider, checkered or empty")
	fs.IntVar(&c.Gliders, "gliders", c.Gliders, "random gliders added at start")
	fs.StringVar(&c.File, "config", c.File, "JSON config file")
}

// LoadEnv overrides fields from LIFE_* environment variables.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return errors.Wrap(err, "[LoadEnv] failed to parse environment")
	}
	return nil
}

// LoadFile overrides fields present in the JSON file.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("board size must be positive, got %dx%d", c.Width, c.Height)
	case c.Scale <= 0:
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	case c.Gliders < 0:
		return errors.Errorf("gliders must not be negative, got %d", c.Gliders)
	}
	switch c.Pattern {
	case PatternGlider, PatternCheckered, PatternEmpty:
		return nil
	}
	return errors.Errorf("unknown pattern %q", c.Pattern)
}

// Load builds a Config from defaults, the environment, the optional JSON file
// and args, in increasing order of precedence.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	if err := cfg.Load(fs, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load layers the environment, the optional JSON file and args over the
// values already in c, then validates the result.
func (c *Config) Load(fs *flag.FlagSet, args []string) error {
	if err := c.LoadEnv(); err != nil {
		return err
	}
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Load] failed to parse flags")
	}
	if c.File != "" {
		if err := c.LoadFile(c.File); err != nil {
			return err
		}
		// explicit flags win over the file
		if err := fs.Parse(args); err != nil {
			return errors.Wrap(err, "[Load] failed to parse flags")
		}
	}
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "[Load] invalid config")
	}
	return nil
}
