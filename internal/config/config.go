package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Cast holds the settings for one run of the raycast tool.
type Cast struct {
	// Svg file with the walls. Empty means stdin.
	SVG string `yaml:"svg"`

	// Canvas size of the svg. Zero means take it from the document.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Light position in engine space (canvas center is 0,0, Y up)
	Origin Origin `yaml:"origin"`

	Rays int `yaml:"rays"`
	// Zero means half the canvas diagonal
	MaxRadius float64 `yaml:"max_radius"`
	// "sequential" or "parallel"
	Mode    string `yaml:"mode"`
	Workers int    `yaml:"workers"` // 0 = one per CPU

	// Debug output
	PNG    string  `yaml:"png"`
	Scale  float64 `yaml:"scale"`
	ImgCat bool    `yaml:"imgcat"`
}

type Origin struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Default returns Cast config with sensible defaults.
func Default() Cast {
	return Cast{
		Rays:  360,
		Mode:  "parallel",
		Scale: 1,
	}
}

// Load reads a YAML config on top of the defaults.
func Load(path string) (Cast, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the knobs that the engine would otherwise reject with a
// less helpful message.
func (c Cast) Validate() error {
	if c.Rays < 1 {
		return errors.Errorf("rays must be at least 1, got %d", c.Rays)
	}
	if c.MaxRadius < 0 {
		return errors.Errorf("max_radius must not be negative, got %v", c.MaxRadius)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if (c.Width == 0) != (c.Height == 0) {
		return errors.New("width and height must be given together")
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("canvas size must be positive, got %vx%v", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", c.Scale)
	}
	return nil
}
