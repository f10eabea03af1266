package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS     = 60
	DefaultDotSize = 4.0
	DefaultWidth   = 1280.0
	DefaultHeight  = 720.0
	DefaultSeed    = 1
)

var ErrInvalid = errors.New("config: invalid")

// Config describes a scene: where anchors sit and which anchors each
// ribbon joins. Solver constants are not configurable.
type Config struct {
	Name     string         `yaml:"name"`
	Seed     int64          `yaml:"seed"`
	FPS      int            `yaml:"fps"`
	DotSize  float64        `yaml:"dot_size"`
	Theme    string         `yaml:"theme,omitempty"`
	Viewport ViewportConfig `yaml:"viewport"`
	Anchors  []AnchorConfig `yaml:"anchors"`
	Ribbons  []RibbonConfig `yaml:"ribbons"`
}

type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AnchorConfig places an anchor as a fraction of the viewport. A non-zero
// period makes it sway by up to SwayX/SwayY pixels, which stands in for
// scroll and reflow moving the pinned element.
type AnchorConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	SwayX  float64 `yaml:"sway_x,omitempty"`
	SwayY  float64 `yaml:"sway_y,omitempty"`
	Period float64 `yaml:"period,omitempty"`
}

// RibbonConfig joins two anchors by name. Unknown names are allowed; the
// ribbon is simply not created.
type RibbonConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

func DefaultConfig() *Config {
	return GetPreset("board")
}

// baseConfig holds the scalar defaults a scene file starts from. Anchors
// and ribbons come only from the file.
func baseConfig() *Config {
	return &Config{
		Name:     "custom",
		Seed:     DefaultSeed,
		FPS:      DefaultFPS,
		DotSize:  DefaultDotSize,
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := baseConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}
	if c.DotSize <= 0 {
		return fmt.Errorf("%w: dot_size must be positive, got %f", ErrInvalid, c.DotSize)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport must be positive, got %.0fx%.0f", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	}
	seen := make(map[string]bool, len(c.Anchors))
	for _, a := range c.Anchors {
		if a.Name == "" {
			return fmt.Errorf("%w: anchor without a name", ErrInvalid)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: duplicate anchor %q", ErrInvalid, a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Anchors = append([]AnchorConfig(nil), c.Anchors...)
	out.Ribbons = append([]RibbonConfig(nil), c.Ribbons...)
	return &out
}
