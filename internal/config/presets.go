package config

import "sort"

var Presets = map[string]*Config{
	// Pinboard: a polaroid and two sticky notes strung to a main card.
	"board": {
		Name: "board", Seed: DefaultSeed, FPS: DefaultFPS, DotSize: DefaultDotSize,
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Anchors: []AnchorConfig{
			{Name: "pin-polaroid", X: 0.15, Y: 0.2},
			{Name: "pin-main", X: 0.5, Y: 0.15},
			{Name: "pin-sticky", X: 0.82, Y: 0.3},
			{Name: "pin-sticky-2", X: 0.7, Y: 0.7},
		},
		Ribbons: []RibbonConfig{
			{From: "pin-polaroid", To: "pin-main"},
			{From: "pin-main", To: "pin-sticky"},
			{From: "pin-main", To: "pin-sticky-2"},
		},
	},
	"single": {
		Name: "single", Seed: DefaultSeed, FPS: DefaultFPS, DotSize: DefaultDotSize,
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Anchors: []AnchorConfig{
			{Name: "left", X: 0.1, Y: 0.25},
			{Name: "right", X: 0.9, Y: 0.25},
		},
		Ribbons: []RibbonConfig{{From: "left", To: "right"}},
	},
	// Anchors drift, so repinning is visible every frame.
	"drift": {
		Name: "drift", Seed: DefaultSeed, FPS: DefaultFPS, DotSize: DefaultDotSize,
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Anchors: []AnchorConfig{
			{Name: "a", X: 0.1, Y: 0.3, SwayY: 40, Period: 240},
			{Name: "b", X: 0.5, Y: 0.2, SwayX: 60, Period: 360},
			{Name: "c", X: 0.9, Y: 0.35, SwayX: 20, SwayY: 30, Period: 180},
		},
		Ribbons: []RibbonConfig{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
		},
	},
	// The second sticky note is missing from the page.
	"sparse": {
		Name: "sparse", Seed: DefaultSeed, FPS: DefaultFPS, DotSize: DefaultDotSize,
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Anchors: []AnchorConfig{
			{Name: "pin-polaroid", X: 0.15, Y: 0.2},
			{Name: "pin-main", X: 0.5, Y: 0.15},
			{Name: "pin-sticky", X: 0.82, Y: 0.3},
		},
		Ribbons: []RibbonConfig{
			{From: "pin-polaroid", To: "pin-main"},
			{From: "pin-main", To: "pin-sticky"},
			{From: "pin-main", To: "pin-sticky-2"},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
