// Package scene turns a config into live anchor geometry: anchors placed
// relative to the viewport, optionally swaying over time.
package scene

import (
	"math"

	"github.com/san-kum/ribbons/internal/config"
	"github.com/san-kum/ribbons/internal/driver"
	"github.com/san-kum/ribbons/internal/ribbon"
)

// Layout resolves named anchors against the current viewport size and
// frame clock. It implements driver.AnchorResolver and driver.Viewport.
type Layout struct {
	anchors map[string]*Anchor
	ribbons []config.RibbonConfig

	width, height float64
	frame         int
}

func NewLayout(cfg *config.Config) *Layout {
	l := &Layout{
		anchors: make(map[string]*Anchor, len(cfg.Anchors)),
		ribbons: append([]config.RibbonConfig(nil), cfg.Ribbons...),
		width:   cfg.Viewport.Width,
		height:  cfg.Viewport.Height,
	}
	for _, a := range cfg.Anchors {
		l.anchors[a.Name] = &Anchor{spec: a, layout: l}
	}
	return l
}

func (l *Layout) Width() float64  { return l.width }
func (l *Layout) Height() float64 { return l.height }

// Resize changes the viewport. Callers are expected to Reinit the driver
// afterwards.
func (l *Layout) Resize(width, height float64) {
	l.width, l.height = width, height
}

// Advance moves the sway clock forward one frame.
func (l *Layout) Advance() { l.frame++ }

// Anchor returns the named anchor. The bool is false when it is missing.
func (l *Layout) Anchor(name string) (*Anchor, bool) {
	a, ok := l.anchors[name]
	return a, ok
}

// Pairs lists the configured ribbons with missing anchors left nil.
func (l *Layout) Pairs() []driver.AnchorPair {
	pairs := make([]driver.AnchorPair, 0, len(l.ribbons))
	for _, r := range l.ribbons {
		pairs = append(pairs, driver.AnchorPair{
			Start: l.lookup(r.From),
			End:   l.lookup(r.To),
		})
	}
	return pairs
}

// lookup returns an untyped nil for missing names so the pair field
// compares equal to nil.
func (l *Layout) lookup(name string) ribbon.Anchor {
	if a, ok := l.anchors[name]; ok {
		return a
	}
	return nil
}

// Anchor is a named point on the page.
type Anchor struct {
	spec   config.AnchorConfig
	layout *Layout
}

func (a *Anchor) Name() string { return a.spec.Name }

func (a *Anchor) Position() ribbon.Vec2 {
	p := ribbon.Vec2{
		X: a.spec.X * a.layout.width,
		Y: a.spec.Y * a.layout.height,
	}
	if a.spec.Period > 0 {
		phase := 2 * math.Pi * float64(a.layout.frame) / a.spec.Period
		p.X += a.spec.SwayX * math.Sin(phase)
		p.Y += a.spec.SwayY * math.Sin(phase)
	}
	return p
}
