package driver

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/ribbons/internal/ribbon"
)

// Driver owns every chain and is the only thing that mutates them. Ticks,
// triggers and Reinit must all be called from the same goroutine.
type Driver struct {
	resolver AnchorResolver
	viewport Viewport
	surface  Surface
	style    Style
	params   ribbon.Params
	rng      ribbon.Rand

	chains []*ribbon.Chain
	state  State
	frames int
}

func New(resolver AnchorResolver, viewport Viewport, surface Surface) *Driver {
	return &Driver{
		resolver: resolver,
		viewport: viewport,
		surface:  surface,
		style:    DefaultStyle(),
		params:   ribbon.DefaultParams(),
		rng:      rand.New(rand.NewSource(1)),
	}
}

// SetParams replaces the solver constants used by chains built on the
// next Reinit.
func (d *Driver) SetParams(p ribbon.Params) { d.params = p }
func (d *Driver) SetRand(r ribbon.Rand)     { d.rng = r }

// Reinit drops every chain and builds one per resolved pair. Pairs with a
// missing anchor are skipped.
func (d *Driver) Reinit() {
	d.chains = nil
	for _, pair := range d.resolver.Pairs() {
		c, err := ribbon.NewChain(pair.Start, pair.End, d.params)
		if err != nil {
			continue
		}
		d.chains = append(d.chains, c)
	}
}

// Tick runs one frame. Below the breakpoint it does nothing; otherwise it
// clears the surface, steps every chain and then strokes them all.
func (d *Driver) Tick() {
	if d.viewport.Width() <= Breakpoint {
		d.state = Suspended
		return
	}
	d.state = Active
	d.frames++

	d.surface.Clear()
	for _, c := range d.chains {
		c.Step()
	}
	for _, c := range d.chains {
		d.surface.StrokePath(c.Path(), d.style)
	}
}

// Perturb shakes the chain at index i.
func (d *Driver) Perturb(i int) error {
	if i < 0 || i >= len(d.chains) {
		return fmt.Errorf("%w %d (have %d)", ribbon.ErrNoChain, i, len(d.chains))
	}
	d.chains[i].Perturb(d.rng)
	return nil
}

// PerturbAll shakes every chain.
func (d *Driver) PerturbAll() {
	for _, c := range d.chains {
		c.Perturb(d.rng)
	}
}

// Chains returns the chains in creation order. Callers must treat them as
// read-only.
func (d *Driver) Chains() []*ribbon.Chain {
	out := make([]*ribbon.Chain, len(d.chains))
	copy(out, d.chains)
	return out
}

func (d *Driver) State() State { return d.state }

// Frames counts the ticks that did work.
func (d *Driver) Frames() int { return d.frames }
