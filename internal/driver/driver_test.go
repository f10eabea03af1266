package driver_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ribbons/internal/driver"
	"github.com/san-kum/ribbons/internal/ribbon"
)

type fakeViewport struct{ width float64 }

func (v *fakeViewport) Width() float64 { return v.width }

type fakeResolver struct{ pairs []driver.AnchorPair }

func (r *fakeResolver) Pairs() []driver.AnchorPair { return r.pairs }

type stroke struct {
	path  ribbon.Path
	style driver.Style
}

type fakeSurface struct {
	clears  int
	strokes []stroke
}

func (s *fakeSurface) Clear() {
	s.clears++
	s.strokes = s.strokes[:0]
}

func (s *fakeSurface) StrokePath(p ribbon.Path, st driver.Style) {
	s.strokes = append(s.strokes, stroke{p, st})
}

func snapshot(chains []*ribbon.Chain) [][]ribbon.PointMass {
	out := make([][]ribbon.PointMass, len(chains))
	for i, c := range chains {
		for _, p := range c.Points {
			out[i] = append(out[i], *p)
		}
	}
	return out
}

var _ = Describe("Driver", func() {
	var (
		viewport *fakeViewport
		resolver *fakeResolver
		surface  *fakeSurface
		d        *driver.Driver
		polaroid ribbon.Anchor
		hub      ribbon.Anchor
		sticky   ribbon.Anchor
	)

	BeforeEach(func() {
		polaroid = ribbon.FixedAnchor{X: 100, Y: 80}
		hub = ribbon.FixedAnchor{X: 500, Y: 120}
		sticky = ribbon.FixedAnchor{X: 900, Y: 90}

		viewport = &fakeViewport{width: 1200}
		resolver = &fakeResolver{pairs: []driver.AnchorPair{
			{Start: polaroid, End: hub},
			{Start: hub, End: sticky},
			{Start: hub, End: nil},
		}}
		surface = &fakeSurface{}
		d = driver.New(resolver, viewport, surface)
		d.Reinit()
	})

	Describe("Reinit", func() {
		It("builds one chain per complete pair in order", func() {
			chains := d.Chains()
			Expect(chains).To(HaveLen(2))
			Expect(chains[0].Points[0].Pos).To(Equal(polaroid.Position()))
			Expect(chains[1].Points[0].Pos).To(Equal(hub.Position()))
		})

		It("is idempotent", func() {
			d.Reinit()
			d.Reinit()
			Expect(d.Chains()).To(HaveLen(2))
		})

		It("rebuilds geometry from scratch", func() {
			for i := 0; i < 20; i++ {
				d.Tick()
			}
			Expect(d.Chains()[0].Sag()).To(BeNumerically(">", 0))

			d.Reinit()
			Expect(d.Chains()[0].Sag()).To(BeNumerically("~", 0, 1e-9))
		})

		It("drops chains that no longer resolve", func() {
			old := d.Chains()

			resolver.pairs = resolver.pairs[1:2]
			d.Reinit()

			chains := d.Chains()
			Expect(chains).To(HaveLen(1))
			Expect(chains[0]).NotTo(BeIdenticalTo(old[1]))
			Expect(chains[0].Points[0].Pos).To(Equal(hub.Position()))
		})

		It("creates nothing when every pair is incomplete", func() {
			resolver.pairs = []driver.AnchorPair{{Start: nil, End: hub}, {}}
			d.Reinit()
			Expect(d.Chains()).To(BeEmpty())

			d.Tick()
			Expect(surface.clears).To(Equal(1))
			Expect(surface.strokes).To(BeEmpty())
		})
	})

	Describe("Tick", func() {
		Context("when the viewport is narrow", func() {
			BeforeEach(func() { viewport.width = 500 })

			It("suspends without touching chains or the surface", func() {
				d.Chains()[0].Points[5].ApplyImpulse(3, 3)
				before := snapshot(d.Chains())

				d.Tick()

				Expect(d.State()).To(Equal(driver.Suspended))
				Expect(snapshot(d.Chains())).To(Equal(before))
				Expect(surface.clears).To(BeZero())
				Expect(d.Frames()).To(BeZero())
			})

			It("treats the breakpoint itself as narrow", func() {
				viewport.width = driver.Breakpoint
				d.Tick()
				Expect(d.State()).To(Equal(driver.Suspended))
			})
		})

		Context("when the viewport is wide", func() {
			It("steps and strokes every chain", func() {
				before := snapshot(d.Chains())

				d.Tick()

				Expect(d.State()).To(Equal(driver.Active))
				Expect(surface.clears).To(Equal(1))
				Expect(surface.strokes).To(HaveLen(2))
				Expect(snapshot(d.Chains())).NotTo(Equal(before))
				for i, c := range d.Chains() {
					Expect(surface.strokes[i].path).To(Equal(c.Path()))
					Expect(surface.strokes[i].style).To(Equal(driver.DefaultStyle()))
				}
			})

			It("keeps endpoints on their anchors", func() {
				for i := 0; i < 50; i++ {
					d.Tick()
				}
				c := d.Chains()[0]
				Expect(c.Points[0].Pos).To(Equal(polaroid.Position()))
				Expect(c.Points[len(c.Points)-1].Pos).To(Equal(hub.Position()))
			})
		})

		It("resumes after the viewport widens again", func() {
			viewport.width = 500
			d.Tick()
			Expect(d.State()).To(Equal(driver.Suspended))

			viewport.width = 1200
			d.Tick()
			Expect(d.State()).To(Equal(driver.Active))
			Expect(d.Frames()).To(Equal(1))
		})
	})

	Describe("SetParams", func() {
		worstStretch := func(iterations int) float64 {
			p := ribbon.DefaultParams()
			p.Slack = 1.5
			p.Iterations = iterations

			dd := driver.New(resolver, viewport, &fakeSurface{})
			dd.SetParams(p)
			dd.Reinit()
			for i := 0; i < 300; i++ {
				dd.Tick()
			}

			worst := 0.0
			for _, c := range dd.Chains() {
				Expect(c.Points).To(HaveLen(p.Segments + 1))
				Expect(c.RestLength()).To(BeNumerically("~", c.Points[0].Pos.Dist(c.Points[p.Segments].Pos)*1.5, 1e-6))
				if s := c.MaxStretch(); s > worst {
					worst = s
				}
			}
			return worst
		}

		It("holds links closer to rest length with more relaxation passes", func() {
			one := worstStretch(1)
			fifty := worstStretch(50)

			Expect(fifty).To(BeNumerically("<", one))
		})
	})

	Describe("Perturb", func() {
		It("only changes previous positions", func() {
			c := d.Chains()[1]
			pos := make([]ribbon.Vec2, len(c.Points))
			for i, p := range c.Points {
				pos[i] = p.Pos
			}

			Expect(d.Perturb(1)).To(Succeed())

			moved := 0
			for i, p := range c.Points {
				Expect(p.Pos).To(Equal(pos[i]))
				if p.Prev != p.Pos {
					moved++
				}
			}
			Expect(moved).To(BeNumerically(">", 0))
		})

		It("rejects an unknown chain", func() {
			err := d.Perturb(7)
			Expect(errors.Is(err, ribbon.ErrNoChain)).To(BeTrue())
			Expect(d.Perturb(-1)).To(MatchError(ribbon.ErrNoChain))
		})
	})

	Describe("Loop", func() {
		It("ticks until the context is cancelled", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			err := driver.Loop(ctx, 200, d.Tick)

			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(d.Frames()).To(BeNumerically(">", 0))
		})

		It("rejects a non-positive frame rate", func() {
			Expect(driver.Loop(context.Background(), 0, d.Tick)).NotTo(Succeed())
		})
	})
})
