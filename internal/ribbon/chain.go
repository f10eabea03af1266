package ribbon

// Rand is the randomness source used by Perturb. *math/rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
}

// Chain is a ribbon: a run of point masses linked by distance constraints
// with both ends pinned to anchors.
type Chain struct {
	Points      []*PointMass
	Constraints []*DistanceConstraint

	start, end Anchor
	params     Params
}

// NewChain builds a chain between two anchors and lays out its geometry.
func NewChain(start, end Anchor, params Params) (*Chain, error) {
	if start == nil || end == nil {
		return nil, ErrMissingAnchor
	}
	if params.Segments < 1 {
		params.Segments = Segments
	}
	c := &Chain{start: start, end: end, params: params}
	c.InitGeometry()
	return c, nil
}

// InitGeometry discards all points and constraints and rebuilds them on
// the straight line between the anchors. Rest lengths add up to Slack
// times the anchor span, so the ribbon sags once released.
func (c *Chain) InitGeometry() {
	n := c.params.Segments
	a := c.start.Position()
	b := c.end.Position()
	segLen := a.Dist(b) * c.params.Slack / float64(n)

	c.Points = make([]*PointMass, n+1)
	for i := 0; i <= n; i++ {
		pos := a.Lerp(b, float64(i)/float64(n))
		c.Points[i] = NewPointMass(pos, i == 0 || i == n)
	}

	c.Constraints = make([]*DistanceConstraint, n)
	for i := 0; i < n; i++ {
		c.Constraints[i] = NewDistanceConstraint(c.Points[i], c.Points[i+1], segLen)
	}
}

// Repin moves both endpoints to the anchors' current positions.
func (c *Chain) Repin() {
	c.Points[0].pin(c.start.Position())
	c.Points[len(c.Points)-1].pin(c.end.Position())
}

// Step advances the chain by one frame.
func (c *Chain) Step() {
	c.Repin()
	for _, p := range c.Points {
		p.Integrate(c.params.Gravity, c.params.Friction)
	}
	c.Relax(c.params.Iterations)
}

// Relax runs the given number of passes over every constraint, in order.
func (c *Chain) Relax(iterations int) {
	for i := 0; i < iterations; i++ {
		for _, s := range c.Constraints {
			s.Relax()
		}
	}
}

// Path returns a smooth curve through the points: each interior point is
// the control of a quadratic ending at the midpoint to its successor. The
// closing curve into the last point has a zero-length control arm.
func (c *Chain) Path() Path {
	pts := c.Points
	if len(pts) < 2 {
		return nil
	}
	path := make(Path, 0, len(pts))
	path = append(path, PathCommand{Op: MoveTo, To: pts[0].Pos})
	for i := 1; i < len(pts)-1; i++ {
		path = append(path, PathCommand{
			Op:   QuadTo,
			Ctrl: pts[i].Pos,
			To:   pts[i].Pos.Mid(pts[i+1].Pos),
		})
	}
	last := pts[len(pts)-1].Pos
	path = append(path, PathCommand{Op: QuadTo, Ctrl: last, To: last})
	return path
}

// Perturb gives roughly half of the interior points a random impulse.
func (c *Chain) Perturb(rng Rand) {
	for i := 1; i < len(c.Points)-1; i++ {
		if rng.Float64() > 0.5 {
			force := 5 + rng.Float64()*10
			dx := (rng.Float64() - 0.5) * force
			dy := (rng.Float64() - 0.5) * force
			c.Points[i].ApplyImpulse(dx, dy)
		}
	}
}

// RestLength is the sum of all constraint rest lengths.
func (c *Chain) RestLength() float64 {
	total := 0.0
	for _, s := range c.Constraints {
		total += s.RestLength
	}
	return total
}

// MaxStretch is the largest absolute deviation of any link from its rest
// length.
func (c *Chain) MaxStretch() float64 {
	worst := 0.0
	for _, s := range c.Constraints {
		d := s.Stretch()
		if d < 0 {
			d = -d
		}
		if d > worst {
			worst = d
		}
	}
	return worst
}

// Sag is the greatest distance of an interior point below the line
// joining the endpoints. A vertical span has no below, so there it is
// the greatest distance to either side.
func (c *Chain) Sag() float64 {
	if len(c.Points) < 3 {
		return 0
	}
	a := c.Points[0].Pos
	b := c.Points[len(c.Points)-1].Pos
	n := Vec2{0, 1}
	vertical := false
	if span := b.Sub(a); span.Len() > 0 {
		u := span.Scale(1 / span.Len())
		n = Vec2{-u.Y, u.X}
		if n.Y < 0 {
			n = n.Scale(-1)
		}
		vertical = n.Y == 0
	}
	sag := 0.0
	for _, p := range c.Points[1 : len(c.Points)-1] {
		d := p.Pos.Sub(a)
		h := d.X*n.X + d.Y*n.Y
		if vertical && h < 0 {
			h = -h
		}
		if h > sag {
			sag = h
		}
	}
	return sag
}
