package ribbon

// PointMass is a Verlet particle. Velocity is implicit in Pos - Prev, so
// impulses are applied to Prev.
type PointMass struct {
	Pos    Vec2
	Prev   Vec2
	Pinned bool
}

func NewPointMass(pos Vec2, pinned bool) *PointMass {
	return &PointMass{Pos: pos, Prev: pos, Pinned: pinned}
}

// Integrate advances the point one step with damped implicit velocity and
// a constant downward acceleration. Pinned points are left alone.
func (p *PointMass) Integrate(gravity, friction float64) {
	if p.Pinned {
		return
	}
	v := p.Pos.Sub(p.Prev).Scale(friction)
	p.Prev = p.Pos
	p.Pos = p.Pos.Add(v)
	p.Pos.Y += gravity
}

// ApplyImpulse shifts Prev so the next Integrate sees an extra (dx, dy)
// of velocity. Pos does not change until then.
func (p *PointMass) ApplyImpulse(dx, dy float64) {
	p.Prev.X -= dx
	p.Prev.Y -= dy
}

func (p *PointMass) Velocity() Vec2 {
	return p.Pos.Sub(p.Prev)
}

// pin places the point at an externally supplied coordinate.
func (p *PointMass) pin(at Vec2) {
	p.Pos = at
	p.Prev = at
}
