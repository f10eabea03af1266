package ribbon

// DistanceConstraint pulls two points toward RestLength apart. It does not
// own the points.
type DistanceConstraint struct {
	A, B       *PointMass
	RestLength float64
}

func NewDistanceConstraint(a, b *PointMass, rest float64) *DistanceConstraint {
	return &DistanceConstraint{A: a, B: b, RestLength: rest}
}

// Relax runs one correction pass. The correction is split between the
// endpoints; a pinned endpoint takes none of it. Coincident points are
// skipped since no direction is defined.
func (c *DistanceConstraint) Relax() {
	d := c.B.Pos.Sub(c.A.Pos)
	dist := d.Len()
	if dist == 0 {
		return
	}

	diff := (c.RestLength - dist) / dist / 2
	offset := d.Scale(diff)

	if !c.A.Pinned {
		c.A.Pos = c.A.Pos.Sub(offset)
	}
	if !c.B.Pinned {
		c.B.Pos = c.B.Pos.Add(offset)
	}
}

// Stretch is the current separation minus RestLength. Positive means the
// link is longer than its rest length.
func (c *DistanceConstraint) Stretch() float64 {
	return c.A.Pos.Dist(c.B.Pos) - c.RestLength
}
