package ribbon

import (
	"fmt"
	"strings"
)

type PathOp int

const (
	MoveTo PathOp = iota
	QuadTo
)

// PathCommand is one drawing instruction. Ctrl is only meaningful for
// QuadTo.
type PathCommand struct {
	Op   PathOp
	Ctrl Vec2
	To   Vec2
}

// Path is a sequence of commands starting with a MoveTo.
type Path []PathCommand

// Flatten samples every quadratic segment into steps line pieces and
// returns the resulting polyline.
func (p Path) Flatten(steps int) []Vec2 {
	if steps < 1 {
		steps = 1
	}
	out := make([]Vec2, 0, len(p)*steps+1)
	var cur Vec2
	for _, cmd := range p {
		switch cmd.Op {
		case MoveTo:
			cur = cmd.To
			out = append(out, cur)
		case QuadTo:
			for i := 1; i <= steps; i++ {
				out = append(out, quadAt(cur, cmd.Ctrl, cmd.To, float64(i)/float64(steps)))
			}
			cur = cmd.To
		}
	}
	return out
}

// SVG renders the path as an SVG "d" attribute.
func (p Path) SVG() string {
	var b strings.Builder
	for i, cmd := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch cmd.Op {
		case MoveTo:
			fmt.Fprintf(&b, "M%.2f,%.2f", cmd.To.X, cmd.To.Y)
		case QuadTo:
			fmt.Fprintf(&b, "Q%.2f,%.2f %.2f,%.2f", cmd.Ctrl.X, cmd.Ctrl.Y, cmd.To.X, cmd.To.Y)
		}
	}
	return b.String()
}

func quadAt(p0, c, p1 Vec2, t float64) Vec2 {
	mt := 1 - t
	return Vec2{
		X: mt*mt*p0.X + 2*mt*t*c.X + t*t*p1.X,
		Y: mt*mt*p0.Y + 2*mt*t*c.Y + t*t*p1.Y,
	}
}
