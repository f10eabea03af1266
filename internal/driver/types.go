package driver

import "github.com/san-kum/ribbons/internal/ribbon"

// Breakpoint is the viewport width at or below which ticks do nothing.
const Breakpoint = 768.0

// AnchorPair names the two ends of a prospective chain. Either may be nil
// when the underlying element is missing.
type AnchorPair struct {
	Start, End ribbon.Anchor
}

// AnchorResolver lists the anchor pairs that chains should span, in
// creation order.
type AnchorResolver interface {
	Pairs() []AnchorPair
}

type Viewport interface {
	Width() float64
}

// Surface receives the drawing output of a tick.
type Surface interface {
	Clear()
	StrokePath(path ribbon.Path, style Style)
}

type State int

const (
	Active State = iota
	Suspended
)

func (s State) String() string {
	if s == Suspended {
		return "suspended"
	}
	return "active"
}
