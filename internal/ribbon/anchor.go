package ribbon

// Anchor supplies the current screen position of a chain endpoint. The
// position may change between calls.
type Anchor interface {
	Position() Vec2
}

// FixedAnchor is an Anchor that never moves.
type FixedAnchor Vec2

func (a FixedAnchor) Position() Vec2 { return Vec2(a) }

// AnchorFunc adapts a function to the Anchor interface.
type AnchorFunc func() Vec2

func (f AnchorFunc) Position() Vec2 { return f() }
