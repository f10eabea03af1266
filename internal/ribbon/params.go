package ribbon

const (
	Gravity         = 0.4
	Friction        = 0.9
	Segments        = 20
	Slack           = 0.7
	RelaxIterations = 5
)

// Params holds the solver constants. Runs always use DefaultParams; other
// values exist for tests that probe damping and convergence.
type Params struct {
	Gravity    float64 // downward acceleration, units/step²
	Friction   float64 // velocity damping per step, < 1
	Segments   int
	Slack      float64 // rest length as a fraction of the anchor span
	Iterations int     // relaxation passes per step
}

func DefaultParams() Params {
	return Params{
		Gravity:    Gravity,
		Friction:   Friction,
		Segments:   Segments,
		Slack:      Slack,
		Iterations: RelaxIterations,
	}
}
