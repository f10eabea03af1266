// Package trace records per-frame ribbon diagnostics for headless runs.
package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ribbons/internal/ribbon"
)

type Sample struct {
	Frame   int
	Sag     []float64
	Stretch []float64
}

type Recorder struct {
	samples []Sample
	chains  int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe records the sag and worst link stretch of every chain.
func (r *Recorder) Observe(frame int, chains []*ribbon.Chain) {
	s := Sample{
		Frame:   frame,
		Sag:     make([]float64, len(chains)),
		Stretch: make([]float64, len(chains)),
	}
	for i, c := range chains {
		s.Sag[i] = c.Sag()
		s.Stretch[i] = c.MaxStretch()
	}
	if len(chains) > r.chains {
		r.chains = len(chains)
	}
	r.samples = append(r.samples, s)
}

func (r *Recorder) Samples() []Sample { return r.samples }

// Sag returns the sag series of one chain.
func (r *Recorder) Sag(chain int) []float64 {
	out := make([]float64, 0, len(r.samples))
	for _, s := range r.samples {
		if chain < len(s.Sag) {
			out = append(out, s.Sag[chain])
		}
	}
	return out
}

// WriteCSV writes one row per sample with a sag and stretch column per
// chain.
func (r *Recorder) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"frame"}
	for i := 0; i < r.chains; i++ {
		header = append(header, fmt.Sprintf("sag%d", i), fmt.Sprintf("stretch%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range r.samples {
		row := []string{strconv.Itoa(s.Frame)}
		for i := 0; i < r.chains; i++ {
			if i < len(s.Sag) {
				row = append(row,
					strconv.FormatFloat(s.Sag[i], 'f', 6, 64),
					strconv.FormatFloat(s.Stretch[i], 'f', 6, 64))
			} else {
				row = append(row, "", "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Plot draws the sag series of one chain, or "" if it has fewer than two
// samples.
func (r *Recorder) Plot(chain int, caption string) string {
	data := r.Sag(chain)
	if len(data) < 2 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}
