package trace

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/san-kum/ribbons/internal/ribbon"
)

func chains(t *testing.T, n int) []*ribbon.Chain {
	t.Helper()
	out := make([]*ribbon.Chain, n)
	for i := range out {
		c, err := ribbon.NewChain(ribbon.FixedAnchor{X: 0, Y: 0}, ribbon.FixedAnchor{X: 300, Y: float64(i) * 20}, ribbon.DefaultParams())
		if err != nil {
			t.Fatal(err)
		}
		out[i] = c
	}
	return out
}

func TestRecorderSag(t *testing.T) {
	r := NewRecorder()
	cs := chains(t, 2)

	for f := 0; f < 30; f++ {
		for _, c := range cs {
			c.Step()
		}
		r.Observe(f, cs)
	}

	sag := r.Sag(0)
	if len(sag) != 30 {
		t.Fatalf("expected 30 samples, got %d", len(sag))
	}
	if sag[29] <= sag[0] {
		t.Errorf("expected the ribbon to sag over time: first %f last %f", sag[0], sag[29])
	}
	if len(r.Sag(5)) != 0 {
		t.Error("unknown chain should have no samples")
	}
	if r.Plot(0, "sag") == "" {
		t.Error("expected a plot")
	}
}

func TestRecorderCSV(t *testing.T) {
	r := NewRecorder()
	r.Observe(0, chains(t, 1))
	r.Observe(1, chains(t, 2))

	var buf bytes.Buffer
	if err := r.WriteCSV(&buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(rows))
	}
	if strings.Join(rows[0], ",") != "frame,sag0,stretch0,sag1,stretch1" {
		t.Errorf("unexpected header %v", rows[0])
	}
	if rows[1][3] != "" {
		t.Errorf("missing chain should leave blanks, got %q", rows[1][3])
	}
}

func TestRecorderPlotNeedsSamples(t *testing.T) {
	r := NewRecorder()
	r.Observe(0, chains(t, 1))
	if r.Plot(0, "sag") != "" {
		t.Error("expected no plot from a single sample")
	}
}
