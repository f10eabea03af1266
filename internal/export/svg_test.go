package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/ribbons/internal/driver"
	"github.com/san-kum/ribbons/internal/ribbon"
)

func testPath() ribbon.Path {
	return ribbon.Path{
		{Op: ribbon.MoveTo, To: ribbon.Vec2{X: 10, Y: 10}},
		{Op: ribbon.QuadTo, Ctrl: ribbon.Vec2{X: 50, Y: 60}, To: ribbon.Vec2{X: 90, Y: 10}},
	}
}

func TestSVGSurfaceStyle(t *testing.T) {
	s := NewSVGSurface(100, 80)
	s.StrokePath(testPath(), driver.DefaultStyle())
	s.StrokePath(testPath(), driver.DefaultStyle())

	svg := s.String()

	for _, want := range []string{
		`width="100" height="80"`,
		`stroke="#c0392b"`,
		`stroke-width="3"`,
		`stroke-linecap="round"`,
		`stroke-linejoin="round"`,
		`<feDropShadow dx="2" dy="2" stdDeviation="1.5" flood-color="rgba(0,0,0,0.2)"/>`,
		`filter="url(#shadow0)"`,
		`d="M10.00,10.00 Q50.00,60.00 90.00,10.00"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %s in\n%s", want, svg)
		}
	}
	if n := strings.Count(svg, "<filter"); n != 1 {
		t.Errorf("expected one shared shadow filter, got %d", n)
	}
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("expected 2 paths, got %d", n)
	}
}

func TestSVGSurfaceNoShadow(t *testing.T) {
	s := NewSVGSurface(100, 80)
	style := driver.DefaultStyle()
	style.Shadow = driver.Shadow{}
	s.StrokePath(testPath(), style)

	svg := s.String()
	if strings.Contains(svg, "<defs>") || strings.Contains(svg, "filter=") {
		t.Errorf("unexpected shadow filter:\n%s", svg)
	}
}

func TestSVGSurfaceClear(t *testing.T) {
	s := NewSVGSurface(100, 80)
	s.StrokePath(testPath(), driver.DefaultStyle())
	s.StrokePath(nil, driver.DefaultStyle())
	if s.Len() != 1 {
		t.Errorf("expected empty paths to be ignored, got %d strokes", s.Len())
	}

	s.Clear()

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if strings.Contains(buf.String(), "<path") {
		t.Error("cleared surface still has paths")
	}
	if !strings.HasSuffix(buf.String(), "</svg>\n") {
		t.Error("document not closed")
	}
}
