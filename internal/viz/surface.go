package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/ribbons/internal/driver"
	"github.com/san-kum/ribbons/internal/ribbon"
)

// curveSteps is how many line pieces each quadratic is flattened into.
const curveSteps = 6

// Surface rasterizes ribbon paths onto a braille canvas. One dot covers
// dotSize x dotSize screen pixels.
type Surface struct {
	canvas  *Canvas
	dotSize float64
	color   lipgloss.Color
	strokes int
}

func NewSurface(cols, rows int, dotSize float64) *Surface {
	return &Surface{
		canvas:  NewCanvas(cols, rows),
		dotSize: dotSize,
		color:   lipgloss.Color(driver.DefaultStyle().Color),
	}
}

func (s *Surface) Canvas() *Canvas { return s.canvas }

func (s *Surface) Resize(cols, rows int) { s.canvas.Resize(cols, rows) }

// ViewportSize is the canvas extent in screen pixels.
func (s *Surface) ViewportSize() (float64, float64) {
	w, h := s.canvas.Dots()
	return float64(w) * s.dotSize, float64(h) * s.dotSize
}

// CellCenter maps a canvas cell to the screen pixel at its center.
func (s *Surface) CellCenter(col, row int) ribbon.Vec2 {
	return ribbon.Vec2{
		X: (float64(col)*2 + 1) * s.dotSize,
		Y: (float64(row)*4 + 2) * s.dotSize,
	}
}

func (s *Surface) Clear() {
	s.canvas.Clear()
	s.strokes = 0
}

// StrokePath draws the flattened path. Widths of two or more dots are
// drawn as stacked parallel lines. Shadows are not representable in
// braille and are dropped.
func (s *Surface) StrokePath(path ribbon.Path, style driver.Style) {
	pts := path.Flatten(curveSteps)
	if len(pts) == 0 {
		return
	}
	thickness := int(math.Round(style.Width / s.dotSize))
	if thickness < 1 {
		thickness = 1
	}
	for i := 1; i < len(pts); i++ {
		x0, y0 := s.toDot(pts[i-1])
		x1, y1 := s.toDot(pts[i])
		for t := 0; t < thickness; t++ {
			s.canvas.DrawLine(x0, y0+t, x1, y1+t)
		}
	}
	if style.Color != "" {
		s.color = lipgloss.Color(style.Color)
	}
	s.strokes++
}

// Strokes counts paths drawn since the last Clear.
func (s *Surface) Strokes() int { return s.strokes }

func (s *Surface) Render() string {
	return lipgloss.NewStyle().Foreground(s.color).Render(s.canvas.String())
}

func (s *Surface) toDot(p ribbon.Vec2) (int, int) {
	return int(math.Floor(p.X / s.dotSize)), int(math.Floor(p.Y / s.dotSize))
}
