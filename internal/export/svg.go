package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/ribbons/internal/driver"
	"github.com/san-kum/ribbons/internal/ribbon"
)

type stroke struct {
	d     string
	style driver.Style
}

// SVGSurface collects the strokes of a frame and writes them as an SVG
// document. It implements driver.Surface.
type SVGSurface struct {
	Width, Height float64
	Background    string

	strokes []stroke
}

func NewSVGSurface(width, height float64) *SVGSurface {
	return &SVGSurface{Width: width, Height: height, Background: "#f4ecd8"}
}

func (s *SVGSurface) Clear() { s.strokes = s.strokes[:0] }

func (s *SVGSurface) StrokePath(path ribbon.Path, style driver.Style) {
	if len(path) == 0 {
		return
	}
	s.strokes = append(s.strokes, stroke{d: path.SVG(), style: style})
}

func (s *SVGSurface) Len() int { return len(s.strokes) }

// String renders the current frame.
func (s *SVGSurface) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, s.Background))

	shadows := make(map[driver.Shadow]string)
	var defs strings.Builder
	for _, st := range s.strokes {
		sh := st.style.Shadow
		if sh.Color == "" || sh.Color == "transparent" {
			continue
		}
		if _, ok := shadows[sh]; ok {
			continue
		}
		id := fmt.Sprintf("shadow%d", len(shadows))
		shadows[sh] = id
		// SVG blur is a standard deviation; canvas shadowBlur is twice that.
		defs.WriteString(fmt.Sprintf(`<filter id="%s" x="-10%%" y="-10%%" width="120%%" height="120%%">
<feDropShadow dx="%g" dy="%g" stdDeviation="%g" flood-color="%s"/>
</filter>
`, id, sh.OffsetX, sh.OffsetY, sh.Blur/2, sh.Color))
	}
	if defs.Len() > 0 {
		sb.WriteString("<defs>\n" + defs.String() + "</defs>\n")
	}

	for _, st := range s.strokes {
		filter := ""
		if id, ok := shadows[st.style.Shadow]; ok {
			filter = fmt.Sprintf(` filter="url(#%s)"`, id)
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%g" stroke-linecap="%s" stroke-linejoin="%s"%s d="%s"/>
`, st.style.Color, st.style.Width, st.style.LineCap, st.style.LineJoin, filter, st.d))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteTo writes the current frame to w.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
