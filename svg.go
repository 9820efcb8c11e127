package stashmate

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// svgCanvas implements Canvas by accumulating SVG elements.
type svgCanvas struct {
	b strings.Builder
}

func (c *svgCanvas) Line(x1, y1, x2, y2 float64, stroke string, width float64) {
	fmt.Fprintf(&c.b, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"/>`+"\n",
		x1, y1, x2, y2, stroke, width)
}

func (c *svgCanvas) Polyline(pts []XY, stroke string, width float64) {
	var points strings.Builder
	for i, p := range pts {
		if i > 0 {
			points.WriteByte(' ')
		}
		fmt.Fprintf(&points, "%g,%g", p.X, p.Y)
	}
	fmt.Fprintf(&c.b, `<polyline points="%s" fill="none" stroke="%s" stroke-width="%g"/>`+"\n",
		points.String(), stroke, width)
}

func (c *svgCanvas) Dot(x, y, r float64, fill string) {
	fmt.Fprintf(&c.b, `<circle cx="%g" cy="%g" r="%g" fill="%s"/>`+"\n", x, y, r, fill)
}

func (c *svgCanvas) Text(x, y, size float64, fill, text string) {
	var escaped strings.Builder
	xml.EscapeText(&escaped, []byte(text))
	fmt.Fprintf(&c.b, `<text x="%g" y="%g" font-size="%g" font-family="system-ui" fill="%s">%s</text>`+"\n",
		x, y, size, fill, escaped.String())
}

// RenderSVG writes the chart layout as a standalone SVG document.
//
// The svg element's width/height are the displayed size while the viewBox is
// the backing buffer size, with a group scaled by the device pixel ratio:
// same trick as a canvas backing buffer, the displayed size never changes,
// only the internal resolution.
func RenderSVG(w io.Writer, l Layout) error {
	c := &svgCanvas{}
	l.Draw(c)

	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %d %d">`+"\n"+
			`<g transform="scale(%g)">`+"\n%s</g>\n</svg>\n",
		l.Width, l.Height, l.BufferWidth, l.BufferHeight, l.Scale, c.b.String())
	return err
}
