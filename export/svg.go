package export

import (
	"fmt"
	"io"
	"os"

	"github.com/tabgrid/tabgrid/tables"
)

// Per-layer presentation for overlay geometry.
var layerStyles = map[tables.Layer]string{
	tables.LayerTable: "fill: #884444; fill-opacity: 0.25;",
	tables.LayerSplit: "stroke: #448844; stroke-opacity: 0.25; stroke-width: 0.5;",
	tables.LayerChar:  "fill: #444488; fill-opacity: 0.25;",
}

// WriteSVG renders a diagnostic overlay as an SVG document sized to the
// page. Page coordinates have a bottom-left origin, so all geometry is
// drawn inside a y-flipping group transform.
func WriteSVG(w io.Writer, ov *tables.Overlay) error {
	width, height := ov.PageWidth, ov.PageHeight
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 100
	}

	if _, err := fmt.Fprintf(w,
		"<svg\n"+
			"  xmlns=\"http://www.w3.org/2000/svg\"\n"+
			"  width=\"%g\"\n"+
			"  height=\"%g\"\n"+
			"  viewBox=\"0 0 %g %g\"\n"+
			">\n"+
			"  <g transform=\"matrix(1, 0, 0, -1, 0, %g)\">\n",
		width, height, width, height, height); err != nil {
		return err
	}

	for _, r := range ov.Rects {
		_, err := fmt.Fprintf(w,
			"    <rect style=%q x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\"></rect>\n",
			layerStyles[r.Layer], r.BBox.X.Lo, r.BBox.Y.Lo, r.BBox.Width(), r.BBox.Height())
		if err != nil {
			return err
		}
	}
	for _, l := range ov.Lines {
		_, err := fmt.Fprintf(w,
			"    <line style=%q x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\"></line>\n",
			layerStyles[l.Layer], l.From.X, l.From.Y, l.To.X, l.To.Y)
		if err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "  </g>\n</svg>\n")
	return err
}

// WriteSVGFile writes the overlay to path.
func WriteSVGFile(path string, ov *tables.Overlay) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSVG(f, ov); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
