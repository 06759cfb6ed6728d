package main

import (
	"fmt"
	"io"

	"honnef.co/go/polar"
)

// encodeSVG writes the series as a standalone SVG document: the clip region
// and either the sectors of a column series or the outline of any other
// series.
func encodeSVG(w io.Writer, p *plot) error {
	st := p.series.Polar()
	origin := polar.Vec2(p.chart.PlotArea.Origin())
	opts := polar.SVGOptions{MaxPrecision: 2}

	if _, err := fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\">\n", p.opts.size, p.opts.size); err != nil {
		return err
	}
	writePath := func(path polar.BezPath, attrs string) error {
		if len(path) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, "<path d=\""); err != nil {
			return err
		}
		if err := path.Translate(origin).WriteSVG(w, opts); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\" %s/>\n", attrs)
		return err
	}

	if clip := st.ClipCircle(nil); clip != nil {
		if err := writePath(clip.Path(tolerance), `fill="#f2f2f2" fill-rule="evenodd"`); err != nil {
			return err
		}
	}
	if p.series.Kind.IsColumn() {
		for _, pt := range p.series.Points {
			if pt.Shape == nil || !pt.Shape.Visible() {
				continue
			}
			if err := writePath(pt.Shape.Path(tolerance), `fill="#2caffe"`); err != nil {
				return err
			}
		}
	} else {
		fill := "none"
		if p.series.Kind == polar.Area {
			fill = "#2caffe80"
		}
		attrs := fmt.Sprintf(`fill="%s" stroke="#1f4e79" stroke-width="%d"`, fill, lineWidth)
		if err := writePath(st.GraphPath(p.series.Points), attrs); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}
