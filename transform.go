package polar

import (
	"log/slog"
	"math"
)

// ToXY converts the point's rectangular-space coordinates, an angle and a
// radial pixel value, into a position relative to the plot area.
//
// On inverted charts the radial value of series other than radial bars is
// first recomputed from the data value, since the host's translation runs in
// the wrong order for them. Points whose radial value is not a finite number
// are marked as null and left unplaced.
//
// ToXY only reads the axes and produces the same result when called again
// with unchanged inputs.
func (st *State) ToXY(p *DataPoint) {
	s := st.series
	chart := s.Chart
	yGeom := s.YAxis.Geometry()
	inverted := chart.Inverted

	angle := p.Angle
	radial := p.Radial

	var radius float64
	if inverted {
		radius = angle
	} else {
		radius = yGeom.Len - radial
	}

	if inverted && !s.radialBar {
		radial = 0
		if v, ok := s.YAxis.Translate(p.Y, false); ok {
			radial = v
		}
		p.Radial = radial
	}

	p.RectAngle = angle
	p.RectRadial = radial

	if yGeom.Pane != nil {
		radius += yGeom.Pane.InnerRadius()
	}

	if isFinite(radial) {
		var xy Point
		if inverted {
			xy = s.YAxis.PostTranslate(radial, radius)
		} else {
			xy = s.XAxis.PostTranslate(angle, radius)
		}
		p.Pos = xy.Translate(chart.origin().Negate())
		p.Placed = true
	} else {
		p.Placed = false
		if !p.IsNull {
			p.IsNull = true
			Logger().Debug("point has no radial value",
				slog.Int("series", s.Index), slog.Float64("x", p.X))
		}
	}

	switch {
	case st.searchByAngle:
		var startDeg float64
		if pane := s.XAxis.Geometry().Pane; pane != nil {
			startDeg = pane.StartAngle
		}
		clientAngle := math.Mod(angle/math.Pi*180+startDeg, 360)
		if clientAngle < 0 {
			clientAngle += 360
		}
		p.ClientAngle = clientAngle
	case p.Placed:
		p.ClientAngle = p.Pos.X
	default:
		p.ClientAngle = angle
	}
}

// HighToXY places the upper end of a range point. It runs after [State.ToXY],
// whose rectangular snapshot it reuses.
func (st *State) HighToXY(p *DataPoint) {
	s := st.series
	angle := p.RectAngle
	if math.IsNaN(angle) {
		angle = 0
	}
	xy := s.XAxis.PostTranslate(angle, s.YAxis.Geometry().Len-p.RadialHigh)
	p.HighPos = xy.Translate(s.Chart.origin().Negate())
	p.LowX = p.Pos.X
}

// Translate is the post-translation step of a layout pass. It selects how
// pointer search works for the series and, unless the series lays itself out
// (see [State.TranslateColumns]), places every point.
//
// Points whose data value lies below the y axis minimum are treated as null,
// except on reversed axes and parallel coordinate charts.
func (st *State) Translate() {
	s := st.series
	chart := s.Chart
	st.searchByAngle = chart.SharedTooltip

	if st.preventPostTranslate {
		return
	}
	yGeom := s.YAxis.Geometry()
	for i := len(s.Points) - 1; i >= 0; i-- {
		p := s.Points[i]
		st.ToXY(p)
		if !chart.ParallelCoordinates && !yGeom.Reversed && p.Y < yGeom.Min {
			p.IsNull = true
		}
	}
}
