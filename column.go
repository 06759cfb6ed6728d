package polar

import (
	"iter"
	"log/slog"
	"math"
	"slices"
)

// ArcShape describes an annular sector for the renderer. Angles are absolute,
// in radians clockwise from 3 o'clock.
type ArcShape struct {
	Center      Point
	OuterRadius float64
	InnerRadius float64
	StartAngle  float64
	EndAngle    float64
	// Opacity is 0 for empty sectors, whose start and end angle coincide,
	// and 1 otherwise.
	Opacity float64
}

var _ Shape = ArcShape{}

func newArcShape(center Point, outer, inner, start, end float64) ArcShape {
	a := ArcShape{
		Center:      center,
		OuterRadius: outer,
		InnerRadius: inner,
		StartAngle:  start,
		EndAngle:    end,
		Opacity:     1,
	}
	if start == end {
		a.Opacity = 0
	}
	return a
}

// Visible reports whether the sector has a non-zero opacity.
func (a ArcShape) Visible() bool { return a.Opacity > 0 }

// Segment returns the sector as a [CircleSegment].
func (a ArcShape) Segment() CircleSegment {
	return CircleSegment{
		Center:      a.Center,
		OuterRadius: a.OuterRadius,
		InnerRadius: a.InnerRadius,
		StartAngle:  a.StartAngle,
		SweepAngle:  a.EndAngle - a.StartAngle,
	}
}

func (a ArcShape) PathElements(tolerance float64) iter.Seq[PathElement] {
	return a.Segment().PathElements(tolerance)
}

func (a ArcShape) Path(tolerance float64) BezPath {
	return slices.Collect(a.PathElements(tolerance))
}

func (a ArcShape) BoundingBox() Rect {
	return a.Segment().BoundingBox()
}

// ColumnArc computes the sector of a column on a non-inverted chart. low and
// high are rectangular radial values, measured from the outer edge of the
// radial axis; a NaN low starts the column at the pane's inner edge. start
// and end are absolute angles.
//
// On reversed radial axes, radii that would reach through the pane's center
// are clamped to the inner radius of the pane. Radii that are not finite
// collapse the sector.
func (st *State) ColumnArc(low, high, start, end float64) ArcShape {
	s := st.series
	xGeom := s.XAxis.Geometry()
	yGeom := s.YAxis.Geometry()
	center := xGeom.PaneCenter()
	paneInner := xGeom.PaneInnerRadius()

	if math.IsNaN(low) {
		low = yGeom.Len
	}
	r := yGeom.Len - high + paneInner
	innerR := yGeom.Len - low + paneInner

	if yGeom.Reversed {
		if r < 0 {
			r = paneInner
		}
		if innerR < 0 {
			innerR = paneInner
		}
	}

	if !isFinite(r) || !isFinite(innerR) {
		a := newArcShape(center, paneInner, paneInner, start, end)
		a.Opacity = 0
		return a
	}
	return newArcShape(center, r, innerR, start, end)
}

// RadialBarArc computes the sector of a radial bar, a column on an inverted
// chart, together with the rectangular radial value of its tooltip anchor:
// the sector edge on the threshold side. p is not modified.
func (st *State) RadialBarArc(p *DataPoint) (ArcShape, float64) {
	s := st.series
	xGeom := s.XAxis.Geometry()
	yGeom := s.YAxis.Geometry()
	startAngle := xGeom.StartAngle
	visibleRange := xGeom.VisibleRange()
	reversed := yGeom.Reversed

	if !st.thresholdReady {
		st.updateThreshold()
	}
	yMin, _ := s.YAxis.Translate(yGeom.Min, false)
	yMax, _ := s.YAxis.Translate(yGeom.Max, false)

	// Finite values the axis cannot translate are used as they are. Infinite
	// ones must not be clamped into a full circle.
	radial := math.NaN()
	if v, ok := s.YAxis.Translate(p.Y, false); ok {
		radial = v
	} else if isFinite(p.Y) {
		radial = p.Y
	}

	start, end := st.thresholdAngle, radial
	if lo, hi, ok := st.stackSpan(p, visibleRange); ok {
		start, end = lo, hi
	}

	if start > end {
		start, end = end, start
	}

	// Keep the sector inside the visible part of the circle.
	if !reversed {
		if start < yMin {
			start = yMin
		} else if end > yMax {
			end = yMax
		} else if end < yMin || start > yMax {
			start, end = 0, 0
		}
	} else {
		if end > yMin {
			end = yMin
		} else if start < yMax {
			start = yMax
		} else if start > yMin || end < yMax {
			start, end = visibleRange, visibleRange
		}
	}

	empty := 0.0
	if reversed {
		empty = visibleRange
	}
	if yGeom.Min > yGeom.Max {
		start, end = empty, empty
	}
	if !isFinite(start) || !isFinite(end) {
		Logger().Debug("radial bar collapsed",
			slog.Int("series", s.Index), slog.Float64("x", p.X),
			slog.Float64("start", start), slog.Float64("end", end))
		start, end = empty, empty
	}

	start += startAngle
	end += startAngle

	barX := p.BarX + yGeom.PaneInnerRadius()
	shape := newArcShape(
		yGeom.PaneCenter(),
		max(barX+p.PointWidth, 0),
		max(barX, 0),
		start,
		end,
	)

	anchor := end
	if st.hasThreshold && start < st.translatedThreshold {
		anchor = start
	}
	return shape, anchor - startAngle
}

// stackSpan returns the translated stack span of a point, or false if the
// series is not stacked or the host has no span for the point.
func (st *State) stackSpan(p *DataPoint, visibleRange float64) (start, end float64, ok bool) {
	s := st.series
	if !s.Options.Stacking || s.Stacks == nil || s.Hidden || p.IsNull {
		return 0, 0, false
	}
	key := s.StackKey
	if p.Y < 0 {
		key = "-" + key
	}
	low, high, ok := s.Stacks.Span(key, p.X, s.Index)
	if !ok {
		return 0, 0, false
	}
	start, ok = s.YAxis.Translate(low, false)
	if ok {
		start = min(max(start, 0), visibleRange)
	} else {
		start = math.NaN()
	}
	end, ok = s.YAxis.Translate(high, false)
	if !ok {
		end = math.NaN()
	}
	return start, end, true
}

// updateThreshold translates the series' threshold into an angle, clamped to
// the visible range.
func (st *State) updateThreshold() {
	s := st.series
	st.thresholdReady = true
	st.hasThreshold = false
	st.thresholdAngle = math.NaN()
	if !s.Chart.Inverted {
		return
	}
	xGeom := s.XAxis.Geometry()
	a, ok := s.YAxis.Translate(s.Options.Threshold, false)
	if !ok {
		return
	}
	a = min(max(a, 0), xGeom.VisibleRange())
	st.thresholdAngle = a
	st.translatedThreshold = a + xGeom.StartAngle
	st.hasThreshold = true
}

// ArcFor lays out a column point. On inverted charts the point becomes a
// radial bar growing around the circle from the threshold, or spanning its
// stack; otherwise it is a column growing outwards from Low to Radial. The
// shape is stored in p.Shape, and the point is placed so that its position
// and TooltipPos can anchor tooltips.
//
// Degenerate input never fails: it produces empty or zero-radius sectors.
func (st *State) ArcFor(p *DataPoint) ArcShape {
	s := st.series
	chart := s.Chart
	xGeom := s.XAxis.Geometry()
	yGeom := s.YAxis.Geometry()

	var shape ArcShape
	if chart.Inverted {
		shape, p.Radial = st.RadialBarArc(p)
	} else {
		start := p.BarX + xGeom.StartAngle
		shape = st.ColumnArc(p.Low, p.Radial, start, start+p.PointWidth)
	}
	p.Shape = &shape

	st.ToXY(p)

	if chart.Inverted {
		barX := p.BarX + yGeom.PaneInnerRadius()
		tt := s.YAxis.PostTranslate(p.RectRadial, barX+p.PointWidth/2)
		p.TooltipPos = tt.Translate(chart.origin().Negate())
	} else {
		p.TooltipPos = p.Pos
	}
	if yGeom.Pane != nil {
		p.TooltipBelow = p.Pos.Y > yGeom.Pane.Center.Y
	}
	return shape
}

// TranslateColumns is the layout pass of column series. It replaces the
// generic placement of [State.Translate], translates the threshold once and
// computes the sector of every point with [State.ArcFor].
func (st *State) TranslateColumns() {
	st.preventPostTranslate = true
	st.Translate()
	st.thresholdReady = false
	st.updateThreshold()

	points := st.series.Points
	for i := len(points) - 1; i >= 0; i-- {
		st.ArcFor(points[i])
	}
}
