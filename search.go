package polar

import "math"

// PointerEvent is a pointer position in chart coordinates.
type PointerEvent struct {
	ChartX, ChartY float64
}

// PointerAngle returns the angle of the pointer around center, in degrees
// clockwise from 12 o'clock, in the range [0, 360]. center is in chart
// coordinates.
func PointerAngle(e PointerEvent, center Point) float64 {
	dx := e.ChartX - center.X
	dy := e.ChartY - center.Y
	return 180 + math.Atan2(dx, dy)*(-180/math.Pi)
}

// angleDistance returns the distance between two angles in degrees, taking
// the shorter way around the circle.
func angleDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return min(d, 360-d)
}

// NearestByAngle returns the point whose ClientAngle is closest to the
// pointer's angle around center, which is in chart coordinates. Null and
// unplaced points are ignored. It returns nil if no point qualifies.
//
// The points' ClientAngle must have been computed for angle search, see
// [State.SearchesByAngle].
func NearestByAngle(e PointerEvent, center Point, points []*DataPoint) *DataPoint {
	angle := PointerAngle(e, center)
	var best *DataPoint
	bestDist := math.Inf(1)
	for _, p := range points {
		if p.IsNull || !p.Placed {
			continue
		}
		if d := angleDistance(angle, p.ClientAngle); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// nearestByDistance returns the placed, non-null point closest to pt.
func nearestByDistance(pt Point, points []*DataPoint) *DataPoint {
	var best *DataPoint
	bestDist := math.Inf(1)
	for _, p := range points {
		if p.IsNull || !p.Placed {
			continue
		}
		if d := p.Pos.DistanceSquared(pt); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// SearchPoint finds the point of the series closest to the pointer. With a
// shared tooltip it searches by angle around the pane's center, otherwise by
// two-dimensional distance.
func (st *State) SearchPoint(e PointerEvent) *DataPoint {
	s := st.series
	origin := s.Chart.origin()
	if st.searchByAngle {
		center := s.XAxis.Geometry().PaneCenter().Translate(origin)
		return NearestByAngle(e, center, s.Points)
	}
	return nearestByDistance(Pt(e.ChartX, e.ChartY).Translate(origin.Negate()), s.Points)
}

// AxisValue is the data value under the pointer on one axis.
type AxisValue struct {
	Axis  Axis
	Value float64
	// OK is false if the axis could not translate the pointer position.
	OK bool
}

// PointerValues converts a pointer position into data values. Angular x axes
// receive the pointer's angle around their pane's center, radial y axes the
// distance from it.
func PointerValues(chart *Chart, e PointerEvent, xAxes, yAxes []Axis) (xs, ys []AxisValue) {
	origin := chart.origin()
	offset := func(a Axis) (float64, float64) {
		c := a.Geometry().PaneCenter()
		return e.ChartX - c.X - origin.X, e.ChartY - c.Y - origin.Y
	}
	for _, a := range xAxes {
		x, y := offset(a)
		v, ok := a.Translate(math.Pi-math.Atan2(x, y), true)
		xs = append(xs, AxisValue{Axis: a, Value: v, OK: ok})
	}
	for _, a := range yAxes {
		x, y := offset(a)
		v, ok := a.Translate(math.Hypot(x, y), true)
		ys = append(ys, AxisValue{Axis: a, Value: v, OK: ok})
	}
	return xs, ys
}
