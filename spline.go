package polar

import (
	"math"
	"slices"
)

// smoothing places control points 1/(smoothing+1) of the way towards the
// neighbouring point. 1 means midway between points, 2 means 1/3 from the
// point, and so on.
const smoothing = 1.5

// Connector holds the Bézier control points around one point of a spline.
type Connector struct {
	// Point is the position of the point itself.
	Point Point
	// Left is the control point on the side of the previous point, Right the
	// one on the side of the next point.
	Left, Right Point
	// Prev holds the connectors of the previous point, if they were
	// requested.
	Prev *Connector
}

// Connectors computes the control points for segment[index] such that a
// spline through the segment passes straight through the point.
//
// Indices outside the segment are valid: negative indices count from the
// end, where -1 refers to the second to last point, and indices past the end
// refer to the first point. When closed is set, the last point of the
// segment must duplicate the first one; it is skipped when looking for the
// neighbours of the first and last point, so that the curve continues
// smoothly across the seam.
//
// With includeNeighbor set, the connectors of the previous point are
// computed as well and stored in Prev.
//
// Connectors operates on placed points and returns the zero Connector for an
// empty segment.
func Connectors(segment []*DataPoint, index int, includeNeighbor, closed bool) Connector {
	if len(segment) == 0 {
		return Connector{}
	}
	c, prev := connector(segment, index, closed)
	if includeNeighbor {
		pc, _ := connector(segment, prev, closed)
		c.Prev = &pc
	}
	return c
}

// connector computes the connectors of a single point and returns them
// together with the index of the point's predecessor.
func connector(segment []*DataPoint, index int, closed bool) (Connector, int) {
	n := len(segment)

	var i int
	switch {
	case index >= 0 && index <= n-1:
		i = index
	case index < 0:
		i = max(n-1+index, 0)
	default:
		i = 0
	}

	added := 0
	if closed {
		added = 1
	}
	prevIdx := i - 1
	if prevIdx < 0 {
		prevIdx = n - (1 + added)
	}
	nextIdx := i + 1
	if nextIdx > n-1 {
		nextIdx = added
	}
	// Segments too short for the closing duplicate fall back to the point
	// itself.
	if prevIdx < 0 || prevIdx >= n {
		prevIdx = i
	}
	if nextIdx >= n {
		nextIdx = i
	}

	const denom = smoothing + 1
	pt := segment[i].Pos
	prev := segment[prevIdx].Pos
	next := segment[nextIdx].Pos

	left := Pt((smoothing*pt.X+prev.X)/denom, (smoothing*pt.Y+prev.Y)/denom)
	right := Pt((smoothing*pt.X+next.X)/denom, (smoothing*pt.Y+next.Y)/denom)

	dLeft := left.Distance(pt)
	dRight := right.Distance(pt)
	leftAngle := left.Sub(pt).Angle()
	rightAngle := right.Sub(pt).Angle()

	// The joint must lie in the same half plane as the left control point.
	jointAngle := math.Pi/2 + (leftAngle+rightAngle)/2
	if math.Abs(leftAngle-jointAngle) > math.Pi/2 {
		jointAngle -= math.Pi
	}

	return Connector{
		Point: pt,
		Left:  pt.Translate(VecFromAngle(jointAngle).Mul(dLeft)),
		Right: pt.Translate(VecFromAngle(math.Pi + jointAngle).Mul(dRight)),
	}, prevIdx
}

// PointSpline returns the path element that reaches segment[i]: a move for
// the first point, and a cubic Bézier from the previous point otherwise.
func (st *State) PointSpline(segment []*DataPoint, i int) PathElement {
	if i == 0 {
		return MoveTo(segment[0].Pos)
	}
	c := Connectors(segment, i, true, st.connectEnds)
	pt := c.Point
	c1 := pt
	if c.Prev != nil {
		c1 = Pt(finiteOr(c.Prev.Right.X, pt.X), finiteOr(c.Prev.Right.Y, pt.Y))
	}
	c2 := Pt(finiteOr(c.Left.X, pt.X), finiteOr(c.Left.Y, pt.Y))
	return CubicTo(c1, c2, pt)
}

func finiteOr(v, fallback float64) float64 {
	if isFinite(v) {
		return v
	}
	return fallback
}

// GraphPath builds the outline of a line-like series through points, which
// are usually the series' own points.
//
// Unless [SeriesOptions.ConnectEnds] is false, the first non-null point is
// appended to close the loop; points that have not been placed yet, like the
// pseudo points of area series, are placed first. Null points split the path
// into subpaths. Spline kinds are smoothed with [State.PointSpline]. The
// points slice itself is never modified.
func (st *State) GraphPath(points []*DataPoint) BezPath {
	s := st.series

	firstValid := slices.IndexFunc(points, func(p *DataPoint) bool { return !p.IsNull })
	connect := s.Options.ConnectEnds == nil || *s.Options.ConnectEnds
	st.connectEnds = connect && firstValid >= 0
	pts := points
	if st.connectEnds {
		pts = append(slices.Clip(points), points[firstValid])
	}

	for _, p := range pts {
		if !p.Placed {
			st.ToXY(p)
		}
	}

	var path BezPath
	var segment []*DataPoint
	flush := func() {
		if len(segment) == 0 {
			return
		}
		// Only a segment running all the way around carries the duplicate.
		closed := st.connectEnds && len(segment) > 1 && segment[0] == segment[len(segment)-1]
		saved := st.connectEnds
		st.connectEnds = closed
		for i, p := range segment {
			switch {
			case s.Kind.IsSpline():
				path.Push(st.PointSpline(segment, i))
			case i == 0:
				path.MoveTo(p.Pos)
			default:
				path.LineTo(p.Pos)
			}
		}
		st.connectEnds = saved
		segment = segment[:0]
	}
	for _, p := range pts {
		if p.IsNull || !p.Placed {
			flush()
			continue
		}
		segment = append(segment, p)
	}
	flush()
	return path
}
