package polar

import (
	"math"
	"testing"
)

func placed(pts ...Point) []*DataPoint {
	out := make([]*DataPoint, len(pts))
	for i, pt := range pts {
		p := NewPoint(float64(i), 1)
		p.Pos = pt
		p.Placed = true
		out[i] = p
	}
	return out
}

func TestConnectorsStraightLine(t *testing.T) {
	seg := placed(Pt(0, 0), Pt(10, 0), Pt(20, 0))
	c := Connectors(seg, 1, false, false)
	diff(t, Pt(10, 0), c.Point)
	diff(t, Pt(6, 0), c.Left, approx)
	diff(t, Pt(14, 0), c.Right, approx)
	if c.Prev != nil {
		t.Error("got neighbour connectors without asking for them")
	}
}

func TestConnectorsCollinear(t *testing.T) {
	seg := placed(Pt(0, 0), Pt(10, 5), Pt(12, 20), Pt(-3, 8))
	for i := range seg {
		c := Connectors(seg, i, false, false)
		l := c.Left.Sub(c.Point)
		r := c.Right.Sub(c.Point)
		if cross := l.X*r.Y - l.Y*r.X; math.Abs(cross) > 1e-9 {
			t.Errorf("point %d: control points are not collinear, cross product %v", i, cross)
		}
		if dot := l.X*r.X + l.Y*r.Y; dot > 0 {
			t.Errorf("point %d: control points lie on the same side", i)
		}
	}
}

func TestConnectorsDistances(t *testing.T) {
	seg := placed(Pt(0, 0), Pt(10, 5), Pt(12, 20))
	c := Connectors(seg, 1, false, false)
	wantLeft := seg[0].Pos.Distance(seg[1].Pos) / (smoothing + 1)
	wantRight := seg[2].Pos.Distance(seg[1].Pos) / (smoothing + 1)
	if d := c.Left.Distance(c.Point); !nearly(d, wantLeft) {
		t.Errorf("got left distance %v, want %v", d, wantLeft)
	}
	if d := c.Right.Distance(c.Point); !nearly(d, wantRight) {
		t.Errorf("got right distance %v, want %v", d, wantRight)
	}
}

func TestConnectorsClosedSeam(t *testing.T) {
	seg := placed(Pt(150, 100), Pt(100, 150), Pt(50, 100), Pt(100, 50))
	seg = append(seg, seg[0])
	first := Connectors(seg, 0, false, true)
	last := Connectors(seg, len(seg)-1, false, true)
	diff(t, first, last)

	// The neighbours of the first point are the second and the second to
	// last point, so the tangent at (150, 100) is vertical.
	c := Connectors(seg, 0, false, true)
	l := c.Left.Sub(c.Point)
	r := c.Right.Sub(c.Point)
	if !nearly(l.X, 0) || !nearly(r.X, 0) {
		t.Errorf("tangent at seam is not vertical: left %v, right %v", c.Left, c.Right)
	}
}

func TestConnectorsIndexNormalization(t *testing.T) {
	seg := placed(Pt(0, 0), Pt(10, 0), Pt(20, 5))
	diff(t, Connectors(seg, 1, false, false), Connectors(seg, -1, false, false))
	diff(t, Connectors(seg, 0, false, false), Connectors(seg, 3, false, false))
	diff(t, Connectors(seg, 0, false, false), Connectors(seg, -10, false, false))
	diff(t, Connector{}, Connectors(nil, 0, true, true))
}

func TestConnectorsNeighbor(t *testing.T) {
	seg := placed(Pt(0, 0), Pt(10, 5), Pt(12, 20), Pt(-3, 8))
	c := Connectors(seg, 2, true, false)
	if c.Prev == nil {
		t.Fatal("missing neighbour connectors")
	}
	diff(t, Connectors(seg, 1, false, false), *c.Prev)
}

func TestConnectorsSinglePoint(t *testing.T) {
	seg := placed(Pt(3, 4))
	c := Connectors(seg, 0, true, false)
	diff(t, Pt(3, 4), c.Point)
	if !c.Left.IsFinite() || !c.Right.IsFinite() {
		t.Errorf("got non-finite control points %v %v", c.Left, c.Right)
	}
}

func TestGraphPathConnectEnds(t *testing.T) {
	s := newTestSeries(Line, false)
	st := s.Polar()
	s.Points = placed(Pt(150, 100), Pt(100, 150), Pt(50, 100))
	path := st.GraphPath(s.Points)

	want := BezPath{
		MoveTo(Pt(150, 100)),
		LineTo(Pt(100, 150)),
		LineTo(Pt(50, 100)),
		LineTo(Pt(150, 100)),
	}
	diff(t, want, path)
	if !st.ConnectsEnds() {
		t.Error("path was not closed")
	}
	if len(s.Points) != 3 {
		t.Errorf("GraphPath modified the points, got %d", len(s.Points))
	}

	no := false
	s.Options.ConnectEnds = &no
	diff(t, want[:3], st.GraphPath(s.Points))
	if st.ConnectsEnds() {
		t.Error("path was closed despite ConnectEnds being false")
	}
}

func TestGraphPathNulls(t *testing.T) {
	s := newTestSeries(Line, false)
	st := s.Polar()
	s.Points = placed(Pt(150, 100), Pt(100, 150), Pt(50, 100))
	s.Points[1].IsNull = true

	want := BezPath{
		MoveTo(Pt(150, 100)),
		MoveTo(Pt(50, 100)),
		LineTo(Pt(150, 100)),
	}
	diff(t, want, st.GraphPath(s.Points))
}

func TestGraphPathAllNull(t *testing.T) {
	s := newTestSeries(Line, false)
	st := s.Polar()
	s.Points = placed(Pt(1, 1), Pt(2, 2))
	for _, p := range s.Points {
		p.IsNull = true
	}
	if path := st.GraphPath(s.Points); len(path) != 0 {
		t.Errorf("got %d elements for an all-null series", len(path))
	}
	if st.ConnectsEnds() {
		t.Error("all-null series reports connected ends")
	}
}

func TestGraphPathPlacesPseudoPoints(t *testing.T) {
	s := newTestSeries(Area, false)
	st := s.Polar()
	pseudo := NewPoint(0, 0)
	pseudo.Angle, pseudo.Radial = 0, 50
	path := st.GraphPath([]*DataPoint{pseudo})
	if !pseudo.Placed {
		t.Fatal("pseudo point was not placed")
	}
	diff(t, BezPath{MoveTo(Pt(100, 100)), LineTo(Pt(100, 100))}, path, approx)
}

func TestGraphPathSplineSeam(t *testing.T) {
	s := newTestSeries(Spline, false)
	st := s.Polar()
	s.Points = placed(Pt(150, 100), Pt(100, 150), Pt(50, 100), Pt(100, 50))
	path := st.GraphPath(s.Points)
	if len(path) != 5 {
		t.Fatalf("got %d elements, want 5", len(path))
	}
	if path[0].Kind != MoveToKind {
		t.Fatalf("got %v as first element, want a move", path[0])
	}
	for _, el := range path[1:] {
		if el.Kind != CubicToKind {
			t.Fatalf("got %v, want a cubic Bézier", el)
		}
	}
	diff(t, Pt(150, 100), path[4].P2)

	// The curve arriving at the seam and the one leaving it share a tangent.
	in := path[4].P1.Sub(Pt(150, 100))
	out := path[1].P0.Sub(Pt(150, 100))
	if cross := in.X*out.Y - in.Y*out.X; math.Abs(cross) > 1e-9 {
		t.Errorf("spline has a kink at the seam, cross product %v", cross)
	}
}
