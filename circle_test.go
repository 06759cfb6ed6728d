package polar

import (
	"math"
	"testing"
)

func TestCirclePath(t *testing.T) {
	c := Circle{Pt(5, 5), 5}
	path := c.Path(0.1)
	if len(path) != 6 {
		t.Fatalf("got %d elements, want a move, four curves and a close", len(path))
	}
	diff(t, MoveTo(Pt(10, 5)), path[0])
	if end, _ := path[4].EndPoint(); !nearly(end.X, 10) || !nearly(end.Y, 5) {
		t.Errorf("circle ends at %v, want (10, 5)", end)
	}
	diff(t, Rect{0, 0, 10, 10}, c.BoundingBox())
}

func TestCircleSegmentArea(t *testing.T) {
	cs := Circle{Pt(0, 0), 10}.Segment(5, 0, math.Pi)
	if a, want := cs.Area(), 0.5*75*math.Pi; !nearly(a, want) {
		t.Errorf("got area %v, want %v", a, want)
	}
}

func TestCircleSegmentPath(t *testing.T) {
	cs := Circle{Pt(0, 0), 10}.Segment(5, 0, math.Pi/2)
	path := cs.Path(0.01)
	diff(t, MoveTo(Pt(5, 0)), path[0])
	diff(t, LineTo(Pt(10, 0)), path[1])
	if path[len(path)-1].Kind != ClosePathKind {
		t.Errorf("segment path is not closed")
	}

	// The outer arc ends straight below the center.
	var outerEnd Point
	for _, el := range path[2:] {
		if el.Kind == LineToKind {
			break
		}
		outerEnd, _ = el.EndPoint()
	}
	diff(t, Pt(0, 10), outerEnd, approx)
}

func TestArcSubdivision(t *testing.T) {
	a := Arc{Center: Pt(0, 0), Radius: 100, StartAngle: 0, SweepAngle: math.Pi}
	var n int
	for el := range a.PathElements(0.1) {
		switch el.Kind {
		case MoveToKind:
			diff(t, Pt(100, 0), el.P0, approx)
		case CubicToKind:
			n++
			if d := el.P2.Distance(a.Center); !nearly(d, 100) {
				t.Errorf("arc point %v is %v away from the center", el.P2, d)
			}
		default:
			t.Errorf("unexpected element %v", el)
		}
	}
	if n < 2 {
		t.Errorf("got %d curves for a half circle, want at least 2", n)
	}
}
