package polar

import (
	"iter"
	"math"
	"slices"
)

type Circle struct {
	Center Point
	Radius float64
}

var _ Shape = Circle{}

func (c Circle) Path(tolerance float64) BezPath { return slices.Collect(c.PathElements(tolerance)) }

func (c Circle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		scaledError := math.Abs(c.Radius) / tolerance
		var n int
		var armLength float64
		if scaledError < 1.0/1.9608e-4 {
			// Solution from http://spencermortensen.com/articles/bezier-circle/
			n = 4
			armLength = 0.551915024494
		} else {
			// This is empirically determined to fall within error tolerance.
			n = int(math.Ceil(math.Pow(1.1163*scaledError, 1.0/6.0)))
			armLength = (4.0 / 3.0) * math.Tan(math.Pi/2/(float64(n)))
		}

		x, y := c.Center.Splat()
		r := c.Radius
		if !yield(MoveTo(Pt(x+r, y))) {
			return
		}
		deltaTh := 2.0 * math.Pi / float64(n)
		for ix := 1; ix <= n; ix++ {
			a := armLength
			th1 := deltaTh * float64(ix)
			th0 := th1 - deltaTh
			s0, c0 := math.Sincos(th0)
			var s1, c1 float64
			if ix == n {
				s1 = 0.0
				c1 = 1.0
			} else {
				s1, c1 = math.Sincos(th1)
			}
			if !yield(CubicTo(
				Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
				Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
				Pt(x+r*c1, y+r*s1),
			)) {
				return
			}
		}
		if !yield(ClosePath()) {
			return
		}
	}
}

// Segment returns a circle segment by cutting out parts of this circle.
func (c Circle) Segment(innerRadius float64, startAngle, sweepAngle float64) CircleSegment {
	return CircleSegment{
		Center:      c.Center,
		OuterRadius: c.Radius,
		InnerRadius: innerRadius,
		StartAngle:  startAngle,
		SweepAngle:  sweepAngle,
	}
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

// CircleSegment represents a segment of a circle.
//
// If InnerRadius > 0, then the shape will be a doughnut segment. A sweep of
// 2π with a positive inner radius describes a full annulus.
type CircleSegment struct {
	Center      Point
	OuterRadius float64
	InnerRadius float64
	StartAngle  float64
	SweepAngle  float64
}

var _ Shape = CircleSegment{}

func (cs CircleSegment) Path(tolerance float64) BezPath {
	return slices.Collect(cs.PathElements(tolerance))
}

// PathElements implements Shape.
func (cs CircleSegment) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(pointOnCircle(cs.Center, cs.InnerRadius, cs.StartAngle))) {
			return
		}

		// First radius
		if !yield(LineTo(pointOnCircle(cs.Center, cs.OuterRadius, cs.StartAngle))) {
			return
		}

		// Outer arc
		a := Arc{
			Center:     cs.Center,
			Radius:     cs.OuterRadius,
			StartAngle: cs.StartAngle,
			SweepAngle: cs.SweepAngle,
		}
		for el := range dropFirst(a.PathElements(tolerance)) {
			if !yield(el) {
				return
			}
		}

		// Second radius
		if !yield(LineTo(pointOnCircle(cs.Center, cs.InnerRadius, cs.StartAngle+cs.SweepAngle))) {
			return
		}

		// Inner arc
		a = Arc{
			Center:     cs.Center,
			Radius:     cs.InnerRadius,
			StartAngle: cs.StartAngle + cs.SweepAngle,
			SweepAngle: -cs.SweepAngle,
		}
		for el := range dropFirst(a.PathElements(tolerance)) {
			if !yield(el) {
				return
			}
		}

		yield(ClosePath())
	}
}

func (cs CircleSegment) IsNaN() bool {
	return cs.Center.IsNaN() ||
		math.IsNaN(cs.OuterRadius) ||
		math.IsNaN(cs.InnerRadius) ||
		math.IsNaN(cs.StartAngle) ||
		math.IsNaN(cs.SweepAngle)
}

func (cs CircleSegment) Area() float64 {
	return 0.5 * math.Abs(cs.OuterRadius*cs.OuterRadius-cs.InnerRadius*cs.InnerRadius) * math.Abs(cs.SweepAngle)
}

func (cs CircleSegment) BoundingBox() Rect {
	// TODO: compute the tight box from the arc's extreme angles instead of
	// the full circle.
	r := max(cs.InnerRadius, cs.OuterRadius)
	x := cs.Center.X
	y := cs.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}
