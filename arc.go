package polar

import (
	"iter"
	"math"
	"slices"
)

// Arc is a circular arc. Angles are in radians and grow clockwise in the
// y-down coordinate system of a chart.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

var _ Shape = Arc{}

func (a Arc) Path(tolerance float64) BezPath { return slices.Collect(a.PathElements(tolerance)) }

func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		p0 := VecFromAngle(a.StartAngle).Mul(a.Radius)
		if !yield(MoveTo(a.Center.Translate(p0))) {
			return
		}

		scaledError := math.Abs(a.Radius) / tolerance
		// Number of subdivisions per circle based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(VecFromAngle(angle0 + math.Pi/2).Mul(a.Radius * armLen))
			p3 := VecFromAngle(angle1).Mul(a.Radius)
			p2 := p3.Sub(VecFromAngle(angle1 + math.Pi/2).Mul(a.Radius * armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				break
			}
		}
	}
}

func (a Arc) BoundingBox() Rect {
	return Circle{a.Center, a.Radius}.BoundingBox()
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}
