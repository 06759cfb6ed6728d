package polar

import (
	"iter"
	"math"
)

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0, P1, P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2)
	c := Vec2(q.P2).Mul(t)
	return Point(a.Add(b.Add(c).Mul(t)))
}

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3)
	cc := Vec2(c.P2).Mul(mt * 3)
	d := Vec2(c.P3)
	return Point(a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t)))
}

// Deriv returns the derivative of the cubic, which is a quadratic.
func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Subsegment returns the part of the cubic between t0 and t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Deriv()
	scale := (t1 - t0) / 3
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Quadratics approximates the cubic by evenly spaced quadratics whose distance
// to it is at most accuracy. It yields at least one quadratic. The quadratics
// are not in general G1 continuous.
func (c CubicBez) Quadratics(accuracy float64) iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		// The error is proportional to the third derivative, which is
		// constant, and shrinks with the cube of the number of subdivisions.
		// 432 is (36/√3)².
		maxErr2 := 432 * accuracy * accuracy
		err2 := tangentSum(c).Hypot2()
		n := 1
		if k := math.Ceil(math.Sqrt(math.Cbrt(err2 / maxErr2))); k > 1 && k < math.MaxInt32 {
			n = int(k)
		}
		for i := range n {
			seg := c.Subsegment(float64(i)/float64(n), float64(i+1)/float64(n))
			p1 := Vec2(seg.P1).Mul(3).Sub(Vec2(seg.P0))
			p2 := Vec2(seg.P2).Mul(3).Sub(Vec2(seg.P3))
			if !yield(QuadBez{seg.P0, Point(p1.Add(p2).Mul(0.25)), seg.P3}) {
				return
			}
		}
	}
}

// tangentSum returns (3·P2 - P3) - (3·P1 - P0), which vanishes for cubics
// that are exact quadratics.
func tangentSum(c CubicBez) Vec2 {
	p1 := Vec2(c.P1).Mul(3).Sub(Vec2(c.P0))
	p2 := Vec2(c.P2).Mul(3).Sub(Vec2(c.P3))
	return p2.Sub(p1)
}

// parabolaSubdiv maps a quadratic onto the parabola y = x², where the number
// of subdivisions needed for a given tolerance has a closed form.
type parabolaSubdiv struct {
	a0, a2 float64
	u0     float64
	uscale float64
	// val is the number of subdivisions times 2·√tolerance.
	val float64
}

// approxParabolaIntegral approximates ∫ (1 + 4x²)^-¼ dx.
func approxParabolaIntegral(x float64) float64 {
	const d = 0.67
	return x / (1 - d + math.Sqrt(math.Sqrt(d*d*d*d+0.25*x*x)))
}

func approxParabolaInvIntegral(x float64) float64 {
	const b = 0.39
	return x * (1 - b + math.Sqrt(b*b+0.25*x*x))
}

func (q QuadBez) subdiv(sqrtTol float64) parabolaSubdiv {
	d01 := q.P1.Sub(q.P0)
	d12 := q.P2.Sub(q.P1)
	dd := d01.Sub(d12)
	cross := q.P2.Sub(q.P0).Cross(dd)
	x0 := d01.Dot(dd) / cross
	x2 := d12.Dot(dd) / cross
	scale := math.Abs(cross / (dd.Hypot() * (x2 - x0)))

	a0 := approxParabolaIntegral(x0)
	a2 := approxParabolaIntegral(x2)
	var val float64
	if !math.IsInf(scale, 0) {
		da := math.Abs(a2 - a0)
		sqrtScale := math.Sqrt(scale)
		if math.Signbit(x0) == math.Signbit(x2) {
			val = da * sqrtScale
		} else {
			// The segment contains the curvature maximum.
			xmin := sqrtTol / sqrtScale
			val = sqrtTol * da / approxParabolaIntegral(xmin)
		}
	}
	u0 := approxParabolaInvIntegral(a0)
	u2 := approxParabolaInvIntegral(a2)
	return parabolaSubdiv{
		a0:     a0,
		a2:     a2,
		u0:     u0,
		uscale: 1 / (u2 - u0),
		val:    val,
	}
}

// at maps x in [0, 1], evenly spaced along the parabola integral, to the
// curve parameter t.
func (p *parabolaSubdiv) at(x float64) float64 {
	a := p.a0 + (p.a2-p.a0)*x
	return (approxParabolaInvIntegral(a) - p.u0) * p.uscale
}

// subdivisions turns an accumulated subdivision value into a segment count.
// Straight and degenerate curves need a single segment.
func subdivisions(val, sqrtTol float64) int {
	n := math.Ceil(0.5 * val / sqrtTol)
	if !(n > 1) || n > math.MaxInt32 {
		return 1
	}
	return int(n)
}

// Flatten approximates the curves in seq by lines that stay within tolerance
// of them. Moves, lines and closes are passed through. The number of lines
// per curve grows with the inverse square root of tolerance; 0.25 is good
// enough for antialiased rendering.
//
// Quadratics are subdivided so that the lines are spaced evenly along the
// parabola they lie on. Cubics are first approximated by quadratics, using a
// tenth of the tolerance, and the subdivisions are spread over all of them.
func Flatten(seq iter.Seq[PathElement], tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		const quadShare = 0.1

		sqrtTol := math.Sqrt(tolerance)
		var pen Point
		havePen := false
		type quadSubdiv struct {
			q QuadBez
			p parabolaSubdiv
		}
		var quads []quadSubdiv

		for el := range seq {
			switch el.Kind {
			case MoveToKind, LineToKind:
				pen, havePen = el.P0, true
				if !yield(el) {
					return
				}
			case QuadToKind:
				if havePen {
					q := QuadBez{pen, el.P0, el.P1}
					p := q.subdiv(sqrtTol)
					n := subdivisions(p.val, sqrtTol)
					for i := 1; i < n; i++ {
						if !yield(LineTo(q.Eval(p.at(float64(i) / float64(n))))) {
							return
						}
					}
					if !yield(LineTo(el.P1)) {
						return
					}
				}
				pen, havePen = el.P1, true
			case CubicToKind:
				if havePen {
					c := CubicBez{pen, el.P0, el.P1, el.P2}
					sqrtRemain := sqrtTol * math.Sqrt(1-quadShare)
					quads = quads[:0]
					sum := 0.0
					for q := range c.Quadratics(tolerance * quadShare) {
						p := q.subdiv(sqrtRemain)
						sum += p.val
						quads = append(quads, quadSubdiv{q, p})
					}
					n := subdivisions(sum, sqrtRemain)
					step := sum / float64(n)
					i := 1
					acc := 0.0
				spread:
					for _, qs := range quads {
						target := float64(i) * step
						for i < n && target < acc+qs.p.val {
							t := qs.p.at((target - acc) / qs.p.val)
							if !yield(LineTo(qs.q.Eval(t))) {
								return
							}
							i++
							if i >= n {
								break spread
							}
							target = float64(i) * step
						}
						acc += qs.p.val
					}
					if !yield(LineTo(el.P2)) {
						return
					}
				}
				pen, havePen = el.P2, true
			case ClosePathKind:
				havePen = false
				if !yield(el) {
					return
				}
			}
		}
	}
}

// Flatten returns the path with all curves replaced by lines. See [Flatten].
func (p BezPath) Flatten(tolerance float64) iter.Seq[PathElement] {
	return Flatten(p.Elements(), tolerance)
}
