// Package geompath converts the paths produced by the polar layout engine
// into [path.Data] values from seehuhn.de/go/geom, so that they can be handed
// to renderers built on that package, such as PDF writers.
package geompath

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"honnef.co/go/polar"
)

// FlipY returns the transformation from chart coordinates, where y grows
// downwards, into a coordinate system of the given height where y grows
// upwards.
func FlipY(height float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, -1, 0, height}
}

func apply(m matrix.Matrix, pt polar.Point) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*pt.X + m[2]*pt.Y + m[4],
		Y: m[1]*pt.X + m[3]*pt.Y + m[5],
	}
}

// FromBezPath converts p, transforming every point by m.
func FromBezPath(p polar.BezPath, m matrix.Matrix) *path.Data {
	out := &path.Data{}
	for _, el := range p {
		switch el.Kind {
		case polar.MoveToKind:
			out = out.MoveTo(apply(m, el.P0))
		case polar.LineToKind:
			out = out.LineTo(apply(m, el.P0))
		case polar.QuadToKind:
			out = out.QuadTo(apply(m, el.P0), apply(m, el.P1))
		case polar.CubicToKind:
			out = out.CubeTo(apply(m, el.P0), apply(m, el.P1), apply(m, el.P2))
		case polar.ClosePathKind:
			out = out.Close()
		}
	}
	return out
}

// FromShape flattens s into Bézier elements with the given tolerance and
// converts the result. Shapes include series outlines, column sectors and
// clip regions.
func FromShape(s polar.Shape, tolerance float64, m matrix.Matrix) *path.Data {
	return FromBezPath(s.Path(tolerance), m)
}

// Bounds returns the rectangle enclosing r after transforming it by m.
func Bounds(r polar.Rect, m matrix.Matrix) rect.Rect {
	var out rect.Rect
	for i, pt := range []polar.Point{
		polar.Pt(r.X0, r.Y0),
		polar.Pt(r.X1, r.Y0),
		polar.Pt(r.X1, r.Y1),
		polar.Pt(r.X0, r.Y1),
	} {
		v := apply(m, pt)
		if i == 0 {
			out = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
			continue
		}
		out.LLx = min(out.LLx, v.X)
		out.LLy = min(out.LLy, v.Y)
		out.URx = max(out.URx, v.X)
		out.URy = max(out.URy, v.Y)
	}
	return out
}
