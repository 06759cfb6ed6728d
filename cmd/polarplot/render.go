package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"honnef.co/go/polar"
)

const (
	tolerance   = 0.1
	lineWidth   = 2
	labelOffset = 6
)

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	paneColor  = color.RGBA{0xf2, 0xf2, 0xf2, 0xff}
	seriesFill = color.RGBA{0x2c, 0xaf, 0xfe, 0xff}
	areaFill   = color.NRGBA{0x2c, 0xaf, 0xfe, 0x80}
	lineColor  = color.RGBA{0x1f, 0x4e, 0x79, 0xff}
	textColor  = color.RGBA{0x33, 0x33, 0x33, 0xff}
)

// render draws p into a new image. Everything the engine computes is
// relative to the plot area and is moved into image space here.
func render(p *plot) *image.RGBA {
	size := p.opts.size
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	st := p.series.Polar()
	origin := polar.Vec2(p.chart.PlotArea.Origin())

	clip := st.ClipCircle(nil)
	if clip != nil {
		fill(img, clip.Path(tolerance).Translate(origin), paneColor)
	}

	switch {
	case p.series.Kind.IsColumn():
		inside := p.opts.inside
		for i, pt := range p.series.Points {
			if pt.Shape == nil || !pt.Shape.Visible() {
				continue
			}
			fill(img, pt.Shape.Path(tolerance).Translate(origin), seriesFill)
			pl := st.AlignLabel(pt, polar.LabelOptions{Inside: &inside})
			if pl.Visible {
				drawLabel(img, p.labels[i], pl, origin, labelOffsetFor(p, pt))
			}
		}
	default:
		path := st.GraphPath(p.series.Points).Translate(origin)
		if p.series.Kind == polar.Area {
			fill(img, path, areaFill)
		}
		stroke(img, path, lineWidth, lineColor)
	}
	return img
}

// labelOffsetFor pushes labels of outward growing columns away from the
// perimeter.
func labelOffsetFor(p *plot, pt *polar.DataPoint) polar.Vec2 {
	if p.chart.Inverted || pt.Shape == nil {
		return polar.Vec2{}
	}
	mid := (pt.Shape.StartAngle + pt.Shape.EndAngle) / 2
	return polar.VecFromAngle(mid).Mul(labelOffset)
}

// fill rasterizes the closed outline of path with the non-zero rule.
func fill(dst draw.Image, path polar.BezPath, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	open := false
	for _, el := range path {
		switch el.Kind {
		case polar.MoveToKind:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(el.P0.X), float32(el.P0.Y))
			open = true
		case polar.LineToKind:
			z.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case polar.QuadToKind:
			z.QuadTo(float32(el.P0.X), float32(el.P0.Y), float32(el.P1.X), float32(el.P1.Y))
		case polar.CubicToKind:
			z.CubeTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y))
		case polar.ClosePathKind:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// polylines splits the flattened path into one polyline per subpath.
// Closed subpaths end at their first point.
func polylines(path polar.BezPath) [][]polar.Point {
	var lines [][]polar.Point
	var cur []polar.Point
	flush := func() {
		if len(cur) > 1 {
			lines = append(lines, cur)
		}
		cur = nil
	}
	for el := range path.Flatten(tolerance) {
		switch el.Kind {
		case polar.MoveToKind:
			flush()
			cur = []polar.Point{el.P0}
		case polar.LineToKind:
			cur = append(cur, el.P0)
		case polar.ClosePathKind:
			if len(cur) > 0 {
				cur = append(cur, cur[0])
			}
			flush()
		}
	}
	flush()
	return lines
}

// stroke draws path with the given width. Every line segment becomes a
// quadrilateral of the same orientation, so overlapping segments never
// cancel out.
func stroke(dst draw.Image, path polar.BezPath, width float64, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	hw := width / 2
	for _, line := range polylines(path) {
		for i := 1; i < len(line); i++ {
			a, e := line[i-1], line[i]
			d := e.Sub(a)
			l := d.Hypot()
			if l == 0 || math.IsNaN(l) {
				continue
			}
			n := polar.Vec(-d.Y/l*hw, d.X/l*hw)
			p0, p1 := a.Translate(n), e.Translate(n)
			p2, p3 := e.Translate(n.Negate()), a.Translate(n.Negate())
			z.MoveTo(float32(p0.X), float32(p0.Y))
			z.LineTo(float32(p1.X), float32(p1.Y))
			z.LineTo(float32(p2.X), float32(p2.Y))
			z.LineTo(float32(p3.X), float32(p3.Y))
			z.ClosePath()
		}
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// drawLabel draws text aligned to the label's anchor.
func drawLabel(dst draw.Image, text string, pl polar.LabelPlacement, origin, offset polar.Vec2) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	anchor := pl.Anchor.Translate(origin).Translate(offset)
	width := float64(font.MeasureString(face, text).Ceil())
	ascent := float64(face.Metrics().Ascent.Ceil())

	x := anchor.X
	switch pl.Align {
	case polar.HAlignCenter:
		x -= width / 2
	case polar.HAlignRight:
		x -= width
	}
	y := anchor.Y
	switch pl.VerticalAlign {
	case polar.VAlignTop:
		y += ascent
	case polar.VAlignMiddle:
		y += ascent / 2
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(int(math.Round(x))), Y: fixed.I(int(math.Round(y)))},
	}
	d.DrawString(text)
}
