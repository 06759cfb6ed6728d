package polar_test

import (
	"fmt"

	"honnef.co/go/polar"
)

func Example() {
	pane := &polar.Pane{Center: polar.Pt(100, 100), Diameter: 100}
	x := polar.NewAngularAxis(pane, polar.Point{}, 0, 360, 0, 360)
	y := polar.NewRadiusAxis(pane, polar.Point{}, 0, 10)

	s := &polar.Series{
		Chart: &polar.Chart{Polar: true, PlotArea: polar.Rect{X1: 200, Y1: 200}},
		Kind:  polar.Line,
		XAxis: x,
		YAxis: y,
	}
	st := polar.Attach(s)

	for i, v := range []float64{10, 5, 10, 5} {
		p := polar.NewPoint(float64(i*90), v)
		p.Angle, _ = x.Translate(p.X, false)
		r, _ := y.Translate(p.Y, false)
		p.Radial = y.Len - r
		s.Points = append(s.Points, p)
	}

	st.Translate()
	path := st.GraphPath(s.Points)
	fmt.Println(path.SVG(polar.SVGOptions{MaxPrecision: 1}))
	fmt.Println(st.ConnectsEnds())
	// Output:
	// M100,50 L125,100 L100,150 L75,100 L100,50
	// true
}

func ExampleResolveAlignment() {
	for _, angle := range []float64{0, 90, 180, 270} {
		a := polar.ResolveAlignment(angle, polar.Alignment{})
		fmt.Println(angle, a.Align, a.VerticalAlign)
	}
	// Output:
	// 0 center bottom
	// 90 left middle
	// 180 center top
	// 270 right middle
}
