package polar

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

// testPane is a full disc of radius 50 centered at (100, 100), with the
// angular axis starting at 3 o'clock.
func testPane() *Pane {
	return &Pane{
		Center:     Pt(100, 100),
		Diameter:   100,
		StartAngle: 90,
	}
}

// newTestSeries returns a series attached to a polar chart whose plot area
// starts at the origin. On non-inverted charts x is the angular axis covering
// [0, 360] and y the radial axis covering [0, 10]. On inverted charts x is
// the radial axis and y the angular axis covering [0, 100].
func newTestSeries(kind Kind, inverted bool) *Series {
	pane := testPane()
	chart := &Chart{
		Polar:    true,
		Inverted: inverted,
		PlotArea: Rect{X0: 0, Y0: 0, X1: 200, Y1: 200},
	}
	s := &Series{Chart: chart, Kind: kind}
	if inverted {
		s.XAxis = NewRadiusAxis(pane, Point{}, 0, 10)
		s.YAxis = NewAngularAxis(pane, Point{}, 0, 100, 90, 450)
	} else {
		s.XAxis = NewAngularAxis(pane, Point{}, 0, 360, 90, 450)
		s.YAxis = NewRadiusAxis(pane, Point{}, 0, 10)
	}
	Attach(s)
	return s
}

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
