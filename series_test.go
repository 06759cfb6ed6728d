package polar

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestAttach(t *testing.T) {
	s := newTestSeries(Line, false)
	st := s.Polar()
	if st == nil {
		t.Fatal("series of a polar chart has no state")
	}
	if st.Series() != s {
		t.Error("state does not refer back to its series")
	}
	if s.IsRadialSeries() || s.IsRadialBar() {
		t.Error("series of a non-inverted chart is radial")
	}
	if again := Attach(s); again != st {
		t.Error("attaching twice replaced the state")
	}

	s.Chart.Polar = false
	if Attach(s) != nil || s.Polar() != nil {
		t.Error("state was not discarded")
	}
}

func TestAttachNotPolar(t *testing.T) {
	s := &Series{Chart: &Chart{}, Kind: Column}
	if st := Attach(s); st != nil {
		t.Errorf("got state %v for a non-polar chart", st)
	}
}

func TestAttachInverted(t *testing.T) {
	col := newTestSeries(Column, true)
	if !col.IsRadialSeries() || !col.IsRadialBar() {
		t.Error("column series of an inverted chart is not a radial bar")
	}
	line := newTestSeries(Line, true)
	if !line.IsRadialSeries() || line.IsRadialBar() {
		t.Error("line series of an inverted chart has the wrong flags")
	}

	col.Chart.Polar = false
	Attach(col)
	if col.IsRadialSeries() || col.IsRadialBar() {
		t.Error("flags survived discarding the state")
	}
}

func TestAttachPanics(t *testing.T) {
	mustPanic := func(name string, s *Series) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: Attach did not panic", name)
			}
		}()
		Attach(s)
	}
	mustPanic("no axes", &Series{Chart: &Chart{Polar: true}})

	bad := NewRadiusAxis(testPane(), Point{}, math.NaN(), 1)
	good := NewAngularAxis(testPane(), Point{}, 0, 1, 0, 360)
	mustPanic("bad extremes", &Series{Chart: &Chart{Polar: true}, XAxis: good, YAxis: bad})
}

func TestKind(t *testing.T) {
	if !Column.IsColumn() || Line.IsColumn() {
		t.Error("IsColumn is wrong")
	}
	for _, k := range []Kind{Spline, AreaSpline, AreaSplineRange} {
		if !k.IsSpline() {
			t.Errorf("%v is not a spline", k)
		}
	}
	if Area.IsSpline() {
		t.Error("area is a spline")
	}
	if s := Kind(99).String(); s != "Kind(99)" {
		t.Errorf("got %q", s)
	}
}

func TestNewPoint(t *testing.T) {
	p := NewPoint(1, math.NaN())
	if !p.IsNull {
		t.Error("point without value is not null")
	}
	if !math.IsNaN(p.Low) || !math.IsNaN(p.RadialHigh) {
		t.Error("optional coordinates are set")
	}
	if NewPoint(1, 2).IsNull {
		t.Error("point with value is null")
	}
}

func TestSweepOrigin(t *testing.T) {
	s := newTestSeries(Column, false)
	if o := s.Polar().SweepOrigin(); o != 0 {
		t.Errorf("got sweep origin %v without threshold, want the axis start", o)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	s := newTestSeries(Column, true)
	s.Polar().ClipCircle(nil)

	out := buf.String()
	for _, msg := range []string{"polar state attached", "clip region created", "radialBar=true"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output is missing %q:\n%s", msg, out)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
