package polar

import (
	"math"
	"testing"
)

func TestResolveAlignment(t *testing.T) {
	tests := []struct {
		angle float64
		want  Alignment
	}{
		{0, Alignment{HAlignCenter, VAlignBottom}},
		{20, Alignment{HAlignCenter, VAlignBottom}},
		{44, Alignment{HAlignLeft, VAlignBottom}},
		{90, Alignment{HAlignLeft, VAlignMiddle}},
		{160, Alignment{HAlignCenter, VAlignTop}},
		{180, Alignment{HAlignCenter, VAlignTop}},
		{270, Alignment{HAlignRight, VAlignMiddle}},
		{330, Alignment{HAlignRight, VAlignBottom}},
		{345, Alignment{HAlignCenter, VAlignBottom}},
	}
	for _, tt := range tests {
		diff(t, tt.want, ResolveAlignment(tt.angle, Alignment{}))
	}
}

func TestResolveAlignmentKeepsExplicit(t *testing.T) {
	got := ResolveAlignment(90, Alignment{Align: HAlignRight})
	diff(t, Alignment{HAlignRight, VAlignMiddle}, got)
	got = ResolveAlignment(90, Alignment{VerticalAlign: VAlignTop})
	diff(t, Alignment{HAlignLeft, VAlignTop}, got)
}

func TestAlignLabelColumn(t *testing.T) {
	s := newTestSeries(Column, false)
	st := s.Polar()
	p := NewPoint(0, 1)
	p.Angle, p.Radial = math.Pi/2, 10
	st.ArcFor(p)

	pl := st.AlignLabel(p, LabelOptions{})
	diff(t, Alignment{HAlignLeft, VAlignMiddle}, pl.Alignment)
	diff(t, p.Pos, pl.Anchor)
	if !pl.Visible || pl.Force {
		t.Errorf("got %+v, want a visible, unforced label", pl)
	}
}

func TestAlignLabelRadialBar(t *testing.T) {
	s := newTestSeries(Column, true)
	st := s.Polar()
	p := radialBar(50)
	s.Points = []*DataPoint{p}
	st.TranslateColumns()

	pl := st.AlignLabel(p, LabelOptions{})
	diff(t, Alignment{HAlignCenter, VAlignMiddle}, pl.Alignment)
	diff(t, p.TooltipPos, pl.Anchor)
	if !pl.Visible || !pl.Force {
		t.Errorf("got %+v, want a visible, forced label", pl)
	}

	inside := true
	pl = st.AlignLabel(p, LabelOptions{Inside: &inside, Alignment: Alignment{Align: HAlignLeft}})
	// Halfway between 0 and π, halfway between the inner and outer radius.
	diff(t, Pt(100, 120), pl.Anchor, approx)
	diff(t, Alignment{HAlignLeft, VAlignMiddle}, pl.Alignment)
}

func TestAlignLabelEmptyRadialBar(t *testing.T) {
	s := newTestSeries(Column, true)
	st := s.Polar()
	p := radialBar(-10)
	s.Points = []*DataPoint{p}
	st.TranslateColumns()

	if pl := st.AlignLabel(p, LabelOptions{}); pl.Visible {
		t.Errorf("label of an empty bar is visible: %+v", pl)
	}
}

func TestAlignmentString(t *testing.T) {
	if s := HAlignRight.String(); s != "right" {
		t.Errorf("got %q, want right", s)
	}
	if s := VAlignBottom.String(); s != "bottom" {
		t.Errorf("got %q, want bottom", s)
	}
	if s := HAlign(42).String(); s != "invalid" {
		t.Errorf("got %q, want invalid", s)
	}
}
