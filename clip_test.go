package polar

import (
	"math"
	"testing"
)

type recordingGroup struct {
	clips []*ClipRegion
}

func (g *recordingGroup) Clip(region *ClipRegion) {
	g.clips = append(g.clips, region)
}

func TestClipCircle(t *testing.T) {
	s := newTestSeries(Line, false)
	st := s.Polar()
	if st.Clip() != nil {
		t.Fatal("clip region exists before the first render")
	}

	var g recordingGroup
	first := st.ClipCircle(&g)
	diff(t, &ClipRegion{Center: Pt(100, 100), OuterRadius: 50}, first)

	s.YAxis.(*RadialAxis).Pane.Diameter = 60
	s.YAxis.(*RadialAxis).Pane.InnerDiameter = 20
	second := st.ClipCircle(&g)
	if first != second {
		t.Error("redraw created a new clip region instead of updating it")
	}
	diff(t, &ClipRegion{Center: Pt(100, 100), OuterRadius: 30, InnerRadius: 10}, second)
	if len(g.clips) != 2 || g.clips[0] != g.clips[1] {
		t.Errorf("group was not clipped to the same region twice: %v", g.clips)
	}
	if st.Clip() != second {
		t.Error("Clip does not return the current region")
	}
}

func TestClipCircleNotPolar(t *testing.T) {
	s := newTestSeries(Line, false)
	st := s.Polar()
	s.Chart.Polar = false
	if clip := st.ClipCircle(nil); clip != nil {
		t.Errorf("got clip region %v for a chart that is no longer polar", clip)
	}
}

func TestClipRegionShape(t *testing.T) {
	c := &ClipRegion{Center: Pt(0, 0), OuterRadius: 10}
	if _, ok := c.Shape().(Circle); !ok {
		t.Errorf("got %T for a region without hole, want Circle", c.Shape())
	}
	c.Update(Pt(1, 1), 10, 4)
	cs, ok := c.Shape().(CircleSegment)
	if !ok {
		t.Fatalf("got %T for a region with hole, want CircleSegment", c.Shape())
	}
	diff(t, CircleSegment{Center: Pt(1, 1), OuterRadius: 10, InnerRadius: 4, SweepAngle: 2 * math.Pi}, cs, approx)
	diff(t, Rect{-9, -9, 11, 11}, c.BoundingBox())
	if path := c.Path(0.1); path[0].Kind != MoveToKind {
		t.Errorf("clip path starts with %v", path[0])
	}
}
