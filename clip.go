package polar

import (
	"iter"
	"log/slog"
	"math"
	"slices"
)

// ClipRegion is the circular or annular clip boundary of a series. Once built
// it is updated in place, so renderers can hold on to it across redraws.
type ClipRegion struct {
	Center      Point
	OuterRadius float64
	InnerRadius float64
}

var _ Shape = (*ClipRegion)(nil)

// Update moves and resizes the region in place.
func (c *ClipRegion) Update(center Point, outer, inner float64) {
	c.Center = center
	c.OuterRadius = outer
	c.InnerRadius = inner
}

// Shape returns the region as a [Circle], or as a full [CircleSegment] when
// the region has a hole.
func (c *ClipRegion) Shape() Shape {
	if c.InnerRadius > 0 {
		return Circle{c.Center, c.OuterRadius}.Segment(c.InnerRadius, 0, 2*math.Pi)
	}
	return Circle{c.Center, c.OuterRadius}
}

func (c *ClipRegion) PathElements(tolerance float64) iter.Seq[PathElement] {
	return c.Shape().PathElements(tolerance)
}

func (c *ClipRegion) Path(tolerance float64) BezPath {
	return slices.Collect(c.PathElements(tolerance))
}

func (c *ClipRegion) BoundingBox() Rect {
	return c.Shape().BoundingBox()
}

// Clipper is implemented by the renderer's draw groups.
type Clipper interface {
	Clip(region *ClipRegion)
}

// BuildClip returns the series' clip region. The first call creates it,
// later calls update the same region in place.
func (st *State) BuildClip(center Point, outer, inner float64) *ClipRegion {
	if st.clip == nil {
		st.clip = &ClipRegion{center, outer, inner}
		Logger().Debug("clip region created",
			slog.Int("series", st.series.Index), slog.Float64("r", outer), slog.Float64("innerR", inner))
		return st.clip
	}
	st.clip.Update(center, outer, inner)
	Logger().Debug("clip region updated",
		slog.Int("series", st.series.Index), slog.Float64("r", outer), slog.Float64("innerR", inner))
	return st.clip
}

// ClipCircle is the post-render step of a redraw. It builds or updates the
// clip region from the y axis pane and attaches it to group, which may be
// nil. It returns nil if the chart is no longer polar or the axis has no
// pane.
func (st *State) ClipCircle(group Clipper) *ClipRegion {
	s := st.series
	if !s.Chart.Polar {
		return nil
	}
	pane := s.YAxis.Geometry().Pane
	if pane == nil {
		return nil
	}
	clip := st.BuildClip(pane.Center, pane.Radius(), pane.InnerRadius())
	if group != nil {
		group.Clip(clip)
	}
	return clip
}

// Clip returns the series' clip region, or nil if none was built yet.
func (st *State) Clip() *ClipRegion { return st.clip }
