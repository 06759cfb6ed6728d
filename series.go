package polar

import (
	"fmt"
	"log/slog"
	"math"
)

// Kind identifies the series types the engine distinguishes between.
type Kind int

const (
	Line Kind = iota + 1
	Spline
	Area
	AreaSpline
	AreaRange
	AreaSplineRange
	Column
	Scatter
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Spline:
		return "spline"
	case Area:
		return "area"
	case AreaSpline:
		return "areaspline"
	case AreaRange:
		return "arearange"
	case AreaSplineRange:
		return "areasplinerange"
	case Column:
		return "column"
	case Scatter:
		return "scatter"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsColumn reports whether series of this kind are drawn as sectors.
func (k Kind) IsColumn() bool { return k == Column }

// IsSpline reports whether series of this kind are drawn as smoothed curves.
func (k Kind) IsSpline() bool {
	return k == Spline || k == AreaSpline || k == AreaSplineRange
}

// Chart holds the chart-wide settings the engine depends on.
type Chart struct {
	// Polar declares the chart as polar. Series of a polar chart get a
	// [State] when they are attached.
	Polar bool
	// Inverted swaps the axes: the angular axis becomes the y axis and series
	// grow around the circle instead of outwards.
	Inverted bool
	// PlotArea is the plot area in chart coordinates. Positions computed by
	// the engine are relative to its origin.
	PlotArea Rect
	// SharedTooltip makes pointer search find points by angle alone.
	SharedTooltip bool
	// ParallelCoordinates disables nulling of points below the y axis minimum.
	ParallelCoordinates bool
}

func (c *Chart) origin() Vec2 {
	return Vec2(c.PlotArea.Origin())
}

// SeriesOptions are the per-series settings the engine reads. The zero value
// is a valid configuration.
type SeriesOptions struct {
	// ConnectEnds controls whether line-like series close their path across
	// the 0/2π boundary. Nil means true.
	ConnectEnds *bool
	// Threshold is the data value radial bars grow from.
	Threshold float64
	// Stacking enables stacked radial bars. The stack spans themselves are
	// looked up through [Series.Stacks].
	Stacking bool
}

// Stacks is implemented by the host's stacking bookkeeping.
type Stacks interface {
	// Span returns the low and high data value occupied by the given series
	// in the stack identified by key at the x value. Negative values are
	// stacked under keys prefixed with "-".
	Span(key string, x float64, series int) (low, high float64, ok bool)
}

// Series is a data series laid out by the engine.
type Series struct {
	Chart *Chart
	Kind  Kind
	XAxis Axis
	YAxis Axis

	// Index is the position of the series in the chart.
	Index int
	// StackKey identifies the stack the series belongs to.
	StackKey string
	Hidden   bool

	Options SeriesOptions
	Points  []*DataPoint
	// Stacks is nil for series that are not stacked.
	Stacks Stacks

	polar        *State
	radialSeries bool
	radialBar    bool
}

// Polar returns the polar state of the series, or nil if the series is not
// part of a polar chart.
func (s *Series) Polar() *State { return s.polar }

// IsRadialSeries reports whether the series lives on an inverted polar chart.
func (s *Series) IsRadialSeries() bool { return s.radialSeries }

// IsRadialBar reports whether the series is drawn as radial bars, that is,
// columns on an inverted polar chart.
func (s *Series) IsRadialBar() bool { return s.radialBar }

// DataPoint is a single point of a series.
//
// Angle and Radial hold the rectangular-space coordinates computed by the
// host's translation: Angle is the position on the x axis and Radial the pixel
// position on the y axis, measured from the outer edge. The engine never
// changes them except through the inverted-chart correction in [State.ToXY],
// so layout can be repeated any number of times.
type DataPoint struct {
	// X and Y are the data values. Y is NaN for missing data.
	X, Y float64

	Angle  float64
	Radial float64

	// RectAngle and RectRadial are the rectangular-space coordinates as seen
	// by the last call to ToXY.
	RectAngle  float64
	RectRadial float64

	// Pos is the position relative to the plot area. It is only valid when
	// Placed is true.
	Pos    Point
	Placed bool

	IsNull bool

	// ClientAngle is the key used for nearest-point search: degrees
	// clockwise from 12 o'clock when searching by angle, otherwise Pos.X.
	ClientAngle float64

	// BarX and PointWidth are the column's offset and width on the x axis,
	// as computed by the host.
	BarX       float64
	PointWidth float64
	// Low is the rectangular radial value of a column's bottom. NaN means the
	// column starts at the pane's inner edge.
	Low float64

	Shape        *ArcShape
	TooltipPos   Point
	TooltipBelow bool

	// RadialHigh is the rectangular radial value of a range's upper end.
	RadialHigh float64
	HighPos    Point
	LowX       float64
}

// NewPoint returns a data point for the given data values with all optional
// coordinates unset.
func NewPoint(x, y float64) *DataPoint {
	return &DataPoint{
		X:          x,
		Y:          y,
		IsNull:     math.IsNaN(y),
		Low:        math.NaN(),
		RadialHigh: math.NaN(),
	}
}

// State is the polar state of one series. It exists for as long as the
// series belongs to a polar chart.
type State struct {
	series *Series
	clip   *ClipRegion

	connectEnds          bool
	searchByAngle        bool
	preventPostTranslate bool

	thresholdReady bool
	hasThreshold   bool
	// thresholdAngle is relative to the axis start angle, translatedThreshold
	// includes it.
	thresholdAngle      float64
	translatedThreshold float64
}

// Attach is the single entry point hosts call from their series
// initialization hook. It creates the series' polar state when the chart is
// polar and discards it when the chart no longer is. The returned state is
// nil for non-polar charts.
//
// A polar series without axes, or with axes whose geometry does not
// validate, is a programming error and causes a panic.
func Attach(s *Series) *State {
	polarChart := s.Chart != nil && s.Chart.Polar
	switch {
	case polarChart && s.polar == nil:
		mustValidate(s)
		s.polar = &State{series: s}
		if s.Chart.Inverted {
			s.radialSeries = true
			s.radialBar = s.Kind.IsColumn()
		}
		Logger().Debug("polar state attached",
			slog.Int("series", s.Index),
			slog.String("kind", s.Kind.String()),
			slog.Bool("radialBar", s.radialBar))
	case !polarChart && s.polar != nil:
		s.polar = nil
		s.radialSeries = false
		s.radialBar = false
		Logger().Debug("polar state discarded", slog.Int("series", s.Index))
	}
	return s.polar
}

func mustValidate(s *Series) {
	if s.XAxis == nil || s.YAxis == nil {
		panic(fmt.Sprintf("polar: series %d has no axes", s.Index))
	}
	if err := s.XAxis.Geometry().Validate(); err != nil {
		panic(fmt.Sprintf("polar: series %d: x axis: %v", s.Index, err))
	}
	if err := s.YAxis.Geometry().Validate(); err != nil {
		panic(fmt.Sprintf("polar: series %d: y axis: %v", s.Index, err))
	}
}

// Series returns the series the state belongs to.
func (st *State) Series() *Series { return st.series }

// SearchesByAngle reports whether pointer search for the series uses the
// angle alone. It is updated by [State.Translate].
func (st *State) SearchesByAngle() bool { return st.searchByAngle }

// ConnectsEnds reports whether the last path built by [State.GraphPath] was
// closed across the 0/2π boundary.
func (st *State) ConnectsEnds() bool { return st.connectEnds }

// SweepOrigin returns the angle radial bars grow from, for hosts that animate
// them: the threshold angle if one was computed, otherwise the axis start.
func (st *State) SweepOrigin() float64 {
	if st.hasThreshold {
		return st.translatedThreshold
	}
	return st.series.XAxis.Geometry().StartAngle
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
