package polar

import (
	"errors"
	"fmt"
	"math"
)

// Pane is the circular drawing area polar series are plotted within.
type Pane struct {
	// Center of the pane, relative to the plot area.
	Center Point
	// Diameter is the outer diameter of the pane.
	Diameter float64
	// InnerDiameter is the diameter of the hole in the middle of the pane.
	// Zero for a full disc.
	InnerDiameter float64
	// StartAngle is the angle, in degrees clockwise from 12 o'clock, at which
	// the angular axis starts.
	StartAngle float64
}

// Radius returns the outer radius of the pane.
func (p Pane) Radius() float64 { return p.Diameter / 2 }

// InnerRadius returns the radius of the pane's hole.
func (p Pane) InnerRadius() float64 { return p.InnerDiameter / 2 }

// AxisGeometry is the read-only snapshot of an axis that the engine works
// with. It is owned by the host's axis subsystem; the engine only ever sees
// copies of it.
type AxisGeometry struct {
	// Pane is nil for axes that do not report a center.
	Pane *Pane

	// Len is the pixel length of the axis. For the radial axis this is the
	// distance between inner and outer radius; for the angular axis it is the
	// visible angle range in radians.
	Len float64

	// Min and Max are the data extremes of the axis. Min > Max marks an
	// empty axis.
	Min, Max float64

	Reversed bool

	// StartAngle and EndAngle delimit the angular axis, in radians measured
	// clockwise from 3 o'clock.
	StartAngle, EndAngle float64
}

// VisibleRange returns the angular extent of the axis in radians.
func (g AxisGeometry) VisibleRange() float64 {
	return g.EndAngle - g.StartAngle
}

// PaneInnerRadius returns the radius of the pane's hole, or zero if the axis
// has no pane.
func (g AxisGeometry) PaneInnerRadius() float64 {
	if g.Pane == nil {
		return 0
	}
	return g.Pane.InnerRadius()
}

// PaneCenter returns the pane's center, or the zero point if the axis has no
// pane.
func (g AxisGeometry) PaneCenter() Point {
	if g.Pane == nil {
		return Point{}
	}
	return g.Pane.Center
}

var (
	ErrNoLength    = errors.New("axis has no length")
	ErrBadPane     = errors.New("axis pane has invalid geometry")
	ErrBadExtremes = errors.New("axis extremes are not numbers")
)

// Validate reports whether the geometry is usable by the engine. Axes that
// fail validation are a programming error on the host's side.
func (g AxisGeometry) Validate() error {
	if math.IsNaN(g.Len) || math.IsInf(g.Len, 0) {
		return ErrNoLength
	}
	if math.IsNaN(g.Min) || math.IsNaN(g.Max) {
		return ErrBadExtremes
	}
	if p := g.Pane; p != nil {
		if !p.Center.IsFinite() || math.IsNaN(p.Diameter) || math.IsNaN(p.InnerDiameter) {
			return fmt.Errorf("%w: center %s, diameter %g, inner diameter %g",
				ErrBadPane, p.Center, p.Diameter, p.InnerDiameter)
		}
	}
	return nil
}

// Axis is the part of the host's axis subsystem that the engine consumes.
type Axis interface {
	// Translate converts between data values and pixels (or radians, for
	// angular axes). With backwards set, it converts pixels back into data
	// values. The boolean result is false when no translation is defined.
	Translate(v float64, backwards bool) (float64, bool)

	// PostTranslate converts an angle, relative to the axis start angle, and
	// a radius into a position in chart coordinates, that is, including the
	// plot area origin.
	PostTranslate(angle, radius float64) Point

	// Geometry returns a snapshot of the axis geometry.
	Geometry() AxisGeometry
}

// RadialAxis is a linear [Axis] on a polar pane. It is the reference
// implementation used by the demo renderer and the tests; hosts with their
// own axis subsystem implement [Axis] directly.
type RadialAxis struct {
	AxisGeometry

	// Origin is the top left corner of the plot area in chart coordinates.
	Origin Point
}

var _ Axis = (*RadialAxis)(nil)

// NewAngularAxis returns an axis mapping [min, max] onto the pane's angle
// range. startDeg and endDeg are measured clockwise from 12 o'clock, like
// [Pane.StartAngle].
func NewAngularAxis(pane *Pane, origin Point, min, max, startDeg, endDeg float64) *RadialAxis {
	start := (startDeg - 90) * math.Pi / 180
	end := (endDeg - 90) * math.Pi / 180
	return &RadialAxis{
		AxisGeometry: AxisGeometry{
			Pane:       pane,
			Len:        end - start,
			Min:        min,
			Max:        max,
			StartAngle: start,
			EndAngle:   end,
		},
		Origin: origin,
	}
}

// NewRadiusAxis returns an axis mapping [min, max] onto the distance between
// the pane's inner and outer radius.
func NewRadiusAxis(pane *Pane, origin Point, min, max float64) *RadialAxis {
	start := (pane.StartAngle - 90) * math.Pi / 180
	return &RadialAxis{
		AxisGeometry: AxisGeometry{
			Pane:       pane,
			Len:        pane.Radius() - pane.InnerRadius(),
			Min:        min,
			Max:        max,
			StartAngle: start,
			EndAngle:   start + 2*math.Pi,
		},
		Origin: origin,
	}
}

func (a *RadialAxis) Geometry() AxisGeometry {
	g := a.AxisGeometry
	if g.Pane != nil {
		p := *g.Pane
		g.Pane = &p
	}
	return g
}

func (a *RadialAxis) Translate(v float64, backwards bool) (float64, bool) {
	span := a.Max - a.Min
	if math.IsNaN(v) || math.IsInf(v, 0) || span == 0 || math.IsNaN(span) {
		return 0, false
	}
	transA := a.Len / span
	sign, offset := 1.0, 0.0
	if a.Reversed {
		sign, offset = -1, a.Len
	}
	if backwards {
		return (v-offset)/sign/transA + a.Min, true
	}
	return sign*(v-a.Min)*transA + offset, true
}

func (a *RadialAxis) PostTranslate(angle, radius float64) Point {
	return pointOnCircle(a.PaneCenter(), radius, angle+a.StartAngle).Translate(Vec2(a.Origin))
}
