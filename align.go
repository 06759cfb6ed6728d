package polar

import "math"

// HAlign is the horizontal alignment of a label relative to its anchor.
type HAlign uint8

const (
	// HAlignUnset leaves the choice to the engine.
	HAlignUnset HAlign = iota
	HAlignLeft
	HAlignCenter
	HAlignRight
)

func (a HAlign) String() string {
	switch a {
	case HAlignUnset:
		return "unset"
	case HAlignLeft:
		return "left"
	case HAlignCenter:
		return "center"
	case HAlignRight:
		return "right"
	default:
		return "invalid"
	}
}

// VAlign is the vertical alignment of a label relative to its anchor.
type VAlign uint8

const (
	// VAlignUnset leaves the choice to the engine.
	VAlignUnset VAlign = iota
	VAlignTop
	VAlignMiddle
	VAlignBottom
)

func (a VAlign) String() string {
	switch a {
	case VAlignUnset:
		return "unset"
	case VAlignTop:
		return "top"
	case VAlignMiddle:
		return "middle"
	case VAlignBottom:
		return "bottom"
	default:
		return "invalid"
	}
}

type Alignment struct {
	Align         HAlign
	VerticalAlign VAlign
}

// ResolveAlignment picks the alignment of a label placed outside the circle
// at the given angle, in degrees clockwise from 12 o'clock. Labels on the
// right hemisphere are left aligned, labels near the top are bottom aligned,
// and so on. Fields already set in a are kept.
func ResolveAlignment(angle float64, a Alignment) Alignment {
	if a.Align == HAlignUnset {
		switch {
		case angle > 20 && angle < 160:
			a.Align = HAlignLeft
		case angle > 200 && angle < 340:
			a.Align = HAlignRight
		default:
			a.Align = HAlignCenter
		}
	}
	if a.VerticalAlign == VAlignUnset {
		switch {
		case angle < 45 || angle > 315:
			a.VerticalAlign = VAlignBottom
		case angle > 135 && angle < 225:
			a.VerticalAlign = VAlignTop
		default:
			a.VerticalAlign = VAlignMiddle
		}
	}
	return a
}

// LabelOptions configure the data label of a column point.
type LabelOptions struct {
	Alignment
	// Inside places labels of radial bars inside their sector. Nil means
	// inside for stacked series only.
	Inside *bool
}

// LabelPlacement is where and how a data label is drawn.
type LabelPlacement struct {
	Alignment
	// Anchor is the position the label is aligned to, relative to the plot
	// area.
	Anchor Point
	// Visible is false for labels of empty radial bars.
	Visible bool
	// Force is set for radial bar labels whose point lies inside the plot
	// area; they are drawn even if they would normally be culled.
	Force bool
}

// AlignLabel places the data label of a column point. On non-inverted charts
// labels sit outside the perimeter, aligned by the point's angle. On
// inverted charts labels are centered, either inside the sector or at the
// tooltip anchor.
//
// AlignLabel must run after [State.ArcFor].
func (st *State) AlignLabel(p *DataPoint, opts LabelOptions) LabelPlacement {
	s := st.series
	chart := s.Chart
	pl := LabelPlacement{
		Alignment: opts.Alignment,
		Anchor:    p.Pos,
		Visible:   true,
	}

	if !chart.Inverted {
		pl.Alignment = ResolveAlignment(p.RectAngle/math.Pi*180, opts.Alignment)
		return pl
	}

	plot := Rect{X1: chart.PlotArea.Width(), Y1: chart.PlotArea.Height()}
	pl.Force = plot.Contains(Pt(p.Pos.X, math.Round(p.Pos.Y)))

	inside := s.Options.Stacking
	if opts.Inside != nil {
		inside = *opts.Inside
	}
	switch {
	case inside && p.Shape != nil:
		angle := (p.Shape.StartAngle+p.Shape.EndAngle)/2 - s.XAxis.Geometry().StartAngle
		barX := p.BarX + s.YAxis.Geometry().PaneInnerRadius()
		pos := s.YAxis.PostTranslate(angle, barX+p.PointWidth/2)
		pl.Anchor = pos.Translate(chart.origin().Negate())
	default:
		pl.Anchor = p.TooltipPos
	}

	if pl.Align == HAlignUnset {
		pl.Align = HAlignCenter
	}
	if pl.VerticalAlign == VAlignUnset {
		pl.VerticalAlign = VAlignMiddle
	}

	if s.radialBar && p.Shape != nil && p.Shape.StartAngle == p.Shape.EndAngle {
		pl.Visible = false
	}
	return pl
}
