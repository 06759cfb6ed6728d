package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"honnef.co/go/polar"
)

// style is the kind of chart to build from the command line.
type style string

const (
	styleLine      style = "line"
	styleSpline    style = "spline"
	styleArea      style = "area"
	styleColumn    style = "column"
	styleRadialBar style = "radialbar"
)

func parseStyle(s string) (style, error) {
	switch st := style(s); st {
	case styleLine, styleSpline, styleArea, styleColumn, styleRadialBar:
		return st, nil
	default:
		return "", fmt.Errorf("unknown chart style %q", s)
	}
}

func (st style) kind() polar.Kind {
	switch st {
	case styleSpline:
		return polar.Spline
	case styleArea:
		return polar.Area
	case styleColumn, styleRadialBar:
		return polar.Column
	default:
		return polar.Line
	}
}

var errNoData = errors.New("no data values")

// parseValues parses a comma separated list of numbers. Empty entries and
// "null" become missing values.
func parseValues(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errNoData
	}
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || f == "null" {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

type chartOptions struct {
	style  style
	size   int
	hole   float64
	shared bool
	// inside places radial bar labels inside their sector.
	inside bool
}

// plot is a laid out chart, ready to be rendered.
type plot struct {
	opts   chartOptions
	chart  *polar.Chart
	series *polar.Series
	labels []string
}

// margin is the space between the image border and the plot area.
const margin = 20

// buildPlot lays out a single series of values.
func buildPlot(values []float64, opts chartOptions) (*plot, error) {
	if len(values) == 0 {
		return nil, errNoData
	}
	maxV := 0.0
	for _, v := range values {
		if !math.IsNaN(v) {
			maxV = max(maxV, v)
		}
	}
	if maxV == 0 {
		maxV = 1
	}
	// Leave some headroom between the largest value and the perimeter.
	maxV *= 1.1

	size := float64(opts.size)
	plotSize := size - 2*margin
	pane := &polar.Pane{
		Center:        polar.Pt(plotSize/2, plotSize/2),
		Diameter:      plotSize * 0.8,
		InnerDiameter: plotSize * 0.8 * opts.hole,
	}
	origin := polar.Pt(margin, margin)
	chart := &polar.Chart{
		Polar:         true,
		Inverted:      opts.style == styleRadialBar,
		PlotArea:      polar.Rect{X0: margin, Y0: margin, X1: size - margin, Y1: size - margin},
		SharedTooltip: opts.shared,
	}
	s := &polar.Series{
		Chart: chart,
		Kind:  opts.style.kind(),
	}

	n := float64(len(values))
	var x, y *polar.RadialAxis
	if chart.Inverted {
		x = polar.NewRadiusAxis(pane, origin, 0, n)
		y = polar.NewAngularAxis(pane, origin, 0, maxV, 0, 360)
	} else {
		x = polar.NewAngularAxis(pane, origin, 0, n, 0, 360)
		y = polar.NewRadiusAxis(pane, origin, 0, maxV)
	}
	s.XAxis, s.YAxis = x, y
	st := polar.Attach(s)

	labels := make([]string, len(values))
	for i, v := range values {
		p := polar.NewPoint(float64(i), v)
		if !p.IsNull {
			labels[i] = strconv.FormatFloat(v, 'g', 4, 64)
		}
		placePoint(p, x, y, chart.Inverted)
		s.Points = append(s.Points, p)
	}

	if s.Kind.IsColumn() {
		st.TranslateColumns()
	} else {
		st.Translate()
	}
	return &plot{opts: opts, chart: chart, series: s, labels: labels}, nil
}

// placePoint is the host's own translation of a point into rectangular
// space, which the engine then bends around the circle.
func placePoint(p *polar.DataPoint, x, y *polar.RadialAxis, inverted bool) {
	start, _ := x.Translate(p.X, false)
	end, _ := x.Translate(p.X+1, false)
	band := end - start
	pad := band * 0.1

	p.BarX = start + pad
	p.PointWidth = band - 2*pad
	if inverted {
		// Radial bars: x is the distance from the inner edge, the engine
		// computes the angle from the data value.
		p.Angle = p.BarX + p.PointWidth/2
		return
	}
	p.Angle = start + band/2
	if r, ok := y.Translate(p.Y, false); ok {
		p.Radial = y.Len - r
	} else {
		p.Radial = math.NaN()
	}
}
