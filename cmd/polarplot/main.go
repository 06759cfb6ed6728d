// Command polarplot lays out a series of values on a polar chart and renders
// it as a PNG image, optionally also writing the series outline as SVG.
//
// Usage:
//
//	polarplot [flags] -data 1,4,2,8,5
//
// The flags are:
//
//	-data values
//		comma separated data values; empty entries are missing values
//	-style name
//		one of line, spline, area, column or radialbar (default "line")
//	-o file
//		PNG output file (default "polar.png")
//	-svg file
//		also write the series outline as an SVG document
//	-size pixels
//		width and height of the image (default 400)
//	-hole fraction
//		size of the pane's hole relative to its diameter
//	-inside
//		place radial bar labels inside their bars
//	-shared
//		search points by angle, as charts with a shared tooltip do
//	-v
//		log layout decisions to standard error
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/polar"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "polarplot:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("polarplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		data    = fs.String("data", "", "comma separated data values")
		styleS  = fs.String("style", string(styleLine), "chart style: line, spline, area, column or radialbar")
		out     = fs.String("o", "polar.png", "PNG output `file`")
		svgOut  = fs.String("svg", "", "SVG output `file`")
		size    = fs.Int("size", 400, "image size in `pixels`")
		hole    = fs.Float64("hole", 0, "relative size of the pane's hole")
		inside  = fs.Bool("inside", false, "place radial bar labels inside their bars")
		shared  = fs.Bool("shared", false, "search points by angle")
		verbose = fs.Bool("v", false, "log layout decisions")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		polar.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer polar.SetLogger(nil)
	}

	st, err := parseStyle(*styleS)
	if err != nil {
		return err
	}
	if *size <= 2*margin {
		return fmt.Errorf("image size %d is too small", *size)
	}
	if *hole < 0 || *hole >= 1 {
		return fmt.Errorf("hole %g is outside [0, 1)", *hole)
	}
	values, err := parseValues(*data)
	if err != nil {
		return fmt.Errorf("parsing data: %w", err)
	}

	p, err := buildPlot(values, chartOptions{
		style:  st,
		size:   *size,
		hole:   *hole,
		inside: *inside,
		shared: *shared,
	})
	if err != nil {
		return fmt.Errorf("building chart: %w", err)
	}

	if err := writePNG(*out, p); err != nil {
		return err
	}
	if *svgOut != "" {
		if err := writeSVG(*svgOut, p); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(name string, p *plot) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("writing image: %w", err)
	}
	if err := png.Encode(f, render(p)); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing image: %w", err)
	}
	return nil
}

func writeSVG(name string, p *plot) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}
	if err := encodeSVG(f, p); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}
	return nil
}
