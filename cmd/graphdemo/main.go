// Command graphdemo draws a small graph with every graphview primitive and
// saves it as a PNG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/graphview"
	"github.com/gogpu/graphview/surface"
)

func main() {
	if err := run(os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, draws the demo graph and writes the output file.
func run(logW io.Writer, args []string) error {
	fs := flag.NewFlagSet("graphdemo", flag.ContinueOnError)
	fs.SetOutput(logW)
	var (
		width     = fs.Int("width", 640, "image width")
		height    = fs.Int("height", 360, "image height")
		output    = fs.String("output", "graph.png", "output file")
		themePath = fs.String("theme", "", "HCL theme file")
		backend   = fs.String("backend", "image", "surface backend")
		verbose   = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logW, &slog.HandlerOptions{Level: level}))
	graphview.SetLogger(logger)
	defer graphview.SetLogger(nil)

	theme := graphview.DefaultTheme()
	if *themePath != "" {
		t, err := graphview.LoadTheme(*themePath)
		if err != nil {
			return err
		}
		theme = t
	}

	s, err := surface.New(*backend, 0, 0)
	if err != nil {
		return fmt.Errorf("available backends %v: %w", surface.Backends(), err)
	}
	defer s.Close()

	r := graphview.NewRenderer(s, graphview.WithTheme(theme))
	if err := r.Resize(*width, *height); err != nil {
		return err
	}
	drawGraph(r)

	if err := surface.SavePNG(*output, s); err != nil {
		return fmt.Errorf("failed to save %s: %w", *output, err)
	}
	logger.Info("demo saved", "file", *output, "width", *width, "height", *height)
	return nil
}

type demoNode struct {
	label string
	at    graphview.Point
	fill  string
}

// drawGraph paints a four-node graph with a caption and margin brackets.
func drawGraph(r *graphview.Renderer) {
	const (
		radius = 22.0
		font   = "bold 14px monospace"
	)
	w, h := float64(r.Width()), float64(r.Height())

	nodes := []demoNode{
		{"A", graphview.Pt(w*0.2, h*0.35), "lightblue"},
		{"B", graphview.Pt(w*0.5, h*0.2), "#ffd27f"},
		{"C", graphview.Pt(w*0.5, h*0.65), "rgb(170, 230, 170)"},
		{"D", graphview.Pt(w*0.8, h*0.45), "lavender"},
	}
	edges := [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {1, 2}}

	for _, e := range edges {
		from, to := nodes[e[0]].at, nodes[e[1]].at
		r.DrawLine(from, to, radius, radius+1, 1.5, "dimgray")
		r.DrawArrow(from, to, radius+1, 10, 5, 1.5, "dimgray")
	}
	for _, n := range nodes {
		r.DrawNode(n.label, n.at, radius, 2, font, n.fill)
	}

	caption := "graphview demo: A -> {B, C} -> D"
	cw, ch := r.MeasureText(caption)
	origin := graphview.Pt((w-cw)/2, h-24)
	r.DrawText(origin, caption)

	top := graphview.Pt(origin.X-6, origin.Y-ch+4)
	r.DrawVMargin(top, ch, "gray")
	r.DrawHMargin(graphview.Pt(origin.X, origin.Y+6), cw, "gray")
}
