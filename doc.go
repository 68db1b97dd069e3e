// Package graphview paints node-and-edge graphs onto a raster surface.
//
// # Overview
//
// graphview is an immediate-mode drawing layer: it owns no graph data, no
// layout and no interaction. A Renderer turns geometric parameters (lines
// with end margins, arrowheads, labeled circular nodes, margin brackets,
// text) into fills and strokes on a surface.Surface.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/graphview"
//	    "github.com/gogpu/graphview/surface"
//	)
//
//	s := surface.NewImageSurface(400, 300)
//	r := graphview.NewRenderer(s)
//	r.Clear()
//
//	a, b := graphview.Pt(80, 150), graphview.Pt(320, 150)
//	r.DrawLine(a, b, 20, 20, 1, "black")
//	r.DrawArrow(a, b, 20, 10, 5, 1, "black")
//	r.DrawNode("A", a, 20, 1, "14px monospace", "lightblue")
//	r.DrawNode("B", b, 20, 1, "14px monospace", "lightblue")
//
//	_ = surface.SavePNG("graph.png", s)
//
// # Coordinate System
//
// Coordinates are surface pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// There are no transforms; pan and zoom belong to the caller.
//
// # Colors and Fonts
//
// Colors are CSS tokens ("black", "#3366ff", "rgba(0, 0, 0, 0.5)"); see
// ParseColor. Fonts are CSS shorthand descriptors ("14px monospace"),
// resolved by a text.Library. Neither is reported as an error while
// drawing: unknown values fall back to the Theme.
//
// # Themes
//
// The fixed styling (border, background and text colors, the text font,
// label placement, bracket size) lives in a Theme. DefaultTheme matches the
// classic look; LoadTheme reads overrides from an HCL file.
package graphview
