package graphview

import (
	"image/color"
	"math"

	"github.com/gogpu/graphview/surface"
	"github.com/gogpu/graphview/text"
)

// Renderer paints graph primitives onto a surface.Surface.
//
// All coordinates are surface pixels with the origin at the top-left.
// Drawing operations never return errors: degenerate geometry paints
// nothing, unknown color tokens fall back to the theme border color and
// unknown fonts to the theme text font.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	surface surface.Surface
	width   int
	height  int

	theme   Theme
	library *text.Library

	textFace *text.Face
	faces    map[string]*text.Face
	colors   map[string]color.Color

	// path is reused by every drawing call.
	path *surface.Path
}

// NewRenderer creates a renderer for s, which must not be nil.
// It records the surface size and draws nothing.
func NewRenderer(s surface.Surface, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.library == nil {
		o.library = text.DefaultLibrary()
	}

	r := &Renderer{
		surface: s,
		width:   s.Width(),
		height:  s.Height(),
		theme:   o.theme,
		library: o.library,
		faces:   make(map[string]*text.Face),
		colors:  make(map[string]color.Color),
		path:    surface.NewPath(),
	}
	r.textFace = r.resolveFace(o.theme.TextFont, text.DefaultFace)
	return r
}

// Surface returns the surface the renderer draws on.
func (r *Renderer) Surface() surface.Surface {
	return r.surface
}

// Width returns the surface width recorded at construction or the last Resize.
func (r *Renderer) Width() int {
	return r.width
}

// Height returns the surface height recorded at construction or the last Resize.
func (r *Renderer) Height() int {
	return r.height
}

// Size returns Width and Height.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// Resize sets the surface size and clears it to the background color.
// Negative sizes are rejected with surface.ErrInvalidSize and leave the
// renderer unchanged.
func (r *Renderer) Resize(width, height int) error {
	if err := r.surface.Resize(width, height); err != nil {
		return err
	}
	r.width, r.height = width, height
	r.Clear()
	return nil
}

// Clear paints the whole surface with the theme background color.
func (r *Renderer) Clear() {
	r.surface.Clear(r.color(r.theme.BackgroundColor))
}

// DrawLine strokes the segment from -> to after retracting each end by its
// margin along the segment. Coincident endpoints paint nothing.
func (r *Renderer) DrawLine(from, to Point, marginFrom, marginTo, strokeWidth float64, color string) {
	seg, ok := RetractSegment(from, to, marginFrom, marginTo)
	if !ok {
		Logger().Debug("graphview: zero-length line skipped", "x", from.X, "y", from.Y)
		return
	}

	r.path.Clear()
	r.path.MoveTo(seg.From.X, seg.From.Y)
	r.path.LineTo(seg.To.X, seg.To.Y)
	r.surface.Stroke(r.path, r.strokeStyle(color, strokeWidth))
}

// DrawArrow strokes the open arrowhead of an arrow from -> to, with the tip
// retracted by marginTo. The shaft is not drawn; pair it with DrawLine.
// A zero-length arrow, before or after retraction, paints nothing.
func (r *Renderer) DrawArrow(from, to Point, marginTo, arrowLength, arrowWidth, lineWidth float64, color string) {
	ch, ok := ArrowChevron(from, to, marginTo, arrowLength, arrowWidth)
	if !ok {
		Logger().Debug("graphview: zero-length arrow skipped",
			"x", to.X, "y", to.Y, "margin", marginTo)
		return
	}

	r.path.Clear()
	r.path.MoveTo(ch.WingA.X, ch.WingA.Y)
	r.path.LineTo(ch.Tip.X, ch.Tip.Y)
	r.path.LineTo(ch.WingB.X, ch.WingB.Y)
	r.surface.Stroke(r.path, r.strokeStyle(color, lineWidth))
}

// DrawNode fills a circle with fillColor and outlines it in the theme
// border color. When font is not empty, label is drawn in the theme text
// color, centered on center.X with its baseline LabelBias below center.Y.
func (r *Renderer) DrawNode(label string, center Point, radius, strokeWidth float64, font, fillColor string) {
	r.path.Clear()
	r.path.Circle(center.X, center.Y, math.Abs(radius))
	r.surface.Fill(r.path, surface.FillStyle{Color: r.color(fillColor), Rule: surface.FillRuleNonZero})
	r.surface.Stroke(r.path, r.strokeStyle(r.theme.BorderColor, strokeWidth))

	if font == "" {
		return
	}
	face := r.face(font)
	run := face.Shape(label)
	r.fillText(face, run, center.X-run.Advance/2, center.Y+r.theme.LabelBias)
}

// DrawVMargin strokes a bracket opening to the right, with its top-right
// corner at topRight:
//
//	(x, y) -> (x-depth, y) -> (x-depth, y+height) -> (x, y+height)
//
// It returns the size of the area used, (depth, height).
func (r *Renderer) DrawVMargin(topRight Point, height float64, color string) (w, h float64) {
	x, y := topRight.X, topRight.Y
	depth := r.theme.MarginDepth

	r.path.Clear()
	r.path.MoveTo(x, y)
	r.path.LineTo(x-depth, y)
	r.path.LineTo(x-depth, y+height)
	r.path.LineTo(x, y+height)
	r.surface.Stroke(r.path, r.strokeStyle(color, r.theme.MarginLineWidth))
	return depth, height
}

// DrawHMargin strokes a bracket opening upward, hanging from topRight:
//
//	(x, y) -> (x, y+depth) -> (x+width, y+depth) -> (x+width, y)
//
// It returns the size of the area used, (width, depth).
func (r *Renderer) DrawHMargin(topRight Point, width float64, color string) (w, h float64) {
	x, y := topRight.X, topRight.Y
	depth := r.theme.MarginDepth

	r.path.Clear()
	r.path.MoveTo(x, y)
	r.path.LineTo(x, y+depth)
	r.path.LineTo(x+width, y+depth)
	r.path.LineTo(x+width, y)
	r.surface.Stroke(r.path, r.strokeStyle(color, r.theme.MarginLineWidth))
	return width, depth
}

// MeasureText returns the advance width of s in the theme text font and the
// font's ascent plus descent. The height does not depend on s.
func (r *Renderer) MeasureText(s string) (w, h float64) {
	return r.textFace.Measure(s)
}

// DrawText draws s left-aligned with its baseline starting at at, in the
// theme text font and color, and returns MeasureText(s).
// The area behind the text is not cleared.
func (r *Renderer) DrawText(at Point, s string) (w, h float64) {
	w, h = r.MeasureText(s)
	r.fillText(r.textFace, r.textFace.Shape(s), at.X, at.Y)
	return w, h
}

// fillText fills the outlines of run with its baseline origin at (x, y).
func (r *Renderer) fillText(face *text.Face, run *text.Run, x, y float64) {
	r.path.Clear()
	face.AppendOutline(r.path, run, x, y)
	if r.path.IsEmpty() {
		return
	}
	r.surface.Fill(r.path, surface.FillStyle{
		Color: r.color(r.theme.TextColor),
		Rule:  surface.FillRuleNonZero,
	})
}

func (r *Renderer) strokeStyle(token string, width float64) surface.StrokeStyle {
	return surface.StrokeStyle{
		Color:      r.color(token),
		Width:      width,
		Cap:        surface.LineCapButt,
		Join:       surface.LineJoinMiter,
		MiterLimit: r.theme.MiterLimit,
	}
}

// color resolves a color token, caching the result. Unknown tokens resolve
// to the theme border color, or black if that is unknown too.
func (r *Renderer) color(token string) color.Color {
	if c, ok := r.colors[token]; ok {
		return c
	}

	rgba, err := ParseColor(token)
	if err != nil {
		Logger().Warn("graphview: unknown color, using border color",
			"color", token, "border", r.theme.BorderColor, "error", err)
		rgba, err = ParseColor(r.theme.BorderColor)
		if err != nil {
			rgba = Black
		}
	}
	c := rgba.Color()
	r.colors[token] = c
	return c
}

// face resolves a font descriptor, caching the result. Unknown or malformed
// descriptors resolve to the theme text font.
func (r *Renderer) face(descriptor string) *text.Face {
	if descriptor == r.theme.TextFont {
		return r.textFace
	}
	return r.resolveFace(descriptor, func() *text.Face { return r.textFace })
}

func (r *Renderer) resolveFace(descriptor string, fallback func() *text.Face) *text.Face {
	if f, ok := r.faces[descriptor]; ok {
		return f
	}
	f, err := r.library.FaceFor(descriptor)
	if err != nil {
		Logger().Warn("graphview: unusable font, using fallback",
			"font", descriptor, "error", err)
		f = fallback()
	}
	r.faces[descriptor] = f
	return f
}
