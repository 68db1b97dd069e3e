// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/graphview/internal/logging"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Fills and strokes are rasterized by rasterx with anti-aliasing; strokes
// support butt/round/square caps, miter/round/bevel joins and dashes.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	path := surface.NewPath()
//	path.Circle(400, 300, 100)
//	s.Fill(path, surface.FillStyle{Color: color.RGBA{255, 0, 0, 255}})
//
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// filler and dasher share one scanner; every call clears it first.
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher

	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// Negative dimensions are clamped to zero.
func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{}
	s.attach(image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))))
	return s
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface renders into the provided image directly; path coordinate
// (0, 0) maps to img.Bounds().Min.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	s := &ImageSurface{}
	s.attach(img)
	return s
}

// attach rebuilds the rasterizers for img.
func (s *ImageSurface) attach(img *image.RGBA) {
	bounds := img.Bounds()
	s.img = img
	s.width = bounds.Dx()
	s.height = bounds.Dy()
	s.scanner = rasterx.NewScannerGV(s.width, s.height, img, bounds)
	s.filler = rasterx.NewFiller(s.width, s.height, s.scanner)
	s.dasher = rasterx.NewDasher(s.width, s.height, s.scanner)
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Resize replaces the pixel buffer with a transparent one of the new size.
func (s *ImageSurface) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if s.closed {
		return ErrClosed
	}

	s.attach(image.NewRGBA(image.Rect(0, 0, width, height)))
	logging.Logger().Debug("surface: resized", "width", width, "height", height)
	return nil
}

// Clear fills the entire surface with the given color, replacing
// (not blending over) whatever was there.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	if c == nil {
		c = color.Transparent
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Fill fills the given path using the specified style.
func (s *ImageSurface) Fill(path *Path, style FillStyle) {
	if s.closed || path == nil || path.IsEmpty() {
		return
	}

	s.filler.Clear()
	s.filler.SetWinding(style.Rule != FillRuleEvenOdd)
	s.filler.SetColor(resolveColor(style.Color))
	addPath(s.filler, path)
	s.filler.Draw()
	s.filler.SetWinding(true)
}

// Stroke strokes the given path using the specified style.
// Strokes with a non-positive or NaN width paint nothing.
func (s *ImageSurface) Stroke(path *Path, style StrokeStyle) {
	if s.closed || path == nil || path.IsEmpty() {
		return
	}
	if !(style.Width > 0) {
		logging.Logger().Debug("surface: stroke skipped", "width", style.Width)
		return
	}

	limit := style.MiterLimit
	if limit < 1 {
		limit = DefaultMiterLimit
	}
	capFn := capFunc(style.Cap)

	s.dasher.Clear()
	s.dasher.SetStroke(
		toFixed(style.Width), toFixed(limit), capFn, capFn,
		gapFunc(style.Join), joinMode(style.Join), style.Dash, style.DashOffset,
	)
	s.dasher.SetColor(resolveColor(style.Color))
	addPath(s.dasher, path)
	s.dasher.Draw()
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(result, result.Bounds(), s.img, s.img.Bounds().Min, draw.Src)
	return result
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.scanner = nil
	s.filler = nil
	s.dasher = nil
	return nil
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// addPath feeds a Path to a rasterx adder. Open subpaths are stopped without
// closing so that strokes get caps; fillers close them implicitly.
func addPath(a rasterx.Adder, path *Path) {
	open := false
	var start Point

	reopen := func() {
		if !open {
			a.Start(toFixedP(start))
			open = true
		}
	}

	for verb, pts := range path.All() {
		switch verb {
		case VerbMoveTo:
			if open {
				a.Stop(false)
			}
			start = pts[0]
			a.Start(toFixedP(start))
			open = true
		case VerbLineTo:
			reopen()
			a.Line(toFixedP(pts[0]))
		case VerbQuadTo:
			reopen()
			a.QuadBezier(toFixedP(pts[0]), toFixedP(pts[1]))
		case VerbCubicTo:
			reopen()
			a.CubeBezier(toFixedP(pts[0]), toFixedP(pts[1]), toFixedP(pts[2]))
		case VerbClose:
			if open {
				a.Stop(true)
				open = false
			}
		}
	}
	if open {
		a.Stop(false)
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func toFixedP(p Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}

// resolveColor maps a nil color to black.
func resolveColor(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}

func capFunc(c LineCap) rasterx.CapFunc {
	switch c {
	case LineCapRound:
		return rasterx.RoundCap
	case LineCapSquare:
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

func joinMode(j LineJoin) rasterx.JoinMode {
	switch j {
	case LineJoinRound:
		return rasterx.Round
	case LineJoinBevel:
		return rasterx.Bevel
	default:
		return rasterx.Miter
	}
}

func gapFunc(j LineJoin) rasterx.GapFunc {
	if j == LineJoinRound {
		return rasterx.RoundGap
	}
	return rasterx.FlatGap
}

// Verify ImageSurface implements Surface interface.
var _ Surface = (*ImageSurface)(nil)
