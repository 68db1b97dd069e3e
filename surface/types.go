// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"
	"slices"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule uint8

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota

	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the SVG/Canvas name of the rule.
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt ends the stroke flush with the endpoint.
	LineCapButt LineCap = iota

	// LineCapRound adds a semicircle of diameter Width at each end.
	LineCapRound

	// LineCapSquare extends the stroke by half its width.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter extends the outer edges until they meet,
	// falling back to a bevel past MiterLimit.
	LineJoinMiter LineJoin = iota

	// LineJoinRound specifies a rounded join.
	LineJoinRound

	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// DefaultMiterLimit is the HTML canvas default miter limit.
const DefaultMiterLimit = 10.0

// FillStyle defines how to fill a path.
type FillStyle struct {
	// Color is the fill color. Nil means black.
	Color color.Color

	// Rule is the fill rule (NonZero or EvenOdd).
	Rule FillRule
}

// DefaultFillStyle returns a FillStyle with black color and non-zero rule.
func DefaultFillStyle() FillStyle {
	return FillStyle{
		Color: color.Black,
		Rule:  FillRuleNonZero,
	}
}

// WithColor returns a copy with the specified color.
func (f FillStyle) WithColor(c color.Color) FillStyle {
	f.Color = c
	return f
}

// WithRule returns a copy with the specified fill rule.
func (f FillStyle) WithRule(r FillRule) FillStyle {
	f.Rule = r
	return f
}

// StrokeStyle defines how to stroke a path.
type StrokeStyle struct {
	// Color is the stroke color. Nil means black.
	Color color.Color

	// Width is the line width in pixels. Non-positive widths paint nothing.
	Width float64

	// Cap is the line cap style.
	Cap LineCap

	// Join is the line join style.
	Join LineJoin

	// MiterLimit is the limit for miter joins.
	// Values below 1 select DefaultMiterLimit.
	MiterLimit float64

	// Dash defines the dash/gap pattern. Nil or empty means solid.
	Dash []float64

	// DashOffset is the starting offset into the dash pattern.
	DashOffset float64
}

// DefaultStrokeStyle returns a StrokeStyle matching the HTML canvas defaults:
// black, 1px, butt caps, miter joins, miter limit 10.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color:      color.Black,
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: DefaultMiterLimit,
	}
}

// WithColor returns a copy with the specified color.
func (s StrokeStyle) WithColor(c color.Color) StrokeStyle {
	s.Color = c
	return s
}

// WithWidth returns a copy with the specified width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// WithCap returns a copy with the specified cap style.
func (s StrokeStyle) WithCap(lineCap LineCap) StrokeStyle {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy with the specified join style.
func (s StrokeStyle) WithJoin(join LineJoin) StrokeStyle {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy with the specified miter limit.
func (s StrokeStyle) WithMiterLimit(limit float64) StrokeStyle {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy with the specified dash pattern.
// The pattern slice is copied.
func (s StrokeStyle) WithDash(pattern []float64, offset float64) StrokeStyle {
	s.Dash = slices.Clone(pattern)
	s.DashOffset = offset
	return s
}

// IsDashed returns true if this style has a dash pattern.
func (s StrokeStyle) IsDashed() bool {
	return len(s.Dash) > 0
}

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}
