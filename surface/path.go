// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"iter"
	"math"
)

// Verb identifies a path command.
type Verb uint8

const (
	// VerbMoveTo starts a new subpath. One point.
	VerbMoveTo Verb = iota
	// VerbLineTo adds a straight segment. One point.
	VerbLineTo
	// VerbQuadTo adds a quadratic Bezier. Control point, end point.
	VerbQuadTo
	// VerbCubicTo adds a cubic Bezier. Two control points, end point.
	VerbCubicTo
	// VerbClose closes the current subpath. No points.
	VerbClose
)

// pointCount returns how many points the verb consumes.
func (v Verb) pointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// String returns the verb name.
func (v Verb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// circleKappa is the cubic Bezier control distance for a quarter circle.
const circleKappa = 0.5522847498307936

// Path represents a vector path for drawing operations.
//
// Coordinates are kept in float64 so that the endpoints a caller passes in
// are exactly the endpoints a Surface receives.
//
// Example:
//
//	p := surface.NewPath()
//	p.MoveTo(100, 100)
//	p.LineTo(200, 100)
//	p.LineTo(150, 200)
//	p.Close()
type Path struct {
	verbs  []Verb
	points []Point
	start  Point
	cur    Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 8),
		points: make([]Point, 0, 16),
	}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, Point{X: x, Y: y})
	p.start = Point{X: x, Y: y}
	p.cur = p.start
}

// LineTo adds a line from the current point to (x, y).
// On an empty path it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, Point{X: x, Y: y})
	p.cur = Point{X: x, Y: y}
}

// QuadTo adds a quadratic Bezier curve from the current point.
// (cx, cy) is the control point, (x, y) is the endpoint.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(cx, cy)
	}
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, Point{X: cx, Y: cy}, Point{X: x, Y: y})
	p.cur = Point{X: x, Y: y}
}

// CubicTo adds a cubic Bezier curve from the current point.
// (c1x, c1y) and (c2x, c2y) are control points, (x, y) is the endpoint.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(c1x, c1y)
	}
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, Point{X: c1x, Y: c1y}, Point{X: c2x, Y: c2y}, Point{X: x, Y: y})
	p.cur = Point{X: x, Y: y}
}

// Close closes the current subpath by connecting to the start point.
func (p *Path) Close() {
	if len(p.verbs) == 0 {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
	p.cur = p.start
}

// Clear removes all elements from the path, keeping its storage.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start, p.cur = Point{}, Point{}
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb slice. The slice must not be modified.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Points returns the point slice. The slice must not be modified.
func (p *Path) Points() []Point {
	return p.points
}

// All iterates over the path commands together with the points each consumes.
// The point slice is only valid for the duration of the callback.
func (p *Path) All() iter.Seq2[Verb, []Point] {
	return func(yield func(Verb, []Point) bool) {
		idx := 0
		for _, v := range p.verbs {
			n := v.pointCount()
			if !yield(v, p.points[idx:idx+n]) {
				return
			}
			idx += n
		}
	}
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	clone := &Path{
		verbs:  make([]Verb, len(p.verbs)),
		points: make([]Point, len(p.points)),
		start:  p.start,
		cur:    p.cur,
	}
	copy(clone.verbs, p.verbs)
	copy(clone.points, p.points)
	return clone
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.cur
}

// Append adds all commands of q to p, translated by (dx, dy).
func (p *Path) Append(q *Path, dx, dy float64) {
	for v, pts := range q.All() {
		switch v {
		case VerbMoveTo:
			p.MoveTo(pts[0].X+dx, pts[0].Y+dy)
		case VerbLineTo:
			p.LineTo(pts[0].X+dx, pts[0].Y+dy)
		case VerbQuadTo:
			p.QuadTo(pts[0].X+dx, pts[0].Y+dy, pts[1].X+dx, pts[1].Y+dy)
		case VerbCubicTo:
			p.CubicTo(pts[0].X+dx, pts[0].Y+dy, pts[1].X+dx, pts[1].Y+dy, pts[2].X+dx, pts[2].Y+dy)
		case VerbClose:
			p.Close()
		}
	}
}

// Rectangle adds a closed rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a closed circle to the path, built from four cubic arcs
// starting at angle 0 and running clockwise in screen space.
func (p *Path) Circle(cx, cy, r float64) {
	offset := r * circleKappa

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Bounds returns the axis-aligned bounding box of all path points,
// control points included. Returns zeros for an empty path.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.points) == 0 {
		return 0, 0, 0, 0
	}

	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, pt := range p.points {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return minX, minY, maxX, maxY
}
