package graphview

// Segment is a straight line between two points.
type Segment struct {
	From, To Point
}

// Chevron is the open arrowhead polyline WingA -> Tip -> WingB.
type Chevron struct {
	WingA, Tip, WingB Point
}

// RetractSegment moves from toward to by marginFrom and to toward from by
// marginTo, measured along the segment. Margins are not clamped; margins
// larger than the segment make the ends cross.
//
// It returns false when from and to coincide.
func RetractSegment(from, to Point, marginFrom, marginTo float64) (Segment, bool) {
	d := to.Sub(from)
	l := d.Length()
	if l == 0 {
		return Segment{}, false
	}
	return Segment{
		From: Point{X: from.X + d.X*marginFrom/l, Y: from.Y + d.Y*marginFrom/l},
		To:   Point{X: to.X - d.X*marginTo/l, Y: to.Y - d.Y*marginTo/l},
	}, true
}

// ArrowChevron builds the arrowhead for an arrow from -> to whose tip is
// retracted by marginTo. The base sits arrowLength back from the tip along
// the shaft and each wing is offset arrowWidth perpendicular to it; WingA is
// on the left of the direction of travel in screen space.
//
// It returns false when from and to coincide, or when the retracted shaft
// has zero length.
func ArrowChevron(from, to Point, marginTo, arrowLength, arrowWidth float64) (Chevron, bool) {
	d := to.Sub(from)
	l := d.Length()
	if l == 0 {
		return Chevron{}, false
	}

	tip := Point{X: to.X - d.X*marginTo/l, Y: to.Y - d.Y*marginTo/l}
	l -= marginTo
	if l == 0 {
		return Chevron{}, false
	}

	d = tip.Sub(from)
	base := Point{X: tip.X - d.X*arrowLength/l, Y: tip.Y - d.Y*arrowLength/l}
	return Chevron{
		WingA: Point{X: base.X + arrowWidth*d.Y/l, Y: base.Y - arrowWidth*d.X/l},
		Tip:   tip,
		WingB: Point{X: base.X - arrowWidth*d.Y/l, Y: base.Y + arrowWidth*d.X/l},
	}, true
}
