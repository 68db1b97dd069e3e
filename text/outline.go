package text

import (
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/graphview/surface"
)

// AppendOutline appends the outlines of run to path with the run origin at
// (x, y) on the baseline. Each glyph contour is closed, so the result is
// ready for a non-zero Fill. Glyphs the font cannot load are skipped.
func (f *Face) AppendOutline(path *surface.Path, run *Run, x, y float64) {
	if run == nil || len(run.Glyphs) == 0 {
		return
	}

	src := f.src
	buf := src.buffer()
	defer src.release(buf)
	ppem := toFixed(f.size)

	for _, g := range run.Glyphs {
		segs, err := src.font.LoadGlyph(buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			continue
		}
		ox, oy := x+g.X, y+g.Y
		open := false
		for _, seg := range segs {
			a := seg.Args
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					path.Close()
				}
				path.MoveTo(ox+fromFixed(a[0].X), oy+fromFixed(a[0].Y))
				open = true
			case sfnt.SegmentOpLineTo:
				path.LineTo(ox+fromFixed(a[0].X), oy+fromFixed(a[0].Y))
			case sfnt.SegmentOpQuadTo:
				path.QuadTo(
					ox+fromFixed(a[0].X), oy+fromFixed(a[0].Y),
					ox+fromFixed(a[1].X), oy+fromFixed(a[1].Y),
				)
			case sfnt.SegmentOpCubeTo:
				path.CubicTo(
					ox+fromFixed(a[0].X), oy+fromFixed(a[0].Y),
					ox+fromFixed(a[1].X), oy+fromFixed(a[1].Y),
					ox+fromFixed(a[2].X), oy+fromFixed(a[2].Y),
				)
			}
		}
		if open {
			path.Close()
		}
	}
}
