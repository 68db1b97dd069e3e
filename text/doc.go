// Package text turns strings into filled glyph outlines for graphview.
//
// The pipeline has three steps:
//
//   - Descriptor parsing: CSS font shorthand such as "bold 12px sans-serif"
//     or "14px Consolas, monospace" (ParseDescriptor)
//   - Font resolution: a Library maps family names and generic families to
//     font data; DefaultLibrary embeds the Go fonts (Go Mono for monospace,
//     Go Regular for sans-serif and serif)
//   - Shaping and outlines: Face.Shape runs HarfBuzz shaping through
//     go-text/typesetting, Face.AppendOutline converts the shaped glyphs into a
//     surface.Path ready to be filled
//
// Quick start:
//
//	face, err := text.DefaultLibrary().FaceFor("14px monospace")
//	if err != nil {
//	    return err
//	}
//	run := face.Shape("hello")
//	path := surface.NewPath()
//	face.AppendOutline(path, run, 10, 20) // baseline origin at (10, 20)
//	s.Fill(path, surface.DefaultFillStyle())
//
// Coordinates follow the surface convention: origin at the top-left, y grows
// downward. Run origins are the left end of the alphabetic baseline.
package text
