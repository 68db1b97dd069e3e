// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the raster target that graphview paints onto.
//
// A Surface is a fixed-size, pixel-addressable canvas with a small drawing
// capability: clear to a color, fill a path, stroke a path. Everything the
// graph renderer draws (edges, arrowheads, node discs, margin brackets and
// glyph outlines) reduces to those three primitives.
//
// # Surface Types
//
//   - ImageSurface: CPU rendering into an *image.RGBA using rasterx
//     (anti-aliased fills, strokes with caps, joins and dashes)
//   - RecordingSurface: captures every call as a Command and optionally
//     forwards it to another Surface
//
// # Usage
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//
//	path := surface.NewPath()
//	path.MoveTo(100, 100)
//	path.LineTo(200, 100)
//	path.LineTo(150, 200)
//	path.Close()
//
//	s.Fill(path, surface.FillStyle{Color: color.RGBA{255, 0, 0, 255}})
//	_ = surface.SavePNG("out.png", s)
//
// # Backends
//
// Surfaces can also be created by name through the backend registry:
//
//	s, err := surface.New("image", 800, 600)
//
// Surfaces are NOT thread-safe.
package surface
