// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Surface is the rendering target abstraction.
//
// A Surface owns its pixel storage. Callers mutate it only through the
// methods below; Snapshot hands out a copy.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Resize changes the surface dimensions. Existing content is discarded.
	// Negative dimensions are rejected with ErrInvalidSize.
	Resize(width, height int) error

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// Fill fills the given path using the specified style.
	// The path is not modified or consumed.
	Fill(path *Path, style FillStyle)

	// Stroke strokes the given path using the specified style.
	// The path is not modified or consumed.
	Stroke(path *Path, style StrokeStyle)

	// Snapshot returns the current surface contents as an RGBA image.
	// The returned image is a copy; modifications to it do not affect the surface.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the surface.
	// After Close, drawing calls are ignored and Snapshot returns nil.
	// Close is idempotent.
	Close() error
}
