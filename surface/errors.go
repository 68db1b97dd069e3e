// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "errors"

var (
	// ErrInvalidSize is returned when a surface is resized to negative dimensions.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrClosed is returned when reading pixels from a closed surface.
	ErrClosed = errors.New("surface: closed")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}
