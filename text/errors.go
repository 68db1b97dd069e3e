package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidDescriptor is returned when a font descriptor cannot be parsed.
	ErrInvalidDescriptor = errors.New("text: invalid font descriptor")

	// ErrUnknownFamily is returned when none of a descriptor's families
	// is registered in the library.
	ErrUnknownFamily = errors.New("text: unknown font family")
)
