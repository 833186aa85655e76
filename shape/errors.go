package shape

import "errors"

// Sentinel errors for the shape package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("shape: empty font data")

	// ErrNilFont is returned when Shape is called without a font.
	ErrNilFont = errors.New("shape: nil font")
)
