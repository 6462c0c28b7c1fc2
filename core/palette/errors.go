package palette

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColorFormat is returned when a seed is not a 6-digit hex color.
	ErrInvalidColorFormat = errors.New("invalid color format")
	// ErrUnknownHarmony is returned for a harmony mode outside the supported set.
	ErrUnknownHarmony = errors.New("unknown harmony mode")
)

// ColorFormatError describes a rejected color input.
type ColorFormatError struct {
	Input string
}

// Error implements the error interface.
func (e *ColorFormatError) Error() string {
	return fmt.Sprintf("invalid color format %q: expected #RRGGBB", e.Input)
}

// Unwrap allows errors.Is(err, ErrInvalidColorFormat).
func (e *ColorFormatError) Unwrap() error {
	return ErrInvalidColorFormat
}
