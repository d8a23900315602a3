package color

import "errors"

// Error kinds reported by the engine. Functions wrap these with context,
// so callers should compare with errors.Is.
var (
	// ErrInvalidColorSyntax means the input matches no known color grammar.
	ErrInvalidColorSyntax = errors.New("invalid color syntax")

	// ErrInvalidComponentRange means a component is NaN, infinite, or (in
	// strict parsing) outside the space's domain.
	ErrInvalidComponentRange = errors.New("invalid component range")

	// ErrUnsupportedColorSpace means a space identifier is unknown or a
	// component count does not match the space.
	ErrUnsupportedColorSpace = errors.New("unsupported color space")

	// ErrNoAccessibleColorFound is returned by the bounded accessible-color
	// search when the target ratio cannot be reached.
	ErrNoAccessibleColorFound = errors.New("no accessible color found")
)
