// Package color parses CSS color strings and converts colors between color
// spaces.
//
// A Color is an immutable value tagged with the Space its components are
// expressed in. Conversions go through encoded sRGB as the hub, with the
// CIE and OK spaces routed through XYZ D65. The only shared state is a set
// of read-only tables (matrices, transfer curves, named colors) built at
// package initialization, so every function is safe for concurrent use.
//
// # Component Ranges
//
// Components are stored in native ranges:
//   - RGB and the wide-gamut RGB spaces: 0-1, transfer-encoded
//   - HSL, HSV, HSI: hue 0-360, saturation and lightness/value/intensity 0-100
//   - CMYK: each ink 0-100
//   - XYZ D50 and D65: Y of the reference white is 1
//   - Lab: L 0-100, a and b roughly -128 to 128 (D65 white)
//   - LCH: L 0-100, C 0-230, h 0-360
//   - OKLab: L 0-1, a and b roughly -0.4 to 0.4
//   - OKLCH: L 0-1, C 0-0.5, h 0-360
//
// Range limits are applied by Parser only. New and Convert accept any
// finite value.
//
// # Errors
//
// Failures wrap one of ErrInvalidColorSyntax, ErrInvalidComponentRange,
// ErrUnsupportedColorSpace or ErrNoAccessibleColorFound and can be tested
// with errors.Is.
package color
