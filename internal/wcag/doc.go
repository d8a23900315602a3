// Package wcag computes WCAG 2.x relative luminance and contrast ratios,
// classifies ratios into conformance levels, and searches for colors that
// reach a target ratio against a background.
//
// Every function takes colors from package color in any space; they are
// reduced to clipped sRGB with Color.SRGB before measurement.
package wcag
