// Package imaging reads colors out of screenshots and other raster images for
// the MCP server.
//
// This package implements image loading with caching, point sampling, dominant
// color extraction, region averaging and region comparison. Every color it
// reports is built on the color package, so a sampled pixel carries its hex,
// CSS, HSL, WCAG luminance and nearest named color in one result.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Coordinates are inclusive for single points
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Images returned by the cache
// must be treated as read-only; the sampling functions never modify them.
//
// # Color Representation
//
// Pixels are read with straight (non-premultiplied) alpha:
//   - Hex: "#rrggbb", or "#rrggbbaa" for translucent pixels
//   - RGB: 8-bit components (0-255) plus Alpha (0-1)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//   - Luminance: WCAG 2.x relative luminance (0-1)
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Invalid region specifications (x1 >= x2 or y1 >= y2)
//   - File I/O and decoding errors during image loading
package imaging
