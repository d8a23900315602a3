// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color parsing,
// conversion, accessibility and image sampling capabilities through the MCP
// protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//   - Logs: stderr, never stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// Methods under notifications/ are accepted and never answered.
//
// # Available Tools
//
// Color Parsing and Conversion:
//   - color_parse: Parse a CSS color string
//   - color_validate: Report whether a string parses and whether it is CSS
//   - color_convert: Convert between color spaces
//   - color_format: Render a color as CSS
//
// Perceptual Metrics:
//   - color_contrast: WCAG 2.x contrast ratio and levels
//   - color_find_accessible: Search for a color meeting a contrast target
//   - color_delta_e: CIEDE2000 or CIE76 difference
//   - color_nearest_named: Closest CSS named color
//
// Wide Gamut and HDR:
//   - color_wide_gamut: Express a color in Display P3, Rec. 2020, ProPhoto or A98
//   - color_hdr_transfer: PQ and HLG encode and decode
//
// Image Tools:
//   - image_load, image_dimensions: Image metadata
//   - image_sample_color, image_sample_colors_multi: Pixel colors
//   - image_dominant_colors, image_average_color: Region statistics
//   - image_region_contrast, image_compare_regions: Region comparisons
//   - image_text_contrast: OCR-located text contrast audit
//
// # Caching
//
// Decoded images are cached by path for the lifetime of the process.
// Parse-and-convert results are memoized in a bounded cache unless the
// configuration disables it.
//
// # Error Handling
//
// Errors are returned as JSON-RPC error responses:
//   - -32700: the request line is not JSON
//   - -32601: unknown method
//   - -32602: unknown tool, or missing or malformed arguments
//   - -32000: the tool ran and failed (bad color syntax, unreadable image,
//     no accessible color found)
//
// The data field carries the underlying Go error string.
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
