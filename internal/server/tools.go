package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

type props map[string]interface{}

func object(required []string, p props) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}(p),
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func prop(typ, description string) map[string]interface{} {
	return map[string]interface{}{"type": typ, "description": description}
}

func withDefault(p map[string]interface{}, v interface{}) map[string]interface{} {
	p["default"] = v
	return p
}

func enum(description string, values ...string) map[string]interface{} {
	p := prop("string", description)
	p["enum"] = values
	return p
}

func region(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description + " (x1,y1 inclusive top-left; x2,y2 exclusive bottom-right)",
		"properties": map[string]interface{}{
			"x1": prop("integer", "Left edge X coordinate (0-based)"),
			"y1": prop("integer", "Top edge Y coordinate (0-based)"),
			"x2": prop("integer", "Right edge X coordinate (exclusive)"),
			"y2": prop("integer", "Bottom edge Y coordinate (exclusive)"),
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

var (
	colorProp     = prop("string", "CSS color: hex (#rgb, #rrggbbaa), a named color, or a function such as rgb(), hsl(), hwb(), lab(), lch(), oklab(), oklch(), color(), device-cmyk(), hsv(), hsi()")
	pathProp      = prop("string", "Absolute path to the image file")
	precisionProp = prop("integer", "Decimal places for output components. -1 uses each space's default, -2 disables rounding. Defaults to the server setting")
	strictProp    = prop("boolean", "Reject out-of-range components instead of clamping them. Defaults to the server setting")
	spaceNames    = []string{
		"rgb", "hsl", "hsv", "hsi", "cmyk", "xyz-d50", "xyz-d65", "lab", "lch",
		"oklab", "oklch", "display-p3", "rec2020", "prophoto-rgb", "a98-rgb",
	}
)

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Parsing and Conversion
		{
			Name:        "color_parse",
			Description: "Parse a CSS color string and return its color space, components, alpha and canonical CSS, hex and 8-bit RGB forms.",
			InputSchema: object([]string{"color"}, props{
				"color":  colorProp,
				"strict": strictProp,
			}),
		},
		{
			Name:        "color_validate",
			Description: "Check whether a string is a color this server can parse and whether it is valid CSS Color 4 syntax (hsv() and hsi() parse but are not CSS).",
			InputSchema: object([]string{"color"}, props{
				"color":  colorProp,
				"strict": strictProp,
			}),
		},
		{
			Name:        "color_convert",
			Description: "Convert a color to another color space. RGB, HSL, HSV, HSI, CMYK and wide-gamut targets are clipped to their gamut; XYZ, Lab, LCH, OKLab and OKLCH keep out-of-gamut values.",
			InputSchema: object([]string{"color", "to"}, props{
				"color":     colorProp,
				"to":        enum("Target color space", spaceNames...),
				"precision": precisionProp,
				"strict":    strictProp,
			}),
		},
		{
			Name:        "color_format",
			Description: "Format a color as a CSS string, optionally converting it first. Styles: modern (space separated), legacy (comma separated rgb()/hsl()) or hex.",
			InputSchema: object([]string{"color"}, props{
				"color":     colorProp,
				"space":     enum("Color space to express the color in. Defaults to the input's own space", spaceNames...),
				"style":     withDefault(enum("Output style", "modern", "legacy", "hex"), "modern"),
				"precision": precisionProp,
			}),
		},

		// Perceptual Metrics
		{
			Name:        "color_contrast",
			Description: "Compute the WCAG 2.x contrast ratio between two colors with AA/AAA pass flags for normal and large text. Alpha is ignored.",
			InputSchema: object([]string{"foreground", "background"}, props{
				"foreground": colorProp,
				"background": colorProp,
			}),
		},
		{
			Name:        "color_find_accessible",
			Description: "Find a color with the hue and saturation of the foreground (or the background when none is given) that reaches the target contrast ratio against the background.",
			InputSchema: object([]string{"background"}, props{
				"background":   colorProp,
				"foreground":   prop("string", "Optional starting color; returned unchanged when it already passes"),
				"target_ratio": withDefault(prop("number", "Contrast ratio to reach, 1-21"), 4.5),
				"direction":    withDefault(enum("Which way to move lightness", "lighter", "darker", "auto"), "auto"),
			}),
		},
		{
			Name:        "color_delta_e",
			Description: "Measure the perceptual difference between two colors with CIEDE2000 (default) or CIE76. A CIEDE2000 distance near 1 is a just-noticeable difference.",
			InputSchema: object([]string{"color1", "color2"}, props{
				"color1": colorProp,
				"color2": colorProp,
				"method": withDefault(enum("Distance formula", "ciede2000", "cie76"), "ciede2000"),
			}),
		},
		{
			Name:        "color_nearest_named",
			Description: "Find the CSS named color closest to a color by CIEDE2000.",
			InputSchema: object([]string{"color"}, props{
				"color": colorProp,
			}),
		},

		// Wide Gamut and HDR
		{
			Name:        "color_wide_gamut",
			Description: "Express a color in a wide-gamut RGB space. Extended mode scales by the space's headroom and skips clipping.",
			InputSchema: object([]string{"color", "gamut"}, props{
				"color":     colorProp,
				"gamut":     enum("Target gamut", "display-p3", "rec2020", "prophoto-rgb", "a98-rgb"),
				"extended":  withDefault(prop("boolean", "Scale by headroom and keep values outside 0-1"), false),
				"precision": precisionProp,
			}),
		},
		{
			Name:        "color_hdr_transfer",
			Description: "Encode a relative luminance with the PQ (SMPTE ST 2084) or HLG (BT.2100) transfer function, or decode a signal back to luminance.",
			InputSchema: object([]string{"value", "transfer"}, props{
				"value":      prop("number", "Relative luminance (1 = reference white) when encoding, signal 0-1 when decoding"),
				"transfer":   enum("Transfer function", "pq", "hlg"),
				"scale_nits": withDefault(prop("number", "Nits that a relative luminance of 1 represents"), 100),
				"inverse":    withDefault(prop("boolean", "Decode a signal instead of encoding a luminance"), false),
			}),
		},

		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, bit depth and alpha. The decoded image is cached for later image_* calls.",
			InputSchema: object([]string{"path"}, props{
				"path": pathProp,
			}),
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: object([]string{"path"}, props{
				"path": pathProp,
			}),
		},

		// Image Colors
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel as hex, RGB, HSL, CSS, WCAG luminance and nearest named color.",
			InputSchema: object([]string{"path", "x", "y"}, props{
				"path": pathProp,
				"x":    prop("integer", "X coordinate (0-based)"),
				"y":    prop("integer", "Y coordinate (0-based)"),
			}),
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample colors at several labeled points in one call.",
			InputSchema: object([]string{"path", "points"}, props{
				"path": pathProp,
				"points": map[string]interface{}{
					"type":        "array",
					"description": "Points to sample",
					"items": object([]string{"x", "y"}, props{
						"x":     prop("integer", "X coordinate (0-based)"),
						"y":     prop("integer", "Y coordinate (0-based)"),
						"label": prop("string", "Optional label echoed in the result"),
					}),
				},
			}),
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors in an image or region, with their share of the pixels.",
			InputSchema: object([]string{"path"}, props{
				"path":   pathProp,
				"count":  withDefault(prop("integer", "Maximum number of colors to return"), 5),
				"region": region("Optional region to analyze"),
			}),
		},
		{
			Name:        "image_average_color",
			Description: "Get the mean color of a rectangular region.",
			InputSchema: object([]string{"path", "region"}, props{
				"path":   pathProp,
				"region": region("Region to average"),
			}),
		},
		{
			Name:        "image_region_contrast",
			Description: "Average a foreground and a background region and report the WCAG contrast between them. Draw the foreground region tightly around a solid element.",
			InputSchema: object([]string{"path", "foreground", "background"}, props{
				"path":       pathProp,
				"foreground": region("Foreground region"),
				"background": region("Background region"),
			}),
		},
		{
			Name:        "image_compare_regions",
			Description: "Compare two regions pixel by pixel using CIEDE2000 and report how many pixels differ visibly.",
			InputSchema: object([]string{"path", "region1", "region2"}, props{
				"path":    pathProp,
				"region1": region("First region"),
				"region2": region("Second region"),
			}),
		},
		{
			Name:        "image_text_contrast",
			Description: "Locate words with OCR and measure the WCAG contrast of each word's text color against its background.",
			InputSchema: object([]string{"path"}, props{
				"path":         pathProp,
				"target_ratio": withDefault(prop("number", "Contrast ratio each word must meet, 1-21"), 4.5),
				"region":       region("Optional region; only words overlapping it are audited"),
				"suggest":      withDefault(prop("boolean", "Suggest a compliant text color for failing words"), false),
			}),
		},
	}
}

// handleToolsList returns the tool definitions.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
