package imaging

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"math"
	"sort"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/wcag"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space,
// rounded to one decimal place.
type HSLColor struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L float64 `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult describes one color in the forms a UI audit usually needs.
//
// The fields are derived from a single color.Color:
//   - Hex: "#rrggbb", or "#rrggbbaa" when the pixel is not fully opaque
//   - RGB and Alpha: 8-bit channels and straight (non-premultiplied) opacity
//   - HSL: the color package conversion at one decimal place
//   - CSS: a CSS Color 4 rgb() string
//   - Luminance: WCAG relative luminance of the channels, ignoring alpha
//   - Nearest: the closest CSS named color and its CIEDE2000 distance
type ColorResult struct {
	Hex           string   `json:"hex"`
	RGB           RGBColor `json:"rgb"`
	Alpha         float64  `json:"alpha"`
	HSL           HSLColor `json:"hsl"`
	CSS           string   `json:"css"`
	Luminance     float64  `json:"luminance"`
	NearestName   string   `json:"nearest_name"`
	NearestDeltaE float64  `json:"nearest_delta_e"`

	color color.Color
}

// Color returns the sampled value as a color.Color.
func (r *ColorResult) Color() color.Color { return r.color }

// Describe builds the ColorResult for any color; non-sRGB colors are clipped
// to sRGB first.
func Describe(c color.Color) ColorResult {
	if c.Space() != color.RGB {
		v := c.RGB8()
		c = v.Color()
	}
	return newColorResult(c)
}

// newColorResult fills every representation of c. c must be an sRGB color.
func newColorResult(c color.Color) ColorResult {
	v := c.RGB8()
	res := ColorResult{
		Hex:       color.Hex(c),
		RGB:       RGBColor{R: v.R, G: v.G, B: v.B},
		Alpha:     round(c.Opacity(), 3),
		CSS:       color.Format(c),
		Luminance: round(wcag.RelativeLuminance(c), 4),
		color:     c,
	}
	if hsl, err := color.Convert(c, color.HSL, 1); err == nil {
		res.HSL = HSLColor{H: hsl.Component(0), S: hsl.Component(1), L: hsl.Component(2)}
	}
	name, dE := color.NearestNamed(c)
	res.NearestName = name
	res.NearestDeltaE = round(dE, 2)
	return res
}

func round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

// pixelAt reads the straight-alpha 8-bit color at (x, y).
func pixelAt(img image.Image, x, y int) color.Color {
	n := stdcolor.NRGBAModel.Convert(img.At(x, y)).(stdcolor.NRGBA)
	return color.RGBA8{R: n.R, G: n.G, B: n.B, A: n.A}.Color()
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Color Conversion
//
// Pixels are read through the NRGBA model, so a half-transparent red pixel
// reports RGB 255,0,0 with alpha 0.5 rather than its premultiplied value.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if !image.Pt(x, y).In(bounds) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, bounds.Dx(), bounds.Dy())
	}
	res := newColorResult(pixelAt(img, x, y))
	return &res, nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label
// such as "button_background" or "header_text".
type LabeledPoint struct {
	X     int    `json:"x"`               // X coordinate (0-based)
	Y     int    `json:"y"`               // Y coordinate (0-based)
	Label string `json:"label,omitempty"` // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples from multiple points, in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a single call.
//
// Returns an error if any coordinate is outside the image bounds. On error, no
// partial results are returned.
//
// # Example
//
//	points := []imaging.LabeledPoint{
//	    {X: 10, Y: 20, Label: "background"},
//	    {X: 50, Y: 100, Label: "text"},
//	}
//	result, err := imaging.SampleColorsMulti(img, points)
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		sample, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *sample,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle { return image.Rect(r.X1, r.Y1, r.X2, r.Y2) }

// within validates the region against the image bounds.
func (r Region) within(bounds image.Rectangle) (image.Rectangle, error) {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return image.Rectangle{}, fmt.Errorf("invalid region (%d,%d)-(%d,%d): x1 must be < x2 and y1 must be < y2",
			r.X1, r.Y1, r.X2, r.Y2)
	}
	rect := r.Rect()
	if !rect.In(bounds) {
		return image.Rectangle{}, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds %dx%d",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Dx(), bounds.Dy())
	}
	return rect, nil
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	ColorResult
	Pixels     int     `json:"pixels"`     // Number of pixels in this bucket
	Percentage float64 `json:"percentage"` // Percentage of counted pixels (0-100)
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors      []ColorFrequency `json:"colors"`
	TotalPixels int              `json:"total_pixels"`
}

// DominantColors extracts the N most common colors from an image or region.
//
// Parameters:
//   - img: The source image to analyze.
//   - count: Maximum number of colors to return. Must be positive.
//   - region: Optional rectangular region to analyze. If nil, the entire image
//     is analyzed.
//
// # Color Quantization
//
// Pixels are grouped into buckets by dividing each 8-bit channel by 16, so
// #F0F0F0 and #FAFAFA share a bucket. Each bucket reports the mean of the
// pixels that fell into it rather than the bucket corner, which keeps a flat
// brand color exact. Fully transparent pixels are skipped. Ties in frequency
// are broken by hex value so the output is deterministic.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	bounds := img.Bounds()
	if region != nil {
		rect, err := region.within(bounds)
		if err != nil {
			return nil, err
		}
		bounds = rect
	}

	type bucket struct {
		r, g, b, n int
	}
	buckets := make(map[uint16]*bucket)
	total := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := stdcolor.NRGBAModel.Convert(img.At(x, y)).(stdcolor.NRGBA)
			if n.A == 0 {
				continue
			}
			key := uint16(n.R>>4)<<8 | uint16(n.G>>4)<<4 | uint16(n.B>>4)
			bk, ok := buckets[key]
			if !ok {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.r += int(n.R)
			bk.g += int(n.G)
			bk.b += int(n.B)
			bk.n++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(buckets))
	for _, bk := range buckets {
		mean := func(sum int) uint8 {
			return uint8(math.Round(float64(sum) / float64(bk.n)))
		}
		c := color.FromRGB8(mean(bk.r), mean(bk.g), mean(bk.b))
		colors = append(colors, ColorFrequency{
			ColorResult: newColorResult(c),
			Pixels:      bk.n,
			Percentage:  round(float64(bk.n)/float64(total)*100, 2),
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Pixels != colors[j].Pixels {
			return colors[i].Pixels > colors[j].Pixels
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors, TotalPixels: total}, nil
}
