package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/wcag"
)

// AverageColor returns the mean color of a region.
//
// The region is cropped and box-filtered down to a single pixel. The box
// filter gives every source pixel the same weight, so the result is the
// arithmetic mean of the encoded channels, weighted by alpha.
//
// Returns an error if the region is empty or extends past the image bounds.
func AverageColor(img image.Image, region Region) (*ColorResult, error) {
	c, err := averageColor(img, region)
	if err != nil {
		return nil, err
	}
	res := newColorResult(c)
	return &res, nil
}

func averageColor(img image.Image, region Region) (color.Color, error) {
	rect, err := region.within(img.Bounds())
	if err != nil {
		return color.Color{}, err
	}
	cropped := imaging.Crop(img, rect)
	px := imaging.Resize(cropped, 1, 1, imaging.Box)
	return pixelAt(px, 0, 0), nil
}

// RegionContrastResult reports the WCAG contrast between the average colors
// of two regions.
type RegionContrastResult struct {
	Foreground ColorResult `json:"foreground"`
	Background ColorResult `json:"background"`
	wcag.Report
}

// RegionContrast averages a foreground and a background region and grades
// the contrast between them.
//
// Averaging a region that contains both glyphs and background blends the
// two, so the foreground region should be drawn tightly around a solid
// element (an icon, a border, a filled button) and the background region
// around plain background. For text use the audit package, which separates
// glyph pixels from background pixels.
func RegionContrast(img image.Image, fg, bg Region) (*RegionContrastResult, error) {
	fgColor, err := averageColor(img, fg)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bgColor, err := averageColor(img, bg)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return &RegionContrastResult{
		Foreground: newColorResult(fgColor),
		Background: newColorResult(bgColor),
		Report:     wcag.Assess(fgColor, bgColor),
	}, nil
}

// NoticeableDeltaE is the CIEDE2000 distance above which two pixels are
// counted as visibly different by CompareRegions.
const NoticeableDeltaE = 2.3

// Size is the width and height of a region in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CompareRegionsResult contains region comparison information.
type CompareRegionsResult struct {
	// SimilarityScore is the fraction of compared pixels whose difference is
	// at or below NoticeableDeltaE, 0-1.
	SimilarityScore float64 `json:"similarity_score"`

	// PixelsDifferent counts pixels above NoticeableDeltaE.
	PixelsDifferent int `json:"pixels_different"`

	// TotalPixels is the number of pixel pairs compared.
	TotalPixels int `json:"total_pixels"`

	// SameSize reports whether both regions have identical dimensions.
	SameSize bool `json:"same_size"`

	Region1Size Size `json:"region1_size"`
	Region2Size Size `json:"region2_size"`

	// MeanDeltaE and MaxDeltaE summarize the per-pixel CIEDE2000 distances.
	MeanDeltaE float64 `json:"mean_delta_e"`
	MaxDeltaE  float64 `json:"max_delta_e"`

	// AverageDeltaE is the CIEDE2000 distance between the two region
	// averages.
	AverageDeltaE float64 `json:"average_delta_e"`
}

// CompareRegions compares two regions of an image pixel by pixel.
//
// Pixels are paired by offset from each region's top-left corner. When the
// regions differ in size, only the overlapping width and height are
// compared. Differences are perceptual CIEDE2000 distances, so a change in
// blue counts as much as an equally visible change in green.
func CompareRegions(img image.Image, r1, r2 Region) (*CompareRegionsResult, error) {
	bounds := img.Bounds()
	rect1, err := r1.within(bounds)
	if err != nil {
		return nil, fmt.Errorf("region1: %w", err)
	}
	rect2, err := r2.within(bounds)
	if err != nil {
		return nil, fmt.Errorf("region2: %w", err)
	}

	w := min(rect1.Dx(), rect2.Dx())
	h := min(rect1.Dy(), rect2.Dy())

	total := w * h
	different := 0
	var sum, maxDE float64

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			a := pixelAt(img, rect1.Min.X+dx, rect1.Min.Y+dy)
			b := pixelAt(img, rect2.Min.X+dx, rect2.Min.Y+dy)
			d := color.DeltaE2000(a, b)
			sum += d
			if d > maxDE {
				maxDE = d
			}
			if d > NoticeableDeltaE {
				different++
			}
		}
	}

	avg1, _ := averageColor(img, r1)
	avg2, _ := averageColor(img, r2)

	return &CompareRegionsResult{
		SimilarityScore: round(1-float64(different)/float64(total), 3),
		PixelsDifferent: different,
		TotalPixels:     total,
		SameSize:        rect1.Size() == rect2.Size(),
		Region1Size:     Size{Width: rect1.Dx(), Height: rect1.Dy()},
		Region2Size:     Size{Width: rect2.Dx(), Height: rect2.Dy()},
		MeanDeltaE:      round(sum/float64(total), 2),
		MaxDeltaE:       round(maxDE, 2),
		AverageDeltaE:   round(color.DeltaE2000(avg1, avg2), 2),
	}, nil
}
