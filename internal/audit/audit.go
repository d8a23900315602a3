// Package audit checks the WCAG contrast of text rendered in a screenshot.
//
// A Locator (normally ocr.Tesseract) finds word boxes. Inside each box the
// background is taken from the pixels on the box border and the text color
// from the most frequent pixel that is visibly different from it, so
// anti-aliased glyph edges do not drag the text color toward the background.
package audit

import (
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"
	"sort"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/ocr"
	"github.com/ironsheep/color-tools-mcp/internal/wcag"
)

// Locator finds words in an image.
type Locator interface {
	Words(img image.Image) ([]ocr.Word, error)
}

// Options controls an audit.
type Options struct {
	// Target is the minimum contrast ratio a word must meet. Zero selects
	// wcag.MinRatioAA.
	Target float64

	// Region limits the audit to words whose boxes intersect it. Nil audits
	// the whole image.
	Region *imaging.Region

	// Suggest adds, for each failing word, a text color with the same hue
	// that meets Target against the measured background.
	Suggest bool
}

// glyphDeltaE is the CIEDE2000 distance from the background above which a
// pixel counts as part of a glyph.
const glyphDeltaE = 10

// WordResult is the contrast measurement for one word.
type WordResult struct {
	Text       string              `json:"text"`
	Confidence float64             `json:"confidence"`
	Bounds     ocr.Bounds          `json:"bounds"`
	Foreground imaging.ColorResult `json:"foreground"`
	Background imaging.ColorResult `json:"background"`
	wcag.Report
	Passes bool `json:"passes"`

	// Suggested is set for failing words when Options.Suggest is true and
	// a compliant color exists.
	Suggested *imaging.ColorResult `json:"suggested,omitempty"`
}

// Result summarizes an audit.
type Result struct {
	Target   float64      `json:"target"`
	Words    []WordResult `json:"words"`
	Failing  int          `json:"failing"`
	Skipped  int          `json:"skipped"`
	MinRatio float64      `json:"min_ratio"`
	Passes   bool         `json:"passes"`
}

// ErrNoText is returned when the locator finds no measurable words.
var ErrNoText = errors.New("no text found")

// TextContrast locates the words in img and measures each one.
//
// Words whose box holds no pixel distinguishable from the background are
// counted in Skipped rather than reported. The result passes when every
// measured word meets the target.
func TextContrast(img image.Image, loc Locator, opts Options) (*Result, error) {
	target := opts.Target
	if target == 0 {
		target = wcag.MinRatioAA
	}
	if target < 1 || target > 21 {
		return nil, fmt.Errorf("target ratio %v outside [1, 21]", target)
	}

	words, err := loc.Words(img)
	if err != nil {
		return nil, fmt.Errorf("failed to locate text: %w", err)
	}

	res := &Result{Target: target, Words: []WordResult{}}
	for _, w := range words {
		box := w.Bounds.Rect().Intersect(img.Bounds())
		if box.Empty() {
			res.Skipped++
			continue
		}
		if opts.Region != nil && !box.Overlaps(opts.Region.Rect()) {
			continue
		}
		fg, bg, ok := measure(img, box)
		if !ok {
			res.Skipped++
			continue
		}

		report := wcag.Assess(fg, bg)
		wr := WordResult{
			Text:       w.Text,
			Confidence: w.Confidence,
			Bounds:     w.Bounds,
			Foreground: imaging.Describe(fg),
			Background: imaging.Describe(bg),
			Report:     report,
			Passes:     report.Ratio >= target,
		}
		if !wr.Passes {
			res.Failing++
			if opts.Suggest {
				if s, err := wcag.AdjustForeground(fg, bg, target, wcag.Auto); err == nil {
					d := imaging.Describe(s)
					wr.Suggested = &d
				}
			}
		}
		if len(res.Words) == 0 || report.Ratio < res.MinRatio {
			res.MinRatio = report.Ratio
		}
		res.Words = append(res.Words, wr)
	}

	if len(res.Words) == 0 {
		return nil, fmt.Errorf("%w: %d boxes located, %d without distinguishable glyphs", ErrNoText, len(words), res.Skipped)
	}
	res.Passes = res.Failing == 0
	return res, nil
}

// measure estimates the text and background colors within box.
func measure(img image.Image, box image.Rectangle) (fg, bg color.Color, ok bool) {
	border := make(map[stdcolor.NRGBA]int)
	inner := make(map[stdcolor.NRGBA]int)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			px := stdcolor.NRGBAModel.Convert(img.At(x, y)).(stdcolor.NRGBA)
			px.A = 255
			if x == box.Min.X || y == box.Min.Y || x == box.Max.X-1 || y == box.Max.Y-1 {
				border[px]++
			}
			inner[px]++
		}
	}

	bgPx, _ := mode(border)
	bg = toColor(bgPx)

	candidates := make(map[stdcolor.NRGBA]int, len(inner))
	for px, n := range inner {
		if px == bgPx {
			continue
		}
		if color.DeltaE2000(toColor(px), bg) > glyphDeltaE {
			candidates[px] = n
		}
	}
	fgPx, n := mode(candidates)
	if n == 0 {
		return color.Color{}, color.Color{}, false
	}
	return toColor(fgPx), bg, true
}

// mode returns the most frequent pixel, breaking ties by channel order so
// the result does not depend on map iteration.
func mode(counts map[stdcolor.NRGBA]int) (stdcolor.NRGBA, int) {
	keys := make([]stdcolor.NRGBA, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})
	if len(keys) == 0 {
		return stdcolor.NRGBA{}, 0
	}
	return keys[0], counts[keys[0]]
}

func toColor(px stdcolor.NRGBA) color.Color {
	return color.FromRGB8(px.R, px.G, px.B)
}
