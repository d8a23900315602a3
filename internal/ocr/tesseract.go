package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguage is the Tesseract language used when none is configured.
const DefaultLanguage = "eng"

// DefaultScale is the upscaling factor applied before recognition. UI
// screenshots usually render text at 11-14px, below the x-height Tesseract
// recognizes reliably.
const DefaultScale = 3

// Bounds represents a rectangular bounding box in pixel coordinates of the
// original (unscaled) image. (X1, Y1) is inclusive, (X2, Y2) exclusive.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Rect returns the bounds as an image.Rectangle.
func (b Bounds) Rect() image.Rectangle { return image.Rect(b.X1, b.Y1, b.X2, b.Y2) }

// Word is one recognized word with its location and OCR confidence.
type Word struct {
	// Text is the recognized text content.
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	// Bounds is the bounding box around this word in the image.
	Bounds Bounds `json:"bounds"`
}

// Tesseract locates words in images with the Tesseract engine via gosseract.
//
// The zero value is usable: it recognizes English, upscales by DefaultScale
// and keeps every non-empty word. A Tesseract value holds no engine state;
// each Words call opens and closes its own client, so one value may be shared
// between goroutines.
type Tesseract struct {
	// Language is a Tesseract language code such as "eng" or "deu". The
	// matching traineddata file must be installed.
	Language string

	// Scale is the integer upscaling factor applied before recognition.
	// Values below 1 select DefaultScale.
	Scale int

	// MinConfidence drops words scored below this value (0-1).
	MinConfidence float64
}

// Words runs word-level recognition on img and returns the words found,
// in Tesseract's reading order.
//
// The image is encoded to PNG in memory, so no temporary files are written.
// Reported bounds are mapped back to img's coordinate space and clipped to
// its bounds.
//
// # Errors
//
// Returns an error if the language cannot be loaded, the image cannot be
// encoded, or Tesseract fails to produce word boxes.
func (t *Tesseract) Words(img image.Image) ([]Word, error) {
	lang := t.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	scale := t.Scale
	if scale < 1 {
		scale = DefaultScale
	}

	bounds := img.Bounds()
	src := img
	if scale > 1 {
		src = imaging.Resize(img, bounds.Dx()*scale, bounds.Dy()*scale, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return nil, fmt.Errorf("failed to encode image for OCR: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		conf := float64(box.Confidence) / 100.0
		if text == "" || conf < t.MinConfidence {
			continue
		}
		r := image.Rect(
			box.Box.Min.X/scale, box.Box.Min.Y/scale,
			ceilDiv(box.Box.Max.X, scale), ceilDiv(box.Box.Max.Y, scale),
		).Add(bounds.Min).Intersect(bounds)
		if r.Empty() {
			continue
		}
		words = append(words, Word{
			Text:       text,
			Confidence: conf,
			Bounds:     Bounds{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y},
		})
	}
	return words, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
