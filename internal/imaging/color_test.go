package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#ff8040" {
		t.Errorf("Hex: got %s, want #ff8040", result.Hex)
	}
	if result.RGB != (RGBColor{R: 255, G: 128, B: 64}) {
		t.Errorf("RGB: got %+v, want (255,128,64)", result.RGB)
	}
	if result.Alpha != 1 {
		t.Errorf("Alpha: got %v, want 1", result.Alpha)
	}
	if result.CSS != "rgb(255 128 64)" {
		t.Errorf("CSS: got %s, want rgb(255 128 64)", result.CSS)
	}
	if result.HSL.H != 20.1 || result.HSL.S != 100 || result.HSL.L != 62.5 {
		t.Errorf("HSL: got %+v, want (20.1,100,62.5)", result.HSL)
	}
	if got := result.Color().RGB8(); got.R != 255 || got.G != 128 || got.B != 64 {
		t.Errorf("Color(): got %+v", got)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name      string
		color     color.RGBA
		wantHex   string
		wantHue   float64
		wantLum   float64
		wantName  string
		wantLight float64
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#ff0000", 0, 0.2126, "red", 50},
		{"pure green", color.RGBA{0, 255, 0, 255}, "#00ff00", 120, 0.7152, "lime", 50},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "#0000ff", 240, 0.0722, "blue", 50},
		{"white", color.RGBA{255, 255, 255, 255}, "#ffffff", 0, 1, "white", 100},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", 0, 0, "black", 0},
		{"gray", color.RGBA{128, 128, 128, 255}, "#808080", 0, 0.2159, "gray", 50.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}

			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL.H != tt.wantHue {
				t.Errorf("Hue: got %v, want %v", result.HSL.H, tt.wantHue)
			}
			if result.HSL.L != tt.wantLight {
				t.Errorf("Lightness: got %v, want %v", result.HSL.L, tt.wantLight)
			}
			if result.Luminance != tt.wantLum {
				t.Errorf("Luminance: got %v, want %v", result.Luminance, tt.wantLum)
			}
			if result.NearestName != tt.wantName || result.NearestDeltaE != 0 {
				t.Errorf("Nearest: got %s (%v), want %s (0)", result.NearestName, result.NearestDeltaE, tt.wantName)
			}
		})
	}
}

func TestSampleColor_StraightAlpha(t *testing.T) {
	img := createInMemoryImage(4, 4, color.NRGBA{255, 0, 0, 128})

	result, err := SampleColor(img, 1, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.RGB != (RGBColor{R: 255}) {
		t.Errorf("RGB: got %+v, want straight-alpha red", result.RGB)
	}
	if result.Alpha != 0.502 {
		t.Errorf("Alpha: got %v, want 0.502", result.Alpha)
	}
	if result.Hex != "#ff000080" {
		t.Errorf("Hex: got %s, want #ff000080", result.Hex)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
		{"both too large", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestSampleColor_EdgeCoordinates(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		x, y    int
		wantHex string
	}{
		{0, 0, "#ff0000"},
		{99, 0, "#00ff00"},
		{0, 99, "#0000ff"},
		{99, 99, "#ffffff"},
	}

	for _, tt := range tests {
		result, err := SampleColor(img, tt.x, tt.y)
		if err != nil {
			t.Fatalf("SampleColor(%d,%d) failed: %v", tt.x, tt.y, err)
		}
		if result.Hex != tt.wantHex {
			t.Errorf("SampleColor(%d,%d): got %s, want %s", tt.x, tt.y, result.Hex, tt.wantHex)
		}
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img := createPatternImage(100, 100)

	points := []LabeledPoint{
		{X: 25, Y: 25, Label: "red"},
		{X: 75, Y: 25, Label: "green"},
		{X: 25, Y: 75},
	}

	result, err := SampleColorsMulti(img, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}
	if len(result.Samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(result.Samples))
	}

	want := []string{"#ff0000", "#00ff00", "#0000ff"}
	for i, s := range result.Samples {
		if s.Label != points[i].Label || s.X != points[i].X || s.Y != points[i].Y {
			t.Errorf("sample %d: location/label mismatch %+v", i, s)
		}
		if s.Color.Hex != want[i] {
			t.Errorf("sample %d: got %s, want %s", i, s.Color.Hex, want[i])
		}
	}
}

func TestSampleColorsMulti_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{0, 0, 0, 255})

	_, err := SampleColorsMulti(img, []LabeledPoint{{X: 1, Y: 1}, {X: 10, Y: 1}})
	if err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
}

func TestDominantColors(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := DominantColors(img, 10, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 4 {
		t.Fatalf("got %d colors, want 4", len(result.Colors))
	}
	if result.TotalPixels != 10000 {
		t.Errorf("TotalPixels: got %d, want 10000", result.TotalPixels)
	}

	// equal frequencies fall back to hex order
	want := []string{"#0000ff", "#00ff00", "#ff0000", "#ffffff"}
	for i, c := range result.Colors {
		if c.Hex != want[i] {
			t.Errorf("color %d: got %s, want %s", i, c.Hex, want[i])
		}
		if c.Percentage != 25 || c.Pixels != 2500 {
			t.Errorf("color %d: got %v%% (%d px), want 25%% (2500 px)", i, c.Percentage, c.Pixels)
		}
	}
}

func TestDominantColors_CountLimit(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := DominantColors(img, 2, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 2 {
		t.Errorf("got %d colors, want 2", len(result.Colors))
	}

	if _, err := DominantColors(img, 0, nil); err == nil {
		t.Error("DominantColors should reject count 0")
	}
}

func TestDominantColors_Region(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := DominantColors(img, 5, &Region{X1: 0, Y1: 0, X2: 50, Y2: 50})
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 1 || result.Colors[0].Hex != "#ff0000" {
		t.Errorf("got %+v, want only red", result.Colors)
	}
	if result.Colors[0].NearestName != "red" {
		t.Errorf("NearestName: got %s, want red", result.Colors[0].NearestName)
	}

	if _, err := DominantColors(img, 5, &Region{X1: 50, Y1: 50, X2: 150, Y2: 150}); err == nil {
		t.Error("DominantColors should reject a region outside the image")
	}
}

func TestDominantColors_BucketMean(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{240, 240, 240, 255})
	img.Set(1, 0, color.RGBA{250, 250, 250, 255})

	result, err := DominantColors(img, 5, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 1 {
		t.Fatalf("got %d colors, want 1 bucket", len(result.Colors))
	}
	if result.Colors[0].Hex != "#f5f5f5" {
		t.Errorf("bucket mean: got %s, want #f5f5f5", result.Colors[0].Hex)
	}
}

func TestDominantColors_SkipsTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	img.Set(0, 0, color.RGBA{0, 0, 255, 255})

	result, err := DominantColors(img, 5, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if result.TotalPixels != 1 || len(result.Colors) != 1 || result.Colors[0].Percentage != 100 {
		t.Errorf("got %+v, want one opaque blue pixel", result)
	}
}
