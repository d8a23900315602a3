package wcag

import "fmt"

// Level is a WCAG 2.x conformance tier for a contrast ratio.
type Level uint8

const (
	Fail Level = iota
	// AALarge: at least 3:1, enough for large text at level AA.
	AALarge
	// AA: at least 4.5:1 for normal text.
	AA
	// AAALarge: at least 4.5:1, enough for large text at level AAA.
	AAALarge
	// AAA: at least 7:1 for normal text.
	AAA
)

// WCAG 2.x contrast thresholds.
const (
	MinRatioAALarge  = 3.0
	MinRatioAA       = 4.5
	MinRatioAAALarge = 4.5
	MinRatioAAA      = 7.0
)

var levelNames = [...]string{
	Fail:     "fail",
	AALarge:  "AA-large",
	AA:       "AA",
	AAALarge: "AAA-large",
	AAA:      "AAA",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// MarshalText renders the level name in JSON output.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// LevelFor classifies a ratio for normal-size text: Fail below 3, AALarge
// below 4.5, AA below 7 and AAA from 7 up.
func LevelFor(ratio float64) Level {
	switch {
	case ratio >= MinRatioAAA:
		return AAA
	case ratio >= MinRatioAA:
		return AA
	case ratio >= MinRatioAALarge:
		return AALarge
	}
	return Fail
}

// LargeTextLevel classifies a ratio for large text (18pt, or 14pt bold):
// Fail below 3, AALarge below 4.5 and AAALarge from 4.5 up.
func LargeTextLevel(ratio float64) Level {
	switch {
	case ratio >= MinRatioAAALarge:
		return AAALarge
	case ratio >= MinRatioAALarge:
		return AALarge
	}
	return Fail
}

// Report is the full assessment of one color pair.
type Report struct {
	Ratio          float64 `json:"ratio"`
	Level          Level   `json:"level"`
	LargeTextLevel Level   `json:"large_text_level"`
	PassesAA       bool    `json:"passes_aa"`
	PassesAALarge  bool    `json:"passes_aa_large"`
	PassesAAA      bool    `json:"passes_aaa"`
	PassesAAALarge bool    `json:"passes_aaa_large"`
}

// AssessRatio builds a Report for an already computed ratio.
func AssessRatio(ratio float64) Report {
	return Report{
		Ratio:          ratio,
		Level:          LevelFor(ratio),
		LargeTextLevel: LargeTextLevel(ratio),
		PassesAA:       ratio >= MinRatioAA,
		PassesAALarge:  ratio >= MinRatioAALarge,
		PassesAAA:      ratio >= MinRatioAAA,
		PassesAAALarge: ratio >= MinRatioAAALarge,
	}
}
