package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// toColorful hands the unclipped sRGB channels of c to go-colorful, whose
// Lab conversions use the same D65 white as this package. Out-of-gamut
// colors therefore keep their true Lab coordinates.
func toColorful(c Color) colorful.Color {
	r, g, b := toRGB(c)
	return colorful.Color{R: r, G: g, B: b}
}

// DeltaE2000 returns the CIEDE2000 color difference between a and b on the
// usual scale where 1 is about one just-noticeable difference. Alpha is
// ignored.
func DeltaE2000(a, b Color) float64 {
	// go-colorful works on L in [0,1] and scales its result the same way
	return toColorful(a).DistanceCIEDE2000(toColorful(b)) * 100
}

// DeltaE76 returns the CIE76 difference: the Euclidean distance in Lab.
func DeltaE76(a, b Color) float64 {
	return toColorful(a).DistanceCIE76(toColorful(b)) * 100
}

var namedColorful = func() map[string]colorful.Color {
	m := make(map[string]colorful.Color, len(names))
	for name, v := range names {
		m[name] = colorful.Color{R: float64(v.R) / 255, G: float64(v.G) / 255, B: float64(v.B) / 255}
	}
	return m
}()

// NearestNamed returns the CSS named color closest to c by CIEDE2000 and
// the distance to it. Ties go to the alphabetically first name;
// "transparent" is never returned.
func NearestNamed(c Color) (name string, deltaE float64) {
	target := toColorful(c)
	best := math.Inf(1)
	for _, n := range sortedNames {
		nc, ok := namedColorful[n]
		if !ok {
			continue
		}
		if d := target.DistanceCIEDE2000(nc); d < best {
			best, name = d, n
		}
	}
	return name, best * 100
}
