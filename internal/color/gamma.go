package color

import "math"

// transfer is an encode/decode curve pair between linear light and a
// stored signal. Every RGB encoding in the engine, sRGB included, is one
// of these values; nothing else implements gamma math.
//
// Both directions are sign preserving so that out-of-gamut (negative)
// linear values survive a round trip.
type transfer struct {
	decode func(v float64) float64 // signal -> linear
	encode func(v float64) float64 // linear -> signal
}

func (t transfer) linearize(r, g, b float64) (float64, float64, float64) {
	return t.decode(r), t.decode(g), t.decode(b)
}

func (t transfer) delinearize(r, g, b float64) (float64, float64, float64) {
	return t.encode(r), t.encode(g), t.encode(b)
}

// sRGB piecewise curve constants (IEC 61966-2-1).
const (
	srgbDecodeThreshold = 0.04045
	srgbEncodeThreshold = 0.0031308
	srgbSlope           = 12.92
	srgbOffset          = 0.055
	srgbGamma           = 2.4
)

var srgbTransfer = transfer{
	decode: func(v float64) float64 {
		a := math.Abs(v)
		if a <= srgbDecodeThreshold {
			return v / srgbSlope
		}
		return math.Copysign(math.Pow((a+srgbOffset)/(1+srgbOffset), srgbGamma), v)
	},
	encode: func(v float64) float64 {
		a := math.Abs(v)
		if a <= srgbEncodeThreshold {
			return v * srgbSlope
		}
		return math.Copysign((1+srgbOffset)*math.Pow(a, 1/srgbGamma)-srgbOffset, v)
	},
}

// Rec. ITU-R BT.2020 curve parameters.
const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

var rec2020Transfer = transfer{
	decode: func(v float64) float64 {
		a := math.Abs(v)
		if a < rec2020Beta*4.5 {
			return v / 4.5
		}
		return math.Copysign(math.Pow((a+rec2020Alpha-1)/rec2020Alpha, 1/0.45), v)
	},
	encode: func(v float64) float64 {
		a := math.Abs(v)
		if a < rec2020Beta {
			return v * 4.5
		}
		return math.Copysign(rec2020Alpha*math.Pow(a, 0.45)-(rec2020Alpha-1), v)
	},
}

// powerTransfer is a pure power-law curve: signal = linear^(1/gamma).
func powerTransfer(gamma float64) transfer {
	return transfer{
		decode: func(v float64) float64 {
			return math.Copysign(math.Pow(math.Abs(v), gamma), v)
		},
		encode: func(v float64) float64 {
			return math.Copysign(math.Pow(math.Abs(v), 1/gamma), v)
		},
	}
}

var (
	proPhotoTransfer = powerTransfer(1.8)
	a98Transfer      = powerTransfer(2.2)
)

// Linearize converts one sRGB-encoded channel (0-1) to linear light.
// Below 0.04045 the curve is linear (divide by 12.92); above it is
// ((c+0.055)/1.055)^2.4.
func Linearize(c float64) float64 { return srgbTransfer.decode(c) }

// Delinearize converts one linear-light channel back to sRGB encoding,
// switching at 0.0031308.
func Delinearize(c float64) float64 { return srgbTransfer.encode(c) }
