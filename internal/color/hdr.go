package color

import (
	"fmt"
	"math"
)

// TransferFunction selects an HDR encoding curve.
type TransferFunction uint8

const (
	// PQ is the SMPTE ST 2084 perceptual quantizer (absolute, 10 000 nit peak).
	PQ TransferFunction = iota
	// HLG is the ITU-R BT.2100 hybrid log-gamma curve (relative, 1 000 nit
	// nominal peak).
	HLG
)

func (f TransferFunction) String() string {
	switch f {
	case PQ:
		return "pq"
	case HLG:
		return "hlg"
	}
	return fmt.Sprintf("TransferFunction(%d)", uint8(f))
}

// ParseTransferFunction resolves "pq" / "hlg" (and the common aliases
// "st2084", "smpte2084", "bt2100-hlg").
func ParseTransferFunction(name string) (TransferFunction, error) {
	switch name {
	case "pq", "st2084", "smpte2084":
		return PQ, nil
	case "hlg", "bt2100-hlg", "arib-std-b67":
		return HLG, nil
	}
	return 0, fmt.Errorf("%w: unknown transfer function %q", ErrUnsupportedColorSpace, name)
}

const (
	// ReferenceWhiteNits is the luminance that a relative value of 1 maps to
	// when no scale is given.
	ReferenceWhiteNits = 100.0

	pqPeakNits  = 10000.0
	hlgPeakNits = 1000.0

	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32

	hlgA = 0.17883277
	hlgB = 1 - 4*hlgA
)

var hlgC = 0.5 - hlgA*math.Log(4*hlgA)

// ApplyTransfer encodes a scene-referred luminance into an HDR signal in
// [0,1].
//
// luminance is relative to reference white: 1 means scaleNits nits
// (ReferenceWhiteNits when scaleNits <= 0). PQ normalizes by its 10 000 nit
// peak, HLG by its 1 000 nit nominal peak. Negative and NaN inputs encode
// as 0; values beyond the peak saturate at 1. The function is pure and
// holds no notion of a current white level.
func ApplyTransfer(luminance, scaleNits float64, fn TransferFunction) float64 {
	if scaleNits <= 0 || math.IsNaN(scaleNits) {
		scaleNits = ReferenceWhiteNits
	}
	if math.IsNaN(luminance) || luminance <= 0 {
		return 0
	}
	nits := luminance * scaleNits
	switch fn {
	case PQ:
		y := clamp01(nits / pqPeakNits)
		p := math.Pow(y, pqM1)
		return clamp01(math.Pow((pqC1+pqC2*p)/(1+pqC3*p), pqM2))
	case HLG:
		e := clamp01(nits / hlgPeakNits)
		if e <= 1.0/12 {
			return math.Sqrt(3 * e)
		}
		return clamp01(hlgA*math.Log(12*e-hlgB) + hlgC)
	}
	return 0
}

// InvertTransfer decodes an HDR signal in [0,1] back to luminance relative
// to reference white (scaleNits, default ReferenceWhiteNits). It is the
// inverse of ApplyTransfer for in-range inputs.
func InvertTransfer(signal, scaleNits float64, fn TransferFunction) float64 {
	if scaleNits <= 0 || math.IsNaN(scaleNits) {
		scaleNits = ReferenceWhiteNits
	}
	if math.IsNaN(signal) || signal <= 0 {
		return 0
	}
	signal = clamp01(signal)
	var nits float64
	switch fn {
	case PQ:
		p := math.Pow(signal, 1/pqM2)
		y := math.Pow(math.Max(p-pqC1, 0)/(pqC2-pqC3*p), 1/pqM1)
		nits = y * pqPeakNits
	case HLG:
		var e float64
		if signal <= 0.5 {
			e = signal * signal / 3
		} else {
			e = (math.Exp((signal-hlgC)/hlgA) + hlgB) / 12
		}
		nits = e * hlgPeakNits
	default:
		return 0
	}
	return nits / scaleNits
}
