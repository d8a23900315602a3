package color

import "fmt"

// LinearRGB is a linear-light sRGB triple (no transfer curve applied).
type LinearRGB [3]float64

// ToLinearRGB returns the linear-light sRGB channels of c, unclipped.
func ToLinearRGB(c Color) LinearRGB {
	r, g, b := srgbTransfer.linearize(toRGB(c))
	return LinearRGB{r, g, b}
}

// rgbEncoding describes one RGB color space: its primaries relative to
// XYZ D65, its transfer curve and the headroom used in extended mode.
type rgbEncoding struct {
	toXYZ    mat3 // linear -> XYZ D65
	fromXYZ  mat3 // XYZ D65 -> linear
	fromSRGB mat3 // linear sRGB -> linear target
	toSRGB   mat3 // linear target -> linear sRGB
	curve    transfer
	headroom float64
}

// encodings holds every RGB-like space, sRGB included, so that every
// RGB encoding goes through the same linearize -> matrix -> encode path.
// The table is built once at package initialization and never written.
var encodings = func() map[Space]rgbEncoding {
	mk := func(toXYZ, fromXYZ mat3, curve transfer, headroom float64) rgbEncoding {
		return rgbEncoding{
			toXYZ:    toXYZ,
			fromXYZ:  fromXYZ,
			fromSRGB: fromXYZ.mul(srgbToXYZ),
			toSRGB:   xyzToSRGB.mul(toXYZ),
			curve:    curve,
			headroom: headroom,
		}
	}
	return map[Space]rgbEncoding{
		RGB:       mk(srgbToXYZ, xyzToSRGB, srgbTransfer, 1),
		DisplayP3: mk(p3ToXYZ, xyzToP3, srgbTransfer, 1.1),
		Rec2020:   mk(rec2020ToXYZ, xyzToRec2020, rec2020Transfer, 1.25),
		ProPhotoRGB: mk(
			bradfordD50ToD65.mul(proPhotoToXYZD50),
			xyzD50ToProPhoto.mul(bradfordD65ToD50),
			proPhotoTransfer, 1.3),
		A98RGB: mk(a98ToXYZ, xyzToA98, a98Transfer, 1.15),
	}
}()

// WideGamutSpaces lists the spaces accepted by ToWideGamut.
var WideGamutSpaces = []Space{DisplayP3, Rec2020, ProPhotoRGB, A98RGB}

func wideEncoding(s Space) (rgbEncoding, error) {
	if s == RGB {
		return rgbEncoding{}, fmt.Errorf("%w: %s is not a wide-gamut space", ErrUnsupportedColorSpace, s)
	}
	enc, ok := encodings[s]
	if !ok {
		return rgbEncoding{}, fmt.Errorf("%w: %s is not a wide-gamut space", ErrUnsupportedColorSpace, s)
	}
	return enc, nil
}

// Headroom returns the extended-range scale factor of a wide-gamut space,
// or 1 for any other space.
func Headroom(s Space) float64 {
	if enc, err := wideEncoding(s); err == nil {
		return enc.headroom
	}
	return 1
}

// ToWideGamut converts linear sRGB to the encoded channels of a wide-gamut
// space.
//
// The pipeline is matrix (sRGB linear -> target linear), then the target's
// transfer curve. With extended false each encoded channel is clipped to
// [0,1]. With extended true the linear values are scaled by the space's
// headroom (see Headroom) and encoded without clipping; such values may lie
// outside the unit cube and are not displayable without further mapping.
//
// A target outside WideGamutSpaces yields the zero triple, which cannot be
// told apart from encoded black. Callers that accept arbitrary targets
// should use ToWideGamutE instead.
func ToWideGamut(lin LinearRGB, target Space, extended bool) [3]float64 {
	out, _ := ToWideGamutE(lin, target, extended)
	return out
}

// ToWideGamutE is ToWideGamut with an error for unsupported targets.
func ToWideGamutE(lin LinearRGB, target Space, extended bool) ([3]float64, error) {
	enc, err := wideEncoding(target)
	if err != nil {
		return [3]float64{}, err
	}
	r, g, b := enc.fromSRGB.apply(lin[0], lin[1], lin[2])
	if extended {
		r, g, b = r*enc.headroom, g*enc.headroom, b*enc.headroom
	}
	r, g, b = enc.curve.delinearize(r, g, b)
	if !extended {
		r, g, b = clamp01(r), clamp01(g), clamp01(b)
	}
	return [3]float64{r, g, b}, nil
}

// FromWideGamut is the inverse of ToWideGamut: it decodes wide-gamut
// channels and returns linear sRGB. With extended true the input is taken
// to carry the headroom scale, which is divided out. The result is not
// clipped.
func FromWideGamut(encoded [3]float64, source Space, extended bool) (LinearRGB, error) {
	enc, err := wideEncoding(source)
	if err != nil {
		return LinearRGB{}, err
	}
	r, g, b := enc.curve.linearize(encoded[0], encoded[1], encoded[2])
	if extended {
		r, g, b = r/enc.headroom, g/enc.headroom, b/enc.headroom
	}
	r, g, b = enc.toSRGB.apply(r, g, b)
	return LinearRGB{r, g, b}, nil
}
