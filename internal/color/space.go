package color

import "fmt"

// Space identifies the color space a Color's components are expressed in.
//
// The set is closed: every switch over Space in this package lists all
// members, and values outside the enumeration are reported as
// ErrUnsupportedColorSpace rather than silently treated as RGB.
type Space uint8

const (
	RGB Space = iota
	HSL
	HSV
	HSI
	CMYK
	XYZD50
	XYZD65
	Lab
	LCH
	OKLab
	OKLCH
	DisplayP3
	Rec2020
	ProPhotoRGB
	A98RGB

	numSpaces
)

// Spaces lists every supported space in declaration order.
var Spaces = []Space{
	RGB, HSL, HSV, HSI, CMYK, XYZD50, XYZD65, Lab, LCH,
	OKLab, OKLCH, DisplayP3, Rec2020, ProPhotoRGB, A98RGB,
}

var spaceNames = [numSpaces]string{
	RGB:         "srgb",
	HSL:         "hsl",
	HSV:         "hsv",
	HSI:         "hsi",
	CMYK:        "cmyk",
	XYZD50:      "xyz-d50",
	XYZD65:      "xyz-d65",
	Lab:         "lab",
	LCH:         "lch",
	OKLab:       "oklab",
	OKLCH:       "oklch",
	DisplayP3:   "display-p3",
	Rec2020:     "rec2020",
	ProPhotoRGB: "prophoto-rgb",
	A98RGB:      "a98-rgb",
}

// Valid reports whether s is a member of the enumeration.
func (s Space) Valid() bool { return s < numSpaces }

// String returns the CSS identifier of the space ("srgb", "display-p3", ...).
func (s Space) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Space(%d)", uint8(s))
	}
	return spaceNames[s]
}

// Len returns the number of components a color in this space carries,
// or 0 for an invalid space.
func (s Space) Len() int {
	switch s {
	case CMYK:
		return 4
	case RGB, HSL, HSV, HSI, XYZD50, XYZD65, Lab, LCH, OKLab, OKLCH,
		DisplayP3, Rec2020, ProPhotoRGB, A98RGB:
		return 3
	}
	return 0
}

// HueIndex returns the index of the hue component, or -1 if the space is
// not cylindrical.
func (s Space) HueIndex() int {
	switch s {
	case HSL, HSV, HSI:
		return 0
	case LCH, OKLCH:
		return 2
	}
	return -1
}

// IsRGBLike reports whether the space is an RGB encoding with 0-1 channels.
func (s Space) IsRGBLike() bool {
	switch s {
	case RGB, DisplayP3, Rec2020, ProPhotoRGB, A98RGB:
		return true
	}
	return false
}

// ParseSpace resolves a space identifier. Besides the canonical names
// returned by String it accepts a few common aliases ("rgb", "xyz",
// "p3", "adobe-rgb", ...). Matching is case-sensitive on lower-case input.
func ParseSpace(name string) (Space, error) {
	switch name {
	case "srgb", "rgb", "rgba", "hex":
		return RGB, nil
	case "hsl", "hsla":
		return HSL, nil
	case "hsv", "hsb":
		return HSV, nil
	case "hsi":
		return HSI, nil
	case "cmyk", "device-cmyk":
		return CMYK, nil
	case "xyz-d50":
		return XYZD50, nil
	case "xyz", "xyz-d65":
		return XYZD65, nil
	case "lab":
		return Lab, nil
	case "lch":
		return LCH, nil
	case "oklab":
		return OKLab, nil
	case "oklch":
		return OKLCH, nil
	case "display-p3", "p3":
		return DisplayP3, nil
	case "rec2020", "rec-2020", "bt2020":
		return Rec2020, nil
	case "prophoto-rgb", "prophoto":
		return ProPhotoRGB, nil
	case "a98-rgb", "adobe-rgb", "a98":
		return A98RGB, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedColorSpace, name)
}
