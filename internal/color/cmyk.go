package color

// RGBToCMYK converts sRGB channels (0-1) to naive device CMYK percentages.
//
// k = 1 - max(r,g,b). When k is 1 (pure black) cyan, magenta and yellow
// are defined as 0 instead of the 0/0 the general formula would produce.
func RGBToCMYK(r, g, b float64) (c, m, y, k float64) {
	max, _ := maxMin(r, g, b)
	k = 1 - max
	if k >= 1 {
		return 0, 0, 0, 100
	}
	c = (1 - r - k) / (1 - k)
	m = (1 - g - k) / (1 - k)
	y = (1 - b - k) / (1 - k)
	return c * 100, m * 100, y * 100, k * 100
}

// CMYKToRGB converts CMYK percentages to sRGB channels.
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	c = clamp(c, 0, 100) / 100
	m = clamp(m, 0, 100) / 100
	y = clamp(y, 0, 100) / 100
	k = clamp(k, 0, 100) / 100
	return (1 - c) * (1 - k), (1 - m) * (1 - k), (1 - y) * (1 - k)
}
