package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeltaE(t *testing.T) {
	black, white := FromRGB8(0, 0, 0), FromRGB8(255, 255, 255)
	assert.InDelta(t, 100.0, DeltaE2000(black, white), 0.1)
	assert.InDelta(t, 100.0, DeltaE76(black, white), 0.1)

	red := FromRGB8(255, 0, 0)
	assert.InDelta(t, 0.0, DeltaE2000(red, red), 1e-9)
	assert.InDelta(t, DeltaE2000(red, white), DeltaE2000(white, red), 1e-9)

	// the same color in another space has no difference
	lab, err := red.To(Lab)
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, DeltaE2000(red, lab), 1e-3)

	near := FromRGB8(254, 0, 0)
	assert.Less(t, DeltaE2000(red, near), 1.0)
}

func TestNearestNamed(t *testing.T) {
	name, d := NearestNamed(FromRGB8(255, 0, 0))
	assert.Equal(t, "red", name)
	assert.InDelta(t, 0.0, d, 1e-9)

	name, _ = NearestNamed(FromRGB8(250, 5, 3))
	assert.Equal(t, "red", name)

	// aqua and cyan share a value; the alphabetically first wins
	name, _ = NearestNamed(FromRGB8(0, 255, 255))
	assert.Equal(t, "aqua", name)
}

func TestNamedColors(t *testing.T) {
	c, ok := NamedColor("rebeccapurple")
	assert.True(t, ok)
	assert.Equal(t, RGBA8{R: 0x66, G: 0x33, B: 0x99, A: 255}, c.RGB8())

	_, ok = NamedColor("Red")
	assert.False(t, ok, "lookups expect lower case")

	names := Names()
	assert.Contains(t, names, "transparent")
	assert.Contains(t, names, "cornflowerblue")
	assert.IsNonDecreasing(t, names)
	names[0] = "mutated"
	assert.NotEqual(t, "mutated", Names()[0])

	name, ok := NameOf(FromRGB8(0, 255, 255))
	assert.True(t, ok)
	assert.Equal(t, "aqua", name)
	name, ok = NameOf(FromRGB8(0, 0, 0).WithAlpha(0))
	assert.True(t, ok)
	assert.Equal(t, "transparent", name)
	_, ok = NameOf(FromRGB8(1, 2, 3))
	assert.False(t, ok)
	_, ok = NameOf(FromRGB8(255, 0, 0).WithAlpha(0.5))
	assert.False(t, ok)
}
