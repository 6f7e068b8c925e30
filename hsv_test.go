package pixbuf

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newPixel returns a 3-channel, single pixel image.
func newPixel(a, b, c float32) *Image {
	im := NewImage(3, 1, 1)
	im.Set(0, 0, 0, a)
	im.Set(1, 0, 0, b)
	im.Set(2, 0, 0, c)
	return im
}

func pixel(im *Image) [3]float32 {
	return [3]float32{im.At(0, 0, 0), im.At(1, 0, 0), im.At(2, 0, 0)}
}

func assertPixel(t *testing.T, want [3]float32, im *Image) {
	t.Helper()
	got := pixel(im)
	for c := range want {
		assert.InDelta(t, want[c], got[c], 1e-5, "channel %d: want %v, got %v", c, want, got)
	}
}

func TestHSV_PureRed(t *testing.T) {
	im := newPixel(1, 0, 0)

	assert.NoError(t, RGBToHSV(im))
	assertPixel(t, [3]float32{0, 1, 1}, im)

	assert.NoError(t, HSVToRGB(im))
	assertPixel(t, [3]float32{1, 0, 0}, im)
}

func TestHSV_KnownColors(t *testing.T) {
	testCases := []struct {
		name string
		rgb  [3]float32
		hsv  [3]float32
	}{
		{"green", [3]float32{0, 1, 0}, [3]float32{1. / 3, 1, 1}},
		{"blue", [3]float32{0, 0, 1}, [3]float32{2. / 3, 1, 1}},
		{"yellow", [3]float32{1, 1, 0}, [3]float32{1. / 6, 1, 1}},
		{"magenta", [3]float32{1, 0, 1}, [3]float32{5. / 6, 1, 1}},
		{"dark cyan", [3]float32{0, 0.5, 0.5}, [3]float32{0.5, 1, 0.5}},
		{"pinkish", [3]float32{1, 0.5, 0.5}, [3]float32{0, 0.5, 1}},
		{"red and green share the maximum", [3]float32{1, 1, 0.5}, [3]float32{1. / 6, 0.5, 1}},
		{"gray", [3]float32{0.4, 0.4, 0.4}, [3]float32{0, 0, 0.4}},
		{"black", [3]float32{0, 0, 0}, [3]float32{0, 0, 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			im := newPixel(tc.rgb[0], tc.rgb[1], tc.rgb[2])
			assert.NoError(t, RGBToHSV(im))
			assertPixel(t, tc.hsv, im)

			h := im.At(0, 0, 0)
			assert.GreaterOrEqual(t, h, float32(0))
			assert.Less(t, h, float32(1))
		})
	}
}

func TestHSV_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	im := newRandomImage(rand.New(rand.NewSource(3)), 3, 16, 16, 0, 1)
	// Include the degenerate pixels as well; their RGB values survive the round trip.
	for c := 0; c < 3; c++ {
		im.Set(c, 0, 0, 0)
		im.Set(c, 0, 1, 0.5)
		im.Set(c, 0, 2, 1)
	}
	orig := im.Copy()

	assert.NoError(RGBToHSV(im))
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			h := im.At(0, y, x)
			assert.GreaterOrEqual(h, float32(0))
			assert.Less(h, float32(1))
		}
	}

	assert.NoError(HSVToRGB(im))
	for i := range orig.Data {
		assert.InDelta(orig.Data[i], im.Data[i], 1e-5)
	}
}

func TestHSV_HueWrapsAround(t *testing.T) {
	testCases := []struct {
		name string
		hue  float32
		rgb  [3]float32
	}{
		{"full turn", 1, [3]float32{1, 0, 0}},
		{"two turns", 2, [3]float32{1, 0, 0}},
		{"negative sixth", -1. / 6, [3]float32{1, 0, 1}},
		{"one and a third", 4. / 3, [3]float32{0, 1, 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			im := newPixel(tc.hue, 1, 1)
			assert.NoError(t, HSVToRGB(im))
			assertPixel(t, tc.rgb, im)
		})
	}
}

func TestHSV_ZeroSaturationIsGray(t *testing.T) {
	im := newPixel(0.3, 0, 0.7)
	assert.NoError(t, HSVToRGB(im))
	assertPixel(t, [3]float32{0.7, 0.7, 0.7}, im)
}

func TestHSV_InvalidHuePanics(t *testing.T) {
	nan := float32(math.NaN())
	assert.Panics(t, func() { hsvToRGB(nan, 1, 1) })
}

func TestHSV_InvalidChannelCount(t *testing.T) {
	assert := assert.New(t)

	for _, c := range []int{1, 4} {
		im := newRandomImage(rand.New(rand.NewSource(4)), c, 3, 3, 0, 1)
		orig := im.Copy()

		err := RGBToHSV(im)
		assert.True(errors.Is(err, ErrInvalidChannelCount), "channels: %d", c)
		assert.Equal(orig.Data, im.Data)

		err = HSVToRGB(im)
		assert.True(errors.Is(err, ErrInvalidChannelCount), "channels: %d", c)
		assert.Equal(orig.Data, im.Data)
	}
}

// referenceHSV converts a pixel with nested conditionals written in the exact
// evaluation order of the conversion formula: red is checked before green and
// green before blue when they share the maximum.
func referenceHSV(r, g, b float32) (h, s, v float32) {
	max3 := func(a, b, c float32) float32 {
		if a > b {
			if a > c {
				return a
			}
			return c
		}
		if b > c {
			return b
		}
		return c
	}
	min3 := func(a, b, c float32) float32 {
		if a < b {
			if a < c {
				return a
			}
			return c
		}
		if b < c {
			return b
		}
		return c
	}

	v = max3(r, g, b)
	c := v - min3(r, g, b)
	if v != 0 {
		s = c / v
	}

	var hh float32
	if c != 0 {
		if v == r {
			hh = (g - b) / c
		} else if v == g {
			hh = (b-r)/c + 2
		} else {
			hh = (r-g)/c + 4
		}
	}
	if hh < 0 {
		h = hh/6 + 1
	} else {
		h = hh / 6
	}
	return h, s, v
}

func TestHSV_TieBreakMatchesReferenceBitForBit(t *testing.T) {
	const levels = 32

	var diffs, ties int
	for ri := 0; ri <= levels; ri++ {
		for gi := 0; gi <= levels; gi++ {
			for bi := 0; bi <= levels; bi++ {
				r, g, b := float32(ri)/levels, float32(gi)/levels, float32(bi)/levels
				if ri == gi || gi == bi || ri == bi {
					ties++
				}

				h, s, v := rgbToHSV(r, g, b)
				wh, ws, wv := referenceHSV(r, g, b)
				if wh == 1 {
					wh = 0
				}
				if math.Float32bits(h) != math.Float32bits(wh) ||
					math.Float32bits(s) != math.Float32bits(ws) ||
					math.Float32bits(v) != math.Float32bits(wv) {
					diffs++
					if diffs <= 5 {
						t.Errorf("rgb (%v, %v, %v): got hsv (%v, %v, %v), want (%v, %v, %v)",
							r, g, b, h, s, v, wh, ws, wv)
					}
				}
			}
		}
	}
	assert.Zero(t, diffs)
	assert.Greater(t, ties, 3*levels*levels)
}

func TestHSV_HueRoundingUpToFullTurnWrapsToZero(t *testing.T) {
	assert := assert.New(t)

	// (g-b)/c is a tiny negative number, and hh/6+1 rounds to 1 in float32.
	wh, _, _ := referenceHSV(1, 0, 1e-8)
	assert.Equal(float32(1), wh)

	h, s, v := rgbToHSV(1, 0, 1e-8)
	assert.Equal(float32(0), h)
	assert.Equal(float32(1), s)
	assert.Equal(float32(1), v)

	im := newPixel(1, 0, 1e-8)
	assert.NoError(RGBToHSV(im))
	assert.Less(im.At(0, 0, 0), float32(1))
	assert.NoError(HSVToRGB(im))
	assertPixel(t, [3]float32{1, 0, 0}, im)
}
