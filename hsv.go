package pixbuf

import (
	"fmt"
	"math"

	"github.com/esimov/pixbuf/utils"
)

// RGBToHSV converts a 3-channel RGB image to HSV in place.
// Afterwards channel 0 holds the hue in [0, 1), channel 1 the saturation and
// channel 2 the value. Black pixels get zero saturation and gray pixels
// (zero chroma) get zero hue.
func RGBToHSV(im *Image) error {
	if err := requireRGB("rgb to hsv", im); err != nil {
		return err
	}

	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			h, s, v := rgbToHSV(im.At(0, y, x), im.At(1, y, x), im.At(2, y, x))
			im.Set(0, y, x, h)
			im.Set(1, y, x, s)
			im.Set(2, y, x, v)
		}
	}
	return nil
}

// HSVToRGB converts a 3-channel HSV image back to RGB in place.
// The hue is cyclic: values outside [0, 1) wrap around.
func HSVToRGB(im *Image) error {
	if err := requireRGB("hsv to rgb", im); err != nil {
		return err
	}

	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			r, g, b := hsvToRGB(im.At(0, y, x), im.At(1, y, x), im.At(2, y, x))
			im.Set(0, y, x, r)
			im.Set(1, y, x, g)
			im.Set(2, y, x, b)
		}
	}
	return nil
}

func rgbToHSV(r, g, b float32) (h, s, v float32) {
	v = utils.Max3(r, g, b)
	m := utils.Min3(r, g, b)
	c := v - m

	if v != 0 {
		s = c / v
	}

	// When two channels share the maximum, red wins over green and green over blue.
	var hh float32
	switch {
	case c == 0:
		hh = 0
	case v == r:
		hh = (g - b) / c
	case v == g:
		hh = (b-r)/c + 2
	default:
		hh = (r-g)/c + 4
	}

	if hh < 0 {
		h = hh/6 + 1
		// A tiny negative hh rounds up to a full turn in float32.
		if h >= 1 {
			h = 0
		}
	} else {
		h = hh / 6
	}
	return h, s, v
}

func hsvToRGB(h, s, v float32) (r, g, b float32) {
	fl := float32(math.Floor(float64(h * 6)))
	f := h*6 - fl
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	sector := math.Mod(float64(fl), 6)
	if sector < 0 {
		sector += 6
	}

	switch sector {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	case 5:
		return v, p, q
	}
	panic(fmt.Sprintf("pixbuf: hue %v maps outside the six color sectors", h))
}
