package pixbuf

import "github.com/esimov/pixbuf/utils"

// Copy returns a deep copy of the image.
func (im *Image) Copy() *Image {
	dst := NewImage(im.C, im.H, im.W)

	for c := 0; c < im.C; c++ {
		for y := 0; y < im.H; y++ {
			for x := 0; x < im.W; x++ {
				dst.Set(c, y, x, im.At(c, y, x))
			}
		}
	}
	return dst
}

// Shift adds v to every sample of channel c.
// The result is not bounded; call Clamp to bring it back into [0, 1].
func (im *Image) Shift(c int, v float32) {
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			im.Set(c, y, x, im.At(c, y, x)+v)
		}
	}
}

// Scale multiplies every sample of channel c by f.
func (im *Image) Scale(c int, f float32) {
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			im.Set(c, y, x, im.At(c, y, x)*f)
		}
	}
}

// Clamp limits every sample of the image to the [0, 1] range.
func (im *Image) Clamp() {
	for c := 0; c < im.C; c++ {
		for y := 0; y < im.H; y++ {
			for x := 0; x < im.W; x++ {
				im.Set(c, y, x, utils.Clamp(im.At(c, y, x), 0, 1))
			}
		}
	}
}
