package pixbuf

import (
	"errors"
	"fmt"

	"github.com/esimov/pixbuf/utils"
)

// ErrInvalidChannelCount is returned when an operation receives an image
// with a channel count it cannot handle.
var ErrInvalidChannelCount = errors.New("invalid channel count")

// Image is a dense multi-channel float buffer. Samples are stored in
// channel-major order: all of channel 0 first, then channel 1 and so on,
// each channel laid out row by row.
//
// A 3-channel Image may hold either RGB or HSV samples; the buffer does not
// record which, so the caller has to keep track of it.
type Image struct {
	C, H, W int
	Data    []float32
}

// NewImage allocates a zero-filled image with c channels of h rows and w columns.
// It panics if any of the dimensions is negative.
func NewImage(c, h, w int) *Image {
	if c < 0 || h < 0 || w < 0 {
		panic(fmt.Sprintf("pixbuf: negative image dimensions %dx%dx%d", c, h, w))
	}
	return &Image{
		C:    c,
		H:    h,
		W:    w,
		Data: make([]float32, c*h*w),
	}
}

// PixOffset returns the index in Data of the sample at channel c, row h and
// column w. Each coordinate is clamped to the valid range of its axis, so
// out of range requests address the nearest edge sample.
func (im *Image) PixOffset(c, h, w int) int {
	c = utils.Clamp(c, 0, im.C-1)
	h = utils.Clamp(h, 0, im.H-1)
	w = utils.Clamp(w, 0, im.W-1)

	return c*im.H*im.W + h*im.W + w
}

// At returns the sample at (c, h, w), clamped to the image boundaries.
func (im *Image) At(c, h, w int) float32 {
	return im.Data[im.PixOffset(c, h, w)]
}

// Set writes v at (c, h, w). Out of range coordinates write the nearest edge sample.
func (im *Image) Set(c, h, w int, v float32) {
	im.Data[im.PixOffset(c, h, w)] = v
}

// requireRGB checks that im has exactly three channels.
func requireRGB(op string, im *Image) error {
	if im.C != 3 {
		return fmt.Errorf("%w: %s expects 3 channels, got %d", ErrInvalidChannelCount, op, im.C)
	}
	return nil
}
