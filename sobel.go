package pixbuf

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidKernel is returned for empty or ragged convolution kernels.
var ErrInvalidKernel = errors.New("invalid kernel")

// Kernel is a rectangular matrix of filter weights, indexed as k[row][col].
type Kernel [][]float32

var (
	kernelX = Kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = Kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// BoxKernel returns a (2*radius+1) square kernel whose weights sum to 1.
// A negative radius is treated as zero.
func BoxKernel(radius int) Kernel {
	if radius < 0 {
		radius = 0
	}
	size := 2*radius + 1
	weight := 1 / float32(size*size)

	k := make(Kernel, size)
	for i := range k {
		k[i] = make([]float32, size)
		for j := range k[i] {
			k[i][j] = weight
		}
	}
	return k
}

func (k Kernel) size() (rows, cols int, err error) {
	rows = len(k)
	if rows == 0 || len(k[0]) == 0 {
		return 0, 0, fmt.Errorf("%w: kernel is empty", ErrInvalidKernel)
	}
	cols = len(k[0])
	for _, row := range k {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: kernel rows have different lengths", ErrInvalidKernel)
		}
	}
	return rows, cols, nil
}

// Convolve applies k to every channel of the image and returns the filtered
// image. The kernel is centred on each pixel and is not flipped. Pixels
// outside the image are read from the nearest edge.
func Convolve(im *Image, k Kernel) (*Image, error) {
	rows, cols, err := k.size()
	if err != nil {
		return nil, err
	}
	dst := NewImage(im.C, im.H, im.W)
	oy, ox := rows/2, cols/2

	for c := 0; c < im.C; c++ {
		for y := 0; y < im.H; y++ {
			for x := 0; x < im.W; x++ {
				var sum float32
				for ky := 0; ky < rows; ky++ {
					for kx := 0; kx < cols; kx++ {
						sum += k[ky][kx] * im.At(c, y+ky-oy, x+kx-ox)
					}
				}
				dst.Set(c, y, x, sum)
			}
		}
	}
	return dst, nil
}

// Sobel detects image edges and returns a single channel image with the
// gradient magnitude of each pixel. Magnitudes not exceeding the threshold
// are set to zero. RGB images are converted to grayscale first.
// See https://en.wikipedia.org/wiki/Sobel_operator
func Sobel(im *Image, threshold float32) (*Image, error) {
	var (
		gray = im
		err  error
	)
	switch im.C {
	case 1:
	case 3:
		if gray, err = Grayscale(im); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: sobel expects 1 or 3 channels, got %d", ErrInvalidChannelCount, im.C)
	}

	gx, err := Convolve(gray, kernelX)
	if err != nil {
		return nil, err
	}
	gy, err := Convolve(gray, kernelY)
	if err != nil {
		return nil, err
	}

	dst := NewImage(1, im.H, im.W)
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			sx, sy := gx.At(0, y, x), gy.At(0, y, x)
			magnitude := float32(math.Sqrt(float64(sx*sx + sy*sy)))
			if magnitude <= threshold {
				magnitude = 0
			}
			dst.Set(0, y, x, magnitude)
		}
	}
	return dst, nil
}
