package pixbuf

// Grayscale converts a 3-channel RGB image into a new single channel image
// holding the luminance of each pixel. The source image is left untouched.
func Grayscale(im *Image) (*Image, error) {
	if err := requireRGB("grayscale", im); err != nil {
		return nil, err
	}
	gray := NewImage(1, im.H, im.W)

	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			gray.Set(0, y, x, luminance(im, y, x))
		}
	}
	return gray, nil
}

func luminance(im *Image, y, x int) float32 {
	r, g, b := im.At(0, y, x), im.At(1, y, x), im.At(2, y, x)
	return 0.299*r + 0.587*g + 0.114*b
}
