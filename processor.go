package pixbuf

import (
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"github.com/esimov/pixbuf/utils"
)

// Processor options
type Processor struct {
	NewWidth       int
	NewHeight      int
	BlurRadius     int
	HueShift       float32
	SatShift       float32
	ValShift       float32
	SatScale       float32
	SobelThreshold float32
	Grayscale      bool
	Edges          bool
	Spinner        *utils.Spinner
}

// adjustHSV reports whether any of the HSV options changes the image.
// A zero SatScale counts as unset.
func (p *Processor) adjustHSV() bool {
	return p.HueShift != 0 || p.SatShift != 0 || p.ValShift != 0 ||
		(p.SatScale != 0 && p.SatScale != 1)
}

// Apply runs the configured transformations over a 3-channel RGB image and
// returns the result, with every sample clamped to [0, 1]. The order is:
// blur, HSV adjustments, grayscale conversion, edge detection.
// The source image may be modified.
func (p *Processor) Apply(im *Image) (*Image, error) {
	var err error

	if err := requireRGB("processor", im); err != nil {
		return nil, err
	}

	if p.BlurRadius > 0 {
		if im, err = Convolve(im, BoxKernel(p.BlurRadius)); err != nil {
			return nil, err
		}
	}

	if p.adjustHSV() {
		if err := RGBToHSV(im); err != nil {
			return nil, err
		}
		im.Shift(0, p.HueShift)
		im.Shift(1, p.SatShift)
		im.Shift(2, p.ValShift)
		if p.SatScale != 0 {
			im.Scale(1, p.SatScale)
		}
		if err := HSVToRGB(im); err != nil {
			return nil, err
		}
	}

	if p.Grayscale {
		if im, err = Grayscale(im); err != nil {
			return nil, err
		}
	}

	if p.Edges {
		if im, err = Sobel(im, p.SobelThreshold); err != nil {
			return nil, err
		}
	}

	im.Clamp()
	return im, nil
}

// Process decodes the source image, resizes it if a new width or height is
// provided, applies the transformations and encodes the result into w.
// We are using the io package, since we can provide different input and output types,
// as long as they implement the io.Reader and io.Writer interface.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, err := decodeImg(r)
	if err != nil {
		return err
	}

	if p.NewWidth < 0 || p.NewHeight < 0 {
		return fmt.Errorf("invalid image size %dx%d", p.NewWidth, p.NewHeight)
	}
	if p.NewWidth > 0 || p.NewHeight > 0 {
		// A zero dimension keeps the aspect ratio.
		src = imaging.Resize(src, p.NewWidth, p.NewHeight, imaging.Lanczos)
	}

	res, err := p.Apply(FromImage(src))
	if err != nil {
		return err
	}

	img, err := res.ToNRGBA()
	if err != nil {
		return err
	}
	return encodeImg(w, img)
}
