package pixbuf

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/pixbuf/utils"
	"golang.org/x/image/bmp"
)

// FromImage converts any image type into a 3-channel RGB buffer with samples in [0, 1].
// The alpha channel is discarded.
func FromImage(src image.Image) *Image {
	img := imaging.Clone(src)
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	im := NewImage(3, dy, dx)

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			i := img.PixOffset(x, y)
			im.Set(0, y, x, float32(img.Pix[i+0])/255)
			im.Set(1, y, x, float32(img.Pix[i+1])/255)
			im.Set(2, y, x, float32(img.Pix[i+2])/255)
		}
	}
	return im
}

// ToNRGBA converts a grayscale or RGB buffer into an opaque *image.NRGBA.
// Samples are clamped to [0, 1] before being quantized; the buffer itself is not modified.
func (im *Image) ToNRGBA() (*image.NRGBA, error) {
	if im.C != 1 && im.C != 3 {
		return nil, fmt.Errorf("%w: cannot convert %d channels to NRGBA", ErrInvalidChannelCount, im.C)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, im.W, im.H))

	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			i := dst.PixOffset(x, y)
			// A single channel image repeats channel 0, since At clamps the channel index.
			dst.Pix[i+0] = quantize(im.At(0, y, x))
			dst.Pix[i+1] = quantize(im.At(1, y, x))
			dst.Pix[i+2] = quantize(im.At(2, y, x))
			dst.Pix[i+3] = 0xff
		}
	}
	return dst, nil
}

func quantize(v float32) uint8 {
	return uint8(utils.Clamp(v, 0, 1)*255 + 0.5)
}

// Decode reads an image in any of the registered formats and converts it to an RGB buffer.
// The EXIF orientation tag of JPEG files is honored.
func Decode(r io.Reader) (*Image, error) {
	src, err := decodeImg(r)
	if err != nil {
		return nil, err
	}
	return FromImage(src), nil
}

// decodeImg decodes an image honoring its EXIF orientation.
func decodeImg(r io.Reader) (image.Image, error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("could not decode the source image: %w", err)
	}
	return src, nil
}

// Encode writes the image to w. The output format is chosen from the file
// extension when w is an *os.File and defaults to JPEG otherwise.
func Encode(w io.Writer, im *Image) error {
	img, err := im.ToNRGBA()
	if err != nil {
		return err
	}
	return encodeImg(w, img)
}

// encodeImg encodes an image to a destination of type io.Writer.
func encodeImg(w io.Writer, img image.Image) error {
	var ext string
	if f, ok := w.(*os.File); ok {
		ext = strings.ToLower(filepath.Ext(f.Name()))
	}

	switch ext {
	case "", ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return errors.New("unsupported image format")
	}
}
