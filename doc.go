/*
Package pixbuf implements an in-memory multi-channel float image together with
a set of pixel level transformations: clamped pixel addressing, channel
arithmetic, clamping, grayscale conversion and RGB <-> HSV conversion.

Samples are stored in channel-major order. Every pixel access goes through
Image.PixOffset, which clamps coordinates to the image boundaries, so filters
probing outside the image read the nearest edge pixel instead of failing.

The package also provides a command line interface. To check the supported flags type:

	$ pixbuf --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"
		"os"

		"github.com/esimov/pixbuf"
	)

	func main() {
		f, err := os.Open("input.png")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		im, err := pixbuf.Decode(f)
		if err != nil {
			log.Fatal(err)
		}
		if err := pixbuf.RGBToHSV(im); err != nil {
			log.Fatal(err)
		}
		im.Scale(1, 2) // double the saturation
		if err := pixbuf.HSVToRGB(im); err != nil {
			log.Fatal(err)
		}
		im.Clamp()

		out, err := os.Create("output.png")
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()

		if err := pixbuf.Encode(out, im); err != nil {
			log.Fatal(err)
		}
	}
*/
package pixbuf
