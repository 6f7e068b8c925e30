package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/esimov/pixbuf"
	"github.com/esimov/pixbuf/utils"
)

const helpBanner = `
┌─┐┬─┐ ┬┌┐ ┬ ┬┌─┐
├─┘│┌┴┬┘├┴┐│ │├┤
┴  ┴┴ └─└─┘└─┘└

Pixel level image transformations.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source         = flag.String("in", pipeName, "Source")
	destination    = flag.String("out", pipeName, "Destination")
	newWidth       = flag.Int("width", 0, "Resize to this width (0 keeps the aspect ratio)")
	newHeight      = flag.Int("height", 0, "Resize to this height (0 keeps the aspect ratio)")
	blurRadius     = flag.Int("blur", 0, "Box blur radius")
	hueShift       = flag.Float64("hue", 0, "Hue shift, in turns")
	satShift       = flag.Float64("sat", 0, "Saturation shift")
	valShift       = flag.Float64("val", 0, "Value (brightness) shift")
	satScale       = flag.Float64("satscale", 1, "Saturation scale factor")
	grayscale      = flag.Bool("gray", false, "Convert the image to grayscale")
	edges          = flag.Bool("edges", false, "Detect edges with the Sobel operator")
	sobelThreshold = flag.Float64("sobel", 0, "Sobel magnitude threshold")
	workers        = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	proc := &pixbuf.Processor{
		NewWidth:       *newWidth,
		NewHeight:      *newHeight,
		BlurRadius:     *blurRadius,
		HueShift:       float32(*hueShift),
		SatShift:       float32(*satShift),
		ValShift:       float32(*valShift),
		SatScale:       float32(*satScale),
		Grayscale:      *grayscale,
		Edges:          *edges,
		SobelThreshold: float32(*sobelThreshold),
	}

	op := &pixbuf.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	}

	if err := proc.Execute(op); err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
}
