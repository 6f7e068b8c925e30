package pixbuf

import (
	"bytes"
	"errors"
	"image"
	"image/color/palette"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessor_ApplyWithoutOptionsClamps(t *testing.T) {
	assert := assert.New(t)

	im := newRandomImage(rand.New(rand.NewSource(6)), 3, 4, 4, -0.5, 1.5)
	want := im.Copy()
	want.Clamp()

	p := &Processor{}
	res, err := p.Apply(im)
	assert.NoError(err)
	assert.Equal(want.Data, res.Data)
}

func TestProcessor_ApplyGrayscale(t *testing.T) {
	assert := assert.New(t)

	im := newRandomImage(rand.New(rand.NewSource(7)), 3, 5, 3, 0, 1)
	want, err := Grayscale(im)
	assert.NoError(err)

	p := &Processor{Grayscale: true}
	res, err := p.Apply(im)
	assert.NoError(err)
	assert.Equal(1, res.C)
	assert.Equal(5, res.H)
	assert.Equal(3, res.W)
	for i := range want.Data {
		assert.InDelta(want.Data[i], res.Data[i], 1e-6)
	}
}

func TestProcessor_ApplyHueShift(t *testing.T) {
	p := &Processor{HueShift: 1. / 3}
	res, err := p.Apply(newPixel(1, 0, 0))
	assert.NoError(t, err)
	assertPixel(t, [3]float32{0, 1, 0}, res)
}

func TestProcessor_ApplyDesaturate(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{SatScale: 0.0001}
	assert.True(p.adjustHSV())

	res, err := p.Apply(newPixel(0.2, 0.6, 0.4))
	assert.NoError(err)
	got := pixel(res)
	assert.InDelta(0.6, got[0], 1e-3)
	assert.InDelta(0.6, got[1], 1e-3)
	assert.InDelta(0.6, got[2], 1e-3)

	assert.False((&Processor{SatScale: 1}).adjustHSV())
	assert.False((&Processor{}).adjustHSV())
}

func TestProcessor_ApplyEdges(t *testing.T) {
	assert := assert.New(t)

	im := NewImage(3, 4, 4)
	for i := range im.Data {
		im.Data[i] = 0.5
	}

	p := &Processor{Edges: true, BlurRadius: 1}
	res, err := p.Apply(im)
	assert.NoError(err)
	assert.Equal(1, res.C)
	for _, v := range res.Data {
		assert.InDelta(0, v, 1e-5)
	}
}

func TestProcessor_ApplyInvalidChannelCount(t *testing.T) {
	res, err := (&Processor{}).Apply(NewImage(1, 2, 2))
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrInvalidChannelCount))
}

func TestProcessor_Process(t *testing.T) {
	assert := assert.New(t)

	var in bytes.Buffer
	assert.NoError(png.Encode(&in, makeNRGBAImage(image.Rect(0, 0, 8, 6), palette.Plan9)))

	p := &Processor{NewWidth: 4, Grayscale: true}
	var out bytes.Buffer
	assert.NoError(p.Process(&in, &out))

	cfg, format, err := image.DecodeConfig(&out)
	assert.NoError(err)
	assert.Equal("jpeg", format)
	assert.Equal(4, cfg.Width)
	assert.Equal(3, cfg.Height)
}

func TestProcessor_ProcessErrors(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	assert.Error((&Processor{}).Process(bytes.NewBufferString("garbage"), &out))

	var in bytes.Buffer
	assert.NoError(png.Encode(&in, image.NewNRGBA(image.Rect(0, 0, 2, 2))))
	assert.Error((&Processor{NewWidth: -1}).Process(&in, &out))
}

func TestProcessor_DecodeErrorsMatch(t *testing.T) {
	assert := assert.New(t)

	_, decodeErr := Decode(bytes.NewBufferString("garbage"))
	processErr := (&Processor{}).Process(bytes.NewBufferString("garbage"), &bytes.Buffer{})

	assert.Error(decodeErr)
	assert.Error(processErr)
	assert.Equal(decodeErr.Error(), processErr.Error())
	assert.Contains(processErr.Error(), "could not decode the source image")
}
