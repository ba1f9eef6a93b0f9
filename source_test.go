package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidTestImage(w, h int, c RGB) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c.ToNRGBA(1))
		}
	}
	return img
}

func TestSampleAtSolidColor(t *testing.T) {
	c := RGB{0.2, 0.4, 0.8}
	s := NewSourceFromImage(solidTestImage(8, 8, c))

	for _, uv := range []FPoint{{0.5, 0.5}, {0.2, 0.7}, {0.95, 0.05}} {
		got, alpha := s.SampleAt(uv)

		assert.InDelta(t, 1.0, alpha, 1e-9)
		// 8 bit quantization on the way in
		assert.InDelta(t, c.R, got.R, 1.0/255)
		assert.InDelta(t, c.G, got.G, 1.0/255)
		assert.InDelta(t, c.B, got.B, 1.0/255)
	}
}

func TestSampleAtOutOfBounds(t *testing.T) {
	s := NewSourceFromImage(solidTestImage(4, 4, RGB{1, 1, 1}))

	for _, uv := range []FPoint{{-0.5, 0.5}, {1.5, 0.5}, {0.5, -2}, {0.5, 3}} {
		_, alpha := s.SampleAt(uv)
		assert.Equal(t, 0.0, alpha)
	}
}

func TestSampleAtBilinearBlend(t *testing.T) {
	// left column black, right column white
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		img.Set(0, y, RGB{0, 0, 0}.ToNRGBA(1))
		img.Set(1, y, RGB{1, 1, 1}.ToNRGBA(1))
	}

	s := NewSourceFromImage(img)

	// dead center sits halfway between the two columns
	got, alpha := s.SampleAt(FPt(0.5, 0.5))
	assert.InDelta(t, 1.0, alpha, 1e-9)
	assert.InDelta(t, 0.5, got.R, 1.0/255)
}

func TestSampleAtNilSource(t *testing.T) {
	var s *Source
	_, alpha := s.SampleAt(FPt(0.5, 0.5))
	assert.Equal(t, 0.0, alpha)
}

func TestDefaultSourceSilhouette(t *testing.T) {
	s := DefaultSource(128)
	require.Equal(t, 128, s.W)

	// the head center and the body center are opaque
	assert.InDelta(t, 1.0, s.AlphaAt(FPt(0.5, 0.30)), 1.0/255)
	assert.InDelta(t, 1.0, s.AlphaAt(FPt(0.5, 0.60)), 1.0/255)

	// the corners are fully transparent
	for _, uv := range []FPoint{{0.02, 0.02}, {0.98, 0.02}, {0.02, 0.98}, {0.98, 0.98}} {
		assert.Equal(t, 0.0, s.AlphaAt(uv))
	}
}

func TestCapsuleDistance(t *testing.T) {
	a := FPt(0.5, 0.4)
	b := FPt(0.5, 0.8)
	const r = 0.1

	// on the axis the distance is -r
	assert.InDelta(t, -r, capsuleDistance(FPt(0.5, 0.6), a, b, r), 1e-9)

	// on the surface it is zero
	assert.InDelta(t, 0.0, capsuleDistance(FPt(0.6, 0.6), a, b, r), 1e-9)

	// past an endcap the cap is round, not square
	assert.InDelta(t, 0.1, capsuleDistance(FPt(0.5, 1.0), a, b, r), 1e-9)
}

func TestLoadSourceMissingFile(t *testing.T) {
	_, err := LoadSource("/no/such/file.png")
	assert.Error(t, err)
}
