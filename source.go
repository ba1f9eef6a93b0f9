package main

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/ncruces/zenity"
)

// Source is the uploaded figure the aura wraps around. Channels are kept as
// straight alpha floats so per pixel sampling doesn't re-normalize 8 bit
// values every frame.
type Source struct {
	W, H int
	pix  []float64 // r, g, b, a per pixel, all in [0, 1]

	// where it came from, for the debug overlay
	Path string
}

func NewSourceFromImage(img image.Image) *Source {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	s := &Source{
		W:   w,
		H:   h,
		pix: make([]float64, w*h*4),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := ColorToNRGBA(img.At(x, y))
			s.pix[i+0] = f64(c.R) / 255
			s.pix[i+1] = f64(c.G) / 255
			s.pix[i+2] = f64(c.B) / 255
			s.pix[i+3] = f64(c.A) / 255
			i += 4
		}
	}

	return s
}

func LoadSource(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}

	s := NewSourceFromImage(img)
	s.Path = path
	return s, nil
}

// texel fetches one pixel; anything outside the image is fully transparent.
func (s *Source) texel(x, y int) (RGB, float64) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return RGB{}, 0
	}
	i := (y*s.W + x) * 4
	return RGB{s.pix[i], s.pix[i+1], s.pix[i+2]}, s.pix[i+3]
}

// SampleAt bilinearly samples color and alpha at a normalized coordinate.
// Out of bounds coordinates fade to transparent instead of faulting.
func (s *Source) SampleAt(uv FPoint) (RGB, float64) {
	if s == nil || s.W == 0 || s.H == 0 {
		return RGB{}, 0
	}

	fx := uv.X*f64(s.W) - 0.5
	fy := uv.Y*f64(s.H) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - f64(x0)
	ty := fy - f64(y0)

	c00, a00 := s.texel(x0, y0)
	c10, a10 := s.texel(x0+1, y0)
	c01, a01 := s.texel(x0, y0+1)
	c11, a11 := s.texel(x0+1, y0+1)

	top := LerpRGB(c00, c10, tx)
	bot := LerpRGB(c01, c11, tx)

	color := LerpRGB(top, bot, ty)
	alpha := Lerp(Lerp(a00, a10, tx), Lerp(a01, a11, tx), ty)

	return color, alpha
}

// AlphaAt implements AlphaField.
func (s *Source) AlphaAt(uv FPoint) float64 {
	_, a := s.SampleAt(uv)
	return a
}

// =================================
// default figure
// =================================

// DefaultSource builds a soft figure silhouette (head over a robed body) so
// the playground has something to wrap an aura around before any upload.
func DefaultSource(size int) *Source {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	head := FPt(0.5, 0.30)
	const headR = 0.115

	bodyTop := FPt(0.5, 0.46)
	bodyBot := FPt(0.5, 0.80)
	const bodyR = 0.155

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			uv := FPt(
				(f64(x)+0.5)/f64(size),
				(f64(y)+0.5)/f64(size),
			)

			dHead := uv.Sub(head).Length() - headR
			dBody := capsuleDistance(uv, bodyTop, bodyBot, bodyR)

			d := min(dHead, dBody)

			alpha := 1 - SmoothStep(-0.006, 0.006, d)
			if alpha <= 0 {
				continue
			}

			// simple vertical shading, darker hem
			shade := Lerp(0.95, 0.55, Clamp((uv.Y-0.2)/0.6, 0, 1))
			c := RGB{0.62 * shade, 0.42 * shade, 0.58 * shade}

			img.Set(x, y, c.ToNRGBA(alpha))
		}
	}

	s := NewSourceFromImage(img)
	s.Path = "(built-in figure)"
	return s
}

// capsuleDistance is the signed distance from p to a capsule from a to b.
func capsuleDistance(p, a, b FPoint, r float64) float64 {
	pa := p.Sub(a)
	ba := b.Sub(a)

	t := Clamp(pa.Dot(ba)/ba.LengthSquared(), 0, 1)

	return pa.Sub(ba.Scale(t)).Length() - r
}

// =================================
// file dialog
// =================================

// OpenSourceDialog shows the native file picker. A canceled dialog is not
// an error, it just returns an empty path.
func OpenSourceDialog() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Pick a figure image"),
		zenity.FileFilters{
			{Name: "Images", Patterns: []string{"*.png", "*.jpg", "*.jpeg"}, CaseFold: true},
		},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}
