package main

import (
	"fmt"
	"image/color"
	"math"

	css "github.com/mazznoer/csscolorparser"
)

// =================================
// RGB
// =================================

// RGB is a linear-ish color with channels in [0, 1].
// The effect core works in these, not in 8 bit channels.
type RGB struct {
	R, G, B float64
}

func (c RGB) Scale(s float64) RGB {
	c.R *= s
	c.G *= s
	c.B *= s
	return c
}

func (c RGB) Add(o RGB) RGB {
	c.R += o.R
	c.G += o.G
	c.B += o.B
	return c
}

func (c RGB) Clamp01() RGB {
	c.R = Clamp(c.R, 0, 1)
	c.G = Clamp(c.G, 0, 1)
	c.B = Clamp(c.B, 0, 1)
	return c
}

func LerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: Lerp(a.R, b.R, t),
		G: Lerp(a.G, b.G, t),
		B: Lerp(a.B, b.B, t),
	}
}

func RGBFromNRGBA(c color.NRGBA) RGB {
	return RGB{f64(c.R) / 255, f64(c.G) / 255, f64(c.B) / 255}
}

func (c RGB) ToNRGBA(alpha float64) color.NRGBA {
	cc := c.Clamp01()
	alpha = Clamp(alpha, 0, 1)
	return color.NRGBA{
		R: uint8(cc.R * 255),
		G: uint8(cc.G * 255),
		B: uint8(cc.B * 255),
		A: uint8(alpha * 255),
	}
}

// =================================
// HSV
// =================================

// hueEpsilon guards the chroma and value divides so grays and
// near-blacks don't turn into NaN.
const hueEpsilon = 1e-9

// RGBToHSV converts to hue (radians, [0, 2pi)), saturation and value.
func RGBToHSV(c RGB) (hue, saturation, value float64) {
	r, g, b := c.R, c.G, c.B

	cMax := max(r, g, b)
	cMin := min(r, g, b)

	dist := cMax - cMin

	if dist > hueEpsilon {
		if cMax == r {
			hue = math.Mod((g-b)/dist, 6)
		} else if cMax == g {
			hue = ((b - r) / dist) + 2
		} else {
			hue = ((r - g) / dist) + 4
		}
	}

	hue *= 60 * math.Pi / 180

	for hue < 0 {
		hue += math.Pi * 2
	}
	for hue >= math.Pi*2 {
		hue -= math.Pi * 2
	}

	if cMax > hueEpsilon {
		saturation = dist / cMax
	}

	value = cMax

	saturation = Clamp(saturation, 0, 1)
	value = Clamp(value, 0, 1)

	return hue, saturation, value
}

func HSVToRGB(hue, saturation, value float64) RGB {
	for hue < 0 {
		hue += math.Pi * 2
	}
	for hue >= math.Pi*2 {
		hue -= math.Pi * 2
	}

	saturation = Clamp(saturation, 0, 1)
	value = Clamp(value, 0, 1)

	c := saturation * value
	h := hue / (60 * math.Pi / 180)
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))

	var r, g, b float64
	if h < 1 {
		r, g, b = c, x, 0
	} else if h < 2 {
		r, g, b = x, c, 0
	} else if h < 3 {
		r, g, b = 0, c, x
	} else if h < 4 {
		r, g, b = 0, x, c
	} else if h < 5 {
		r, g, b = x, 0, c
	} else {
		r, g, b = c, 0, x
	}

	m := value - c

	return RGB{r + m, g + m, b + m}.Clamp01()
}

// ShiftHue rotates the hue of c by delta radians, keeping
// saturation, value and the caller's alpha untouched.
func ShiftHue(c RGB, delta float64) RGB {
	if delta == 0 {
		return c
	}
	h, s, v := RGBToHSV(c)
	return HSVToRGB(h+delta, s, v)
}

// LerpHueToward moves the hue of c toward target (radians) by t,
// taking the short way around the hue circle.
func LerpHueToward(c RGB, target, t float64) RGB {
	if t <= 0 {
		return c
	}
	h, s, v := RGBToHSV(c)

	diff := target - h
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return HSVToRGB(h+diff*Clamp(t, 0, 1), s, v)
}

// =================================
// color.Color helpers
// =================================

func ColorToNRGBA(clr color.Color) color.NRGBA {
	if clr == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

func ColorFade(c color.Color, a float64) color.NRGBA {
	nc := ColorToNRGBA(c)
	nc.A = uint8(f64(nc.A) * Clamp(a, 0, 1))
	return nc
}

func ColorToString(clr color.Color) string {
	c := ColorToNRGBA(clr)
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func ParseColorString(str string) (color.NRGBA, error) {
	c, err := css.Parse(str)

	if err != nil {
		return color.NRGBA{}, err
	}

	nrgba := color.NRGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: uint8(255 * c.A),
	}

	return nrgba, nil
}
