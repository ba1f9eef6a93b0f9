package main

import (
	"math"
)

// EffectType selects which aura recipe runs. Owned by the host, the
// effect functions themselves are stateless.
type EffectType int

const (
	EffectGlow EffectType = iota
	EffectFlame
	EffectRipple
	EffectFade
	EffectDroplet

	EffectTypeCount
)

func (e EffectType) String() string {
	switch e {
	case EffectGlow:
		return "glow"
	case EffectFlame:
		return "flame"
	case EffectRipple:
		return "ripple"
	case EffectFade:
		return "fade"
	case EffectDroplet:
		return "droplet"
	}
	return "glow"
}

func EffectTypeFromString(str string) EffectType {
	for e := EffectType(0); e < EffectTypeCount; e++ {
		if e.String() == str {
			return e
		}
	}
	return EffectGlow
}

// AlphaField hands out the source image's coverage at any normalized
// coordinate. Out of bounds coordinates must sample as transparent.
type AlphaField interface {
	AlphaAt(uv FPoint) float64
}

// AlphaFieldFunc adapts a plain function to an AlphaField.
type AlphaFieldFunc func(uv FPoint) float64

func (f AlphaFieldFunc) AlphaAt(uv FPoint) float64 {
	return f(uv)
}

// AuraResult is what a mask generator produces for one pixel:
// a soft mask value in [0, 1] and a color in [0, 1]^3.
type AuraResult struct {
	Alpha float64
	Color RGB
}

// auraCenter is the pivot every polar remap uses.
var auraCenter = FPt(0.5, 0.5)

// ComputeAura evaluates one effect at one pixel. Pure: same inputs,
// same output, no matter how many pixels run in parallel.
func ComputeAura(effect EffectType, uv FPoint, src AlphaField, ph Phases, pr *Params) AuraResult {
	var res AuraResult

	switch effect {
	case EffectGlow:
		res = glowAura(uv, src, ph, pr)
	case EffectFlame:
		res = flameAura(uv, src, ph, pr)
	case EffectRipple:
		res = rippleAura(uv, src, ph, pr)
	case EffectFade:
		res = fadeAura(uv, src, ph, pr)
	case EffectDroplet:
		res = dropletAura(uv, src, ph, pr)
	default:
		res = glowAura(uv, src, ph, pr)
	}

	res.Alpha = Clamp(res.Alpha, 0, 1)
	res.Color = res.Color.Clamp01()

	return res
}

// borderCoverage averages the source alpha at sampleCount angles around uv
// at the given offset distance. High where the silhouette is nearby,
// fading to zero away from it.
func borderCoverage(src AlphaField, uv FPoint, offset, angleJitter float64, sampleCount int) float64 {
	if sampleCount <= 0 {
		return 0
	}

	sum := 0.0
	step := 2 * math.Pi / f64(sampleCount)

	for i := 0; i < sampleCount; i++ {
		a := f64(i)*step + angleJitter
		at := FPt(
			uv.X+math.Cos(a)*offset,
			uv.Y+math.Sin(a)*offset,
		)
		sum += src.AlphaAt(at)
	}

	return sum / f64(sampleCount)
}

// inwardCoverage averages the source alpha along the ray from uv toward the
// aura center. Measures how close uv sits above the silhouette's rim.
func inwardCoverage(src AlphaField, uv FPoint, reach float64, sampleCount int) float64 {
	if sampleCount <= 0 {
		return 0
	}

	dir := auraCenter.Sub(uv).Normalize()

	sum := 0.0
	for i := 1; i <= sampleCount; i++ {
		t := reach * f64(i) / f64(sampleCount)
		sum += src.AlphaAt(uv.Add(dir.Scale(t)))
	}

	return sum / f64(sampleCount)
}

// =================================
// compositor
// =================================

// convergenceHue is the hue the whole effect settles into: green.
const convergenceHue = 2 * math.Pi / 3

// Composite blends the source sample with the generated aura.
//
// Overlay policy: the source is drawn on top of the aura, so the halo only
// shows through transparent source regions. Keeps the silhouette edge clean
// instead of letting the aura bleed additively through semi transparent rims.
func Composite(srcColor RGB, srcAlpha float64, aura AuraResult, ph Phases, pr *Params) (RGB, float64) {
	srcAlpha = Clamp(srcAlpha, 0, 1)

	auraColor := LerpHueToward(
		aura.Color,
		convergenceHue,
		Clamp(pr.Convergence*ph.Growth*0.8, 0, 1),
	)

	brightness := pr.CoreBrightness + ph.Lock*0.5

	final := LerpRGB(
		auraColor.Scale(aura.Alpha),
		srcColor.Scale(brightness).Clamp01(),
		srcAlpha,
	).Clamp01()

	alpha := max(aura.Alpha, srcAlpha)

	return final, alpha
}
