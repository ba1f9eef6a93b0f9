package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEffects = []EffectType{
	EffectGlow, EffectFlame, EffectRipple, EffectFade, EffectDroplet,
}

// a hard disk silhouette around the aura center
func diskSource(radius float64) AlphaField {
	return AlphaFieldFunc(func(uv FPoint) float64 {
		if uv.Sub(auraCenter).Length() < radius {
			return 1
		}
		return 0
	})
}

func opaqueSource() AlphaField {
	return AlphaFieldFunc(func(uv FPoint) float64 { return 1 })
}

func emptySource() AlphaField {
	return AlphaFieldFunc(func(uv FPoint) float64 { return 0 })
}

func TestComputeAuraPure(t *testing.T) {
	src := diskSource(0.25)
	ph := ComputePhases(12.5)
	pr := DefaultParams()

	for _, effect := range allEffects {
		for _, uv := range []FPoint{{0.5, 0.2}, {0.31, 0.7}, {0.9, 0.9}} {
			a := ComputeAura(effect, uv, src, ph, &pr)
			b := ComputeAura(effect, uv, src, ph, &pr)
			assert.Equal(t, a, b, "effect %v at %v", effect, uv)
		}
	}
}

func TestComputeAuraRanges(t *testing.T) {
	src := diskSource(0.25)

	params := []Params{
		DefaultParams(),
		{}, // everything zero
	}

	// deliberately out of the nominal slider ranges; the core must stay
	// finite and clamped anyway
	wild := DefaultParams()
	wild.AuraSize = -0.4
	wild.Strength = 12
	wild.SwimSpeed = -30
	wild.BreathSpeed = 100
	wild.FlameHeight = 2
	wild.FlameTemperature = -3
	wild.DropSpeed = 50
	wild.DropSize = 1.5
	wild.DropDirection = FPt(-7, 3)
	params = append(params, wild)

	times := []float64{0, 0.5, 7.9, 31.7, 60.5, 61.99, 240}

	for _, effect := range allEffects {
		for pi := range params {
			for _, elapsed := range times {
				ph := ComputePhases(elapsed)
				for yi := 0; yi <= 12; yi++ {
					for xi := 0; xi <= 12; xi++ {
						uv := FPt(f64(xi)/12, f64(yi)/12)

						res := ComputeAura(effect, uv, src, ph, &params[pi])

						require.False(t, math.IsNaN(res.Alpha), "effect %v params %d t %v uv %v", effect, pi, elapsed, uv)
						require.GreaterOrEqual(t, res.Alpha, 0.0)
						require.LessOrEqual(t, res.Alpha, 1.0)

						for _, ch := range []float64{res.Color.R, res.Color.G, res.Color.B} {
							require.False(t, math.IsNaN(ch))
							require.GreaterOrEqual(t, ch, 0.0)
							require.LessOrEqual(t, ch, 1.0)
						}
					}
				}
			}
		}
	}
}

func TestComputeAuraSeamlessAcrossAngleWrap(t *testing.T) {
	src := diskSource(0.25)
	pr := DefaultParams()

	const radius = 0.33
	const eps = 1e-4

	// just above and just below the atan2 discontinuity at angle pi
	above := FromPolar(radius, math.Pi-eps, auraCenter)
	below := FromPolar(radius, -math.Pi+eps, auraCenter)

	for _, effect := range allEffects {
		for _, elapsed := range []float64{0, 3.7, 20, 65} {
			ph := ComputePhases(elapsed)

			a := ComputeAura(effect, above, src, ph, &pr)
			b := ComputeAura(effect, below, src, ph, &pr)

			assert.InDelta(t, a.Alpha, b.Alpha, 0.02,
				"effect %v t %v", effect, elapsed)
		}
	}
}

func TestNoAuraOverFullyOpaqueSource(t *testing.T) {
	src := opaqueSource()

	pr := DefaultParams()
	pr.AuraSize = 0

	ph := ComputePhases(10)

	for _, effect := range allEffects {
		for yi := 0; yi <= 8; yi++ {
			for xi := 0; xi <= 8; xi++ {
				uv := FPt(f64(xi)/8, f64(yi)/8)
				res := ComputeAura(effect, uv, src, ph, &pr)
				assert.InDelta(t, 0, res.Alpha, 1e-9,
					"effect %v at %v", effect, uv)
			}
		}
	}
}

func TestGlowHugsSilhouette(t *testing.T) {
	src := diskSource(0.25)
	pr := DefaultParams()
	ph := ComputePhases(10) // growth fully ramped

	// just outside the rim the halo shows
	nearRim := FromPolar(0.27, 1.0, auraCenter)
	near := glowAura(nearRim, src, ph, &pr)
	assert.Greater(t, near.Alpha, 0.05)

	// far away it doesn't
	farAway := FromPolar(0.48, 1.0, auraCenter)
	far := glowAura(farAway, src, ph, &pr)
	assert.Less(t, far.Alpha, near.Alpha)

	// inside the opaque disk it is suppressed entirely
	inside := glowAura(auraCenter, src, ph, &pr)
	assert.InDelta(t, 0, inside.Alpha, 1e-9)
}

func TestGlowGrowsFromNothing(t *testing.T) {
	src := diskSource(0.25)
	pr := DefaultParams()

	nearRim := FromPolar(0.29, 2.0, auraCenter)

	atStart := glowAura(nearRim, src, ComputePhases(0), &pr)
	assert.InDelta(t, 0, atStart.Alpha, 1e-9)

	grown := glowAura(nearRim, src, ComputePhases(10), &pr)
	assert.Greater(t, grown.Alpha, atStart.Alpha)
}

func TestFadeErodesGlow(t *testing.T) {
	src := diskSource(0.25)
	pr := DefaultParams()
	ph := ComputePhases(10)

	// averaged over many rim points the eroded mask is thinner
	glowSum, fadeSum := 0.0, 0.0
	for i := 0; i < 64; i++ {
		uv := FromPolar(0.27, f64(i)/64*2*math.Pi, auraCenter)
		glowSum += glowAura(uv, src, ph, &pr).Alpha
		fadeSum += fadeAura(uv, src, ph, &pr).Alpha
	}

	assert.Less(t, fadeSum, glowSum)
}

func TestFlameColorRamp(t *testing.T) {
	assert.Equal(t, flameDark, flameRamp(0))
	assert.Equal(t, flameOrange, flameRamp(0.5))

	top := flameRamp(1)
	assert.InDelta(t, flameYellow.R, top.R, 1e-9)
	assert.InDelta(t, flameYellow.G, top.G, 1e-9)
	assert.InDelta(t, flameYellow.B, top.B, 1e-9)
	assert.Equal(t, top, flameRamp(5)) // clamped

	// the middle stop is hotter than the bottom one
	low := flameRamp(0.2)
	high := flameRamp(0.8)
	assert.Greater(t, high.G, low.G)
}

func TestFlameReachScalesWithHeight(t *testing.T) {
	ph := ComputePhases(10)

	small := DefaultParams()
	small.FlameHeight = 0.05
	big := DefaultParams()
	big.FlameHeight = 0.4

	for _, angle := range []float64{0, 1.1, 2.9, -2.0} {
		assert.Less(t,
			flameReachAt(angle, ph, &small),
			flameReachAt(angle, ph, &big))
	}
}

func TestFlameAlphaGrowsWithHeight(t *testing.T) {
	src := diskSource(0.25)
	ph := ComputePhases(10)

	small := DefaultParams()
	small.FlameHeight = 0.05
	big := DefaultParams()
	big.FlameHeight = 0.4

	// summed over a ring just outside the rim, the taller flame covers more
	smallSum, bigSum := 0.0, 0.0
	for i := 0; i < 64; i++ {
		uv := FromPolar(0.28, f64(i)/64*2*math.Pi, auraCenter)
		smallSum += flameAura(uv, src, ph, &small).Alpha
		bigSum += flameAura(uv, src, ph, &big).Alpha
	}

	assert.Greater(t, bigSum, smallSum)
}

func TestRippleDirectionalMask(t *testing.T) {
	src := diskSource(0.25)
	ph := ComputePhases(10)

	directed := DefaultParams()
	directed.DropDirection = FPt(1, 0)

	omni := DefaultParams()

	// summed over rings on the blocked side, the directed variant
	// has to be dimmer than the omnidirectional one
	blocked, open := 0.0, 0.0
	for i := 0; i < 32; i++ {
		r := 0.26 + f64(i%4)*0.01
		// opposite the spray direction
		left := FromPolar(r, math.Pi, auraCenter)

		blocked += rippleAura(left, src, ph, &directed).Alpha
		open += rippleAura(left, src, ph, &omni).Alpha
	}

	assert.LessOrEqual(t, blocked, open)
}

// =================================
// compositor
// =================================

func TestCompositeConvergenceReachesGreen(t *testing.T) {
	// convergence * growth * 0.8 has to reach 1 for the hue to land
	// exactly on the target; the core doesn't clamp the parameter
	pr := DefaultParams()
	pr.Convergence = 1.25

	ph := Phases{Growth: 1}

	for _, auraColor := range []RGB{{1, 0, 0}, {0, 0, 1}, {0.9, 0.9, 0.1}} {
		aura := AuraResult{Alpha: 1, Color: auraColor}
		final, _ := Composite(RGB{}, 0, aura, ph, &pr)

		h, _, _ := RGBToHSV(final)
		assert.InDelta(t, convergenceHue, h, 1e-6)
	}
}

func TestCompositeConvergenceAtOneIsPartial(t *testing.T) {
	// with the parameter at 1.0 the hue moves 80% of the way
	pr := DefaultParams()
	pr.Convergence = 1

	ph := Phases{Growth: 1}

	red := AuraResult{Alpha: 1, Color: RGB{1, 0, 0}}
	final, _ := Composite(RGB{}, 0, red, ph, &pr)

	h, _, _ := RGBToHSV(final)
	assert.InDelta(t, convergenceHue*0.8, h, 1e-6)
}

func TestCompositeOverlayPolicy(t *testing.T) {
	pr := DefaultParams()
	pr.Convergence = 0
	pr.CoreBrightness = 1

	ph := Phases{Growth: 1}

	srcColor := RGB{0.2, 0.4, 0.6}
	aura := AuraResult{Alpha: 1, Color: RGB{1, 0, 0}}

	// fully opaque source hides the aura completely
	final, alpha := Composite(srcColor, 1, aura, ph, &pr)
	assert.InDelta(t, srcColor.R, final.R, 1e-9)
	assert.InDelta(t, srcColor.G, final.G, 1e-9)
	assert.InDelta(t, srcColor.B, final.B, 1e-9)
	assert.Equal(t, 1.0, alpha)

	// fully transparent source shows the raw aura
	final, alpha = Composite(srcColor, 0, aura, ph, &pr)
	assert.InDelta(t, 1.0, final.R, 1e-9)
	assert.InDelta(t, 0.0, final.G, 1e-9)
	assert.Equal(t, 1.0, alpha)

	// nothing anywhere
	final, alpha = Composite(RGB{}, 0, AuraResult{}, ph, &pr)
	assert.Equal(t, 0.0, alpha)
	assert.Equal(t, RGB{}, final)
}

func TestCompositeLockBrightensCore(t *testing.T) {
	pr := DefaultParams()
	pr.Convergence = 0
	pr.CoreBrightness = 1

	srcColor := RGB{0.3, 0.3, 0.3}

	before, _ := Composite(srcColor, 1, AuraResult{}, Phases{Growth: 1}, &pr)
	after, _ := Composite(srcColor, 1, AuraResult{}, Phases{Growth: 1, Lock: 1}, &pr)

	assert.InDelta(t, 0.3, before.R, 1e-9)
	assert.InDelta(t, 0.45, after.R, 1e-9) // x1.5 once locked
}

func TestEffectTypeStringRoundTrip(t *testing.T) {
	for e := EffectType(0); e < EffectTypeCount; e++ {
		assert.Equal(t, e, EffectTypeFromString(e.String()))
	}
	assert.Equal(t, EffectGlow, EffectTypeFromString("no such effect"))
}
