package main

import (
	"math"
)

// fadeAura is the smoke variant of the glow: same radial fan mask, then
// eroded by an independent high frequency fbm so the halo frays into
// wisps, with a slow sinusoidal breathing cycle opening and closing them.
func fadeAura(uv FPoint, src AlphaField, ph Phases, pr *Params) AuraResult {
	base := glowAura(uv, src, ph, pr)

	fine := Fbm(
		uv.Scale(18).Add(FPt(
			ph.ActiveTime*pr.SwimSpeed*0.4,
			-ph.ActiveTime*pr.SwimSpeed*0.9,
		)),
		5,
	)

	breath := 0.5 + 0.5*math.Sin(ph.ActiveTime*pr.BreathSpeed*0.8)

	// erosion threshold rides the breathing cycle; at the top of the
	// breath most of the mask survives, at the bottom only the densest
	// wisps do
	erosion := SmoothStep(0.15+0.35*breath, 0.85, fine+0.25)

	base.Alpha = Clamp(base.Alpha*erosion, 0, 1)

	// smoke reads cooler and dimmer than the plain glow
	base.Color = base.Color.Scale(0.8)

	return base
}
