package main

import (
	"math"
)

// glow sampling fan size. 8 is enough, the swim jitter hides the banding.
const glowSampleCount = 8

// glowOffset is the shared offset distance of the radial sampling fan:
// the aura size scaled by the growth ramp, breathing sinusoidally.
func glowOffset(ph Phases, pr *Params) float64 {
	breath := 1 + 0.18*math.Sin(ph.ActiveTime*pr.BreathSpeed*1.1)
	return pr.AuraSize * ph.Growth * breath
}

// glowAura is the basic halo: average the source alpha at a fan of angles
// around the pixel at a breathing offset distance. Wherever the silhouette
// is within reach the average is high and the halo shows.
func glowAura(uv FPoint, src AlphaField, ph Phases, pr *Params) AuraResult {
	offset := glowOffset(ph, pr)

	// low amplitude fbm drifts the fan angles so the halo swims
	// instead of sitting still
	swim := (Fbm(uv.Scale(3).Add(FPt(ph.ActiveTime*pr.SwimSpeed*0.15, 0)), 4) - 0.5) * 1.6

	cov := borderCoverage(src, uv, offset, swim, glowSampleCount)

	selfAlpha := src.AlphaAt(uv)

	alpha := cov * pr.Strength * (1 - Clamp(selfAlpha, 0, 1))

	return AuraResult{
		Alpha: Clamp(alpha, 0, 1),
		Color: pr.GlowTint,
	}
}
