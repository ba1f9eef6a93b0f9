package main

// flame color stops, keyed on the fine strand noise
var (
	flameDark   = RGB{0.35, 0.05, 0.02}
	flameOrange = RGB{1.0, 0.45, 0.08}
	flameYellow = RGB{1.0, 0.9, 0.35}
)

// flameRamp is a 3 stop gradient dark red -> orange -> yellow.
func flameRamp(t float64) RGB {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return LerpRGB(flameDark, flameOrange, t/0.5)
	}
	return LerpRGB(flameOrange, flameYellow, (t-0.5)/0.5)
}

// flameAura licks outward from the silhouette rim. Coarse fbm sampled on a
// ring sets how far each angle reaches, domain warped fine fbm carves the
// strands inside that reach, and the inward coverage of the source keeps
// the whole thing rooted on the rim.
func flameAura(uv FPoint, src AlphaField, ph Phases, pr *Params) AuraResult {
	_, angle, _ := ToPolar(uv, auraCenter)

	t := ph.ActiveTime * pr.SwimSpeed

	// per angle reach, seamless across the angle wrap
	reach := flameReachAt(angle, ph, pr)

	// how firmly this pixel sits above the rim
	rooted := inwardCoverage(src, uv, reach, 5)

	// strand detail scrolls outward: the noise field is pulled back
	// toward the center over time, so features ride out along the ray
	outward := uv.Sub(auraCenter).Normalize()
	strandP := uv.Scale(7).Sub(outward.Scale(t * 0.8))
	fine := Fbm(DomainWarp2(strandP, ph.ActiveTime, 0.6), 5)

	mask := SmoothStep(0.3, 0.8, rooted*(0.45+fine))

	selfAlpha := src.AlphaAt(uv)
	alpha := mask * pr.Strength * (1 - Clamp(selfAlpha, 0, 1))

	color := flameRamp(fine * 1.4)
	color = ShiftHue(color, (pr.FlameTemperature-0.5)*1.2)

	return AuraResult{
		Alpha: Clamp(alpha, 0, 1),
		Color: color,
	}
}

// flameReachAt reports how far the flame reaches at a bare angle,
// without any silhouette under it.
func flameReachAt(angle float64, ph Phases, pr *Params) float64 {
	coarse := RingFbm(angle, 3.0, ph.ActiveTime*pr.SwimSpeed*0.3, 4)
	return pr.FlameHeight * ph.Growth * (0.35 + coarse)
}
