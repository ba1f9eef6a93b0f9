package main

// rippleAura is the mist: the glow's border mask multiplied by ring pulses
// marching outward. The rings come from the fract of a moving radial
// coordinate, shaped so each cell reads as one soft pulse, then broken up
// by fine fbm so they look like spray instead of compass circles.
func rippleAura(uv FPoint, src AlphaField, ph Phases, pr *Params) AuraResult {
	offset := glowOffset(ph, pr)
	cov := borderCoverage(src, uv, offset, 0, glowSampleCount)

	radius, _, _ := ToPolar(uv, auraCenter)

	// repeating cell pattern scrolling outward at drop speed
	cell := Fract(radius*9 - ph.ActiveTime*pr.DropSpeed*2.2)
	pulse := SmoothStep(0.0, 0.45, cell) * (1 - SmoothStep(0.55, 1.0, cell))

	fine := Fbm(
		uv.Scale(14).Add(FPt(0, ph.ActiveTime*pr.SwimSpeed*0.5)),
		4,
	)

	alpha := cov * pulse * (0.35 + 0.65*fine) * pr.Strength

	// optional directional mask; zero length direction means everywhere
	if pr.DropDirection.LengthSquared() > 0 {
		dir := pr.DropDirection.Normalize()
		outward := uv.Sub(auraCenter).Normalize()
		facing := outward.Dot(dir)*0.5 + 0.5
		alpha *= SmoothStep(0.3, 0.9, facing)
	}

	selfAlpha := src.AlphaAt(uv)
	alpha *= 1 - Clamp(selfAlpha, 0, 1)

	return AuraResult{
		Alpha: Clamp(alpha, 0, 1),
		Color: pr.RippleTint,
	}
}
