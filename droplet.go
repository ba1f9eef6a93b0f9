package main

import (
	"math"
)

const dropletCount = 15

// dropletHighlight is the bright spray color the particles blend
// into the deep blue base.
var dropletHighlight = RGB{0.75, 0.95, 1.0}

// per particle lifetime seed, fixed for the particle's whole existence
func dropletSeed(i int) float64 {
	return Hash21(FPt(f64(i)*1.61+0.37, 7.13))
}

// dropletCycle maps a particle index and time onto its current life cycle
// in [0, 1) plus the cycle bucket. When the bucket increments the particle
// respawns with fresh random values, giving an unbounded stream of drops
// out of a fixed index pool.
func dropletCycle(i int, t, speed float64) (cycle, bucket float64) {
	raw := t*speed + dropletSeed(i)
	return Fract(raw), math.Floor(raw)
}

// dropletAngle draws the particle's outward direction for one cycle bucket.
// Stable within a bucket, redrawn when the bucket changes.
func dropletAngle(i int, bucket float64, direction FPoint) float64 {
	h := Hash21(FPt(f64(i)*3.7+1.1, bucket*2.3+5.9))

	if direction.LengthSquared() > 0 {
		// spray cone around the requested direction
		base := math.Atan2(direction.Y, direction.X)
		return base + (h-0.5)*1.5
	}

	return h * 2 * math.Pi
}

// dropletShape places particle i at time t and returns its center and
// radius. The radius shrinks over the particle's life, the position rides
// outward from the aura center with a small sinusoidal wobble.
func dropletShape(i int, t float64, ph Phases, pr *Params) (pos FPoint, radius float64, hollow bool) {
	cycle, bucket := dropletCycle(i, t, pr.DropSpeed)
	angle := dropletAngle(i, bucket, pr.DropDirection)

	seed := dropletSeed(i)
	sizeVar := 0.55 + 0.45*Hash21(FPt(bucket*1.7+0.3, f64(i)*0.9))

	r := 0.12 + cycle*0.5
	pos = FromPolar(r, angle, auraCenter)

	// wobble: squash the path sideways as the drop travels
	perp := FPt(-math.Sin(angle), math.Cos(angle))
	pos = pos.Add(perp.Scale(math.Sin(cycle*math.Pi*4+seed*17) * 0.012))

	radius = pr.DropSize * sizeVar * (1 - cycle) * (0.3 + 0.7*ph.Growth)

	// some drops render as thin rings instead of filled disks
	hollow = seed < 0.35

	return pos, radius, hollow
}

// dropletCoverage is the distance field disk (or thin ring) of one particle
// evaluated at uv.
func dropletCoverage(uv, pos FPoint, radius float64, hollow bool) float64 {
	if radius <= 0 {
		return 0
	}

	d := uv.Sub(pos).Length()

	if hollow {
		ring := math.Abs(d - radius*0.8)
		return 1 - SmoothStep(0, radius*0.3, ring)
	}

	return 1 - SmoothStep(radius*0.55, radius, d)
}

// dropletAura layers a slow caustics net (background) under a stream of
// outward flying drops (foreground). Particles combine with max, not sum,
// so overlaps never blow out.
func dropletAura(uv FPoint, src AlphaField, ph Phases, pr *Params) AuraResult {
	t := ph.ActiveTime

	// background: domain warped smooth noise, abs folded and sharpened
	// into thin bright ridges, slowly rotating and drifting outward
	rot := uv.Sub(auraCenter).Rotate(t * 0.06).Add(auraCenter)
	outward := rot.Sub(auraCenter).Normalize()

	p := rot.Scale(9).Sub(outward.Scale(t * pr.DropSpeed * 0.5))
	q := FPt(
		SmoothFbm(p, 4),
		SmoothFbm(p.Add(FPt(4.7, 9.3)), 4),
	)
	n := SmoothFbm(p.Add(q.Scale(0.8)), 4)

	folded := 1 - math.Abs(2*n-1)
	ridges := folded * folded * folded
	ridges *= ridges // ^6

	border := borderCoverage(src, uv, pr.AuraSize*ph.Growth, 0, glowSampleCount)

	bgAlpha := border * ridges * 0.55 * pr.Strength

	// foreground particles
	coverage := 0.0
	for i := 0; i < dropletCount; i++ {
		pos, radius, hollow := dropletShape(i, t, ph, pr)
		coverage = max(coverage, dropletCoverage(uv, pos, radius, hollow))
	}

	selfAlpha := Clamp(src.AlphaAt(uv), 0, 1)

	alpha := max(bgAlpha, coverage*pr.Strength) * (1 - selfAlpha) * ph.Growth

	color := LerpRGB(pr.DropTint, dropletHighlight, Clamp(coverage, 0, 1))

	return AuraResult{
		Alpha: Clamp(alpha, 0, 1),
		Color: color,
	}
}
