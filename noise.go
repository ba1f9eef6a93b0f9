package main

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Hash21 turns a 2d coordinate into a pseudo random scalar in [0, 1).
// Same input always gives the same output, nearby integer inputs decorrelate.
func Hash21(p FPoint) float64 {
	h := math.Sin(p.X*127.1+p.Y*311.7) * 43758.5453123
	return Fract(h)
}

// ValueNoise blends the hashes of the four corners of the unit cell
// containing p with a smoothstep weight on each axis. Output in [0, 1].
func ValueNoise(p FPoint) float64 {
	ix := math.Floor(p.X)
	iy := math.Floor(p.Y)
	fx := p.X - ix
	fy := p.Y - iy

	// smoothstep, not plain lerp, otherwise cell edges show up
	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	h00 := Hash21(FPt(ix, iy))
	h10 := Hash21(FPt(ix+1, iy))
	h01 := Hash21(FPt(ix, iy+1))
	h11 := Hash21(FPt(ix+1, iy+1))

	return Lerp(
		Lerp(h00, h10, ux),
		Lerp(h01, h11, ux),
		uy,
	)
}

// Fbm sums octaves of ValueNoise, halving amplitude and doubling frequency
// each step. First octave has amplitude 0.5 so the sum stays below
// 1 - 0.5^octaves.
func Fbm(p FPoint, octaves int) float64 {
	sum := 0.0
	amp := 0.5
	freq := 1.0

	for i := 0; i < octaves; i++ {
		sum += amp * ValueNoise(p.Scale(freq))
		amp *= 0.5
		freq *= 2
	}

	return sum
}

// =================================
// smooth (gradient) noise
// =================================

// effects that need smoother results than value noise (droplet caustics)
// go through opensimplex instead
var theSmoothNoise = opensimplex.NewNormalized(1377)

// SmoothNoise is gradient noise remapped to [0, 1].
func SmoothNoise(p FPoint) float64 {
	return theSmoothNoise.Eval2(p.X, p.Y)
}

func SmoothFbm(p FPoint, octaves int) float64 {
	sum := 0.0
	amp := 0.5
	freq := 1.0

	for i := 0; i < octaves; i++ {
		sum += amp * SmoothNoise(p.Scale(freq))
		amp *= 0.5
		freq *= 2
	}

	return sum
}

// =================================
// derived lookups
// =================================

// RingNoise samples noise on a circle of the given frequency so the result
// is seamless across the angle wrap at 0 / 2pi. Sampling the raw normalized
// angle as a noise axis is NOT seamless; this is the fix.
func RingNoise(angle, freq, drift float64) float64 {
	p := FPt(
		math.Cos(angle)*freq+drift,
		math.Sin(angle)*freq-drift*0.7,
	)
	return ValueNoise(p)
}

// RingFbm is RingNoise with fractal summation.
func RingFbm(angle, freq, drift float64, octaves int) float64 {
	p := FPt(
		math.Cos(angle)*freq+drift,
		math.Sin(angle)*freq-drift*0.7,
	)
	return Fbm(p, octaves)
}

// DomainWarp displaces p by one round of fbm before the caller's own lookup.
// Continuous in both p and time, so the turbulence never pops.
func DomainWarp(p FPoint, time, strength float64) FPoint {
	q := FPt(
		Fbm(p.Add(FPt(0.0, time*0.35)), 4),
		Fbm(p.Add(FPt(5.2, 1.3+time*0.35)), 4),
	)

	return p.Add(q.Scale(strength))
}

// DomainWarp2 runs two rounds for stringier streaks. Used by the flame.
func DomainWarp2(p FPoint, time, strength float64) FPoint {
	q := FPt(
		Fbm(p.Add(FPt(0.0, time*0.35)), 4),
		Fbm(p.Add(FPt(5.2, 1.3+time*0.35)), 4),
	)

	r := FPt(
		Fbm(p.Add(q.Scale(2.0)).Add(FPt(1.7, 9.2+time*0.25)), 4),
		Fbm(p.Add(q.Scale(2.0)).Add(FPt(8.3, 2.8+time*0.25)), 4),
	)

	return p.Add(r.Scale(strength))
}
