package main

import (
	"math"

	"golang.org/x/exp/constraints"
)

func f64[N constraints.Integer | constraints.Float](n N) float64 {
	return float64(n)
}

func f32[N constraints.Integer | constraints.Float](n N) float32 {
	return float32(n)
}

// =================================
// FPoint
// =================================

type FPoint struct {
	X, Y float64
}

func FPt(x, y float64) FPoint {
	return FPoint{X: x, Y: y}
}

func (p FPoint) Add(q FPoint) FPoint {
	p.X += q.X
	p.Y += q.Y
	return p
}

func (p FPoint) Sub(q FPoint) FPoint {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

func (p FPoint) Mul(q FPoint) FPoint {
	p.X *= q.X
	p.Y *= q.Y
	return p
}

func (p FPoint) Scale(s float64) FPoint {
	p.X *= s
	p.Y *= s
	return p
}

func (p FPoint) Dot(q FPoint) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p FPoint) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p FPoint) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p FPoint) Normalize() FPoint {
	l := p.Length()
	if l < 0.0000001 {
		return FPoint{}
	}
	return FPt(p.X/l, p.Y/l)
}

func (p FPoint) Rotate(theta float64) FPoint {
	cos := math.Cos(theta)
	sin := math.Sin(theta)

	return FPoint{
		X: cos*p.X - sin*p.Y,
		Y: sin*p.X + cos*p.Y,
	}
}

func (p FPoint) Eq(q FPoint) bool {
	return p.X == q.X && p.Y == q.Y
}

func (p FPoint) In(r FRectangle) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// =================================
// FRectangle
// =================================

type FRectangle struct {
	Min, Max FPoint
}

func FRect(x0, y0, x1, y1 float64) FRectangle {
	return FRectangle{
		Min: FPt(x0, y0),
		Max: FPt(x1, y1),
	}
}

func FRectWH(w, h float64) FRectangle {
	return FRectangle{
		Min: FPoint{0, 0},
		Max: FPoint{w, h},
	}
}

func (r FRectangle) Dx() float64 {
	return r.Max.X - r.Min.X
}

func (r FRectangle) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

func (r FRectangle) Add(p FPoint) FRectangle {
	return FRectangle{
		FPoint{r.Min.X + p.X, r.Min.Y + p.Y},
		FPoint{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}

func (r FRectangle) Inset(n float64) FRectangle {
	if r.Dx() < 2*n {
		r.Min.X = (r.Min.X + r.Max.X) / 2
		r.Max.X = r.Min.X
	} else {
		r.Min.X += n
		r.Max.X -= n
	}
	if r.Dy() < 2*n {
		r.Min.Y = (r.Min.Y + r.Max.Y) / 2
		r.Max.Y = r.Min.Y
	} else {
		r.Min.Y += n
		r.Max.Y -= n
	}
	return r
}

func (r FRectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

func FRectMoveTo(rect FRectangle, pt FPoint) FRectangle {
	return FRectangle{
		Min: pt,
		Max: FPt(pt.X+rect.Dx(), pt.Y+rect.Dy()),
	}
}

func FRectangleCenter(rect FRectangle) FPoint {
	return FPoint{
		X: (rect.Min.X + rect.Max.X) * 0.5,
		Y: (rect.Min.Y + rect.Max.Y) * 0.5,
	}
}

// =================================
// scalar helpers
// =================================

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

func Fract(v float64) float64 {
	return v - math.Floor(v)
}

// SmoothStep maps v from [edge0, edge1] to [0, 1] with the cubic 3t^2-2t^3.
func SmoothStep(edge0, edge1, v float64) float64 {
	t := Clamp((v-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// SmootherStep is the quintic variant. Zero second derivative at the edges.
func SmootherStep(edge0, edge1, v float64) float64 {
	t := Clamp((v-edge0)/(edge1-edge0), 0, 1)
	return t * t * t * (t*(t*6-15) + 10)
}

// =================================
// polar coordinates
// =================================

// ToPolar returns the distance and angle of uv relative to center.
// normAngle is the angle remapped to [0, 1) so a full turn wraps back to 0.
func ToPolar(uv, center FPoint) (radius, angle, normAngle float64) {
	d := uv.Sub(center)
	radius = d.Length()
	angle = math.Atan2(d.Y, d.X)
	normAngle = Fract(angle/(2*math.Pi) + 0.5)
	return radius, angle, normAngle
}

func FromPolar(radius, angle float64, center FPoint) FPoint {
	return FPt(
		center.X+math.Cos(angle)*radius,
		center.Y+math.Sin(angle)*radius,
	)
}
