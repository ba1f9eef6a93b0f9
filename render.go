package main

import (
	"runtime"
	"sync"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// background behind the figure and the aura
var renderBackground = RGB{0.035, 0.035, 0.055}

// Renderer evaluates the whole effect on the CPU. Every pixel is an
// independent pure function call, so rows are banded across workers and the
// band split never changes the output.
//
// It renders at its own (reduced) resolution; the host scales the result up
// with linear filtering.
type Renderer struct {
	W, H int

	// straight RGBA bytes, one frame
	Buf []byte

	img     *eb.Image
	workers int
}

func NewRenderer(w, h int) *Renderer {
	return &Renderer{
		W:       w,
		H:       h,
		Buf:     make([]byte, w*h*4),
		workers: max(1, runtime.NumCPU()),
	}
}

// Render fills Buf for one frame. pr is copied so the evaluation works on an
// immutable parameter snapshot even if a slider moves mid frame.
func (r *Renderer) Render(src *Source, effect EffectType, ph Phases, pr Params) {
	bands := r.workers
	if bands > r.H {
		bands = r.H
	}

	rowsPerBand := (r.H + bands - 1) / bands

	var wg sync.WaitGroup
	for b := 0; b < bands; b++ {
		y0 := b * rowsPerBand
		y1 := min(y0+rowsPerBand, r.H)
		if y0 >= y1 {
			break
		}

		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			r.renderRows(src, effect, ph, &pr, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

func (r *Renderer) renderRows(src *Source, effect EffectType, ph Phases, pr *Params, y0, y1 int) {
	for y := y0; y < y1; y++ {
		i := y * r.W * 4
		for x := 0; x < r.W; x++ {
			uv := FPt(
				(f64(x)+0.5)/f64(r.W),
				(f64(y)+0.5)/f64(r.H),
			)

			srcColor, srcAlpha := src.SampleAt(uv)
			aura := ComputeAura(effect, uv, src, ph, pr)
			final, alpha := Composite(srcColor, srcAlpha, aura, ph, pr)

			// flatten onto the backdrop so the frame is opaque
			out := LerpRGB(renderBackground, final, Clamp(alpha, 0, 1))

			r.Buf[i+0] = uint8(out.R * 255)
			r.Buf[i+1] = uint8(out.G * 255)
			r.Buf[i+2] = uint8(out.B * 255)
			r.Buf[i+3] = 255
			i += 4
		}
	}
}

// Upload pushes the current Buf into the GPU side image.
// Kept separate from Render so tests can run the evaluator headless.
func (r *Renderer) Upload() {
	if r.img == nil {
		r.img = eb.NewImage(r.W, r.H)
	}
	r.img.WritePixels(r.Buf)
}

func (r *Renderer) Image() *eb.Image {
	return r.img
}
