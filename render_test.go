package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDeterministic(t *testing.T) {
	src := DefaultSource(32)
	ph := ComputePhases(13.3)
	pr := DefaultParams()

	r := NewRenderer(32, 32)

	r.Render(src, EffectGlow, ph, pr)
	first := make([]byte, len(r.Buf))
	copy(first, r.Buf)

	r.Render(src, EffectGlow, ph, pr)

	assert.Equal(t, first, r.Buf)
}

func TestRenderIndependentOfWorkerCount(t *testing.T) {
	src := DefaultSource(32)
	ph := ComputePhases(42)
	pr := DefaultParams()

	for _, effect := range allEffects {
		one := NewRenderer(32, 24)
		one.workers = 1
		one.Render(src, effect, ph, pr)

		many := NewRenderer(32, 24)
		many.workers = 7
		many.Render(src, effect, ph, pr)

		require.Equal(t, one.Buf, many.Buf, "effect %v", effect)
	}
}

func TestRenderProducesOpaqueFrame(t *testing.T) {
	src := DefaultSource(16)
	ph := ComputePhases(5)
	pr := DefaultParams()

	r := NewRenderer(16, 16)
	r.Render(src, EffectRipple, ph, pr)

	for i := 3; i < len(r.Buf); i += 4 {
		require.Equal(t, uint8(255), r.Buf[i])
	}
}

func TestRenderMoreWorkersThanRows(t *testing.T) {
	src := DefaultSource(8)
	r := NewRenderer(8, 2)
	r.workers = 16

	r.Render(src, EffectGlow, ComputePhases(3), DefaultParams())

	// every row still written; the backdrop guarantees nonzero bytes
	nonZero := false
	for _, b := range r.Buf {
		if b != 0 {
			nonZero = true
			break
		}
	}
	assert.True(t, nonZero)
}
