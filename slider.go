package main

import (
	"fmt"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Slider drags a single scalar between Min and Max.
// It doesn't own the value; it reads and writes through Get/Set so the
// bound parameter stays the single source of truth.
type Slider struct {
	Rect FRectangle

	Label    string
	Min, Max float64

	Get func() float64
	Set func(float64)

	dragging bool
}

func (s *Slider) Update() {
	cursor := CursorFPt()

	if IsMouseButtonJustPressed(eb.MouseButtonLeft) && cursor.In(s.Rect) {
		s.dragging = true
	}
	if !IsMouseButtonPressed(eb.MouseButtonLeft) {
		s.dragging = false
	}

	if s.dragging {
		t := Clamp((cursor.X-s.Rect.Min.X)/s.Rect.Dx(), 0, 1)
		s.Set(Lerp(s.Min, s.Max, t))
	}
}

func (s *Slider) Draw(dst *eb.Image) {
	value := s.Get()
	t := Clamp((value-s.Min)/(s.Max-s.Min), 0, 1)

	bg := color.NRGBA{30, 30, 40, 220}
	fill := color.NRGBA{110, 160, 220, 255}
	if s.dragging {
		fill = color.NRGBA{150, 200, 255, 255}
	}

	DrawFilledRect(dst, s.Rect, bg, false)

	fillRect := s.Rect.Inset(2)
	fillRect.Max.X = fillRect.Min.X + fillRect.Dx()*t
	if !fillRect.Empty() {
		DrawFilledRect(dst, fillRect, fill, false)
	}

	StrokeRect(dst, s.Rect, 1, color.NRGBA{200, 200, 210, 255}, false)

	knobX := Lerp(s.Rect.Min.X, s.Rect.Max.X, t)
	DrawFilledCircle(
		dst,
		knobX, FRectangleCenter(s.Rect).Y,
		s.Rect.Dy()*0.7,
		fill, true,
	)

	ebu.DebugPrintAt(
		dst,
		fmt.Sprintf("%s %.2f", s.Label, value),
		int(s.Rect.Min.X)+4, int(s.Rect.Min.Y)-16,
	)
}

// =================================
// panel
// =================================

// SliderPanel lays out the sliders of the active effect along the
// right edge of the screen.
type SliderPanel struct {
	Sliders []*Slider

	DoShow bool
}

func NewSliderPanel(pr *Params) *SliderPanel {
	p := &SliderPanel{DoShow: true}

	add := func(label string, minV, maxV float64, get func() float64, set func(float64)) {
		p.Sliders = append(p.Sliders, &Slider{
			Label: label,
			Min:   minV,
			Max:   maxV,
			Get:   get,
			Set:   set,
		})
	}

	add("aura size", 0, 0.35,
		func() float64 { return pr.AuraSize },
		func(v float64) { pr.AuraSize = v })
	add("strength", 0, 1.5,
		func() float64 { return pr.Strength },
		func(v float64) { pr.Strength = v })
	add("swim speed", 0, 4,
		func() float64 { return pr.SwimSpeed },
		func(v float64) { pr.SwimSpeed = v })
	add("breath speed", 0, 4,
		func() float64 { return pr.BreathSpeed },
		func(v float64) { pr.BreathSpeed = v })
	add("convergence", 0, 1,
		func() float64 { return pr.Convergence },
		func(v float64) { pr.Convergence = v })
	add("core brightness", 0, 2,
		func() float64 { return pr.CoreBrightness },
		func(v float64) { pr.CoreBrightness = v })
	add("flame height", 0, 0.5,
		func() float64 { return pr.FlameHeight },
		func(v float64) { pr.FlameHeight = v })
	add("flame temperature", 0, 1,
		func() float64 { return pr.FlameTemperature },
		func(v float64) { pr.FlameTemperature = v })
	add("drop speed", 0, 2,
		func() float64 { return pr.DropSpeed },
		func(v float64) { pr.DropSpeed = v })
	add("drop size", 0, 0.12,
		func() float64 { return pr.DropSize },
		func(v float64) { pr.DropSize = v })
	add("drop direction x", -1, 1,
		func() float64 { return pr.DropDirection.X },
		func(v float64) { pr.DropDirection.X = v })
	add("drop direction y", -1, 1,
		func() float64 { return pr.DropDirection.Y },
		func(v float64) { pr.DropDirection.Y = v })

	return p
}

func (p *SliderPanel) Update() {
	if !p.DoShow {
		return
	}

	const sliderW = 180
	const sliderH = 14
	const spacing = 34

	y := 40.0
	for _, s := range p.Sliders {
		s.Rect = FRectMoveTo(FRectWH(sliderW, sliderH), FPt(ScreenWidth-sliderW-15, y))
		s.Update()
		y += spacing
	}
}

func (p *SliderPanel) Draw(dst *eb.Image) {
	if !p.DoShow {
		return
	}

	for _, s := range p.Sliders {
		s.Draw(dst)
	}
}
