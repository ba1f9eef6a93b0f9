package main

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// render resolution of the effect buffer. The effect is evaluated on the
// CPU so this stays deliberately below the window size; the upscale is
// hidden by the aura being soft anyway.
const renderSize = 320

type Playground struct {
	Source *Source
	Params Params
	Effect EffectType

	Renderer *Renderer
	Panel    *SliderPanel

	// toast message fading in the corner
	Toast      string
	ToastTimer Timer

	// async result of the native file dialog
	pickedPath chan string
}

func NewPlayground() *Playground {
	p := new(Playground)

	p.Source = DefaultSource(renderSize)
	p.Params = DefaultParams()
	p.Effect = EffectGlow

	p.Renderer = NewRenderer(renderSize, renderSize)
	p.Panel = NewSliderPanel(&p.Params)

	p.ToastTimer = Timer{Duration: time.Second * 2}

	p.pickedPath = make(chan string, 1)

	return p
}

func (p *Playground) ShowToast(msg string) {
	p.Toast = msg
	p.ToastTimer.Current = p.ToastTimer.Duration
}

func (p *Playground) SetSource(src *Source) {
	p.Source = src
	p.ShowToast("loaded " + src.Path)
}

func (p *Playground) LoadSourceFile(path string) {
	src, err := LoadSource(path)
	if err != nil {
		ErrorLogger.Printf("failed to load %q: %v", path, err)
		p.ShowToast("couldn't load image")
		return
	}
	p.SetSource(src)
}

func (p *Playground) Update() error {
	// ==========================
	// effect switching
	// ==========================
	for e := EffectType(0); e < EffectTypeCount; e++ {
		if IsKeyJustPressed(eb.KeyDigit1 + eb.Key(e)) {
			p.Effect = e
		}
	}
	if IsKeyJustPressed(NextEffectKey) {
		p.Effect = (p.Effect + 1) % EffectTypeCount
	}

	// ==========================
	// clock control
	// ==========================
	if IsKeyJustPressed(PauseKey) {
		TogglePaused()
	}
	if IsKeyJustPressed(RestartKey) {
		ResetGlobalTimer()
		SetPaused(false)
	}

	// ==========================
	// drop direction nudge
	// ==========================
	const nudge = 0.05
	const firstRate = time.Millisecond * 200
	const repeatRate = time.Millisecond * 35

	if HandleKeyRepeat(firstRate, repeatRate, DirLeftKey) {
		p.Params.DropDirection.X -= nudge
	}
	if HandleKeyRepeat(firstRate, repeatRate, DirRightKey) {
		p.Params.DropDirection.X += nudge
	}
	if HandleKeyRepeat(firstRate, repeatRate, DirUpKey) {
		p.Params.DropDirection.Y -= nudge
	}
	if HandleKeyRepeat(firstRate, repeatRate, DirDownKey) {
		p.Params.DropDirection.Y += nudge
	}
	p.Params.DropDirection.X = Clamp(p.Params.DropDirection.X, -1, 1)
	p.Params.DropDirection.Y = Clamp(p.Params.DropDirection.Y, -1, 1)

	// ==========================
	// source image
	// ==========================
	if IsKeyJustPressed(OpenImageKey) {
		go func() {
			path, err := OpenSourceDialog()
			if err != nil {
				ErrorLogger.Printf("file dialog: %v", err)
				return
			}
			if path == "" {
				return
			}
			// drop the pick if an older one is still pending
			select {
			case p.pickedPath <- path:
			default:
			}
		}()
	}

	select {
	case path := <-p.pickedPath:
		p.LoadSourceFile(path)
	default:
	}

	if files := eb.DroppedFiles(); files != nil {
		p.loadDroppedFile(files)
	}

	// ==========================
	// presets
	// ==========================
	if IsKeyJustPressed(SavePresetKey) {
		if err := SavePreset(FlagPresetPath, p.Effect, p.Params); err != nil {
			ErrorLogger.Printf("failed to save preset: %v", err)
			p.ShowToast("preset save failed")
		} else {
			p.ShowToast("preset saved")
		}
	}
	if IsKeyJustPressed(LoadPresetKey) {
		effect, pr, err := LoadPreset(FlagPresetPath)
		if err != nil {
			ErrorLogger.Printf("failed to load preset: %v", err)
			p.ShowToast("preset load failed")
		} else {
			p.Effect = effect
			p.Params = pr
			p.rebindPanel()
			p.ShowToast("preset loaded")
		}
	}
	if IsKeyJustPressed(CopyPresetKey) {
		if CopyPresetToClipboard(p.Effect, p.Params) {
			p.ShowToast("preset copied")
		} else {
			p.ShowToast("clipboard unavailable")
		}
	}
	if IsKeyJustPressed(PastePresetKey) {
		if effect, pr, ok := PastePresetFromClipboard(); ok {
			p.Effect = effect
			p.Params = pr
			p.rebindPanel()
			p.ShowToast("preset pasted")
		} else if !ClipboardAvailable() {
			p.ShowToast("clipboard unavailable")
		}
	}

	// ==========================
	// ui
	// ==========================
	if IsKeyJustPressed(ShowSlidersKey) {
		p.Panel.DoShow = !p.Panel.DoShow
	}
	p.Panel.Update()

	p.ToastTimer.TickDown()
	p.ToastTimer.ClampCurrent()

	// ==========================
	// render the frame
	// ==========================
	renderStart := time.Now()

	ph := ComputePhases(ElapsedSeconds())
	p.Renderer.Render(p.Source, p.Effect, ph, p.Params)

	RecordFrameTime(f64(time.Since(renderStart).Microseconds()) / 1000)

	// ==========================
	// screenshot, after render so the buffer is this frame's
	// ==========================
	if IsKeyJustPressed(ScreenshotKey) {
		if name, err := TakeScreenshot(p.Renderer); err != nil {
			ErrorLogger.Printf("screenshot failed: %v", err)
			p.ShowToast("screenshot failed")
		} else {
			p.ShowToast("saved " + name)
		}
	}

	DebugPrint("effect", p.Effect.String())
	DebugPrintf("phase", "growth %.2f lock %.2f", ph.Growth, ph.Lock)
	DebugPrintf("render", "%.1fms", AverageFrameTime())
	DebugPrint("source", p.Source.Path)
	if IsPaused() {
		DebugPrint("paused", "yes")
	}

	return nil
}

// rebindPanel points the sliders at the (possibly replaced) Params value.
func (p *Playground) rebindPanel() {
	show := p.Panel.DoShow
	p.Panel = NewSliderPanel(&p.Params)
	p.Panel.DoShow = show
}

func (p *Playground) loadDroppedFile(files fs.FS) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		ErrorLogger.Printf("dropped files: %v", err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
			continue
		}

		file, err := files.Open(entry.Name())
		if err != nil {
			ErrorLogger.Printf("dropped file %q: %v", entry.Name(), err)
			continue
		}

		img, _, err := image.Decode(file)
		file.Close()
		if err != nil {
			ErrorLogger.Printf("dropped file %q: %v", entry.Name(), err)
			p.ShowToast("couldn't load image")
			continue
		}

		src := NewSourceFromImage(img)
		src.Path = entry.Name()
		p.SetSource(src)
		return
	}
}

func (p *Playground) Draw(dst *eb.Image) {
	p.Renderer.Upload()

	// fit the square effect buffer to the window, centered
	scale := min(ScreenWidth, ScreenHeight) / f64(renderSize)

	op := &eb.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(ScreenWidth-f64(renderSize)*scale)*0.5,
		(ScreenHeight-f64(renderSize)*scale)*0.5,
	)
	op.Filter = eb.FilterLinear

	dst.DrawImage(p.Renderer.Image(), op)

	p.Panel.Draw(dst)

	if p.ToastTimer.Current > 0 {
		// backdrop eases out as the toast expires
		fade := SmootherStep(0, 0.2, p.ToastTimer.Normalize())
		rect := FRectMoveTo(
			FRectWH(f64(len(p.Toast))*6+10, 16),
			FPt(7, ScreenHeight-43),
		)
		DrawFilledRect(dst, rect, ColorFade(color.NRGBA{15, 15, 25, 230}, fade), false)

		ebu.DebugPrintAt(dst, p.Toast, 10, int(ScreenHeight)-40)
	}

	help := fmt.Sprintf(
		"[1-5/tab] effect  [space] pause  [r] restart  [o] open image  [arrows] drop dir  [p] screenshot  [%s] sliders",
		ShowSlidersKey.String(),
	)
	ebu.DebugPrintAt(dst, help, 10, int(ScreenHeight)-20)
}

func (p *Playground) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
