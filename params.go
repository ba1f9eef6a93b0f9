package main

import (
	"encoding/json"
	"image/color"
	"os"
)

// Params is the flat set of tunables the effects read every frame.
// The core treats it as read only and never assumes the values are inside
// their nominal slider ranges; out of range values just look weirder.
type Params struct {
	AuraSize       float64
	Strength       float64
	SwimSpeed      float64
	BreathSpeed    float64
	Convergence    float64
	CoreBrightness float64

	FlameHeight      float64
	FlameTemperature float64

	DropSpeed     float64
	DropSize      float64
	DropDirection FPoint // zero length means omnidirectional

	GlowTint   RGB
	RippleTint RGB
	DropTint   RGB
}

func DefaultParams() Params {
	return Params{
		AuraSize:       0.10,
		Strength:       0.85,
		SwimSpeed:      1.0,
		BreathSpeed:    1.0,
		Convergence:    0.5,
		CoreBrightness: 1.0,

		FlameHeight:      0.16,
		FlameTemperature: 0.5,

		DropSpeed:     0.35,
		DropSize:      0.035,
		DropDirection: FPoint{},

		GlowTint:   RGB{1.0, 0.78, 0.42},
		RippleTint: RGB{0.45, 0.95, 1.0},
		DropTint:   RGB{0.12, 0.25, 0.75},
	}
}

// =================================
// presets
// =================================

// presetJson mirrors Params but keeps colors as css strings
// so presets stay hand editable.
type presetJson struct {
	Effect string

	AuraSize       float64
	Strength       float64
	SwimSpeed      float64
	BreathSpeed    float64
	Convergence    float64
	CoreBrightness float64

	FlameHeight      float64
	FlameTemperature float64

	DropSpeed      float64
	DropSize       float64
	DropDirectionX float64
	DropDirectionY float64

	GlowTint   string
	RippleTint string
	DropTint   string
}

func PresetToJson(effect EffectType, pr Params) ([]byte, error) {
	pj := presetJson{
		Effect: effect.String(),

		AuraSize:       pr.AuraSize,
		Strength:       pr.Strength,
		SwimSpeed:      pr.SwimSpeed,
		BreathSpeed:    pr.BreathSpeed,
		Convergence:    pr.Convergence,
		CoreBrightness: pr.CoreBrightness,

		FlameHeight:      pr.FlameHeight,
		FlameTemperature: pr.FlameTemperature,

		DropSpeed:      pr.DropSpeed,
		DropSize:       pr.DropSize,
		DropDirectionX: pr.DropDirection.X,
		DropDirectionY: pr.DropDirection.Y,

		GlowTint:   ColorToString(pr.GlowTint.ToNRGBA(1)),
		RippleTint: ColorToString(pr.RippleTint.ToNRGBA(1)),
		DropTint:   ColorToString(pr.DropTint.ToNRGBA(1)),
	}

	return json.MarshalIndent(pj, "", "    ")
}

func PresetFromJson(data []byte) (EffectType, Params, error) {
	pr := DefaultParams()

	// prefilled with the defaults so keys a hand edited file omits keep
	// their values instead of collapsing to zero
	pj := presetJson{
		Effect: EffectGlow.String(),

		AuraSize:       pr.AuraSize,
		Strength:       pr.Strength,
		SwimSpeed:      pr.SwimSpeed,
		BreathSpeed:    pr.BreathSpeed,
		Convergence:    pr.Convergence,
		CoreBrightness: pr.CoreBrightness,

		FlameHeight:      pr.FlameHeight,
		FlameTemperature: pr.FlameTemperature,

		DropSpeed:      pr.DropSpeed,
		DropSize:       pr.DropSize,
		DropDirectionX: pr.DropDirection.X,
		DropDirectionY: pr.DropDirection.Y,
	}

	if err := json.Unmarshal(data, &pj); err != nil {
		return EffectGlow, pr, err
	}

	effect := EffectTypeFromString(pj.Effect)

	pr.AuraSize = pj.AuraSize
	pr.Strength = pj.Strength
	pr.SwimSpeed = pj.SwimSpeed
	pr.BreathSpeed = pj.BreathSpeed
	pr.Convergence = pj.Convergence
	pr.CoreBrightness = pj.CoreBrightness

	pr.FlameHeight = pj.FlameHeight
	pr.FlameTemperature = pj.FlameTemperature

	pr.DropSpeed = pj.DropSpeed
	pr.DropSize = pj.DropSize
	pr.DropDirection = FPt(pj.DropDirectionX, pj.DropDirectionY)

	parseTint := func(str string, fallback RGB) RGB {
		if str == "" {
			return fallback
		}
		c, err := ParseColorString(str)
		if err != nil {
			ErrorLogger.Printf("bad tint %q in preset: %v", str, err)
			return fallback
		}
		return RGBFromNRGBA(color.NRGBA{c.R, c.G, c.B, 255})
	}

	pr.GlowTint = parseTint(pj.GlowTint, pr.GlowTint)
	pr.RippleTint = parseTint(pj.RippleTint, pr.RippleTint)
	pr.DropTint = parseTint(pj.DropTint, pr.DropTint)

	return effect, pr, nil
}

func SavePreset(path string, effect EffectType, pr Params) error {
	data, err := PresetToJson(effect, pr)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func LoadPreset(path string) (EffectType, Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EffectGlow, DefaultParams(), err
	}
	return PresetFromJson(data)
}

// =================================
// clipboard
// =================================

// CopyPresetToClipboard reports whether the preset landed on the clipboard.
func CopyPresetToClipboard(effect EffectType, pr Params) bool {
	data, err := PresetToJson(effect, pr)
	if err != nil {
		ErrorLogger.Printf("failed to serialize preset: %v", err)
		return false
	}
	return ClipboardWriteText(string(data))
}

func PastePresetFromClipboard() (EffectType, Params, bool) {
	text := ClipboardReadText()
	if text == "" {
		return EffectGlow, DefaultParams(), false
	}

	effect, pr, err := PresetFromJson([]byte(text))
	if err != nil {
		ErrorLogger.Printf("clipboard doesn't hold a preset: %v", err)
		return EffectGlow, DefaultParams(), false
	}

	return effect, pr, true
}
