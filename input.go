package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

func CursorFPt() FPoint {
	mx, my := eb.CursorPosition()
	return FPt(f64(mx), f64(my))
}

func IsKeyPressed(key eb.Key) bool {
	return eb.IsKeyPressed(key)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

func IsMouseButtonPressed(button eb.MouseButton) bool {
	return eb.IsMouseButtonPressed(button)
}

func IsMouseButtonJustPressed(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustPressed(button)
}

var keyRepeatMap = make(map[eb.Key]time.Duration)

// HandleKeyRepeat reports true on the initial press, then repeatedly while
// the key is held. Runs off the real timer so holds keep repeating while
// the animation is paused.
func HandleKeyRepeat(
	firstRate, repeatRate time.Duration,
	key eb.Key,
) bool {
	if !IsKeyPressed(key) {
		keyRepeatMap[key] = 0
		return false
	}

	if IsKeyJustPressed(key) {
		keyRepeatMap[key] = RealTimerNow() + firstRate
		return true
	}

	pressedAt, ok := keyRepeatMap[key]

	if !ok {
		keyRepeatMap[key] = RealTimerNow() + firstRate
		return true
	} else {
		now := RealTimerNow()
		if now-pressedAt > repeatRate {
			keyRepeatMap[key] = now
			return true
		}
	}

	return false
}
