package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	PauseKey      eb.Key = eb.KeySpace
	RestartKey    eb.Key = eb.KeyR
	OpenImageKey  eb.Key = eb.KeyO
	ScreenshotKey eb.Key = eb.KeyP

	NextEffectKey eb.Key = eb.KeyTab

	DirLeftKey  eb.Key = eb.KeyArrowLeft
	DirRightKey eb.Key = eb.KeyArrowRight
	DirUpKey    eb.Key = eb.KeyArrowUp
	DirDownKey  eb.Key = eb.KeyArrowDown

	ShowDebugConsoleKey eb.Key = eb.KeyF1
	ShowSlidersKey      eb.Key = eb.KeyF3

	SavePresetKey eb.Key = eb.KeyF10
	LoadPresetKey eb.Key = eb.KeyF5

	CopyPresetKey  eb.Key = eb.KeyC
	PastePresetKey eb.Key = eb.KeyV
)
