package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	eb "github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

var (
	ScreenWidth  float64 = 800
	ScreenHeight float64 = 600
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var FlagPProf bool
var FlagPresetPath string
var FlagImagePath string
var FlagWindowWidth int
var FlagWindowHeight int

func init() {
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
	flag.StringVar(&FlagPresetPath, "preset", "preset.json", "preset file path")
	flag.StringVar(&FlagImagePath, "image", "", "figure image to load on startup")
	flag.IntVar(&FlagWindowWidth, "width", 800, "initial window width")
	flag.IntVar(&FlagWindowHeight, "height", 600, "initial window height")
}

type App struct {
	ShowDebugConsole bool

	Playground *Playground
}

func NewApp() *App {
	a := new(App)
	a.Playground = NewPlayground()
	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	eb.SetWindowTitle("Aura Playground FPS: " + fpsStr + " TPS: " + tpsStr)

	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)

	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	if err := a.Playground.Update(); err != nil {
		return err
	}

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	a.Playground.Draw(dst)

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return a.Playground.Layout(outsideWidth, outsideHeight)
}

func main() {
	flag.Parse()

	ScreenWidth = f64(max(FlagWindowWidth, 320))
	ScreenHeight = f64(max(FlagWindowHeight, 240))

	if FlagPProf {
		go func() {
			InfoLogger.Print("initializing pprof")
			InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	InitClipboardManager()
	InitDebugPrintManager()

	app := NewApp()

	if FlagImagePath != "" {
		app.Playground.LoadSourceFile(FlagImagePath)
	}

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("Aura Playground")

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}
