package main

import (
	"fmt"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"

	"sweeper/config"
	"sweeper/stage"
	"sweeper/theme"
)

const (
	PanelWidth     = 300
	MinPanelHeight = 360
)

type App struct {
	ShowDebugConsole bool

	Controller *stage.Controller
	Colors     theme.ColorTable
}

func NewApp(cfg config.Config) (*App, error) {
	stageCfg, err := cfg.StageConfig()
	if err != nil {
		return nil, err
	}
	colors, err := cfg.ColorTable()
	if err != nil {
		return nil, err
	}

	ctrl, err := stage.NewController(stageCfg)
	if err != nil {
		return nil, err
	}

	return &App{
		Controller: ctrl,
		Colors:     colors,
	}, nil
}

// ScreenSize is the board plus the side panel, in pixels.
func (a *App) ScreenSize() (int, int) {
	w, h := a.Controller.Board().Dims()
	boardW, boardH := a.Controller.Layout().BoardSize(w, h)
	return int(boardW) + PanelWidth, max(int(boardH), MinPanelHeight)
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("Minesweeper FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)
	DebugPrint("uptime", GlobalTimerNow().Truncate(time.Second))

	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	// ==========================
	// seed sharing
	// ==========================
	if IsKeyJustPressed(CopySeedKey) {
		seed := a.Controller.Seed().String()
		ClipboardWriteText(seed)
		log.WithField("seed", seed).Info("seed copied")
	}

	if IsKeyJustPressed(PasteSeedKey) {
		str := ClipboardReadText()
		if seed, err := stage.ParseSeed(str); err != nil {
			log.WithError(err).Warn("clipboard does not hold a seed")
		} else {
			a.Controller.ResetWithSeed(seed)
		}
	}

	a.Controller.Tick(SampleInput(), UpdateDelta())

	b := a.Controller.Board()
	DebugPrint("stage", a.Controller.Stage().Kind())
	DebugPrint("covered", b.Covered())
	DebugPrint("flags", b.Flags())
	if hover, ok := a.Controller.Hover(); ok {
		DebugPrintf("hover", "%d, %d", hover.X, hover.Y)
	}

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	dst.Fill(a.Colors[theme.ColorBg])

	a.DrawBoard(dst)
	a.DrawPanel(dst)

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.ScreenSize()
}
