package main

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"

	"sweeper/board"
	"sweeper/stage"
	"sweeper/theme"
)

const (
	ExplosionDuration   = time.Millisecond * 150
	CelebrationDuration = time.Millisecond * 400

	HintTextScale = 2
)

func (a *App) tileRect(x, y int) FRectangle {
	return FRect(a.Controller.Layout().TileRect(x, y))
}

func (a *App) boardRect() FRectangle {
	layout := a.Controller.Layout()
	w, h := a.Controller.Board().Dims()
	bw, bh := layout.BoardSize(w, h)
	return FRectWH(bw, bh).Add(FPt(layout.OriginX, layout.OriginY))
}

func (a *App) DrawBoard(dst *eb.Image) {
	if a.Controller.Stage().Kind() == stage.KindPaused {
		a.drawPausedBoard(dst)
		return
	}

	b := a.Controller.Board()
	hover, hasHover := a.Controller.Hover()
	w, h := b.Dims()

	for y := range h {
		for x := range w {
			isHover := hasHover && hover.X == x && hover.Y == y
			a.drawTile(dst, x, y, b.Tile(x, y), isHover)
		}
	}

	switch s := a.Controller.Stage().(type) {
	case *stage.Defeat:
		a.drawDefeat(dst, s)
	case *stage.Victory:
		a.drawVictory(dst, s)
	}
}

func (a *App) drawTile(dst *eb.Image, x, y int, tile board.Tile, hover bool) {
	rect := a.tileRect(x, y)
	even := (x+y)%2 == 0

	if tile.Cover.Down {
		fill := a.Colors[theme.ColorTileRevealed1]
		if !even {
			fill = a.Colors[theme.ColorTileRevealed2]
		}
		if tile.IsMine() {
			fill = a.Colors[theme.ColorExplosion]
		}
		DrawFilledRect(dst, rect, fill, false)
		StrokeRect(dst, rect, 1, a.Colors[theme.ColorTileRevealedStroke], false)

		if tile.IsMine() {
			a.drawMine(dst, rect, a.Colors[theme.ColorMine])
		} else if n, ok := tile.Hint(); ok {
			DrawTextCentered(
				dst, strconv.Itoa(n), rect, HintTextScale,
				a.Colors[theme.NumberColor(n)],
			)
		}
		return
	}

	fill := a.Colors[theme.ColorTileCovered1]
	if !even {
		fill = a.Colors[theme.ColorTileCovered2]
	}
	if hover {
		fill = a.Colors[theme.ColorTileHover]
	}
	DrawFilledRect(dst, rect, fill, false)
	StrokeRect(dst, rect, 1, a.Colors[theme.ColorTileCoveredStroke], false)

	switch tile.Cover.Mark {
	case board.MarkFlag:
		a.drawFlag(dst, rect, a.Colors[theme.ColorFlag])
	case board.MarkUnsure:
		DrawTextCentered(dst, "?", rect, HintTextScale, a.Colors[theme.ColorUnsure])
	}
}

func (a *App) drawMine(dst *eb.Image, rect FRectangle, clr color.Color) {
	center := FRectangleCenter(rect)
	radius := rect.Dx() * 0.25

	StrokeLine(dst, center.X-radius*1.4, center.Y, center.X+radius*1.4, center.Y, 3, clr, true)
	StrokeLine(dst, center.X, center.Y-radius*1.4, center.X, center.Y+radius*1.4, 3, clr, true)
	DrawFilledCircle(dst, center.X, center.Y, radius, clr, true)
}

func (a *App) drawFlag(dst *eb.Image, rect FRectangle, clr color.Color) {
	inner := rect.Inset(rect.Dx() * 0.25)

	// pole
	StrokeLine(dst, inner.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y, 2, clr, true)
	// cloth
	DrawFilledRect(dst, FRect(
		inner.Min.X, inner.Min.Y,
		inner.Max.X, Lerp(inner.Min.Y, inner.Max.Y, 0.55),
	), clr, false)
}

// drawDefeat plays the explosion schedule: every mine flashes in
// when its delay has passed and stays uncovered afterwards.
func (a *App) drawDefeat(dst *eb.Image, s *stage.Defeat) {
	b := a.Controller.Board()

	for _, e := range s.Explosions {
		timer := ScheduledTimer(ExplosionDuration, e.Delay, s.Elapsed)
		if !timer.Started() {
			continue
		}
		t := timer.Normalize()
		rect := a.tileRect(e.Pos.X, e.Pos.Y)

		DrawFilledRect(dst, rect, a.Colors[theme.ColorExplosion], false)
		a.drawMine(dst, rect, a.Colors[theme.ColorMine])

		if t < 1 {
			center := FRectangleCenter(rect)
			radius := Lerp(0, rect.Dx(), EaseOutQuad(t))
			StrokeCircle(
				dst, center.X, center.Y, radius, 4,
				theme.ColorFade(a.Colors[theme.ColorExplosion], 1-t), true,
			)
		}
	}

	// wrong flags
	w, h := b.Dims()
	for y := range h {
		for x := range w {
			tile := b.Tile(x, y)
			if tile.Cover.IsFlagged() && !tile.IsMine() {
				inner := a.tileRect(x, y).Inset(6)
				clr := a.Colors[theme.ColorExplosion]
				StrokeLine(dst, inner.Min.X, inner.Min.Y, inner.Max.X, inner.Max.Y, 3, clr, true)
				StrokeLine(dst, inner.Max.X, inner.Min.Y, inner.Min.X, inner.Max.Y, 3, clr, true)
			}
		}
	}
}

// drawVictory plays the celebration schedule over the mines.
func (a *App) drawVictory(dst *eb.Image, s *stage.Victory) {
	for _, c := range s.Celebrations {
		timer := ScheduledTimer(CelebrationDuration, c.Delay, s.Elapsed)
		if !timer.Started() {
			continue
		}
		t := timer.Normalize()
		rect := a.tileRect(c.Pos.X, c.Pos.Y)

		fill := theme.ColorMix(a.Colors[theme.ColorTileCovered1], a.Colors[theme.ColorCelebration], t)
		DrawFilledRect(dst, rect.Inset(1), fill, false)

		grow := rect.Inset(Lerp(rect.Dx()*0.5, 0, EaseOutQuad(t)))
		a.drawFlag(dst, grow, theme.ColorMix(a.Colors[theme.ColorFlag], a.Colors[theme.ColorText], Pulse(t)))
	}
}

func (a *App) drawPausedBoard(dst *eb.Image) {
	rect := a.boardRect()

	DrawFilledRect(dst, rect, a.Colors[theme.ColorTileCovered1], false)
	DrawFilledRect(dst, rect, a.Colors[theme.ColorPauseOverlay], false)

	center := FRectangleCenter(rect)
	DrawText(dst, "PAUSED", center.X, center.Y-12, &DrawTextOptions{
		Scale:          3,
		Color:          a.Colors[theme.ColorText],
		PrimaryAlign:   ebt.AlignCenter,
		SecondaryAlign: ebt.AlignEnd,
	})
	DrawText(dst, "press Enter to resume", center.X, center.Y+12, &DrawTextOptions{
		Color:          a.Colors[theme.ColorTextDim],
		PrimaryAlign:   ebt.AlignCenter,
		SecondaryAlign: ebt.AlignStart,
	})
}

// =================================
// side panel
// =================================

var panelHelp = []string{
	"left click   uncover / chord",
	"right click  flag / unsure",
	"Enter, P     pause / resume",
	"Space, R     new game",
	"T            replay this board",
	"C / V        copy / paste seed",
	"F1           debug info",
}

func stageBanner(kind stage.Kind) (string, theme.ColorTableIndex) {
	switch kind {
	case stage.KindPaused:
		return "PAUSED", theme.ColorText
	case stage.KindVictory:
		return "YOU WIN!", theme.ColorCelebration
	case stage.KindDefeat:
		return "BOOM", theme.ColorExplosion
	}
	return "", theme.ColorText
}

func FormatRunTime(d time.Duration) string {
	d = d.Truncate(time.Second / 10)
	minutes := int(d / time.Minute)
	seconds := d % time.Minute
	return fmt.Sprintf("%02d:%04.1f", minutes, seconds.Seconds())
}

func (a *App) DrawPanel(dst *eb.Image) {
	boardRect := a.boardRect()
	_, screenH := a.ScreenSize()
	panel := FRect(boardRect.Max.X, 0, boardRect.Max.X+PanelWidth, f64(screenH))

	DrawFilledRect(dst, panel, a.Colors[theme.ColorPanel], false)

	const margin = 16
	x := panel.Min.X + margin
	y := panel.Min.Y + margin

	line := func(str string, scale float64, clr theme.ColorTableIndex) {
		DrawText(dst, str, x, y, &DrawTextOptions{Scale: scale, Color: a.Colors[clr]})
		_, h := MeasureText(str, scale)
		y += h + 6
	}

	ctrl := a.Controller
	b := ctrl.Board()

	line("MINESWEEPER", 2, theme.ColorText)
	line(ctrl.Params().String(), 1, theme.ColorTextDim)
	y += 8

	line(fmt.Sprintf("mines left  %d", b.MinesLeft()), 2, theme.ColorText)
	line(fmt.Sprintf("time  %s", FormatRunTime(ctrl.RunTime())), 2, theme.ColorText)
	y += 8

	if banner, clr := stageBanner(ctrl.Stage().Kind()); banner != "" {
		line(banner, 3, clr)
		y += 4
	}

	seed := ctrl.Seed().String()
	line("seed", 1, theme.ColorTextDim)
	line(seed[:len(seed)/2], 1, theme.ColorTextDim)
	line(seed[len(seed)/2:], 1, theme.ColorTextDim)
	y += 8

	for _, help := range panelHelp {
		line(help, 1, theme.ColorTextDim)
	}
}
