package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"

	"sweeper/stage"
)

func IsMouseButtonJustPressed(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustPressed(button)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

func IsAnyKeyJustPressed(keys []eb.Key) bool {
	for _, key := range keys {
		if IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

func CursorFPt() FPoint {
	mx, my := eb.CursorPosition()
	return FPt(f64(mx), f64(my))
}

// SampleInput collects this tick's input for the stage controller.
// Buttons and keys count only on the tick they go down.
func SampleInput() stage.Input {
	cursor := CursorFPt()
	pause := IsAnyKeyJustPressed(PauseKeys)

	return stage.Input{
		PointerX: cursor.X,
		PointerY: cursor.Y,

		Primary:   IsMouseButtonJustPressed(eb.MouseButtonLeft),
		Secondary: IsMouseButtonJustPressed(eb.MouseButtonRight),

		Pause:   pause,
		Confirm: pause,
		Reset:   IsAnyKeyJustPressed(ResetKeys),
		Replay:  IsKeyJustPressed(ReplayKey),
	}
}
