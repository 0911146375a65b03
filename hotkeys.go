package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey = eb.KeyF1

	ReplayKey eb.Key = eb.KeyT

	CopySeedKey  eb.Key = eb.KeyC
	PasteSeedKey eb.Key = eb.KeyV
)

var (
	// pause while playing, resume while paused
	PauseKeys = []eb.Key{eb.KeyEnter, eb.KeyNumpadEnter, eb.KeyP}
	ResetKeys = []eb.Key{eb.KeySpace, eb.KeyR}
)
