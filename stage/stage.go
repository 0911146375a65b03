package stage

import (
	"image"
	"time"
)

type Kind int

const (
	KindPlaying Kind = iota
	KindPaused
	KindVictory
	KindDefeat
)

func (k Kind) String() string {
	switch k {
	case KindPlaying:
		return "playing"
	case KindPaused:
		return "paused"
	case KindVictory:
		return "victory"
	case KindDefeat:
		return "defeat"
	}
	return "unknown"
}

// Stage is one of *Playing, *Paused, *Victory or *Defeat.
// Each carries only the data that belongs to it and is dropped when
// the controller moves on.
type Stage interface {
	Kind() Kind
}

type Playing struct{}

type Paused struct{}

type Defeat struct {
	// tile the losing click landed on
	Trigger    image.Point
	Explosions []Explosion
	// time spent in this stage
	Elapsed time.Duration
}

type Victory struct {
	Celebrations []Celebration
	Elapsed      time.Duration
}

func (*Playing) Kind() Kind { return KindPlaying }
func (*Paused) Kind() Kind  { return KindPaused }
func (*Defeat) Kind() Kind  { return KindDefeat }
func (*Victory) Kind() Kind { return KindVictory }

// Explosion is a mine to blow up once the defeat stage has lasted Delay.
type Explosion struct {
	Pos image.Point
	// rings are counted outwards from the innermost ring holding a mine
	Ring  int
	Delay time.Duration
}

type Celebration struct {
	Pos   image.Point
	Delay time.Duration
}

// Input is what the host sampled during one tick.
// Bools are true only on the tick the button or key went down.
type Input struct {
	PointerX float64
	PointerY float64

	Primary   bool
	Secondary bool

	Pause   bool
	Confirm bool
	Reset   bool
	// reset and play the same seed again
	Replay bool
}
