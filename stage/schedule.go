package stage

import (
	"image"
	"math/rand/v2"
	"slices"
	"time"
)

const (
	DefaultRingDelay         = 80 * time.Millisecond
	DefaultCelebrationJitter = 600 * time.Millisecond
)

// MineField is the part of the board the schedules read.
type MineField interface {
	MinePositions() []image.Point
}

// ExplosionSchedule orders every mine into concentric square rings
// around trigger. The innermost ring holding a mine goes off at once,
// and each ring further out waits another ringDelay, empty rings
// included. Mines in one ring share a delay.
func ExplosionSchedule(field MineField, trigger image.Point, ringDelay time.Duration) []Explosion {
	mines := field.MinePositions()
	if len(mines) == 0 {
		return nil
	}

	explosions := make([]Explosion, len(mines))
	for i, pos := range mines {
		explosions[i] = Explosion{
			Pos:  pos,
			Ring: Chebyshev(trigger, pos),
		}
	}

	slices.SortStableFunc(explosions, func(a, b Explosion) int {
		return a.Ring - b.Ring
	})

	inner := explosions[0].Ring
	for i := range explosions {
		explosions[i].Ring -= inner
		explosions[i].Delay = time.Duration(explosions[i].Ring) * ringDelay
	}

	return explosions
}

// CelebrationSchedule lists every mine with a random start delay
// in [0, jitter).
func CelebrationSchedule(field MineField, jitter time.Duration, r *rand.Rand) []Celebration {
	mines := field.MinePositions()
	if len(mines) == 0 {
		return nil
	}

	celebrations := make([]Celebration, len(mines))
	for i, pos := range mines {
		var delay time.Duration
		if jitter > 0 {
			delay = time.Duration(r.Int64N(int64(jitter)))
		}
		celebrations[i] = Celebration{Pos: pos, Delay: delay}
	}

	return celebrations
}

// Chebyshev returns the king-move distance between two tiles.
func Chebyshev(a, b image.Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}
