package stage

import (
	"image"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeField []image.Point

func (f fakeField) MinePositions() []image.Point {
	return f
}

func TestExplosionScheduleRings(t *testing.T) {
	field := fakeField{
		image.Pt(4, 4),
		image.Pt(6, 5),
		image.Pt(8, 2),
	}

	explosions := ExplosionSchedule(field, image.Pt(5, 5), 80*time.Millisecond)

	assert.Equal(t, []Explosion{
		{Pos: image.Pt(4, 4), Ring: 0, Delay: 0},
		{Pos: image.Pt(6, 5), Ring: 0, Delay: 0},
		{Pos: image.Pt(8, 2), Ring: 2, Delay: 160 * time.Millisecond},
	}, explosions)
}

func TestExplosionScheduleFromMine(t *testing.T) {
	field := fakeField{
		image.Pt(0, 0),
		image.Pt(2, 2),
		image.Pt(3, 3),
	}

	explosions := ExplosionSchedule(field, image.Pt(2, 2), DefaultRingDelay)

	require.Len(t, explosions, 3)
	assert.Equal(t, image.Pt(2, 2), explosions[0].Pos)
	assert.Equal(t, time.Duration(0), explosions[0].Delay)
	assert.Equal(t, image.Pt(3, 3), explosions[1].Pos)
	assert.Equal(t, DefaultRingDelay, explosions[1].Delay)
	assert.Equal(t, image.Pt(0, 0), explosions[2].Pos)
	assert.Equal(t, 2*DefaultRingDelay, explosions[2].Delay)
}

func TestExplosionScheduleKeepsOrderWithinRing(t *testing.T) {
	field := fakeField{
		image.Pt(0, 0),
		image.Pt(2, 0),
		image.Pt(0, 2),
		image.Pt(2, 2),
	}

	explosions := ExplosionSchedule(field, image.Pt(1, 1), DefaultRingDelay)

	require.Len(t, explosions, 4)
	for i, e := range explosions {
		assert.Equal(t, field[i], e.Pos)
		assert.Equal(t, time.Duration(0), e.Delay)
	}
}

func TestExplosionScheduleEmpty(t *testing.T) {
	assert.Nil(t, ExplosionSchedule(fakeField{}, image.Pt(0, 0), DefaultRingDelay))
}

func TestCelebrationSchedule(t *testing.T) {
	field := fakeField{
		image.Pt(0, 0),
		image.Pt(1, 0),
		image.Pt(5, 7),
	}
	jitter := 500 * time.Millisecond

	first := CelebrationSchedule(field, jitter, rand.New(rand.NewPCG(1, 2)))
	again := CelebrationSchedule(field, jitter, rand.New(rand.NewPCG(1, 2)))

	require.Len(t, first, len(field))
	assert.Equal(t, first, again, "same source, same schedule")
	for i, c := range first {
		assert.Equal(t, field[i], c.Pos)
		assert.GreaterOrEqual(t, c.Delay, time.Duration(0))
		assert.Less(t, c.Delay, jitter)
	}

	for _, c := range CelebrationSchedule(field, 0, rand.New(rand.NewPCG(1, 2))) {
		assert.Equal(t, time.Duration(0), c.Delay)
	}
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		a, b image.Point
		want int
	}{
		{image.Pt(0, 0), image.Pt(0, 0), 0},
		{image.Pt(5, 5), image.Pt(4, 4), 1},
		{image.Pt(5, 5), image.Pt(8, 2), 3},
		{image.Pt(0, 0), image.Pt(-2, 7), 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Chebyshev(tt.a, tt.b), "%v %v", tt.a, tt.b)
		assert.Equal(t, tt.want, Chebyshev(tt.b, tt.a), "%v %v", tt.b, tt.a)
	}
}
