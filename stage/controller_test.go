package stage

import (
	"image"
	"math"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweeper/board"
)

const frame = 16 * time.Millisecond

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	board.Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newTestController(t *testing.T, params board.Params, seed Seed) *Controller {
	t.Helper()

	cfg := DefaultConfig(params)
	cfg.Seed = seed

	c, err := NewController(cfg)
	require.NoError(t, err)
	return c
}

func at(x, y int) Input {
	return Input{
		PointerX: (float64(x) + 0.5) * TileSize,
		PointerY: (float64(y) + 0.5) * TileSize,
	}
}

func click(x, y int) Input {
	in := at(x, y)
	in.Primary = true
	return in
}

func flag(x, y int) Input {
	in := at(x, y)
	in.Secondary = true
	return in
}

func firstMine(t *testing.T, c *Controller) image.Point {
	t.Helper()
	mines := c.Board().MinePositions()
	require.NotEmpty(t, mines)
	return mines[0]
}

func TestNewControllerRejectsInvalidParams(t *testing.T) {
	cfg := DefaultConfig(board.Params{Width: 2, Height: 2, MineCount: 4})

	c, err := NewController(cfg)

	assert.Nil(t, c)
	assert.ErrorIs(t, err, board.ErrInvalidParams)
}

func TestStartsPlaying(t *testing.T) {
	c := newTestController(t, board.Beginner, Seed{1})

	assert.Equal(t, KindPlaying, c.Stage().Kind())
	assert.False(t, c.Board().IsInitialized())
	assert.Equal(t, time.Duration(0), c.RunTime())
	assert.Equal(t, board.Beginner, c.Params())
	assert.Equal(t, Seed{1}, c.Seed())
}

func TestRunTimeStartsWithFirstClick(t *testing.T) {
	c := newTestController(t, board.Beginner, Seed{1})

	for range 3 {
		c.Tick(at(0, 0), frame)
	}
	assert.Equal(t, time.Duration(0), c.RunTime())

	c.Tick(flag(0, 0), frame)
	assert.Equal(t, time.Duration(0), c.RunTime(), "flags do not start the clock")

	c.Tick(click(4, 4), frame)
	require.True(t, c.Board().IsInitialized())
	assert.Equal(t, time.Duration(0), c.RunTime())

	c.Tick(at(4, 4), frame)
	c.Tick(at(4, 4), frame)
	assert.Equal(t, 2*frame, c.RunTime())
}

func TestHoverFollowsPointer(t *testing.T) {
	c := newTestController(t, board.Beginner, Seed{1})

	c.Tick(at(2, 3), frame)
	hover, ok := c.Hover()
	assert.True(t, ok)
	assert.Equal(t, image.Pt(2, 3), hover)

	c.Tick(Input{PointerX: 8 * TileSize, PointerY: 10}, frame)
	_, ok = c.Hover()
	assert.False(t, ok)

	// clicking off the board does nothing
	c.Tick(Input{PointerX: -5, PointerY: 10, Primary: true}, frame)
	assert.False(t, c.Board().IsInitialized())
	assert.Equal(t, KindPlaying, c.Stage().Kind())
}

func TestPrimaryWinsOverSecondary(t *testing.T) {
	c := newTestController(t, board.Beginner, Seed{1})

	in := click(4, 4)
	in.Secondary = true
	c.Tick(in, frame)

	assert.True(t, c.Board().IsInitialized())
	assert.Equal(t, 0, c.Board().Flags())
}

func TestPauseAndConfirm(t *testing.T) {
	c := newTestController(t, board.Beginner, Seed{1})
	c.Tick(click(4, 4), frame)
	c.Tick(at(4, 4), frame)
	runTime := c.RunTime()

	c.Tick(Input{Pause: true}, frame)
	require.Equal(t, KindPaused, c.Stage().Kind())

	covered := c.Board().Covered()
	for range 5 {
		in := click(0, 0)
		in.Pause = true
		in.Reset = true
		c.Tick(in, frame)
	}
	assert.Equal(t, KindPaused, c.Stage().Kind())
	assert.Equal(t, covered, c.Board().Covered(), "paused board must not change")
	assert.Equal(t, runTime, c.RunTime())
	_, ok := c.Hover()
	assert.False(t, ok)

	c.Tick(Input{Confirm: true}, frame)
	assert.Equal(t, KindPlaying, c.Stage().Kind())
	assert.True(t, c.Board().IsInitialized())
}

func TestDefeat(t *testing.T) {
	c := newTestController(t, board.Beginner, Seed{2})
	c.Tick(click(4, 4), frame)
	mine := firstMine(t, c)

	c.Tick(at(mine.X, mine.Y), frame)
	c.Tick(click(mine.X, mine.Y), frame)
	runTime := c.RunTime()

	defeat, ok := c.Stage().(*Defeat)
	require.True(t, ok, "stage is %s", c.Stage().Kind())
	assert.Equal(t, mine, defeat.Trigger)
	assert.Equal(t, time.Duration(0), defeat.Elapsed)

	require.Len(t, defeat.Explosions, board.Beginner.MineCount)
	assert.Equal(t, mine, defeat.Explosions[0].Pos)
	assert.Equal(t, time.Duration(0), defeat.Explosions[0].Delay)
	for i := 1; i < len(defeat.Explosions); i++ {
		prev, cur := defeat.Explosions[i-1], defeat.Explosions[i]
		assert.LessOrEqual(t, prev.Delay, cur.Delay)
		assert.Equal(t, time.Duration(cur.Ring)*DefaultRingDelay, cur.Delay)
	}

	_, hovering := c.Hover()
	assert.False(t, hovering)

	covered := c.Board().Covered()
	c.Tick(click(0, 0), 50*time.Millisecond)
	c.Tick(flag(1, 1), 50*time.Millisecond)

	assert.Equal(t, 100*time.Millisecond, defeat.Elapsed)
	assert.Equal(t, covered, c.Board().Covered())
	assert.Equal(t, runTime, c.RunTime(), "run time stops on defeat")
	assert.Same(t, defeat, c.Stage())
}

func TestResetAfterDefeat(t *testing.T) {
	c := newTestController(t, board.Beginner, Seed{3})
	c.Tick(click(4, 4), frame)
	mine := firstMine(t, c)
	c.Tick(at(0, 0), frame)
	c.Tick(click(mine.X, mine.Y), frame)
	require.Equal(t, KindDefeat, c.Stage().Kind())
	firstSeed := c.Seed()

	c.Tick(Input{Reset: true}, frame)

	assert.Equal(t, KindPlaying, c.Stage().Kind())
	assert.False(t, c.Board().IsInitialized())
	assert.False(t, c.Board().IsDefeat())
	assert.Equal(t, board.Beginner.TileCount(), c.Board().Covered())
	assert.Equal(t, time.Duration(0), c.RunTime())
	assert.NotEqual(t, firstSeed, c.Seed())
}

func TestReplayRepeatsLayout(t *testing.T) {
	c := newTestController(t, board.Expert, Seed{4})
	c.Tick(click(10, 10), frame)
	layout := c.Board().MinePositions()
	mine := firstMine(t, c)
	c.Tick(click(mine.X, mine.Y), frame)
	require.Equal(t, KindDefeat, c.Stage().Kind())

	c.Tick(Input{Replay: true}, frame)
	require.Equal(t, KindPlaying, c.Stage().Kind())
	assert.Equal(t, Seed{4}, c.Seed())

	c.Tick(click(10, 10), frame)
	assert.Equal(t, layout, c.Board().MinePositions())
}

func TestResetWhilePlaying(t *testing.T) {
	c := newTestController(t, board.Beginner, Seed{5})
	c.Tick(click(4, 4), frame)
	c.Tick(at(4, 4), frame)

	c.Tick(Input{Reset: true, Primary: true, PointerX: 10, PointerY: 10}, frame)

	assert.Equal(t, KindPlaying, c.Stage().Kind())
	assert.False(t, c.Board().IsInitialized(), "the click of a reset tick is dropped")
	assert.Equal(t, time.Duration(0), c.RunTime())
}

func TestResetWithSeed(t *testing.T) {
	c := newTestController(t, board.Intermediate, Seed{6})
	c.Tick(Input{Pause: true}, frame)
	require.Equal(t, KindPaused, c.Stage().Kind())

	c.ResetWithSeed(Seed{7})

	assert.Equal(t, KindPlaying, c.Stage().Kind())
	assert.Equal(t, Seed{7}, c.Seed())

	other := newTestController(t, board.Intermediate, Seed{7})
	c.Tick(click(3, 3), frame)
	other.Tick(click(3, 3), frame)
	assert.Equal(t, other.Board().MinePositions(), c.Board().MinePositions())
}

func TestVictory(t *testing.T) {
	c := newTestController(t, board.Beginner, Seed{8})
	c.Tick(click(4, 4), frame)

	w, h := c.Board().Dims()
	for y := range h {
		for x := range w {
			if c.Stage().Kind() != KindPlaying {
				break
			}
			tile := c.Board().Tile(x, y)
			if tile.IsMine() || tile.Cover.Down {
				continue
			}
			c.Tick(click(x, y), frame)
		}
	}

	victory, ok := c.Stage().(*Victory)
	require.True(t, ok, "stage is %s", c.Stage().Kind())
	assert.True(t, c.Board().IsVictory())
	assert.Equal(t, 0, c.Board().Flags())

	positions := make([]image.Point, 0, len(victory.Celebrations))
	for _, cel := range victory.Celebrations {
		positions = append(positions, cel.Pos)
		assert.GreaterOrEqual(t, cel.Delay, time.Duration(0))
		assert.Less(t, cel.Delay, DefaultCelebrationJitter)
	}
	assert.ElementsMatch(t, c.Board().MinePositions(), positions)

	c.Tick(Input{}, 30*time.Millisecond)
	assert.Equal(t, 30*time.Millisecond, victory.Elapsed)

	c.Tick(Input{Reset: true}, frame)
	assert.Equal(t, KindPlaying, c.Stage().Kind())
	assert.False(t, c.Board().IsVictory())
}

// A chord onto a wrongly flagged hint loses the game the same way a
// direct click on a mine does, centered on the chorded tile.
func TestChordDefeat(t *testing.T) {
	for s := byte(0); s < 100; s++ {
		c := newTestController(t, board.Beginner, Seed{s})
		c.Tick(click(4, 4), frame)

		hint, wrong, found := findMisflagChord(c.Board())
		if !found {
			continue
		}

		c.Tick(flag(wrong.X, wrong.Y), frame)
		require.Equal(t, KindPlaying, c.Stage().Kind())

		c.Tick(click(hint.X, hint.Y), frame)

		defeat, ok := c.Stage().(*Defeat)
		require.True(t, ok, "stage is %s", c.Stage().Kind())
		assert.Equal(t, hint, defeat.Trigger)
		assert.Len(t, defeat.Explosions, board.Beginner.MineCount)
		return
	}

	t.Fatal("no seed produced a hint with a single mine and a safe covered neighbour")
}

// findMisflagChord looks for an uncovered 1-hint with a covered safe
// neighbour to put a wrong flag on.
func findMisflagChord(b *board.Board) (hint, wrong image.Point, found bool) {
	w, h := b.Dims()
	for y := range h {
		for x := range w {
			tile := b.Tile(x, y)
			if n, ok := tile.Hint(); !ok || n != 1 || !tile.Cover.Down {
				continue
			}
			b.Neighbors(x, y, func(nx, ny int) {
				neighbor := b.Tile(nx, ny)
				if !found && neighbor.Cover.IsUp() && !neighbor.IsMine() {
					hint, wrong, found = image.Pt(x, y), image.Pt(nx, ny), true
				}
			})
			if found {
				return
			}
		}
	}
	return
}

func TestDefeatWinsOverPause(t *testing.T) {
	c := newTestController(t, board.Beginner, Seed{9})
	c.Tick(click(4, 4), frame)
	mine := firstMine(t, c)

	in := click(mine.X, mine.Y)
	in.Pause = true
	c.Tick(in, frame)

	assert.Equal(t, KindDefeat, c.Stage().Kind())
}

func TestPointerOutsideBoardIsIgnored(t *testing.T) {
	c := newTestController(t, board.Beginner, Seed{10})

	for _, in := range []Input{
		{PointerX: math.Inf(1), PointerY: 10, Primary: true},
		{PointerX: 10, PointerY: math.MaxFloat64, Primary: true},
		{PointerX: math.MaxFloat64, PointerY: math.MaxFloat64, Secondary: true},
		{PointerX: math.NaN(), PointerY: 10, Primary: true},
	} {
		assert.NotPanics(t, func() { c.Tick(in, frame) })

		_, ok := c.Hover()
		assert.False(t, ok)
	}

	assert.Equal(t, KindPlaying, c.Stage().Kind())
	assert.False(t, c.Board().IsInitialized())
	assert.Equal(t, 0, c.Board().Flags())
}
