package stage

import (
	"fmt"
	"image"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"sweeper/board"
)

var Log = logrus.New()

type Config struct {
	Params board.Params
	Layout Layout
	Seed   Seed

	RingDelay         time.Duration
	CelebrationJitter time.Duration
}

func DefaultConfig(params board.Params) Config {
	return Config{
		Params:            params,
		Layout:            DefaultLayout(),
		Seed:              NewSeed(),
		RingDelay:         DefaultRingDelay,
		CelebrationJitter: DefaultCelebrationJitter,
	}
}

// Controller runs the game stages on top of a board.
// Tick must be called once per frame from a single goroutine.
type Controller struct {
	board  *board.Board
	stage  Stage
	layout Layout

	hover    image.Point
	hasHover bool

	// time played in the current game, frozen until mines are placed
	runTime time.Duration

	seed Seed
	// hands out the seed of every following game
	seeder *rand.Rand
	jitter *rand.Rand

	ringDelay         time.Duration
	celebrationJitter time.Duration
}

func NewController(cfg Config) (*Controller, error) {
	b, err := board.New(cfg.Params, cfg.Seed.Source())
	if err != nil {
		return nil, fmt.Errorf("unable to create board: %w", err)
	}

	if cfg.Layout.TileSize <= 0 {
		cfg.Layout = DefaultLayout()
	}
	if cfg.RingDelay <= 0 {
		cfg.RingDelay = DefaultRingDelay
	}
	if cfg.CelebrationJitter < 0 {
		cfg.CelebrationJitter = 0
	}

	seeder := cfg.Seed.seeder()

	c := &Controller{
		board:             b,
		stage:             &Playing{},
		layout:            cfg.Layout,
		seed:              cfg.Seed,
		seeder:            seeder,
		jitter:            rand.New(rand.NewPCG(seeder.Uint64(), seeder.Uint64())),
		ringDelay:         cfg.RingDelay,
		celebrationJitter: cfg.CelebrationJitter,
	}

	Log.WithFields(logrus.Fields{
		"params": cfg.Params.String(),
		"seed":   c.seed.String(),
	}).Info("new game")

	return c, nil
}

// Tick advances the game by one frame. delta is the time elapsed
// since the previous tick.
func (c *Controller) Tick(in Input, delta time.Duration) {
	switch s := c.stage.(type) {
	case *Playing:
		c.tickPlaying(in, delta)
	case *Paused:
		c.hasHover = false
		if in.Confirm {
			c.setStage(&Playing{})
		}
	case *Defeat:
		c.hasHover = false
		if !c.restartOn(in) {
			s.Elapsed += delta
		}
	case *Victory:
		c.hasHover = false
		if !c.restartOn(in) {
			s.Elapsed += delta
		}
	}
}

func (c *Controller) tickPlaying(in Input, delta time.Duration) {
	if c.restartOn(in) {
		return
	}

	if c.board.IsInitialized() {
		c.runTime += delta
	}

	width, height := c.board.Dims()
	c.hover, c.hasHover = c.layout.PointerToTile(in.PointerX, in.PointerY, width, height)

	if c.hasHover {
		if in.Primary {
			c.board.PrimaryAction(c.hover.X, c.hover.Y)
		} else if in.Secondary {
			c.board.SecondaryAction(c.hover.X, c.hover.Y)
		}
	}

	if c.board.IsDefeat() {
		c.enterDefeat(c.hover)
		return
	}
	if c.board.IsVictory() {
		c.enterVictory()
		return
	}

	if in.Pause {
		c.setStage(&Paused{})
	}
}

func (c *Controller) enterDefeat(trigger image.Point) {
	c.hasHover = false
	c.setStage(&Defeat{
		Trigger:    trigger,
		Explosions: ExplosionSchedule(c.board, trigger, c.ringDelay),
	})
}

func (c *Controller) enterVictory() {
	c.hasHover = false
	c.setStage(&Victory{
		Celebrations: CelebrationSchedule(c.board, c.celebrationJitter, c.jitter),
	})
}

func (c *Controller) restartOn(in Input) bool {
	switch {
	case in.Replay:
		c.restart(c.seed)
	case in.Reset:
		c.restart(seedFrom(c.seeder))
	default:
		return false
	}
	return true
}

// ResetWithSeed abandons the current game and starts a new one
// from seed, whatever the stage.
func (c *Controller) ResetWithSeed(seed Seed) {
	c.restart(seed)
}

func (c *Controller) restart(seed Seed) {
	c.seed = seed
	c.board.Reseed(seed.Source())
	c.board.Reset()
	c.runTime = 0
	c.hasHover = false
	c.setStage(&Playing{})

	Log.WithField("seed", seed.String()).Info("board reset")
}

func (c *Controller) setStage(next Stage) {
	if c.stage.Kind() != next.Kind() {
		Log.WithFields(logrus.Fields{
			"from": c.stage.Kind().String(),
			"to":   next.Kind().String(),
		}).Info("stage changed")
	}
	c.stage = next
}

func (c *Controller) Board() *board.Board {
	return c.board
}

func (c *Controller) Stage() Stage {
	return c.stage
}

// Hover returns the tile under the pointer while playing.
func (c *Controller) Hover() (image.Point, bool) {
	return c.hover, c.hasHover
}

func (c *Controller) RunTime() time.Duration {
	return c.runTime
}

func (c *Controller) Seed() Seed {
	return c.seed
}

func (c *Controller) Params() board.Params {
	return c.board.Params()
}

func (c *Controller) Layout() Layout {
	return c.layout
}
