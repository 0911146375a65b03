package board

import (
	"fmt"
	"image"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Board is the authoritative state of one minefield.
//
// Mines are not placed until the first primary action, so that the
// first uncovered tile and its neighbours are always safe.
// Board is not safe for concurrent use.
type Board struct {
	params Params

	tiles []Tile

	covered int
	flags   int

	placed bool
	defeat bool

	rng *rand.Rand
}

// New returns an untouched board. When src is nil the board draws
// its mines from a randomly seeded ChaCha8 source.
func New(params Params, src rand.Source) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if src == nil {
		src = rand.NewChaCha8(randomSeed())
	}

	b := &Board{
		params:  params,
		tiles:   make([]Tile, params.TileCount()),
		covered: params.TileCount(),
		rng:     rand.New(src),
	}

	return b, nil
}

func randomSeed() [32]byte {
	var seed [32]byte
	for i := range seed {
		seed[i] = byte(rand.Uint32())
	}
	return seed
}

// Reset returns the board to the state New left it in.
// Params and the random source are kept.
func (b *Board) Reset() {
	clear(b.tiles)
	b.covered = len(b.tiles)
	b.flags = 0
	b.placed = false
	b.defeat = false
}

// Reseed replaces the random source used by the next mine placement.
func (b *Board) Reseed(src rand.Source) {
	b.rng = rand.New(src)
}

func (b *Board) Params() Params {
	return b.params
}

func (b *Board) Dims() (int, int) {
	return b.params.Width, b.params.Height
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.params.Width && y >= 0 && y < b.params.Height
}

// Tile panics if (x, y) is outside the board.
func (b *Board) Tile(x, y int) Tile {
	return b.tiles[b.index(x, y)]
}

func (b *Board) Flags() int {
	return b.flags
}

func (b *Board) Mines() int {
	return b.params.MineCount
}

// MinesLeft is the mine count minus placed flags. It goes negative
// when the player flags more tiles than there are mines.
func (b *Board) MinesLeft() int {
	return b.params.MineCount - b.flags
}

// Covered is the number of tiles not yet uncovered, mines included.
func (b *Board) Covered() int {
	return b.covered
}

func (b *Board) IsInitialized() bool {
	return b.placed
}

func (b *Board) IsDefeat() bool {
	return b.defeat
}

// IsVictory reports whether every non-mine tile is uncovered.
// Flags are not required. A lost board never counts as won.
func (b *Board) IsVictory() bool {
	return !b.defeat && b.covered == b.params.MineCount
}

func (b *Board) isFinished() bool {
	return b.defeat || b.IsVictory()
}

// MinePositions lists every mine in row-major order.
// It is empty until mines are placed.
func (b *Board) MinePositions() []image.Point {
	if !b.placed {
		return nil
	}

	mines := make([]image.Point, 0, b.params.MineCount)
	for i, tile := range b.tiles {
		if tile.IsMine() {
			mines = append(mines, b.point(i))
		}
	}
	return mines
}

func (b *Board) index(x, y int) int {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf(
			"board: tile (%d, %d) is outside %dx%d board", x, y, b.params.Width, b.params.Height))
	}
	return y*b.params.Width + x
}

func (b *Board) point(i int) image.Point {
	return image.Pt(i%b.params.Width, i/b.params.Width)
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.params.Height {
		for x := range b.params.Width {
			sb.WriteString(b.tiles[y*b.params.Width+x].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
