package board

import (
	"image"

	"github.com/sirupsen/logrus"
)

// PrimaryAction uncovers the tile at (x, y).
//
// The first call places the mines. Acting on an uncovered hint
// explores around it instead, see exploreAround. Flagged and
// uncovered tiles are left alone. Uncovering a mine loses the game,
// uncovering a blank floods the surrounding area.
//
// Nothing happens once the game is won or lost.
func (b *Board) PrimaryAction(x, y int) {
	i := b.index(x, y)

	if b.isFinished() {
		return
	}

	if !b.placed {
		b.placeMines(x, y)
		b.placeHints()
		b.placed = true
	}

	tile := b.tiles[i]
	if hint, ok := tile.Hint(); ok && tile.Cover.Down {
		b.exploreAround(hint, x, y)
		return
	}

	b.uncover(x, y)
}

// SecondaryAction cycles the mark of a covered tile.
func (b *Board) SecondaryAction(x, y int) {
	i := b.index(x, y)

	if b.isFinished() {
		return
	}

	tile := &b.tiles[i]
	if tile.Cover.Down {
		return
	}

	prev := tile.Cover.Mark
	next := prev.Next()
	tile.Cover.Mark = next

	if next == MarkFlag {
		b.flags++
	} else if prev == MarkFlag {
		b.flags--
	}
}

// uncover is the single path by which a tile goes down, used by direct
// clicks and by exploreAround alike.
func (b *Board) uncover(x, y int) {
	tile := &b.tiles[b.index(x, y)]
	if !tile.IsUncoverable() {
		return
	}

	tile.Cover = Cover{Down: true}
	b.covered--

	switch tile.Object.Kind {
	case ObjectMine:
		b.defeat = true
		Log.WithFields(logrus.Fields{
			"x": x, "y": y, "covered": b.covered,
		}).Debug("mine uncovered")
	case ObjectBlank:
		b.floodUncover(x, y)
	}
}

// floodUncover spills from the blank tile at (x, y) over its connected
// blank region and the hint tiles bordering it.
//
// Order is irrelevant to the result. Every index is visited at most
// once, so the loop ends after at most len(tiles) pops.
func (b *Board) floodUncover(x, y int) {
	visited := make([]bool, len(b.tiles))
	visited[b.index(x, y)] = true

	stack := make([]image.Point, 0, 8)
	push := func(nx, ny int) {
		stack = append(stack, image.Pt(nx, ny))
	}

	b.Neighbors(x, y, push)

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i := b.index(p.X, p.Y)
		if visited[i] {
			continue
		}
		visited[i] = true

		tile := &b.tiles[i]
		if !tile.IsUncoverable() {
			continue
		}

		tile.Cover = Cover{Down: true}
		b.covered--

		if tile.Object.Kind == ObjectBlank {
			b.Neighbors(p.X, p.Y, push)
		}
	}
}

// exploreAround uncovers every unflagged neighbour of an uncovered hint,
// but only when the flags around it add up to the hint exactly.
// A wrong flag can therefore uncover a mine.
func (b *Board) exploreAround(hint int, x, y int) {
	flags := 0
	b.Neighbors(x, y, func(nx, ny int) {
		if b.tiles[b.index(nx, ny)].Cover.IsFlagged() {
			flags++
		}
	})

	if flags != hint {
		return
	}

	b.Neighbors(x, y, b.uncover)
}
