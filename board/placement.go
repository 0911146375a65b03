package board

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// placeMines puts exactly MineCount mines on the board, none of them
// at (safeX, safeY) or next to it.
func (b *Board) placeMines(safeX, safeY int) {
	eligible := make([]int, 0, len(b.tiles))
	for i := range b.tiles {
		p := b.point(i)
		if absDiff(p.X, safeX) > 1 || absDiff(p.Y, safeY) > 1 {
			eligible = append(eligible, i)
		}
	}

	if len(eligible) < b.params.MineCount {
		panic(fmt.Sprintf(
			"board: %d mines do not fit outside the opening at (%d, %d) on %s",
			b.params.MineCount, safeX, safeY, b.params))
	}

	for _, i := range sample(b.rng, eligible, b.params.MineCount) {
		b.tiles[i].Object = Object{Kind: ObjectMine}
	}

	Log.WithFields(logrus.Fields{
		"params": b.params.String(),
		"safeX":  safeX,
		"safeY":  safeY,
	}).Debug("mines placed")
}

// sample picks n items out of items, each with equal probability,
// in one pass over items (reservoir sampling).
func sample[T any](r *rand.Rand, items []T, n int) []T {
	if n <= 0 {
		return nil
	}

	reservoir := make([]T, 0, n)
	reservoir = append(reservoir, items[:min(n, len(items))]...)

	for i := n; i < len(items); i++ {
		j := r.IntN(i + 1)
		if j < n {
			reservoir[j] = items[i]
		}
	}

	return reservoir
}

// placeHints stores the neighbouring mine count of every non-mine tile.
func (b *Board) placeHints() {
	for i := range b.tiles {
		if b.tiles[i].IsMine() {
			continue
		}

		p := b.point(i)
		count := 0
		b.Neighbors(p.X, p.Y, func(nx, ny int) {
			if b.tiles[b.index(nx, ny)].IsMine() {
				count++
			}
		})

		if count > 0 {
			b.tiles[i].Object = Object{Kind: ObjectHint, Hint: uint8(count)}
		} else {
			b.tiles[i].Object = Object{Kind: ObjectBlank}
		}
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
