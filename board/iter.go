package board

// Iterator walks a rectangle of tile coordinates in row-major order.
//
// Usage :
//
//	iter := NewIterator(0, 0, width-1, height-1)
//	for iter.HasNext() {
//		x, y := iter.Next()
//	}
type Iterator struct {
	MinX int
	MinY int
	MaxX int
	MaxY int

	CurrentX int
	CurrentY int
}

// inclusive
func NewIterator(x1, y1, x2, y2 int) Iterator {
	iter := Iterator{
		MinX: min(x1, x2),
		MinY: min(y1, y2),

		MaxX: max(x1, x2),
		MaxY: max(y1, y2),
	}

	iter.CurrentX = iter.MinX
	iter.CurrentY = iter.MinY

	return iter
}

func (it *Iterator) HasNext() bool {
	return it.CurrentY <= it.MaxY
}

func (it *Iterator) Next() (int, int) {
	x := it.CurrentX
	y := it.CurrentY

	it.CurrentX++
	if it.CurrentX > it.MaxX {
		it.CurrentX = it.MinX
		it.CurrentY++
	}

	return x, y
}

// area returns an iterator over the 3x3 square centered on (x, y),
// clipped to the board. The center itself is included.
func (b *Board) area(x, y int) Iterator {
	return NewIterator(
		max(x-1, 0), max(y-1, 0),
		min(x+1, b.params.Width-1), min(y+1, b.params.Height-1),
	)
}

// Neighbors calls fn for each of the up to 8 tiles adjacent to (x, y),
// in row-major order.
func (b *Board) Neighbors(x, y int, fn func(nx, ny int)) {
	iter := b.area(x, y)
	for iter.HasNext() {
		nx, ny := iter.Next()
		if nx == x && ny == y {
			continue
		}
		fn(nx, ny)
	}
}
