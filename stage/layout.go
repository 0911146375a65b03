package stage

import (
	"image"
	"math"
)

// TileSize is the pixel size of one tile, shared with the renderer.
const TileSize = 40

// Layout places the board on screen. Tile (x, y) covers
// [OriginX + x*TileSize, OriginX + (x+1)*TileSize) horizontally and the
// same vertically.
type Layout struct {
	OriginX  float64
	OriginY  float64
	TileSize float64
}

func DefaultLayout() Layout {
	return Layout{TileSize: TileSize}
}

// PointerToTile maps a pointer position to the tile under it.
// ok is false when the pointer is off the board or not a finite position.
func (l Layout) PointerToTile(px, py float64, width, height int) (tile image.Point, ok bool) {
	px -= l.OriginX
	py -= l.OriginY

	// checked in floats, the int conversion is undefined past the extent
	boardW, boardH := l.BoardSize(width, height)
	if !(px >= 0 && px < boardW && py >= 0 && py < boardH) {
		return image.Point{}, false
	}

	x := int(math.Floor(px / l.TileSize))
	y := int(math.Floor(py / l.TileSize))

	if x < 0 || y < 0 || x >= width || y >= height {
		return image.Point{}, false
	}

	return image.Pt(x, y), true
}

// TileRect returns the pixel rectangle of tile (x, y) as min and max corners.
func (l Layout) TileRect(x, y int) (x0, y0, x1, y1 float64) {
	x0 = l.OriginX + float64(x)*l.TileSize
	y0 = l.OriginY + float64(y)*l.TileSize
	return x0, y0, x0 + l.TileSize, y0 + l.TileSize
}

func (l Layout) BoardSize(width, height int) (float64, float64) {
	return float64(width) * l.TileSize, float64(height) * l.TileSize
}
