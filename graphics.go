package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// ClearFace is a bitmap font, so it is scaled by whole numbers with
// nearest filtering.
var ClearFace = ebt.NewGoXFace(basicfont.Face7x13)

const FontLineSpacing = 16

type DrawTextOptions struct {
	Scale float64
	Color color.Color

	PrimaryAlign   ebt.Align
	SecondaryAlign ebt.Align
}

// DrawText draws str with its alignment point at (x, y).
func DrawText(
	dst *eb.Image,
	str string,
	x, y float64,
	options *DrawTextOptions,
) {
	if options == nil {
		options = &DrawTextOptions{}
	}

	scale := options.Scale
	if scale <= 0 {
		scale = 1
	}

	op := &ebt.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	if options.Color != nil {
		op.ColorScale.ScaleWithColor(options.Color)
	}
	op.Filter = eb.FilterNearest
	op.LineSpacing = FontLineSpacing
	op.PrimaryAlign = options.PrimaryAlign
	op.SecondaryAlign = options.SecondaryAlign

	ebt.Draw(dst, str, ClearFace, op)
}

// DrawTextCentered draws str in the middle of rect.
func DrawTextCentered(
	dst *eb.Image,
	str string,
	rect FRectangle,
	scale float64,
	clr color.Color,
) {
	center := FRectangleCenter(rect)
	DrawText(dst, str, center.X, center.Y, &DrawTextOptions{
		Scale:          scale,
		Color:          clr,
		PrimaryAlign:   ebt.AlignCenter,
		SecondaryAlign: ebt.AlignCenter,
	})
}

func MeasureText(str string, scale float64) (float64, float64) {
	w, h := ebt.Measure(str, ClearFace, FontLineSpacing)
	return w * scale, h * scale
}
