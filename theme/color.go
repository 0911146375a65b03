package theme

import (
	"fmt"
	"image/color"

	css "github.com/mazznoer/csscolorparser"
)

func ColorNormalized(clr color.Color, multiplyAlpha bool) [4]float64 {
	c := ColorToNRGBA(clr)
	r, g, b, a := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255

	if multiplyAlpha {
		r *= a
		g *= a
		b *= a
	}

	return [4]float64{r, g, b, a}
}

func ColorToNRGBA(clr color.Color) color.NRGBA {
	if clr == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

// ColorFade scales the alpha of c by a, clamped to [0, 1].
func ColorFade(c color.Color, a float64) color.NRGBA {
	a = min(max(a, 0), 1)
	nc := ColorNormalized(c, false)
	return color.NRGBA{
		uint8(255 * nc[0]),
		uint8(255 * nc[1]),
		uint8(255 * nc[2]),
		uint8(255 * nc[3] * a),
	}
}

// ColorMix blends c1 into c2 by t, alpha included.
func ColorMix(c1, c2 color.Color, t float64) color.NRGBA {
	t = min(max(t, 0), 1)
	c1f := ColorNormalized(c1, false)
	c2f := ColorNormalized(c2, false)

	var out [4]uint8
	for i := range out {
		out[i] = uint8(255 * (c1f[i] + (c2f[i]-c1f[i])*t))
	}

	return color.NRGBA{out[0], out[1], out[2], out[3]}
}

func ColorToString(clr color.Color) string {
	c := ColorToNRGBA(clr)
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func ParseColorString(str string) (color.NRGBA, error) {
	c, err := css.Parse(str)

	if err != nil {
		return color.NRGBA{}, err
	}

	nrgba := color.NRGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: uint8(255 * c.A),
	}

	return nrgba, nil
}
