package theme

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
)

var ErrUnknownColor = errors.New("unknown color name")

type ColorTableIndex int

const (
	ColorBg ColorTableIndex = iota
	ColorPanel
	ColorText
	ColorTextDim

	ColorTileCovered1
	ColorTileCovered2
	ColorTileCoveredStroke
	ColorTileHover

	ColorTileRevealed1
	ColorTileRevealed2
	ColorTileRevealedStroke

	ColorNumber1
	ColorNumber2
	ColorNumber3
	ColorNumber4
	ColorNumber5
	ColorNumber6
	ColorNumber7
	ColorNumber8

	ColorMine
	ColorFlag
	ColorUnsure

	ColorExplosion
	ColorCelebration
	ColorPauseOverlay

	ColorTableSize
)

var colorTableNames = [ColorTableSize]string{
	ColorBg:      "bg",
	ColorPanel:   "panel",
	ColorText:    "text",
	ColorTextDim: "text_dim",

	ColorTileCovered1:      "tile_covered_1",
	ColorTileCovered2:      "tile_covered_2",
	ColorTileCoveredStroke: "tile_covered_stroke",
	ColorTileHover:         "tile_hover",

	ColorTileRevealed1:      "tile_revealed_1",
	ColorTileRevealed2:      "tile_revealed_2",
	ColorTileRevealedStroke: "tile_revealed_stroke",

	ColorNumber1: "number_1",
	ColorNumber2: "number_2",
	ColorNumber3: "number_3",
	ColorNumber4: "number_4",
	ColorNumber5: "number_5",
	ColorNumber6: "number_6",
	ColorNumber7: "number_7",
	ColorNumber8: "number_8",

	ColorMine:   "mine",
	ColorFlag:   "flag",
	ColorUnsure: "unsure",

	ColorExplosion:    "explosion",
	ColorCelebration:  "celebration",
	ColorPauseOverlay: "pause_overlay",
}

func (i ColorTableIndex) String() string {
	if i < 0 || i >= ColorTableSize {
		return fmt.Sprintf("ColorTableIndex(%d)", int(i))
	}
	return colorTableNames[i]
}

// NumberColor returns the color of hint n, 1 through 8.
func NumberColor(n int) ColorTableIndex {
	n = min(max(n, 1), 8)
	return ColorNumber1 + ColorTableIndex(n-1)
}

type ColorTable [ColorTableSize]color.NRGBA

func DefaultColorTable() ColorTable {
	var table ColorTable

	table[ColorBg] = color.NRGBA{10, 10, 10, 255}
	table[ColorPanel] = color.NRGBA{24, 24, 28, 255}
	table[ColorText] = color.NRGBA{235, 235, 235, 255}
	table[ColorTextDim] = color.NRGBA{140, 140, 150, 255}

	table[ColorTileCovered1] = color.NRGBA{30, 30, 30, 255}
	table[ColorTileCovered2] = color.NRGBA{50, 50, 50, 255}
	table[ColorTileCoveredStroke] = color.NRGBA{150, 150, 150, 255}
	table[ColorTileHover] = color.NRGBA{80, 80, 90, 255}

	table[ColorTileRevealed1] = color.NRGBA{255, 255, 255, 255}
	table[ColorTileRevealed2] = color.NRGBA{235, 235, 235, 255}
	table[ColorTileRevealedStroke] = color.NRGBA{150, 150, 150, 255}

	table[ColorNumber1] = color.NRGBA{25, 60, 220, 255}
	table[ColorNumber2] = color.NRGBA{20, 130, 40, 255}
	table[ColorNumber3] = color.NRGBA{210, 30, 30, 255}
	table[ColorNumber4] = color.NRGBA{20, 20, 120, 255}
	table[ColorNumber5] = color.NRGBA{120, 20, 20, 255}
	table[ColorNumber6] = color.NRGBA{20, 120, 120, 255}
	table[ColorNumber7] = color.NRGBA{10, 10, 10, 255}
	table[ColorNumber8] = color.NRGBA{110, 110, 110, 255}

	table[ColorMine] = color.NRGBA{255, 255, 255, 255}
	table[ColorFlag] = color.NRGBA{255, 200, 200, 255}
	table[ColorUnsure] = color.NRGBA{255, 230, 120, 255}

	table[ColorExplosion] = color.NRGBA{255, 120, 40, 255}
	table[ColorCelebration] = color.NRGBA{120, 255, 160, 255}
	table[ColorPauseOverlay] = color.NRGBA{0, 0, 0, 200}

	return table
}

// Apply overrides entries of the table by name. Colors are CSS color
// strings. Nothing is changed when any entry is invalid.
func (t *ColorTable) Apply(colors map[string]string) error {
	stringToIndex := make(map[string]ColorTableIndex)
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		stringToIndex[i.String()] = i
	}

	// stable error for the same input
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	next := *t
	for _, name := range names {
		index, ok := stringToIndex[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		c, err := ParseColorString(colors[name])
		if err != nil {
			return fmt.Errorf("color %q: %w", name, err)
		}
		next[index] = c
	}

	*t = next
	return nil
}

// Strings renders the table the way Apply reads it.
func (t *ColorTable) Strings() map[string]string {
	m := make(map[string]string, ColorTableSize)
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		m[i.String()] = ColorToString(t[i])
	}
	return m
}
