package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidParams = errors.New("invalid board params")
	ErrUnknownPreset = errors.New("unknown difficulty")
)

type Params struct {
	Width     int
	Height    int
	MineCount int
}

var (
	Beginner     = Params{Width: 8, Height: 8, MineCount: 10}
	Intermediate = Params{Width: 16, Height: 16, MineCount: 40}
	Expert       = Params{Width: 30, Height: 16, MineCount: 99}
)

var presets = map[string]Params{
	"beginner":     Beginner,
	"intermediate": Intermediate,
	"expert":       Expert,
}

// PresetByName resolves one of the named difficulties, ignoring case.
func PresetByName(name string) (Params, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

func (p Params) TileCount() int {
	return p.Width * p.Height
}

func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidParams, p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount >= p.TileCount() {
		return fmt.Errorf(
			"%w: %d mines do not fit a %dx%d board",
			ErrInvalidParams, p.MineCount, p.Width, p.Height,
		)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d/%d", p.Width, p.Height, p.MineCount)
}
