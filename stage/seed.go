package stage

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var ErrInvalidSeed = errors.New("invalid seed")

// Seed fully determines the mine layout of a game for a given
// first click.
type Seed [32]byte

func NewSeed() Seed {
	var seed Seed
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return seed
}

// seeder is keyed apart from Source, so seeds of following games do
// not repeat the numbers that placed this game's mines.
func (s Seed) seeder() *rand.Rand {
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(s[0:8])^binary.LittleEndian.Uint64(s[16:24]),
		binary.LittleEndian.Uint64(s[8:16])^binary.LittleEndian.Uint64(s[24:32]),
	))
}

// seedFrom draws the next seed out of r.
func seedFrom(r *rand.Rand) Seed {
	var seed Seed
	for i := 0; i < len(seed); i += 8 {
		binary.LittleEndian.PutUint64(seed[i:], r.Uint64())
	}
	return seed
}

func (s Seed) Source() *rand.ChaCha8 {
	return rand.NewChaCha8(s)
}

func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}

func ParseSeed(str string) (Seed, error) {
	var seed Seed

	str = strings.TrimSpace(str)
	b, err := hex.DecodeString(str)
	if err != nil {
		return seed, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	if len(b) != len(seed) {
		return seed, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidSeed, len(seed), len(b))
	}

	copy(seed[:], b)
	return seed, nil
}
