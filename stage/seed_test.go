package stage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedText(t *testing.T) {
	seed := NewSeed()

	parsed, err := ParseSeed("  " + strings.ToUpper(seed.String()) + "\n")
	require.NoError(t, err)
	assert.Equal(t, seed, parsed)
	assert.Len(t, seed.String(), 64)
}

func TestParseSeedErrors(t *testing.T) {
	for _, str := range []string{
		"",
		"not hex",
		"abcd",
		strings.Repeat("00", 33),
	} {
		_, err := ParseSeed(str)
		assert.ErrorIs(t, err, ErrInvalidSeed, "%q", str)
	}
}

func TestSeedSourceIsDeterministic(t *testing.T) {
	a, b := Seed{9}.Source(), Seed{9}.Source()
	for range 8 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNextSeedDiffers(t *testing.T) {
	seeder := Seed{1}.seeder()
	first, second := seedFrom(seeder), seedFrom(seeder)

	assert.NotEqual(t, Seed{1}, first)
	assert.NotEqual(t, first, second)
}
