package randsrc_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgen/pkg/randsrc"
)

func draw(src rand.Source, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = src.Uint64()
	}
	return out
}

func TestNewSeeded(t *testing.T) {
	t.Parallel()

	t.Run("same seed same sequence", func(t *testing.T) {
		t.Parallel()
		a, err := randsrc.NewSeeded([]byte("fixture"))
		require.NoError(t, err)
		b, err := randsrc.NewSeeded([]byte("fixture"))
		require.NoError(t, err)

		assert.Equal(t, draw(a, 64), draw(b, 64))
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		t.Parallel()
		a, err := randsrc.NewSeeded([]byte("fixture-a"))
		require.NoError(t, err)
		b, err := randsrc.NewSeeded([]byte("fixture-b"))
		require.NoError(t, err)

		assert.NotEqual(t, draw(a, 8), draw(b, 8))
	})

	t.Run("empty seed rejected", func(t *testing.T) {
		t.Parallel()
		s, err := randsrc.NewSeeded(nil)
		assert.ErrorIs(t, err, randsrc.ErrEmptySeed)
		assert.Nil(t, s)
	})

	t.Run("usable with math rand", func(t *testing.T) {
		t.Parallel()
		r := rand.New(randsrc.FromUint64(42))
		for range 1000 {
			n := r.IntN(10)
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 10)
		}
	})
}

func TestFromUint64(t *testing.T) {
	t.Parallel()
	assert.Equal(t, draw(randsrc.FromUint64(7), 16), draw(randsrc.FromUint64(7), 16))
	assert.NotEqual(t, draw(randsrc.FromUint64(7), 16), draw(randsrc.FromUint64(8), 16))
}

func TestCrypto(t *testing.T) {
	t.Parallel()

	src := randsrc.Crypto()
	seen := make(map[uint64]struct{})
	for _, v := range draw(src, 256) {
		seen[v] = struct{}{}
	}
	// 256 uniform 64-bit draws colliding is astronomically unlikely.
	assert.Len(t, seen, 256)
}
