package markov_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/passgen/pkg/markov"
	"github.com/dmitrymomot/passgen/pkg/randsrc"
)

func TestSample(t *testing.T) {
	t.Parallel()

	t.Run("empty weights", func(t *testing.T) {
		t.Parallel()
		i, ok := markov.Sample(rand.New(randsrc.FromUint64(1)), nil)
		assert.False(t, ok)
		assert.Equal(t, -1, i)
	})

	t.Run("all zero weights", func(t *testing.T) {
		t.Parallel()
		i, ok := markov.Sample(rand.New(randsrc.FromUint64(1)), []uint32{0, 0, 0})
		assert.False(t, ok)
		assert.Equal(t, -1, i)
	})

	t.Run("single positive weight always wins", func(t *testing.T) {
		t.Parallel()
		r := rand.New(randsrc.FromUint64(2))
		for range 200 {
			i, ok := markov.Sample(r, []uint32{0, 0, 5, 0})
			assert.True(t, ok)
			assert.Equal(t, 2, i)
		}
	})

	t.Run("proportional to weight", func(t *testing.T) {
		t.Parallel()
		r := rand.New(randsrc.FromUint64(3))
		weights := []uint32{1, 3, 6}
		counts := make([]int, len(weights))

		const n = 20000
		for range n {
			i, ok := markov.Sample(r, weights)
			assert.True(t, ok)
			counts[i]++
		}

		assert.InDelta(t, 0.1, float64(counts[0])/n, 0.02)
		assert.InDelta(t, 0.3, float64(counts[1])/n, 0.02)
		assert.InDelta(t, 0.6, float64(counts[2])/n, 0.02)
	})

	t.Run("one draw per sample", func(t *testing.T) {
		t.Parallel()
		src := &countingSource{Source: randsrc.FromUint64(4)}
		r := rand.New(src)

		markov.Sample(r, []uint32{1, 1, 1, 1})
		assert.Equal(t, 1, src.n)

		markov.Sample(r, []uint32{0, 0})
		assert.Equal(t, 1, src.n, "no draw when nothing can be sampled")
	})
}

func TestSampleFunc(t *testing.T) {
	t.Parallel()

	items := []markov.Successor{{Char: 'a', Weight: 0}, {Char: 'b', Weight: 7}}
	i, ok := markov.SampleFunc(rand.New(randsrc.FromUint64(5)), items, func(s markov.Successor) uint32 {
		return s.Weight
	})
	assert.True(t, ok)
	assert.Equal(t, 'b', items[i].Char)
}

// countingSource counts Uint64 calls.
type countingSource struct {
	rand.Source
	n int
}

func (c *countingSource) Uint64() uint64 {
	c.n++
	return c.Source.Uint64()
}
