package markov_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgen/pkg/markov"
	"github.com/dmitrymomot/passgen/pkg/randsrc"
)

func TestCandidate(t *testing.T) {
	t.Parallel()

	t.Run("exact length", func(t *testing.T) {
		t.Parallel()
		m := defaultModel()
		r := rand.New(randsrc.FromUint64(10))

		for _, length := range []int{1, 2, 3, 7, 12, 64, 200} {
			for range 20 {
				buf, ok := m.Candidate(r, length)
				require.True(t, ok)
				assert.Len(t, buf, length)
			}
		}
	})

	t.Run("walks the only path", func(t *testing.T) {
		t.Parallel()
		m := markov.Build([]string{"banana"})
		r := rand.New(randsrc.FromUint64(11))

		buf, ok := m.Candidate(r, 6)
		require.True(t, ok)
		assert.Equal(t, "banana", string(buf))

		buf, ok = m.Candidate(r, 10)
		require.True(t, ok)
		assert.Equal(t, "banananana", string(buf))

		buf, ok = m.Candidate(r, 1)
		require.True(t, ok)
		assert.Equal(t, "b", string(buf))
	})

	t.Run("pads after dead end", func(t *testing.T) {
		t.Parallel()
		m := markov.Build([]string{"abc"})
		r := rand.New(randsrc.FromUint64(12))

		for range 50 {
			buf, ok := m.Candidate(r, 7)
			require.True(t, ok)
			require.Len(t, buf, 7)

			s := string(buf)
			assert.Equal(t, "abc", s[:3])
			// c is a consonant, so padding goes vowel, consonant, vowel, consonant.
			assert.True(t, strings.ContainsRune(markov.Vowels, buf[3]), s)
			assert.True(t, strings.ContainsRune(markov.PadConsonants, buf[4]), s)
			assert.True(t, strings.ContainsRune(markov.Vowels, buf[5]), s)
			assert.True(t, strings.ContainsRune(markov.PadConsonants, buf[6]), s)
		}
	})

	t.Run("no start contexts", func(t *testing.T) {
		t.Parallel()
		buf, ok := markov.Build(nil).Candidate(rand.New(randsrc.FromUint64(13)), 8)
		assert.False(t, ok)
		assert.Nil(t, buf)
	})
}

func TestSyllableString(t *testing.T) {
	t.Parallel()

	assert.Len(t, markov.Syllables, 86)

	seen := make(map[string]bool, len(markov.Syllables))
	for _, s := range markov.Syllables {
		require.Len(t, s, 2)
		assert.False(t, seen[s], "duplicate syllable %q", s)
		seen[s] = true
		assert.NotContains(t, markov.Vowels, s[:1])
		assert.Contains(t, markov.Vowels, s[1:])
	}

	r := rand.New(randsrc.FromUint64(14))
	for _, length := range []int{1, 2, 3, 11, 200} {
		buf := markov.SyllableString(r, length)
		assert.Len(t, buf, length)
		assert.True(t, markov.Pronounceable(string(buf)), string(buf))
	}
}
