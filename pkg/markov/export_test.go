package markov

import "math/rand/v2"

// Test hooks for unexported stages.

const (
	MaxAttempts   = maxAttempts
	Vowels        = vowels
	PadConsonants = padConsonants
)

var Syllables = syllables[:]

func (m *Model) Candidate(r *rand.Rand, length int) ([]rune, bool) {
	return m.candidate(r, length)
}

func PostProcess(r *rand.Rand, buf []rune, req Request) []rune {
	return postProcess(r, buf, req)
}

func SyllableString(r *rand.Rand, length int) []rune {
	return syllableString(r, length)
}
