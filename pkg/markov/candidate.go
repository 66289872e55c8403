package markov

import "math/rand/v2"

const (
	// maxWalkSteps bounds the chain walk of one candidate.
	maxWalkSteps = 100

	vowels        = "aeiou"
	padConsonants = "bcdfghklmnprst"
)

// candidate walks the chain to a string of exactly length characters. It
// reports false only when the model has no start contexts.
func (m *Model) candidate(r *rand.Rand, length int) ([]rune, bool) {
	i, ok := SampleFunc(r, m.starts, startWeight)
	if !ok {
		return nil, false
	}

	// Padding overshoots by at most one character.
	buf := make([]rune, 0, max(length, 2)+1)
	start := m.starts[i].Context
	buf = append(buf, start.First, start.Second)

	for steps := 0; len(buf) < length && steps < maxWalkSteps; steps++ {
		succ := m.transitions[Context{buf[len(buf)-2], buf[len(buf)-1]}]
		j, ok := SampleFunc(r, succ, successorWeight)
		if !ok {
			break
		}
		buf = append(buf, succ[j].Char)
	}

	buf = pad(r, buf, length)
	return truncate(buf, length), true
}

// pad alternates vowels and consonants until buf reaches length. buf must not be empty.
func pad(r *rand.Rand, buf []rune, length int) []rune {
	for len(buf) < length {
		if isVowel(buf[len(buf)-1]) {
			buf = append(buf, rune(padConsonants[r.IntN(len(padConsonants))]))
		} else {
			buf = append(buf, rune(vowels[r.IntN(len(vowels))]))
		}
	}
	return buf
}

// truncate cuts buf to length and zeroes what was cut off.
func truncate(buf []rune, length int) []rune {
	if len(buf) <= length {
		return buf
	}
	clear(buf[length:])
	return buf[:length]
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
