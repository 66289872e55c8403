package markov

import "unicode"

// maxRun is the longest accepted run of vowels or of consonants.
const maxRun = 3

// Pronounceable reports whether s has no more than three consecutive vowels and
// no more than three consecutive consonants. Non-letters break both runs.
// Strings without letters, including the empty string, are pronounceable.
func Pronounceable(s string) bool {
	return pronounceable([]rune(s))
}

func pronounceable(rs []rune) bool {
	vowelRun, consonantRun := 0, 0

	for _, c := range rs {
		c = unicode.ToLower(c)
		if !unicode.IsLetter(c) {
			vowelRun, consonantRun = 0, 0
			continue
		}

		if isVowel(c) {
			vowelRun++
			consonantRun = 0
		} else {
			consonantRun++
			vowelRun = 0
		}

		if vowelRun > maxRun || consonantRun > maxRun {
			return false
		}
	}

	return true
}
