package markov

import "math/rand/v2"

// syllables are the consonant-vowel pairs of the fallback path.
var syllables = [...]string{
	"ba", "be", "bi", "bo", "bu",
	"da", "de", "di", "do", "du",
	"fa", "fe", "fi", "fo", "fu",
	"ga", "ge", "gi", "go", "gu",
	"ha", "he", "hi", "ho", "hu",
	"ja", "je", "ji", "jo", "ju",
	"ka", "ke", "ki", "ko", "ku",
	"la", "le", "li", "lo", "lu",
	"ma", "me", "mi", "mo", "mu",
	"na", "ne", "ni", "no", "nu",
	"pa", "pe", "pi", "po", "pu",
	"ra", "re", "ri", "ro", "ru",
	"sa", "se", "si", "so", "su",
	"ta", "te", "ti", "to", "tu",
	"va", "ve", "vi", "vo", "vu",
	"wa", "we", "wi", "wo",
	"ya", "yo",
	"za", "ze", "zi", "zo", "zu",
}

// syllableString concatenates uniform syllables and cuts the result to length.
// It cannot fail and draws at most length/2+1 syllables.
func syllableString(r *rand.Rand, length int) []rune {
	buf := make([]rune, 0, length+2)
	for len(buf) < length {
		s := syllables[r.IntN(len(syllables))]
		buf = append(buf, rune(s[0]), rune(s[1]))
	}
	return truncate(buf, length)
}
