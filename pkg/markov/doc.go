// Package markov generates pronounceable passwords from a second-order character
// chain trained on a word list.
//
// The model is built once and shared. Each call to Generate walks the chain with
// the caller's randomness source, applies the requested formatting and keeps the
// result only if it reads naturally. When the chain cannot produce an acceptable
// value, a syllable table takes over; that path always succeeds.
//
// # Usage
//
//	words := corpus.Default()
//	model := markov.Build(words)
//
//	gen, err := markov.New(model, markov.Request{
//		Length:     12,
//		Digits:     true,
//		Capitalize: true,
//	})
//	if err != nil {
//		return err
//	}
//
//	pw := gen.Generate(randsrc.Crypto())
//	defer pw.Wipe()
//
//	fmt.Printf("%s  %.1f bits (%s)\n", pw, pw.Entropy.Bits, pw.Entropy.Label)
//	// Example output: "Tor3ibalexpe  34.6 bits (Markov pronounceable)"
//
// # Model
//
// Build lower-cases each word, drops non-letters and discards words shorter than
// three letters. The first two letters of a word count as a start context; every
// consecutive triple (a, b, c) adds weight to successor c of context (a, b).
// AvgBranchingFactor is the mean number of distinct successors per context, or 26
// for an empty model.
//
// # Generation
//
// A candidate starts from a weighted start context and extends itself one
// weighted successor at a time, looking up the last two characters. A context
// without successors ends the walk early. Any remaining length is padded by
// alternating vowels (aeiou) and consonants, then the result is cut to the exact
// length.
//
// Formatting runs in a fixed order: capitalize the first character, insert a
// digit, insert a symbol from ReadableSymbols. Insertions never touch position 0
// and keep the length unchanged by dropping the last character, so the symbol
// can occasionally push out the digit near the end. That is accepted: requested
// digits and symbols are present in the overwhelming majority of values but not
// guaranteed.
//
// Pronounceable rejects more than three consecutive vowels or consonants.
//
// # Retry and Fallback
//
// Generate is a two-state machine. In the primary state it tries up to 100
// candidates and returns the first pronounceable one. It moves to the fallback
// state when all attempts fail or the model has no start contexts; the fallback
// concatenates uniform syllables from an 86-entry consonant-vowel table, applies
// the same formatting and returns without validation.
//
// # Entropy
//
//   - Primary: Length * log2(AvgBranchingFactor), labelled "Markov pronounceable".
//     It assumes uniform branching at the average rate and ignores weight skew.
//     A corpus where every context has one successor estimates zero bits.
//   - Fallback: Length * log2(86) / 2, labelled "Syllable fallback".
//
// # Concurrency
//
// Models and generators are read-only after construction. Use one randomness
// source per goroutine, or see password.Batch.
//
// # Observability
//
// WithLogger receives a debug record whenever a call falls back. WithMetrics
// counts values per path and observes primary attempts per call. Generated values
// are never logged.
package markov
