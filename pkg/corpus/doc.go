// Package corpus reads training word lists for the pronounceable generator.
//
// The format follows the EFF diceware lists: one entry per line, a rank and a
// word separated by a single tab.
//
//	11111	abacus
//	11112	abdomen
//
// Only the word is kept. Lines that do not have exactly two tab-separated fields
// are skipped without error, so headers, comments and blank lines are harmless.
//
//	words, err := corpus.Load("/usr/share/wordlists/eff_large_wordlist.txt")
//	if err != nil {
//		return err
//	}
//	model := markov.Build(words)
//
// Default returns a built-in list of a few hundred common English words that is
// used when no external list is configured.
package corpus
