package markov

import (
	"math/rand/v2"
	"unicode"
)

const (
	digits = "0123456789"

	// ReadableSymbols are the symbols inserted when Request.Symbols is set.
	ReadableSymbols = "!@#$%&*-_+"
)

// postProcess applies capitalization, then digit insertion, then symbol
// insertion. Each insertion keeps the length unchanged by dropping the last
// character, so a later insertion can push out an earlier one.
func postProcess(r *rand.Rand, buf []rune, req Request) []rune {
	if req.Capitalize && len(buf) > 0 {
		buf[0] = unicode.ToUpper(buf[0])
	}
	if req.Digits && len(buf) > 2 {
		insertDropLast(r, buf, digits)
	}
	if req.Symbols && len(buf) > 2 {
		insertDropLast(r, buf, ReadableSymbols)
	}
	return buf
}

// insertDropLast inserts a random character from set at a random position in
// [1, len(buf)) and shifts the tail right, discarding the final character.
// This equals insert-then-truncate without growing the buffer.
func insertDropLast(r *rand.Rand, buf []rune, set string) {
	pos := 1 + r.IntN(len(buf)-1)
	c := rune(set[r.IntN(len(set))])
	copy(buf[pos+1:], buf[pos:len(buf)-1])
	buf[pos] = c
}
