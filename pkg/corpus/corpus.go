package corpus

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
)

//go:embed wordlist.tsv
var builtin string

var defaultWords = sync.OnceValue(func() []string {
	return ParseString(builtin)
})

// Default returns a copy of the built-in word list.
func Default() []string {
	return slices.Clone(defaultWords())
}

// maxLineLen bounds one buffered line. Longer lines cannot hold a word and
// are skipped.
const maxLineLen = 4 << 10

// Parse extracts the word field from every well-formed line of r.
func Parse(r io.Reader) ([]string, error) {
	var words []string

	br := bufio.NewReaderSize(r, maxLineLen)
	long := false
	for {
		line, isPrefix, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return words, nil
			}
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}

		// Drop every chunk of an oversize line, including its tail.
		if long || isPrefix {
			long = isPrefix
			continue
		}

		if w, ok := parseLine(string(line)); ok {
			words = append(words, w)
		}
	}
}

// ParseString is Parse over an in-memory list.
func ParseString(s string) []string {
	var words []string
	for line := range strings.Lines(s) {
		if w, ok := parseLine(line); ok {
			words = append(words, w)
		}
	}
	return words
}

// Load reads a word list from a file.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	return Parse(f)
}

func parseLine(line string) (string, bool) {
	line = strings.TrimRight(line, "\r\n")
	_, word, ok := strings.Cut(line, "\t")
	if !ok || strings.Contains(word, "\t") {
		return "", false
	}
	word = strings.TrimSpace(word)
	if word == "" {
		return "", false
	}
	return word, true
}
