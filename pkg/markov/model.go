package markov

import (
	"slices"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// minWordLen is the shortest word that yields a trigram.
	minWordLen = 3

	// defaultBranching is the branching factor reported by a model without
	// contexts: the size of the Latin alphabet.
	defaultBranching = 26.0
)

// Context is the two-character state of the chain.
type Context struct {
	First, Second rune
}

// Successor is a character observed after a context, weighted by frequency.
type Successor struct {
	Char   rune
	Weight uint32
}

// Start is a context observed at the beginning of a word, weighted by frequency.
type Start struct {
	Context Context
	Weight  uint32
}

// Model is a second-order character chain. It is immutable after Build and
// safe for concurrent reads.
type Model struct {
	transitions map[Context][]Successor
	starts      []Start
	branching   float64
}

// Build trains a model on words. Words are lower-cased, stripped of non-letters
// and ignored when shorter than three letters. Slices keep first-seen order so
// a fixed corpus always produces the same model.
func Build(words []string) *Model {
	lower := cases.Lower(language.Und)

	m := &Model{transitions: make(map[Context][]Successor)}
	startIdx := make(map[Context]int)
	succIdx := make(map[Context]map[rune]int)

	for _, word := range words {
		letters := lettersOf(lower.String(word))
		if len(letters) < minWordLen {
			continue
		}

		start := Context{letters[0], letters[1]}
		if i, ok := startIdx[start]; ok {
			m.starts[i].Weight++
		} else {
			startIdx[start] = len(m.starts)
			m.starts = append(m.starts, Start{Context: start, Weight: 1})
		}

		for i := 0; i+2 < len(letters); i++ {
			ctx := Context{letters[i], letters[i+1]}
			next := letters[i+2]

			idx, ok := succIdx[ctx]
			if !ok {
				idx = make(map[rune]int)
				succIdx[ctx] = idx
			}
			if j, ok := idx[next]; ok {
				m.transitions[ctx][j].Weight++
				continue
			}
			idx[next] = len(m.transitions[ctx])
			m.transitions[ctx] = append(m.transitions[ctx], Successor{Char: next, Weight: 1})
		}
	}

	m.branching = defaultBranching
	if len(m.transitions) > 0 {
		total := 0
		for _, succ := range m.transitions {
			total += len(succ)
		}
		m.branching = float64(total) / float64(len(m.transitions))
	}

	return m
}

func lettersOf(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			out = append(out, r)
		}
	}
	return out
}

// AvgBranchingFactor is the mean number of distinct successors per context,
// or 26 when the model has no contexts. It is never below 1.
func (m *Model) AvgBranchingFactor() float64 {
	return m.branching
}

// Contexts returns the number of distinct contexts with successors.
func (m *Model) Contexts() int {
	return len(m.transitions)
}

// Empty reports whether the model has no start contexts and therefore cannot
// produce a candidate.
func (m *Model) Empty() bool {
	return len(m.starts) == 0
}

// Starts returns a copy of the start contexts.
func (m *Model) Starts() []Start {
	return slices.Clone(m.starts)
}

// Successors returns a copy of the successors of ctx, nil for unknown contexts.
func (m *Model) Successors(ctx Context) []Successor {
	return slices.Clone(m.transitions[ctx])
}
