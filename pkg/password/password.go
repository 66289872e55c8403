package password

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"unicode/utf8"

	"github.com/dmitrymomot/passgen/pkg/entropy"
)

// Generator is implemented by every generation strategy.
type Generator interface {
	// Generate produces one value using src for every random draw.
	Generate(src rand.Source) Password
	// Description names the strategy for display.
	Description() string
}

const redacted = "[REDACTED]"

// Password is a generated secret and its entropy estimate.
type Password struct {
	value   []byte
	Entropy entropy.Estimate
}

// New takes ownership of value. The caller must not retain or modify it.
func New(value []byte, est entropy.Estimate) Password {
	return Password{value: value, Entropy: est}
}

// FromRunes encodes runes into a new Password and zeroes the input slice.
func FromRunes(runes []rune, est entropy.Estimate) Password {
	n := 0
	for _, r := range runes {
		n += utf8.RuneLen(r)
	}
	buf := make([]byte, 0, n)
	for _, r := range runes {
		buf = utf8.AppendRune(buf, r)
	}
	clear(runes)
	return Password{value: buf, Entropy: est}
}

// Bytes returns the underlying buffer. It is zeroed by Wipe.
func (p Password) Bytes() []byte {
	return p.value
}

// String returns a copy of the value. Go strings cannot be wiped.
func (p Password) String() string {
	return string(p.value)
}

// Len returns the length in characters.
func (p Password) Len() int {
	return utf8.RuneCount(p.value)
}

// WriteTo writes the value without an intermediate string.
func (p Password) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.value)
	return int64(n), err
}

// Wipe zeroes the value and releases it.
func (p *Password) Wipe() {
	clear(p.value)
	p.value = nil
}

// LogValue implements slog.LogValuer.
func (p Password) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("value", redacted),
		slog.Float64("bits", p.Entropy.Bits),
		slog.String("label", p.Entropy.Label),
	)
}
