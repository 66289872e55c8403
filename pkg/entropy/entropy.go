package entropy

import "math"

// Ceiling is the bit count rendered as 100% by Percentage.
const Ceiling = 128.0

// Estimate is an entropy figure attached to a generated value.
type Estimate struct {
	Bits  float64
	Label string
}

// New returns an Estimate. NaN, infinite and negative inputs are clamped to zero.
func New(bits float64, label string) Estimate {
	if math.IsNaN(bits) || math.IsInf(bits, 0) || bits < 0 {
		bits = 0
	}
	return Estimate{Bits: bits, Label: label}
}

// PerSymbol returns length * log2(alphabet), the estimate for length
// independent uniform draws from an alphabet of the given size.
// Alphabets smaller than 1 yield zero.
func PerSymbol(length int, alphabet float64) float64 {
	if length <= 0 || alphabet < 1 {
		return 0
	}
	return float64(length) * math.Log2(alphabet)
}

// Strength classifies the estimate.
func (e Estimate) Strength() Strength {
	switch bits := e.Bits; {
	case bits < 25:
		return VeryWeak
	case bits < 50:
		return Weak
	case bits < 75:
		return Moderate
	case bits < 100:
		return Strong
	default:
		return VeryStrong
	}
}

// Percentage returns the estimate relative to Ceiling, capped at 100.
func (e Estimate) Percentage() uint8 {
	p := e.Bits / Ceiling * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return uint8(p)
}
