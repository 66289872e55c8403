// Package entropy describes how much guessing work a generated value represents.
//
// An Estimate carries the number of bits and a label naming the code path that
// produced it, so callers can tell a model-driven estimate apart from a coarser
// fallback estimate:
//
//	est := entropy.New(12*math.Log2(7.3), "Markov pronounceable")
//	fmt.Printf("%.1f bits (%s) %d%%\n", est.Bits, est.Strength(), est.Percentage())
//
// # Strength Buckets
//
//   - VeryWeak: below 25 bits
//   - Weak: 25 to 49 bits
//   - Moderate: 50 to 74 bits
//   - Strong: 75 to 99 bits
//   - VeryStrong: 100 bits and above
//
// Percentage maps bits onto 0-100 against a 128-bit ceiling, for progress bars.
package entropy
