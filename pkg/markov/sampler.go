package markov

import "math/rand/v2"

// Sample returns index i with probability weights[i]/sum(weights). It reports
// false when weights is empty or sums to zero.
func Sample(r *rand.Rand, weights []uint32) (int, bool) {
	return SampleFunc(r, weights, func(w uint32) uint32 { return w })
}

// SampleFunc is Sample over arbitrary items. It consumes exactly one draw from
// r when a sample exists and none otherwise.
func SampleFunc[T any](r *rand.Rand, items []T, weight func(T) uint32) (int, bool) {
	var total uint64
	for _, it := range items {
		total += uint64(weight(it))
	}
	if total == 0 {
		return -1, false
	}

	x := r.Uint64N(total)
	for i, it := range items {
		w := uint64(weight(it))
		if x < w {
			return i, true
		}
		x -= w
	}

	return -1, false
}

func startWeight(s Start) uint32         { return s.Weight }
func successorWeight(s Successor) uint32 { return s.Weight }
