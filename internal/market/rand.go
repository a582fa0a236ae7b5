package market

import "math/rand"

// uniform draws from [a, b). Reversed bounds are allowed and draw from the
// mirrored interval, which some regime drift tables rely on.
func uniform(rng *rand.Rand, a, b float64) float64 {
	return a + rng.Float64()*(b-a)
}

// randInt draws an integer from [a, b] inclusive.
func randInt(rng *rand.Rand, a, b int) int {
	if a > b {
		a, b = b, a
	}
	return a + rng.Intn(b-a+1)
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sample returns k elements drawn without replacement.
func sample[T any](rng *rand.Rand, pool []T, k int) []T {
	if k > len(pool) {
		k = len(pool)
	}
	if k <= 0 {
		return nil
	}
	idx := rng.Perm(len(pool))[:k]
	out := make([]T, 0, k)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}
