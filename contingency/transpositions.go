package contingency

import "github.com/BenLubar/memoize"

var memoizedTranspositions = memoize.Memoize(transpositions)

// Transpositions lists the n axis orders obtained by rotating 0..n-1 left by
// 0, 1, ..., n-1 places. Permutation k starts with axis k, so summing a table
// transposed by it over every axis but the first yields the marginal of locus
// k. Each call returns freshly allocated slices.
func Transpositions(n int) [][]int {
	shared := memoizedTranspositions.(func(int) [][]int)(n)

	out := make([][]int, len(shared))
	for i, perm := range shared {
		out[i] = append([]int(nil), perm...)
	}

	return out
}

// cachedTranspositions shares its result between callers, so it must not be
// modified.
func cachedTranspositions(n int) [][]int {
	return memoizedTranspositions.(func(int) [][]int)(n)
}

func transpositions(n int) [][]int {
	if n < 1 {
		return nil
	}

	out := make([][]int, 0, n)
	for i := 0; i < n; i++ {
		perm := make([]int, 0, n)
		for k := 0; k < n; k++ {
			perm = append(perm, (i+k)%n)
		}
		out = append(out, perm)
	}

	return out
}
