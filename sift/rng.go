package sift

import "math/rand"

// shuffledRange returns a Fisher-Yates shuffled permutation of [0, n) driven
// by rng, mirroring github.com/katalvlaran/lvlath/tsp's shuffleIntsInPlace.
func shuffledRange(n int, rng *rand.Rand) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm
}

// insertAt returns a new slice with v inserted at position pos in s.
func insertAt(s []int, pos, v int) []int {
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = v

	return s
}

// removeAt returns a new slice with the element at position pos removed,
// plus the removed value.
func removeAt(s []int, pos int) ([]int, int) {
	v := s[pos]
	s = append(s[:pos], s[pos+1:]...)

	return s, v
}
