package avl

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// BuildFrom returns a new tree holding keys, inserted in the
// order given. Duplicates are dropped.
func BuildFrom[T constraints.Ordered](keys ...T) *Tree[T] {
	tr := &Tree[T]{}
	for _, k := range keys {
		tr.Insert(k)
	}
	return tr
}

// Shuffled returns the keys [0, num) in a random order.
// The seed for the order is a parameter,
// which ensures repeatable results.
func Shuffled(num int, seed int64) []int {
	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := 0; i < num; i++ {
		keys[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	return keys
}

// BuildRandom builds a tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order
// decided by seed.
func BuildRandom(num int, seed int64) *Tree[int] {
	return BuildFrom(Shuffled(num, seed)...)
}
