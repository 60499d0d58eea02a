// Package avl implements a self-balancing binary search tree.
//
// After every Insert and Remove, each node's left and right
// subtree heights differ by at most one. This keeps the height of
// a tree with n keys under about 1.44*log2(n+2), so every
// operation, including the recursion behind it, is O(log n).
package avl

import (
	"math"

	"golang.org/x/exp/constraints"

	"go.lepak.sg/avltree/tree"
)

// Tree is an AVL tree of unique keys. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting, removing). Callers that need that must hold their own lock.
//
// The zero Tree may be used immediately.
//
// Invariants, holding whenever no method is running:
//  - At any node N, all keys in the subtree rooted at N.Left are less
//    than N.Key, and all keys in N.Right are greater.
//  - At any node N, tree.Balance(N) is -1, 0 or 1.
//  - At any node N, N.Height is 1 + the larger height of its children.
//  - For every possible key, there is at most one node with that key.
type Tree[T constraints.Ordered] struct {
	// don't return nodes directly - client could mutate data or children!
	root  *tree.Node[T]
	count int
	stats Stats
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// Height returns the height of the tree: 0 when it is empty,
// 1 when it only has a root, and so on.
func (t *Tree[T]) Height() int {
	return tree.Height(t.root)
}

// Stats returns the rebalancing done by the tree so far.
func (t *Tree[T]) Stats() Stats {
	return t.stats
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	_, ok := t.Search(k)
	return ok
}

// Search looks for k. If it is in the tree, Search returns a
// read-only view of the node holding it.
func (t *Tree[T]) Search(k T) (View[T], bool) {
	n := search(t.root, k)
	return View[T]{n: n}, n != nil
}

func search[T constraints.Ordered](n *tree.Node[T], k T) *tree.Node[T] {
	if n == nil {
		return nil
	}

	switch tree.Compare(k, n.Key) {
	case tree.Less:
		return search(n.Left, k)
	case tree.Greater:
		return search(n.Right, k)
	case tree.Equal:
		return n
	default:
		panic("unreachable")
	}
}

// Min returns the smallest key in the tree.
// If the tree is empty, k is the zero T and ok is false.
func (t *Tree[T]) Min() (k T, ok bool) {
	if t.root == nil {
		return
	}
	return leftmost(t.root).Key, true
}

// Max returns the largest key in the tree.
// If the tree is empty, k is the zero T and ok is false.
func (t *Tree[T]) Max() (k T, ok bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.Right != nil {
		n = n.Right
	}
	return n.Key, true
}

// leftmost returns the node with the smallest key under n.
func leftmost[T constraints.Ordered](n *tree.Node[T]) *tree.Node[T] {
	if n == nil {
		panic("leftmost of an empty subtree")
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// View is a read-only handle on a node of a Tree.
// It is only valid until the next Insert, Remove or Clear.
// The zero View stands for an absent node: its Key is the zero T,
// its Height and Balance are 0, and its children are absent too,
// so walking past a leaf never panics.
type View[T constraints.Ordered] struct {
	n *tree.Node[T]
}

// Valid returns false for a View of an absent node.
func (v View[T]) Valid() bool {
	return v.n != nil
}

// Key returns the node's key, or the zero T if v is not Valid.
func (v View[T]) Key() (k T) {
	if v.n == nil {
		return
	}
	return v.n.Key
}

// Height returns the height of the subtree under the node.
func (v View[T]) Height() int {
	return tree.Height(v.n)
}

// Balance returns the node's balance factor, always -1, 0 or 1.
func (v View[T]) Balance() int {
	return tree.Balance(v.n)
}

func (v View[T]) Left() View[T] {
	if v.n == nil {
		return View[T]{}
	}
	return View[T]{n: v.n.Left}
}

func (v View[T]) Right() View[T] {
	if v.n == nil {
		return View[T]{}
	}
	return View[T]{n: v.n.Right}
}

// HeightBound returns the largest height an AVL tree with n keys
// can have.
func HeightBound(n int) int {
	if n <= 0 {
		return 0
	}
	// Smallest AVL trees of each height have Fibonacci-like sizes:
	// N(h) = N(h-1) + N(h-2) + 1.
	small, big := 0, 1 // N(0), N(1)
	h := 1
	for big <= n {
		small, big = big, big+small+1
		h++
	}
	return h - 1
}

// HeightLimit is the closed-form bound 1.44*log2(n+2) on the height
// of an AVL tree with n keys.
func HeightLimit(n int) float64 {
	return 1.4405 * math.Log2(float64(n)+2)
}
