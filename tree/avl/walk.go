package avl

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"go.lepak.sg/avltree/tree"
	"go.lepak.sg/avltree/tree/iterator"
)

// Traverse returns every key in the tree in the order given by tr.
// Each call walks the whole tree again.
func (t *Tree[T]) Traverse(tr iterator.Traversal) []T {
	keys := make([]T, 0, t.count)
	t.Walk(tr, func(k T) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Walk applies f to each key in the tree in the order given by tr.
// If f returns false, the walk is stopped early.
// f must not modify the tree.
func (t *Tree[T]) Walk(tr iterator.Traversal, f func(k T) bool) {
	// Classic recursive walks.
	// Compare this to the iterator package, which is not recursive.
	var visit func(*tree.Node[T], func(T) bool) bool
	switch tr {
	case iterator.Pre:
		visit = visitPre[T]
	case iterator.In:
		visit = visitIn[T]
	case iterator.Post:
		visit = visitPost[T]
	case iterator.Reverse:
		visit = visitReverse[T]
	default:
		panic(fmt.Sprintf("avl: unknown traversal %d", tr))
	}

	if t.root != nil {
		visit(t.root, f)
	}
}

func visitPre[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if !f(n.Key) {
		return false
	}
	if n.Left != nil && !visitPre(n.Left, f) {
		return false
	}
	if n.Right != nil && !visitPre(n.Right, f) {
		return false
	}
	return true
}

func visitIn[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n.Left != nil && !visitIn(n.Left, f) {
		return false
	}
	if !f(n.Key) {
		return false
	}
	if n.Right != nil && !visitIn(n.Right, f) {
		return false
	}
	return true
}

func visitPost[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n.Left != nil && !visitPost(n.Left, f) {
		return false
	}
	if n.Right != nil && !visitPost(n.Right, f) {
		return false
	}
	return f(n.Key)
}

func visitReverse[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n.Right != nil && !visitReverse(n.Right, f) {
		return false
	}
	if !f(n.Key) {
		return false
	}
	if n.Left != nil && !visitReverse(n.Left, f) {
		return false
	}
	return true
}

// Iterator returns an iterator object that yields
// keys from the tree in the order given by tr.
func (t *Tree[T]) Iterator(tr iterator.Traversal) iterator.Iterator[T] {
	return iterator.New(t.root, tr, t.Height())
}

// Coroutine is like Iterator, but the keys arrive on a channel fed by
// a goroutine. See iterator.CoIterate for how to stop it early.
func (t *Tree[T]) Coroutine(tr iterator.Traversal) iterator.CoIterator[T] {
	return iterator.CoIterate(t.Iterator(tr))
}

// Clear removes every key from the tree and returns how many
// nodes were released. Nodes are unlinked children first, so each
// one is detached exactly once. Clearing an empty tree does nothing.
// Stats are kept.
func (t *Tree[T]) Clear() int {
	released := release(t.root)
	t.root = nil
	t.count = 0
	return released
}

func release[T constraints.Ordered](n *tree.Node[T]) int {
	if n == nil {
		return 0
	}
	released := release(n.Left) + release(n.Right)
	n.Left, n.Right = nil, nil
	return released + 1
}
