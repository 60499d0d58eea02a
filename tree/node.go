// Package tree holds the node type and the structural primitives
// shared by the tree implementations in this module.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is one key in a binary search tree.
// Height caches the height of the subtree rooted at the node:
// a leaf has height 1, an absent child counts as 0.
// There is no parent pointer, so a subtree can be relinked
// anywhere without fixing up its children.
type Node[T constraints.Ordered] struct {
	Key         T
	Height      int
	Left, Right *Node[T]
}

// NodeOf returns a new leaf holding k.
func NodeOf[T constraints.Ordered](k T) *Node[T] {
	return &Node[T]{
		Key:    k,
		Height: 1,
	}
}

// Height returns the cached height of n, or 0 if n is nil.
func Height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.Height
}

// Balance returns Height(n.Left) - Height(n.Right), or 0 if n is nil.
// A positive balance means the node leans left.
func Balance[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return Height(n.Left) - Height(n.Right)
}

// Update recomputes n.Height from its children.
// The children's heights must already be correct.
func (n *Node[T]) Update() {
	l, r := Height(n.Left), Height(n.Right)
	if l > r {
		n.Height = l + 1
	} else {
		n.Height = r + 1
	}
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
