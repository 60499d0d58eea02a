package iterator

import (
	"golang.org/x/exp/constraints"

	"go.lepak.sg/avltree/tree"
)

var _ Iterator[int] = (*PreOrder[int])(nil)

// PreOrder yields each node before its subtrees.
// Walking the keys of a search tree in this order and inserting
// them into an empty plain BST reproduces the same shape.
type PreOrder[T constraints.Ordered] struct {
	root, at *tree.Node[T]
	// right subtrees still to be visited
	stack   []*tree.Node[T]
	started bool
}

// NewPreOrder returns a new pre-order iterator over the tree rooted at root.
func NewPreOrder[T constraints.Ordered](root *tree.Node[T], heightHint int) *PreOrder[T] {
	return &PreOrder[T]{
		root:  root,
		stack: make([]*tree.Node[T], 0, heightHint),
	}
}

// Next returns true if there is a next node to yield with Item.
func (i *PreOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.at = i.root
		return i.at != nil
	}

	if i.at == nil {
		return false
	}

	if i.at.Right != nil {
		i.stack = append(i.stack, i.at.Right)
	}

	if i.at.Left != nil {
		i.at = i.at.Left
		return true
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	return true
}

// Item returns the current key of the iterator.
func (i *PreOrder[T]) Item() T {
	return i.at.Key
}
