// Package iterator provides tree iterators for use
// by tree implementations.
//
// None of the iterators rely on parent pointers. Each keeps
// an explicit stack of the nodes it still has to come back to,
// which is never deeper than the height of the tree.
package iterator

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"go.lepak.sg/avltree/tree"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Once Next has returned false it keeps returning false.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//	i := someTree.Iterator(iterator.In)
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Traversal selects the order in which a walk visits the nodes.
type Traversal int

const (
	// Pre visits a node, then its left subtree, then its right subtree.
	Pre Traversal = iota
	// In visits the left subtree, the node, then the right subtree.
	// For a search tree this yields keys in ascending order.
	In
	// Post visits both subtrees before the node itself.
	Post
	// Reverse is In with left and right swapped (descending keys).
	Reverse
)

func (tr Traversal) String() string {
	switch tr {
	case Pre:
		return "pre-order"
	case In:
		return "in-order"
	case Post:
		return "post-order"
	case Reverse:
		return "reverse in-order"
	default:
		return "<invalid iterator.Traversal>"
	}
}

// New returns an iterator over the tree rooted at root that
// visits nodes in the given order.
// If the tree's height is known, pass it as heightHint so the
// stack never grows. Otherwise it's safe to leave it as 0.
// New panics if tr is not a valid Traversal.
func New[T constraints.Ordered](root *tree.Node[T], tr Traversal, heightHint int) Iterator[T] {
	switch tr {
	case Pre:
		return NewPreOrder(root, heightHint)
	case In:
		return NewInOrder(root, heightHint)
	case Post:
		return NewPostOrder(root, heightHint)
	case Reverse:
		return NewInOrderReverse(root, heightHint)
	default:
		panic(fmt.Sprintf("iterator: unknown traversal %d", tr))
	}
}
