package iterator

import (
	"golang.org/x/exp/constraints"

	"go.lepak.sg/avltree/tree"
)

var _ Iterator[int] = (*PostOrder[int])(nil)

// PostOrder yields both subtrees of a node before the node itself,
// so a node is always seen after all of its descendants.
// The top of the stack is the current item; everything beneath
// it is an ancestor that has not been yielded yet.
type PostOrder[T constraints.Ordered] struct {
	root    *tree.Node[T]
	stack   []*tree.Node[T]
	started bool
}

// NewPostOrder returns a new post-order iterator over the tree rooted at root.
func NewPostOrder[T constraints.Ordered](root *tree.Node[T], heightHint int) *PostOrder[T] {
	return &PostOrder[T]{
		root:  root,
		stack: make([]*tree.Node[T], 0, heightHint),
	}
}

// Next returns true if there is a next node to yield with Item.
func (i *PostOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.descend(i.root)
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	done := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	if len(i.stack) > 0 {
		// coming back up from the left: the right subtree is next
		parent := i.stack[len(i.stack)-1]
		if parent.Left == done && parent.Right != nil {
			i.descend(parent.Right)
		}
	}

	return len(i.stack) > 0
}

// descend pushes n and keeps going down, preferring left children,
// until it reaches a leaf. That leaf is the first node of n's subtree
// in post-order.
func (i *PostOrder[T]) descend(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		if n.Left != nil {
			n = n.Left
		} else {
			n = n.Right
		}
	}
}

// Item returns the current key of the iterator.
func (i *PostOrder[T]) Item() T {
	return i.stack[len(i.stack)-1].Key
}
