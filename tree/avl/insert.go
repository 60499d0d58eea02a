package avl

import (
	"go.lepak.sg/avltree/tree"
)

// Insert inserts k into the tree.
// If k is already in the tree, the tree is left untouched
// and Insert returns false.
func (t *Tree[T]) Insert(k T) bool {
	var added bool
	t.root, added = t.insert(t.root, k)
	if added {
		t.count++
	}
	return added
}

// insert adds k to the subtree rooted at n and returns
// the subtree's new root.
func (t *Tree[T]) insert(n *tree.Node[T], k T) (*tree.Node[T], bool) {
	if n == nil {
		return tree.NodeOf(k), true
	}

	var added bool
	switch tree.Compare(k, n.Key) {
	case tree.Less:
		n.Left, added = t.insert(n.Left, k)
	case tree.Greater:
		n.Right, added = t.insert(n.Right, k)
	case tree.Equal:
		return n, false
	default:
		panic("unreachable")
	}

	if !added {
		// nothing below changed shape
		return n, false
	}

	n.Update()
	return t.rebalanceAfterInsert(n, k), true
}

// rebalanceAfterInsert restores the balance of n, whose subtree
// just received k. The side k went down on tells the cases apart:
// the child's own balance is not needed.
func (t *Tree[T]) rebalanceAfterInsert(n *tree.Node[T], k T) *tree.Node[T] {
	b := tree.Balance(n)

	switch {
	case b > 1 && k < n.Left.Key:
		t.stats.Insert[LeftLeft]++
		return n.RotateRight()
	case b < -1 && k > n.Right.Key:
		t.stats.Insert[RightRight]++
		return n.RotateLeft()
	case b > 1 && k > n.Left.Key:
		t.stats.Insert[LeftRight]++
		n.Left = n.Left.RotateLeft()
		return n.RotateRight()
	case b < -1 && k < n.Right.Key:
		t.stats.Insert[RightLeft]++
		n.Right = n.Right.RotateRight()
		return n.RotateLeft()
	}

	return n
}
