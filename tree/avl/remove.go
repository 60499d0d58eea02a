package avl

import (
	"go.lepak.sg/avltree/tree"
)

// Remove removes k from the tree.
// If k is not in the tree, Remove returns false.
func (t *Tree[T]) Remove(k T) bool {
	var removed bool
	t.root, removed = t.remove(t.root, k)
	if removed {
		t.count--
	}
	return removed
}

// remove deletes k from the subtree rooted at n and returns
// the subtree's new root, which may be nil.
func (t *Tree[T]) remove(n *tree.Node[T], k T) (*tree.Node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch tree.Compare(k, n.Key) {
	case tree.Less:
		n.Left, removed = t.remove(n.Left, k)
	case tree.Greater:
		n.Right, removed = t.remove(n.Right, k)
	case tree.Equal:
		if n.Left == nil || n.Right == nil {
			child := n.Left
			if child == nil {
				child = n.Right
			}
			n.Left, n.Right = nil, nil
			// child is already a valid AVL subtree
			return child, true
		}

		// Two children: take over the in-order successor's key,
		// then remove the successor, which has no left child.
		succ := leftmost(n.Right)
		n.Key = succ.Key
		n.Right, removed = t.remove(n.Right, succ.Key)
		if !removed {
			panic("in-order successor not found in right subtree")
		}
	default:
		panic("unreachable")
	}

	if !removed {
		return n, false
	}

	n.Update()
	return t.rebalanceAfterRemove(n), true
}

// rebalanceAfterRemove restores the balance of n after its subtree
// shrank. The removed key says nothing about the shape left behind,
// so the taller child's balance picks the case. A rotation here may
// shorten n's subtree, so every ancestor still has to be checked.
func (t *Tree[T]) rebalanceAfterRemove(n *tree.Node[T]) *tree.Node[T] {
	b := tree.Balance(n)

	switch {
	case b > 1 && tree.Balance(n.Left) >= 0:
		t.stats.Remove[LeftLeft]++
		return n.RotateRight()
	case b > 1:
		t.stats.Remove[LeftRight]++
		n.Left = n.Left.RotateLeft()
		return n.RotateRight()
	case b < -1 && tree.Balance(n.Right) <= 0:
		t.stats.Remove[RightRight]++
		return n.RotateLeft()
	case b < -1:
		t.stats.Remove[RightLeft]++
		n.Right = n.Right.RotateRight()
		return n.RotateLeft()
	}

	return n
}
