package avl

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"go.lepak.sg/avltree/tree"
)

var (
	ErrOrder   = errors.New("keys out of order")
	ErrHeight  = errors.New("cached height is wrong")
	ErrBalance = errors.New("node out of balance")
	ErrCount   = errors.New("key count does not match the nodes")
)

// Check walks the whole tree and verifies its invariants.
// It returns nil if they hold, otherwise an error wrapping one of
// ErrOrder, ErrHeight, ErrBalance or ErrCount for the first
// violation found. A correct Tree never fails Check; it exists
// for tests and for callers that build trees by hand.
func (t *Tree[T]) Check() error {
	nodes, err := check(t.root, nil, nil)
	if err != nil {
		return err
	}

	if nodes != t.count {
		return fmt.Errorf("%w: %d nodes, count says %d", ErrCount, nodes, t.count)
	}

	return nil
}

// check verifies the subtree under n, whose keys must lie strictly
// between lo and hi (nil for unbounded), and returns its size.
func check[T constraints.Ordered](n *tree.Node[T], lo, hi *T) (int, error) {
	if n == nil {
		return 0, nil
	}

	if lo != nil && n.Key <= *lo {
		return 0, fmt.Errorf("%w: %v is in the right subtree of %v", ErrOrder, n.Key, *lo)
	}
	if hi != nil && n.Key >= *hi {
		return 0, fmt.Errorf("%w: %v is in the left subtree of %v", ErrOrder, n.Key, *hi)
	}

	left, err := check(n.Left, lo, &n.Key)
	if err != nil {
		return 0, err
	}
	right, err := check(n.Right, &n.Key, hi)
	if err != nil {
		return 0, err
	}

	want := tree.Height(n.Left) + 1
	if r := tree.Height(n.Right) + 1; r > want {
		want = r
	}
	if n.Height != want {
		return 0, fmt.Errorf("%w: node %v has height %d, want %d", ErrHeight, n.Key, n.Height, want)
	}

	if b := tree.Balance(n); b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: node %v has balance factor %d", ErrBalance, n.Key, b)
	}

	return left + right + 1, nil
}
