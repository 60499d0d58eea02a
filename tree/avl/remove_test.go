package avl

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.lepak.sg/avltree/tree"
	"go.lepak.sg/avltree/tree/iterator"
)

func TestRemove(t *testing.T) {
	tests := []struct {
		name      string
		build     []int
		remove    int
		success   bool
		wantPre   []int
		wantCase  Case
		rebalance bool
	}{
		{
			name:    "empty",
			remove:  1,
			success: false,
		},
		{
			name:    "only root",
			build:   []int{1},
			remove:  1,
			success: true,
		},
		{
			name:    "absent",
			build:   []int{2, 1, 3},
			remove:  4,
			success: false,
			wantPre: []int{2, 1, 3},
		},
		{
			name:    "leaf",
			build:   []int{2, 1, 3},
			remove:  3,
			success: true,
			wantPre: []int{2, 1},
		},
		{
			name:    "one child",
			build:   []int{2, 1, 3, 4},
			remove:  3,
			success: true,
			wantPre: []int{2, 1, 4},
		},
		{
			name:    "two children at root",
			build:   []int{2, 1, 3},
			remove:  2,
			success: true,
			wantPre: []int{3, 1},
		},
		{
			name:      "left left",
			build:     []int{5, 2, 8, 1},
			remove:    8,
			success:   true,
			wantPre:   []int{2, 1, 5},
			wantCase:  LeftLeft,
			rebalance: true,
		},
		{
			name:      "left left with balanced child",
			build:     []int{5, 2, 8, 1, 3},
			remove:    8,
			success:   true,
			wantPre:   []int{2, 1, 5, 3},
			wantCase:  LeftLeft,
			rebalance: true,
		},
		{
			name:      "left right",
			build:     []int{5, 2, 8, 3},
			remove:    8,
			success:   true,
			wantPre:   []int{3, 2, 5},
			wantCase:  LeftRight,
			rebalance: true,
		},
		{
			name:      "right right",
			build:     []int{5, 2, 8, 9},
			remove:    2,
			success:   true,
			wantPre:   []int{8, 5, 9},
			wantCase:  RightRight,
			rebalance: true,
		},
		{
			name:      "right right with balanced child",
			build:     []int{5, 2, 8, 7, 9},
			remove:    2,
			success:   true,
			wantPre:   []int{8, 5, 7, 9},
			wantCase:  RightRight,
			rebalance: true,
		},
		{
			name:      "right left",
			build:     []int{5, 2, 8, 7},
			remove:    2,
			success:   true,
			wantPre:   []int{7, 5, 8},
			wantCase:  RightLeft,
			rebalance: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := BuildFrom(tt.build...)
			before := tr.Stats()
			n := tr.Len()

			assert.Equal(t, tt.success, tr.Remove(tt.remove))

			require.NoError(t, tr.Check())
			assert.Equal(t, tt.wantPre, nilIfEmpty(tr.Traverse(iterator.Pre)))
			assert.False(t, tr.Contains(tt.remove))
			if tt.success {
				assert.Equal(t, n-1, tr.Len())
			} else {
				assert.Equal(t, n, tr.Len())
			}

			after := tr.Stats()
			assert.Equal(t, before.Insert, after.Insert)
			if tt.rebalance {
				var want [numCases]int
				want[tt.wantCase] = 1
				assert.Equal(t, want, after.Remove)
			} else {
				assert.Equal(t, [numCases]int{}, after.Remove)
			}
		})
	}
}

func nilIfEmpty(s []int) []int {
	if len(s) == 0 {
		return nil
	}
	return s
}

// newFibonacciTree returns the sparsest AVL tree of height 5,
// keys 1 to 12, with every node leaning left:
//	8
//	├─L─5
//	│   ├─L─3
//	│   │   ├─L─2
//	│   │   │   └─L─1
//	│   │   └─R─4
//	│   └─R─7
//	│       └─L─6
//	└─R─11
//	    ├─L─10
//	    │   └─L─9
//	    └─R─12
func newFibonacciTree() *Tree[int] {
	l := func(k int) *tree.Node[int] { return tree.NodeOf(k) }

	root := node(8,
		node(5,
			node(3, node(2, l(1), nil), l(4)),
			node(7, l(6), nil)),
		node(11,
			node(10, l(9), nil),
			l(12)))

	return &Tree[int]{root: root, count: 12}
}

func TestRemove_Cascade(t *testing.T) {
	tr := newFibonacciTree()
	require.NoError(t, tr.Check())
	require.Equal(t, 5, tr.Height())

	// Removing 12 unbalances 11. Fixing 11 shortens the right
	// side of 8, which then needs its own rotation.
	assert.True(t, tr.Remove(12))
	require.NoError(t, tr.Check())

	assert.Equal(t, 2, tr.Stats().Remove[LeftLeft])
	assert.Equal(t, 2, tr.Stats().Rotations())
	assert.Equal(t, 4, tr.Height())

	want := &shape{
		Key: 5, Height: 4,
		L: &shape{
			Key: 3, Height: 3,
			L: &shape{Key: 2, Height: 2, L: leaf(1)},
			R: leaf(4),
		},
		R: &shape{
			Key: 8, Height: 3,
			L: &shape{Key: 7, Height: 2, L: leaf(6)},
			R: &shape{Key: 10, Height: 2, L: leaf(9), R: leaf(11)},
		},
	}
	if diff := pretty.Compare(want, shapeOf(tr.root)); diff != "" {
		t.Errorf("shape: (-want +got)\n%s", diff)
	}
}

func TestRemove_All(t *testing.T) {
	tr := BuildRandom(300, 7)

	for _, k := range Shuffled(300, 8) {
		require.True(t, tr.Remove(k), "remove %d", k)
		require.NoError(t, tr.Check(), "after removing %d", k)
	}

	assert.Nil(t, tr.root)
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.Height())
	assert.False(t, tr.Remove(0))
}

func TestLeftmost_Empty(t *testing.T) {
	assert.PanicsWithValue(t, "leftmost of an empty subtree", func() {
		leftmost[int](nil)
	})
}
