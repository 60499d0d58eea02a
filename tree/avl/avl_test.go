package avl

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"go.lepak.sg/avltree/tree"
	"go.lepak.sg/avltree/tree/iterator"
)

// shape is a plain copy of a tree's structure, for diffing.
type shape struct {
	Key    int
	Height int
	L, R   *shape
}

func shapeOf(n *tree.Node[int]) *shape {
	if n == nil {
		return nil
	}
	return &shape{
		Key:    n.Key,
		Height: n.Height,
		L:      shapeOf(n.Left),
		R:      shapeOf(n.Right),
	}
}

func leaf(k int) *shape {
	return &shape{Key: k, Height: 1}
}

// node builds a tree.Node with a correct height, for trees set up by hand.
func node[T constraints.Ordered](k T, l, r *tree.Node[T]) *tree.Node[T] {
	n := &tree.Node[T]{Key: k, Left: l, Right: r}
	n.Update()
	return n
}

type insertspec[T constraints.Ordered] struct {
	key     T
	success bool
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		inserts []insertspec[int]
		post    func(t *testing.T, tr *Tree[int])
	}{
		{
			name: "empty",
			post: func(t *testing.T, tr *Tree[int]) {
				assert.Nil(t, tr.root)
				assert.Equal(t, 0, tr.Height())
				assert.Equal(t, 0, tr.Len())
			},
		},
		{
			name: "one",
			inserts: []insertspec[int]{
				{key: 1, success: true},
			},
			post: func(t *testing.T, tr *Tree[int]) {
				assert.NotNil(t, tr.root)
				assert.Equal(t, 1, tr.root.Key)
				assert.Equal(t, 1, tr.root.Height)
				assert.Nil(t, tr.root.Left)
				assert.Nil(t, tr.root.Right)
			},
		},
		{
			name: "one duplicate",
			inserts: []insertspec[int]{
				{key: 1, success: true},
				{key: 1, success: false},
			},
			post: func(t *testing.T, tr *Tree[int]) {
				assert.Equal(t, 1, tr.root.Key)
				assert.Equal(t, 1, tr.Len())
				assert.Nil(t, tr.root.Left)
				assert.Nil(t, tr.root.Right)
			},
		},
		{
			name: "left left",
			inserts: []insertspec[int]{
				{key: 3, success: true},
				{key: 2, success: true},
				{key: 1, success: true},
			},
			post: func(t *testing.T, tr *Tree[int]) {
				want := &shape{Key: 2, Height: 2, L: leaf(1), R: leaf(3)}
				if diff := pretty.Compare(want, shapeOf(tr.root)); diff != "" {
					t.Errorf("shape: (-want +got)\n%s", diff)
				}
				assert.Equal(t, 1, tr.Stats().Insert[LeftLeft])
			},
		},
		{
			name: "right right",
			inserts: []insertspec[int]{
				{key: 1, success: true},
				{key: 2, success: true},
				{key: 3, success: true},
			},
			post: func(t *testing.T, tr *Tree[int]) {
				want := &shape{Key: 2, Height: 2, L: leaf(1), R: leaf(3)}
				if diff := pretty.Compare(want, shapeOf(tr.root)); diff != "" {
					t.Errorf("shape: (-want +got)\n%s", diff)
				}
				assert.Equal(t, 1, tr.Stats().Insert[RightRight])
			},
		},
		{
			name: "left right",
			inserts: []insertspec[int]{
				{key: 3, success: true},
				{key: 1, success: true},
				{key: 2, success: true},
			},
			post: func(t *testing.T, tr *Tree[int]) {
				want := &shape{Key: 2, Height: 2, L: leaf(1), R: leaf(3)}
				if diff := pretty.Compare(want, shapeOf(tr.root)); diff != "" {
					t.Errorf("shape: (-want +got)\n%s", diff)
				}
				assert.Equal(t, 1, tr.Stats().Insert[LeftRight])
			},
		},
		{
			name: "right left",
			inserts: []insertspec[int]{
				{key: 1, success: true},
				{key: 3, success: true},
				{key: 2, success: true},
				{key: 2, success: false},
			},
			post: func(t *testing.T, tr *Tree[int]) {
				want := &shape{Key: 2, Height: 2, L: leaf(1), R: leaf(3)}
				if diff := pretty.Compare(want, shapeOf(tr.root)); diff != "" {
					t.Errorf("shape: (-want +got)\n%s", diff)
				}
				assert.Equal(t, 1, tr.Stats().Insert[RightLeft])
				assert.Equal(t, 2, tr.Stats().Rotations())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Tree[int]{}

			for _, k := range tt.inserts {
				assert.Equal(t, k.success, tr.Insert(k.key))
			}

			require.NoError(t, tr.Check())
			tt.post(t, &tr)
		})
	}
}

func TestInsert_DuplicateIsNoop(t *testing.T) {
	tr := BuildFrom(50, 20, 70, 10, 30, 60, 80, 25)
	before := tr.Traverse(iterator.Pre)
	height := tr.Height()
	stats := tr.Stats()

	for _, k := range []int{50, 25, 80, 10} {
		assert.False(t, tr.Insert(k), "insert %d", k)
	}

	assert.Equal(t, before, tr.Traverse(iterator.Pre))
	assert.Equal(t, height, tr.Height())
	assert.Equal(t, stats, tr.Stats())
	assert.Equal(t, 8, tr.Len())
}

func TestSearch(t *testing.T) {
	tr := BuildFrom(9, 4, 15, 6, 12, 3, 2)

	v, ok := tr.Search(4)
	require.True(t, ok)
	assert.True(t, v.Valid())
	assert.Equal(t, 4, v.Key())
	assert.Equal(t, 3, v.Height())
	assert.Equal(t, 1, v.Balance())
	assert.Equal(t, 3, v.Left().Key())
	assert.Equal(t, 2, v.Left().Left().Key())
	assert.False(t, v.Left().Right().Valid())
	assert.Equal(t, 6, v.Right().Key())

	v, ok = tr.Search(5)
	assert.False(t, ok)
	assert.False(t, v.Valid())
	assert.Equal(t, 0, v.Height())

	assert.True(t, tr.Contains(15))
	assert.False(t, tr.Contains(16))

	var empty Tree[string]
	assert.False(t, empty.Contains(""))
}

func TestView_PastLeaf(t *testing.T) {
	tr := BuildFrom(1)

	v, ok := tr.Search(1)
	require.True(t, ok)

	below := v.Left().Left()
	assert.False(t, below.Valid())
	assert.Equal(t, 0, below.Key())
	assert.Equal(t, 0, below.Height())
	assert.Equal(t, 0, below.Balance())
	assert.False(t, v.Right().Right().Left().Valid())

	var zero View[string]
	assert.Equal(t, "", zero.Key())
	assert.False(t, zero.Left().Valid())
}

func TestSearch_AbsentLeavesTreeUnchanged(t *testing.T) {
	tr := BuildFrom(11, 12, 14, 15, 16, 13)
	pre := tr.Traverse(iterator.Pre)
	in := tr.Traverse(iterator.In)
	height := tr.Height()

	_, ok := tr.Search(10)
	assert.False(t, ok)

	assert.Equal(t, pre, tr.Traverse(iterator.Pre))
	assert.Equal(t, in, tr.Traverse(iterator.In))
	assert.Equal(t, height, tr.Height())
}

func TestMinMax(t *testing.T) {
	var tr Tree[float64]

	_, ok := tr.Min()
	assert.False(t, ok)
	_, ok = tr.Max()
	assert.False(t, ok)

	for _, k := range []float64{3.5, -1, 8.25, 0, 2} {
		tr.Insert(k)
	}

	k, ok := tr.Min()
	assert.True(t, ok)
	assert.Equal(t, -1.0, k)

	k, ok = tr.Max()
	assert.True(t, ok)
	assert.Equal(t, 8.25, k)
}

func TestStrings(t *testing.T) {
	tr := BuildFrom("pear", "apple", "fig", "banana", "cherry", "apple")

	require.NoError(t, tr.Check())
	assert.Equal(t, 5, tr.Len())
	assert.Equal(t,
		[]string{"apple", "banana", "cherry", "fig", "pear"},
		tr.Traverse(iterator.In))
}

func TestHeightBound(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{6, 3},
		{7, 4},
		{11, 4},
		{12, 5},
		{20, 6},
		{33, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HeightBound(tt.n), "n=%d", tt.n)
		assert.LessOrEqual(t, float64(tt.want), HeightLimit(tt.n), "n=%d", tt.n)
	}
}

func TestCase(t *testing.T) {
	assert.Equal(t, "LeftRight", LeftRight.String())
	assert.Equal(t, "<invalid avl.Case>", Case(9).String())
	assert.True(t, RightLeft.Double())
	assert.False(t, RightRight.Double())
}
