package avl

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"go.lepak.sg/avltree/tree"
)

// String draws the tree one key per line, root first, with each
// child tagged L or R. The tree built from 1 to 7 draws as:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
// An empty tree draws as "".
func (t *Tree[T]) String() string {
	d := drawer[T]{label: func(n *tree.Node[T]) string {
		return fmt.Sprint(n.Key)
	}}
	return d.draw(t.root)
}

// Dump is like String, but every node is annotated with
// its height and balance factor, as in "4 (h=3 b=+0)".
func (t *Tree[T]) Dump() string {
	d := drawer[T]{label: func(n *tree.Node[T]) string {
		return fmt.Sprintf("%v (h=%d b=%+d)", n.Key, n.Height, tree.Balance(n))
	}}
	return d.draw(t.root)
}

// drawer renders a subtree depth-first. Each line is the indent
// inherited from the ancestors, a joint, the side tag and the label.
type drawer[T constraints.Ordered] struct {
	sb    strings.Builder
	label func(*tree.Node[T]) string
}

type edge[T constraints.Ordered] struct {
	side  string
	child *tree.Node[T]
}

func (d *drawer[T]) draw(root *tree.Node[T]) string {
	if root == nil {
		return ""
	}
	d.line(root)
	d.below(root, "")
	return d.sb.String()
}

func (d *drawer[T]) line(n *tree.Node[T]) {
	d.sb.WriteString(d.label(n))
	d.sb.WriteByte('\n')
}

// below draws the children of n. Only the last child drawn gets the
// closing joint, and its own children are indented with blanks instead
// of a vertical bar.
func (d *drawer[T]) below(n *tree.Node[T], indent string) {
	edges := make([]edge[T], 0, 2)
	if n.Left != nil {
		edges = append(edges, edge[T]{"L─", n.Left})
	}
	if n.Right != nil {
		edges = append(edges, edge[T]{"R─", n.Right})
	}

	for i, e := range edges {
		joint, pad := "├─", "│   "
		if i == len(edges)-1 {
			joint, pad = "└─", "    "
		}
		d.sb.WriteString(indent)
		d.sb.WriteString(joint)
		d.sb.WriteString(e.side)
		d.line(e.child)
		d.below(e.child, indent+pad)
	}
}
