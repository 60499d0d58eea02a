package avl

// Case names one of the four ways a node can be out of balance,
// and so which rotations put it right.
type Case int

const (
	// LeftLeft: the node leans left and so does its left child.
	// One right rotation at the node.
	LeftLeft Case = iota
	// RightRight mirrors LeftLeft. One left rotation at the node.
	RightRight
	// LeftRight: the node leans left but its left child leans right.
	// Left rotation at the left child, then right rotation at the node.
	LeftRight
	// RightLeft mirrors LeftRight.
	RightLeft

	numCases
)

func (c Case) String() string {
	switch c {
	case LeftLeft:
		return "LeftLeft"
	case RightRight:
		return "RightRight"
	case LeftRight:
		return "LeftRight"
	case RightLeft:
		return "RightLeft"
	default:
		return "<invalid avl.Case>"
	}
}

// Double reports whether fixing the case takes two rotations.
func (c Case) Double() bool {
	return c == LeftRight || c == RightLeft
}

// Stats counts how often each Case was repaired, indexed by Case.
type Stats struct {
	Insert [numCases]int
	Remove [numCases]int
}

// Rotations returns the number of single rotations performed.
func (s Stats) Rotations() int {
	total := 0
	for c := LeftLeft; c < numCases; c++ {
		n := s.Insert[c] + s.Remove[c]
		if c.Double() {
			n *= 2
		}
		total += n
	}
	return total
}
