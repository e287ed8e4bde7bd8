package binary

import (
	"fmt"

	"go.lepak.sg/bst/tree"
)

// Strategy picks which neighbour takes the place of a removed node
// that has two children.
type Strategy int

const (
	// ByPredecessor moves up the largest key of the left subtree.
	ByPredecessor Strategy = iota
	// BySuccessor moves up the smallest key of the right subtree.
	BySuccessor
)

func (s Strategy) String() string {
	switch s {
	case ByPredecessor:
		return "predecessor"
	case BySuccessor:
		return "successor"
	default:
		return "<invalid binary.Strategy>"
	}
}

// Other returns the opposite strategy.
func (s Strategy) Other() Strategy {
	if s == ByPredecessor {
		return BySuccessor
	}
	return ByPredecessor
}

// Remove removes k from the tree and returns true,
// or returns false if k was not in the tree.
//
// With ByPredecessor, a node without a left child is spliced out
// by its right child. Otherwise its predecessor node is unhooked
// and relinked in its place: the node object moves, the key is not
// copied. BySuccessor is the mirror image.
//
// Remove panics if s is not a known Strategy.
func (t *Tree[T]) Remove(k T, s Strategy) bool {
	loc := t.locate(k)
	if !loc.found {
		return false
	}

	n := loc.node
	var replacement *tree.Node[T]

	switch s {
	case ByPredecessor:
		replacement = unhookPredecessor(n)
	case BySuccessor:
		replacement = unhookSuccessor(n)
	default:
		panic(fmt.Sprintf("unknown removal strategy %d", int(s)))
	}

	t.relink(loc.parent, loc.wentLeft, replacement)

	// n is out of the tree now, don't let it keep subtrees alive
	n.Left, n.Right = nil, nil

	return true
}

// unhookPredecessor returns the node that should take n's place,
// already carrying n's children.
func unhookPredecessor[T any](n *tree.Node[T]) *tree.Node[T] {
	if n.Left == nil {
		return n.Right
	}

	pred, parent := n.Predecessor()
	if parent != n {
		// pred is the rightmost node of n.Left, so it has no right child
		parent.Right = pred.Left
		pred.Left = n.Left
	}
	pred.Right = n.Right

	return pred
}

// unhookSuccessor is unhookPredecessor with left and right swapped.
func unhookSuccessor[T any](n *tree.Node[T]) *tree.Node[T] {
	if n.Right == nil {
		return n.Left
	}

	succ, parent := n.Successor()
	if parent != n {
		parent.Left = succ.Right
		succ.Right = n.Right
	}
	succ.Left = n.Left

	return succ
}
