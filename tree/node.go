package tree

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrStructuralMisuse is returned when building a Node would give
// some node two owners, or would close a cycle.
var ErrStructuralMisuse = errors.New("node would be shared or cyclic")

// Node is a single vertex of a binary tree.
// There is no parent pointer: whoever walks the tree
// keeps track of where it came from.
type Node[T any] struct {
	Value       T
	Left, Right *Node[T]
}

// NodeOf returns a leaf holding v.
func NodeOf[T any](v T) *Node[T] {
	return &Node[T]{
		Value: v,
	}
}

// NewNode returns a node holding v with the given subtrees.
// Every node reachable from left and right must be reachable
// exactly once, otherwise ErrStructuralMisuse is returned.
func NewNode[T any](v T, left, right *Node[T]) (*Node[T], error) {
	seen := make(map[*Node[T]]struct{})

	if !claim(left, seen) || !claim(right, seen) {
		return nil, ErrStructuralMisuse
	}

	return &Node[T]{
		Value: v,
		Left:  left,
		Right: right,
	}, nil
}

// claim walks the subtree rooted at n, recording every node in seen.
// It returns false as soon as some node is met a second time.
func claim[T any](n *Node[T], seen map[*Node[T]]struct{}) bool {
	if n == nil {
		return true
	}

	stack := []*Node[T]{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := seen[top]; ok {
			return false
		}
		seen[top] = struct{}{}

		if top.Right != nil {
			stack = append(stack, top.Right)
		}
		if top.Left != nil {
			stack = append(stack, top.Left)
		}
	}

	return true
}

// Min returns the leftmost node of the subtree rooted at n,
// along with its parent. parent is nil if n itself is the minimum.
func (n *Node[T]) Min() (min, parent *Node[T]) {
	min = n
	if min == nil {
		return
	}

	for min.Left != nil {
		min, parent = min.Left, min
	}

	return
}

// Max returns the rightmost node of the subtree rooted at n,
// along with its parent. parent is nil if n itself is the maximum.
func (n *Node[T]) Max() (max, parent *Node[T]) {
	max = n
	if max == nil {
		return
	}

	for max.Right != nil {
		max, parent = max.Right, max
	}

	return
}

// Predecessor returns the maximum of n's left subtree and its parent.
// If the predecessor is n.Left itself, parent is n.
// If n has no left child, both are nil.
func (n *Node[T]) Predecessor() (pred, parent *Node[T]) {
	if n == nil || n.Left == nil {
		return nil, nil
	}

	pred, parent = n.Left.Max()
	if parent == nil {
		parent = n
	}

	return
}

// Successor returns the minimum of n's right subtree and its parent.
// If the successor is n.Right itself, parent is n.
// If n has no right child, both are nil.
func (n *Node[T]) Successor() (succ, parent *Node[T]) {
	if n == nil || n.Right == nil {
		return nil, nil
	}

	succ, parent = n.Right.Min()
	if parent == nil {
		parent = n
	}

	return
}

// Height returns the number of levels in the subtree rooted at n.
// A nil node has height 0 and a leaf has height 1.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}

	// level-order walk, one level per round
	height := 0
	level := []*Node[T]{n}
	for len(level) > 0 {
		height++

		var next []*Node[T]
		for _, m := range level {
			if m.Left != nil {
				next = append(next, m.Left)
			}
			if m.Right != nil {
				next = append(next, m.Right)
			}
		}
		level = next
	}

	return height
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
