package binary

import (
	"fmt"

	"go.lepak.sg/bst/tree"
	"go.uber.org/multierr"
)

// bound is one side of the open interval a subtree's keys must fall in.
type bound[T any] struct {
	key T
	set bool
}

// Validate checks the search tree invariants on every node and
// returns all of the violations it finds, combined.
// A tree built only through Insert, Remove and Join always validates.
func (t *Tree[T]) Validate() (err error) {
	type frame struct {
		n      *tree.Node[T]
		lo, hi bound[T]
		depth  int
	}

	seen := make(map[*tree.Node[T]]struct{})
	stack := make([]frame, 0)
	if t.root != nil {
		stack = append(stack, frame{n: t.root})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := seen[f.n]; ok {
			err = multierr.Append(err, fmt.Errorf(
				"node %v at depth %d: %w", f.n.Value, f.depth, tree.ErrStructuralMisuse))
			// don't walk into a cycle
			continue
		}
		seen[f.n] = struct{}{}

		if f.lo.set && tree.Compare(f.n.Value, f.lo.key) != tree.Greater {
			err = multierr.Append(err, fmt.Errorf(
				"node %v at depth %d: not greater than ancestor %v", f.n.Value, f.depth, f.lo.key))
		}
		if f.hi.set && tree.Compare(f.n.Value, f.hi.key) != tree.Less {
			err = multierr.Append(err, fmt.Errorf(
				"node %v at depth %d: not less than ancestor %v", f.n.Value, f.depth, f.hi.key))
		}

		here := bound[T]{key: f.n.Value, set: true}
		if f.n.Right != nil {
			stack = append(stack, frame{n: f.n.Right, lo: here, hi: f.hi, depth: f.depth + 1})
		}
		if f.n.Left != nil {
			stack = append(stack, frame{n: f.n.Left, lo: f.lo, hi: here, depth: f.depth + 1})
		}
	}

	return err
}
