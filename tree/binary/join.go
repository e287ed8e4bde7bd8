package binary

import (
	"fmt"

	"go.lepak.sg/bst/tree"
	"golang.org/x/exp/constraints"
)

// Join builds a tree with k at the root, left as its left subtree
// and right as its right subtree. A nil *Tree is an empty subtree.
//
// Every key in left must be less than k and every key in right must
// be greater than k, otherwise ErrOutOfOrder is returned. left and right
// must not share nodes, otherwise tree.ErrStructuralMisuse is returned.
//
// On success the nodes move into the new tree and left and right
// are left empty.
func Join[T constraints.Ordered](k T, left, right *Tree[T]) (*Tree[T], error) {
	var l, r *tree.Node[T]
	if left != nil {
		l = left.root
	}
	if right != nil {
		r = right.root
	}

	if left == right && l != nil {
		return nil, fmt.Errorf("%w: %w: same tree on both sides",
			ErrInvalidArgument, tree.ErrStructuralMisuse)
	}

	if max, _ := l.Max(); max != nil && tree.Compare(max.Value, k) != tree.Less {
		return nil, fmt.Errorf("%w: left subtree holds %v, not less than %v",
			ErrOutOfOrder, max.Value, k)
	}

	if min, _ := r.Min(); min != nil && tree.Compare(min.Value, k) != tree.Greater {
		return nil, fmt.Errorf("%w: right subtree holds %v, not greater than %v",
			ErrOutOfOrder, min.Value, k)
	}

	root, err := tree.NewNode(k, l, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if left != nil {
		left.root = nil
	}
	if right != nil {
		right.root = nil
	}

	return &Tree[T]{root: root}, nil
}
