package binary

import (
	"context"
	"fmt"
	"math/rand"

	"go.lepak.sg/bst/tree"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	return FromValues(rd.Perm(num)...)
}

// BuildRandomBalanced builds a binary tree of the smallest possible
// height with num nodes, by retrying random insert orders.
// Past a few dozen nodes this can take a very long time, so it gives up
// with ctx.Err() once ctx is done.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
func BuildRandomBalanced(ctx context.Context, num int, seed int64) (*Tree[int], int, error) {
	rd := rand.New(rand.NewSource(seed))

	var tr *Tree[int]
	attempts := 0

	for tr == nil || !tr.Balanced() {
		if err := ctx.Err(); err != nil {
			return nil, attempts, fmt.Errorf("gave up after %d attempts: %w", attempts, err)
		}
		attempts++
		tr = FromValues(rd.Perm(num)...)
	}

	return tr, attempts, nil
}

// checkTraversals rejects traversals that cannot come from the same
// search tree. The in-order traversal of a search tree is strictly
// ascending, which also rules out duplicate keys.
func checkTraversals[S ~[]T, T constraints.Ordered](pre, in S) error {
	if len(in) == 0 {
		return fmt.Errorf("%w: nothing to build", ErrInvalidArgument)
	}

	if len(in) != len(pre) {
		return fmt.Errorf("%w: pre- and in-order traversals have different lengths", ErrInvalidArgument)
	}

	for i := 1; i < len(in); i++ {
		if tree.Compare(in[i-1], in[i]) != tree.Less {
			return fmt.Errorf("%w: in-order traversal has %v before %v",
				ErrOutOfOrder, in[i-1], in[i])
		}
	}

	return nil
}

// BuildFromPreAndInOrderIter iteratively builds a binary tree
// from its pre- and in-order traversal.
func BuildFromPreAndInOrderIter[S ~[]T, T constraints.Ordered](
	pre, in S) (*Tree[T], error) {
	// Iterative method. Time O(N*height) Space O(N) (1x nodes)
	if err := checkTraversals(pre, in); err != nil {
		return nil, err
	}

	// Since in is sorted, a key's index in it orders the same way as
	// the key itself, so walking down by key puts every pre-order key
	// where the in-order traversal says it goes.
	tr := &Tree[T]{}
	for _, toInsert := range pre {
		if _, ok := slices.BinarySearch(in, toInsert); !ok {
			return nil, fmt.Errorf("%w: pre-order key %v not found in in-order traversal",
				ErrInvalidArgument, toInsert)
		}
		if !tr.Insert(toInsert) {
			return nil, fmt.Errorf("%w: duplicated key %v in pre-order traversal",
				ErrInvalidArgument, toInsert)
		}
	}

	// pre is a permutation of in now, but not necessarily a pre-order
	// traversal of any tree with that in-order traversal
	if !slices.Equal(tr.PreOrderValues(), []T(pre)) {
		return nil, fmt.Errorf("%w: pre-order traversal does not match the in-order traversal",
			ErrInvalidArgument)
	}

	return tr, nil
}

// BuildFromPreAndInOrderRec recursively builds a binary tree
// from its pre- and in-order traversal.
func BuildFromPreAndInOrderRec[S ~[]T, T constraints.Ordered](
	pre, in S) (tr *Tree[T], err error) {
	// A dog on the internet told me how to do this
	// Recursive method. Time O(N log N) Space O(height) (stack frames)
	if err := checkTraversals(pre, in); err != nil {
		return nil, err
	}

	root, err := buildFromPreAndInOrderRecVisit(pre, in)
	if err != nil {
		return nil, err
	}

	return &Tree[T]{root: root}, nil
}

func buildFromPreAndInOrderRecVisit[S ~[]T, T constraints.Ordered](
	pre, in S) (*tree.Node[T], error) {
	// N = len(pre) = len(in)
	// At least N calls to this function

	if len(pre) != len(in) {
		panic(fmt.Sprintf("invariant broken: "+
			"(len(pre) == %d) != (len(in) == %d)", len(pre), len(in)))
	}

	if len(pre) == 0 {
		return nil, nil
	}

	if len(pre) == 1 {
		if in[0] != pre[0] {
			return nil, fmt.Errorf("%w: pre-order key %v not found in in-order traversal",
				ErrInvalidArgument, pre[0])
		}

		return tree.NodeOf(pre[0]), nil
	}

	x := pre[0]
	// in is sorted, see checkTraversals
	xi, ok := slices.BinarySearch(in, x)
	if !ok {
		return nil, fmt.Errorf("%w: pre-order key %v not found in in-order traversal",
			ErrInvalidArgument, x)
	}

	inleft, inright := in[0:xi], in[xi+1:]

	preleft, preright := pre[1:xi+1], pre[xi+1:]

	left, err := buildFromPreAndInOrderRecVisit(preleft, inleft)
	if err != nil {
		return nil, err
	}
	right, err := buildFromPreAndInOrderRecVisit(preright, inright)
	if err != nil {
		return nil, err
	}

	return &tree.Node[T]{
		Value: x,
		Left:  left,
		Right: right,
	}, nil
}
