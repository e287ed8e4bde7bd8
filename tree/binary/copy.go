package binary

import (
	"fmt"

	"go.lepak.sg/bst/chops"
	"go.lepak.sg/bst/tree"
	"go.lepak.sg/bst/tree/iterator"
	"golang.org/x/exp/constraints"
)

// ToSlice returns every key in the tree, in the order selected by m.
func (t *Tree[T]) ToSlice(m iterator.Method) ([]T, error) {
	i, err := t.Iterator(m)
	if err != nil {
		return nil, err
	}

	return chops.Collect(make([]T, 0), i), nil
}

// CopyInto copies every key in the tree into dst, starting at dst[offset],
// in the order selected by m. It returns the number of keys copied.
// Nothing is copied unless all of the keys fit.
func (t *Tree[T]) CopyInto(dst []T, offset int, m iterator.Method) (int, error) {
	if dst == nil {
		return 0, ErrNilBuffer
	}

	if offset < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeOffset, offset)
	}

	i, err := t.Iterator(m)
	if err != nil {
		return 0, err
	}

	count := t.Count()
	if len(dst)-offset < count {
		return 0, fmt.Errorf("%w: %d keys, room for %d from offset %d",
			ErrBufferTooSmall, count, max(len(dst)-offset, 0), offset)
	}

	copied := 0
	for i.Next() {
		dst[offset+copied] = i.Item()
		copied++
	}

	return copied, nil
}

// PreOrderValues returns the keys of the tree in pre-order.
// Passing them to FromValues rebuilds a tree of the same shape,
// which makes this the serialised form of a Tree.
func (t *Tree[T]) PreOrderValues() []T {
	return chops.Collect[T](make([]T, 0), t.PreOrderIterator())
}

// FromValues builds a tree by inserting vs in order.
// Duplicate keys are skipped.
func FromValues[T constraints.Ordered](vs ...T) *Tree[T] {
	tr := &Tree[T]{}
	for _, v := range vs {
		tr.Insert(v)
	}
	return tr
}

// Clone returns a deep copy of the tree with the same shape.
func (t *Tree[T]) Clone() *Tree[T] {
	if t.root == nil {
		return &Tree[T]{}
	}

	type pair struct {
		from, to *tree.Node[T]
	}

	root := tree.NodeOf(t.root.Value)
	stack := []pair{{from: t.root, to: root}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.from.Left != nil {
			p.to.Left = tree.NodeOf(p.from.Left.Value)
			stack = append(stack, pair{from: p.from.Left, to: p.to.Left})
		}
		if p.from.Right != nil {
			p.to.Right = tree.NodeOf(p.from.Right.Value)
			stack = append(stack, pair{from: p.from.Right, to: p.to.Right})
		}
	}

	return &Tree[T]{root: root}
}
