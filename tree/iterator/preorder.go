package iterator

import (
	"go.lepak.sg/bst/chops"
	"go.lepak.sg/bst/tree"
)

var _ chops.Iterator[int] = (*PreOrder[int])(nil)

// PreOrder is an iterator object over a binary tree.
// Each node is yielded before its left subtree, which is
// yielded before its right subtree.
// Inserting the yielded keys into an empty binary search tree,
// in order, rebuilds a tree of the same shape.
type PreOrder[T any] struct {
	cur, at *tree.Node[T]
	// right subtrees that still have to be visited
	stack stack[T]
}

// NewPreOrder returns a new PreOrder iterator over the tree rooted at root.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewPreOrder[T any](root *tree.Node[T], heightHint int) *PreOrder[T] {
	return &PreOrder[T]{
		cur:   root,
		stack: newStack[T](heightHint),
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *PreOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	for !i.stack.empty() || i.cur != nil {
		if i.cur == nil {
			i.cur = i.stack.pop()
			continue
		}

		// first visit: yield, then go left and remember the right
		i.at = i.cur
		if i.cur.Right != nil {
			i.stack.push(i.cur.Right)
		}
		i.cur = i.cur.Left
		return true
	}

	i.at = nil
	return false
}

// Item returns the current key of the iterator.
func (i *PreOrder[T]) Item() T {
	return i.at.Value
}
