package iterator

import (
	"go.lepak.sg/bst/chops"
	"go.lepak.sg/bst/tree"
)

var _ chops.Iterator[int] = (*InOrderReverse[int])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The usage should be pretty familiar:
//	i := someBinaryTree.InOrderReverseIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[T any] struct {
	cur, at *tree.Node[T]
	stack   stack[T]
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[T any](root *tree.Node[T], heightHint int) *InOrderReverse[T] {
	return &InOrderReverse[T]{
		cur:   root,
		stack: newStack[T](heightHint),
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[T]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil {
		return false
	}

	for !i.stack.empty() || i.cur != nil {
		if i.cur != nil {
			i.stack.push(i.cur)
			i.cur = i.cur.Right
			continue
		}

		i.at = i.stack.pop()
		i.cur = i.at.Left
		return true
	}

	i.at = nil
	return false
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[T]) Item() T {
	return i.at.Value
}
