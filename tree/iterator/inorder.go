package iterator

import (
	"go.lepak.sg/bst/chops"
	"go.lepak.sg/bst/tree"
)

var _ chops.Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree.
// Keys come out in ascending order for a binary search tree.
// The usage should be pretty familiar:
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T any] struct {
	cur, at *tree.Node[T]
	stack   stack[T]
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// When Next is called, everything up to (1) can be run,
// all the way down to the leftmost child node. This adds
// visit stack frames and we can replicate this in i.stack.
// Popping a frame off i.stack means its left subtree is done,
// so that node is yielded, and the next call to Next resumes
// from (2) with the right child as i.cur.

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T any](root *tree.Node[T], heightHint int) *InOrder[T] {
	return &InOrder[T]{
		cur:   root,
		stack: newStack[T](heightHint),
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	for !i.stack.empty() || i.cur != nil {
		if i.cur != nil {
			i.stack.push(i.cur)
			i.cur = i.cur.Left
			continue
		}

		i.at = i.stack.pop()
		i.cur = i.at.Right
		return true
	}

	i.at = nil
	return false
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	return i.at.Value
}
