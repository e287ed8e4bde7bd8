package iterator

import (
	"go.lepak.sg/bst/chops"
	"go.lepak.sg/bst/tree"
)

var _ chops.Iterator[int] = (*PostOrder[int])(nil)

// PostOrder is an iterator object over a binary tree.
// Each node is yielded after both of its subtrees.
type PostOrder[T any] struct {
	cur, at *tree.Node[T]
	// the most recently yielded node
	prev  *tree.Node[T]
	stack stack[T]
}

// A node on top of the stack is met twice: once after its left
// subtree is done, and again after its right subtree is done.
// The two cases are told apart by i.prev: if the right child was
// the last node yielded, the right subtree is done too.

// NewPostOrder returns a new PostOrder iterator over the tree rooted at root.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewPostOrder[T any](root *tree.Node[T], heightHint int) *PostOrder[T] {
	return &PostOrder[T]{
		cur:   root,
		stack: newStack[T](heightHint),
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *PostOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	for !i.stack.empty() || i.cur != nil {
		if i.cur != nil {
			i.stack.push(i.cur)
			i.cur = i.cur.Left
			continue
		}

		top := i.stack.peek()
		if top.Right != nil && top.Right != i.prev {
			i.cur = top.Right
			continue
		}

		i.at = i.stack.pop()
		i.prev = i.at
		return true
	}

	i.at = nil
	return false
}

// Item returns the current key of the iterator.
func (i *PostOrder[T]) Item() T {
	return i.at.Value
}
