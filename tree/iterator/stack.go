package iterator

import (
	"go.lepak.sg/bst/tree"
)

// stack is the explicit replacement for the call stack of
// a recursive tree walk.
type stack[T any] []*tree.Node[T]

func newStack[T any](heightHint int) stack[T] {
	if heightHint < 0 {
		heightHint = 0
	}
	return make(stack[T], 0, heightHint+1)
}

func (s *stack[T]) push(n *tree.Node[T]) {
	*s = append(*s, n)
}

func (s *stack[T]) pop() *tree.Node[T] {
	old := *s
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*s = old[:len(old)-1]
	return n
}

func (s stack[T]) peek() *tree.Node[T] {
	return s[len(s)-1]
}

func (s stack[T]) empty() bool {
	return len(s) == 0
}
