// Package iterator provides tree iterators for use
// by tree implementations.
//
// Every iterator here simulates the matching recursive walk with
// an explicit stack of nodes, so the depth of the tree never
// touches the goroutine stack, and iteration can be suspended
// between any two calls to Next.
package iterator

import (
	"go.lepak.sg/bst/chops"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Next may be called any number of times, and keeps
// returning false once the iterator is exhausted.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//	i := someTree.Iterator(iterator.InOrderMethod)
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
//
// Iterators are not rewindable. To start over, make a new one.
// The result of mutating the tree while iterating over it is undefined.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator[int])(nil)
