// Package chops adapts pull iterators to channels and slices.
package chops

// Iterator describes a pull iterator over a data structure.
// Next must be called before every Item, including the first.
// Once Next returns false it keeps returning false.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Collect drains it into dst and returns the extended slice.
// A nil it leaves dst untouched.
func Collect[T any](dst []T, it Iterator[T]) []T {
	if it == nil {
		return dst
	}

	for it.Next() {
		dst = append(dst, it.Item())
	}

	return dst
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns the channel that the iterated items are sent on.
// It is closed when the iterator is exhausted or Stop is called.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is already closed, this doesn't need to be called.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration:
//
//	co := CoIterate[T](someTree.InOrderIterator())
//	for v := range co.Items() {
//		... do stuff with v ...
//		if v meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// CoIterate starts a goroutine, which exits when either
// Stop is called or the iterator is exhausted.
// The goroutine is the only caller of the iterator, so the
// underlying tree must not be modified until it has exited.
func CoIterate[T any](iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, i Iterator[T]) {
		defer close(out)
		for i.Next() {
			select {
			case out <- i.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, iterator)

	return co
}
