package binary

import (
	"go.lepak.sg/bst/tree/iterator"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Set is an ordered set on top of Tree.
// It caches the number of keys, and it picks the removal strategy
// itself: every call to Remove flips between BySuccessor and
// ByPredecessor, so that a long run of removals doesn't keep
// pulling keys up from the same side.
//
// Like Tree, a Set is not safe for concurrent writes.
type Set[T constraints.Ordered] struct {
	tree   Tree[T]
	count  int
	next   Strategy
	logger *zap.Logger
}

type SetOption[T constraints.Ordered] func(s *Set[T])

// WithLogger makes the Set log its removals at debug level.
func WithLogger[T constraints.Ordered](logger *zap.Logger) SetOption[T] {
	return func(s *Set[T]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStartStrategy sets the strategy of the first Remove.
// The default is BySuccessor.
func WithStartStrategy[T constraints.Ordered](strategy Strategy) SetOption[T] {
	return func(s *Set[T]) {
		s.next = strategy
	}
}

func NewSet[T constraints.Ordered](opts ...SetOption[T]) *Set[T] {
	s := &Set[T]{
		next:   BySuccessor,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Add adds k to the set. It returns false if k was already there.
func (s *Set[T]) Add(k T) bool {
	if !s.tree.Insert(k) {
		return false
	}
	s.count++
	return true
}

func (s *Set[T]) Contains(k T) bool {
	return s.tree.Contains(k)
}

// Remove removes k from the set. It returns false if k was not there.
// The strategy flips on every call, whether or not k was found.
func (s *Set[T]) Remove(k T) bool {
	strategy := s.next
	s.next = s.next.Other()

	return s.RemoveWith(k, strategy)
}

// RemoveWith removes k with the given strategy,
// leaving the alternation of Remove alone.
func (s *Set[T]) RemoveWith(k T, strategy Strategy) bool {
	ok := s.tree.Remove(k, strategy)
	if ok {
		s.count--
	}

	s.logger.Debug("remove",
		zap.Any("key", k),
		zap.Stringer("strategy", strategy),
		zap.Bool("removed", ok),
		zap.Int("count", s.count),
	)

	return ok
}

// NextStrategy returns the strategy the next Remove will use.
func (s *Set[T]) NextStrategy() Strategy {
	return s.next
}

// Count returns the number of keys in the set in O(1).
func (s *Set[T]) Count() int {
	return s.count
}

func (s *Set[T]) IsEmpty() bool {
	return s.count == 0
}

// Clear removes every key. The strategy alternation carries on.
func (s *Set[T]) Clear() {
	s.tree = Tree[T]{}
	s.count = 0
}

// CopyInto copies the keys into dst from dst[offset] in ascending order.
func (s *Set[T]) CopyInto(dst []T, offset int) (int, error) {
	return s.tree.CopyInto(dst, offset, iterator.InOrderMethod)
}

// Items returns an iterator over the keys in ascending order.
func (s *Set[T]) Items() *iterator.InOrder[T] {
	return s.tree.InOrderIterator()
}

// ToSlice returns the keys in ascending order.
func (s *Set[T]) ToSlice() []T {
	// in-order never fails
	keys, _ := s.tree.ToSlice(iterator.InOrderMethod)
	return keys
}

// Traverse returns an iterator over the keys in the order selected by m.
func (s *Set[T]) Traverse(m iterator.Method) (iterator.Iterator[T], error) {
	return s.tree.Iterator(m)
}

// Height reports the height of the underlying tree, see Tree.Height.
func (s *Set[T]) Height() (actual, ideal int) {
	return s.tree.root.Height(), idealHeight(s.count)
}

func (s *Set[T]) String() string {
	return s.tree.String()
}
