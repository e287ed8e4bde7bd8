package binary

import (
	"fmt"
	"math/bits"
	"strings"

	"go.lepak.sg/bst/chops"
	"go.lepak.sg/bst/tree"
	"go.lepak.sg/bst/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting, removing).
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} when creating one).
//
// This tree is not self-balancing: every operation is O(height).
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than N.Value
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than N.Value
//   - For every possible key, there will be at most one node with that key
//     in the tree (No duplicates allowed)
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root *tree.Node[T]
}

// Instead of using constraints.Ordered, I also considered using
// interface[T any] { CompareTo(T) int } (forgive the syntax).
// This allows T to mutate, for example if we defined:
//	type IntPtr *int
// and then implemented:
//	func (ip IntPtr) CompareTo(ip2 IntPtr) int {
//		return (*ip2)-(*ip)
//	}
// client code could mutate *IntPtr at any time, ruining our tree invariants.
// This is probably not ideal.

// location is the result of walking down the tree looking for a key.
// If found, node holds the key. Either way, parent is the last node
// visited before node (nil at the root), and wentLeft tells which of
// parent's child slots node occupies, or would occupy.
type location[T any] struct {
	node, parent *tree.Node[T]
	wentLeft     bool
	found        bool
}

// locate is the one place where the tree is searched.
func (t *Tree[T]) locate(k T) (loc location[T]) {
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Value) {
		case tree.Less:
			loc.parent, loc.wentLeft = n, true
			n = n.Left
		case tree.Greater:
			loc.parent, loc.wentLeft = n, false
			n = n.Right
		case tree.Equal:
			loc.node, loc.found = n, true
			return
		default:
			panic("unreachable")
		}
	}

	return
}

// relink points the child slot described by parent and wentLeft at n.
// A nil parent means the slot is the root.
func (t *Tree[T]) relink(parent *tree.Node[T], wentLeft bool, n *tree.Node[T]) {
	switch {
	case parent == nil:
		t.root = n
	case wentLeft:
		parent.Left = n
	default:
		parent.Right = n
	}
}

// IsEmpty returns true if there are no keys in the tree.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	return t.locate(k).found
}

// Find returns the key stored in the tree that is equal to k.
func (t *Tree[T]) Find(k T) (v T, ok bool) {
	loc := t.locate(k)
	if !loc.found {
		return
	}

	return loc.node.Value, true
}

// ParentOf returns the key of the parent of the node holding k.
// ok is false if k is not in the tree, or if k is at the root.
func (t *Tree[T]) ParentOf(k T) (p T, ok bool) {
	loc := t.locate(k)
	if !loc.found || loc.parent == nil {
		return
	}

	return loc.parent.Value, true
}

// Insert inserts k into the binary tree.
// If k is already in the tree, Insert returns false
// and leaves the tree untouched.
func (t *Tree[T]) Insert(k T) bool {
	loc := t.locate(k)
	if loc.found {
		return false
	}

	if loc.parent != nil {
		if loc.wentLeft && loc.parent.Left != nil ||
			!loc.wentLeft && loc.parent.Right != nil {
			panic("impossible")
		}
	}

	t.relink(loc.parent, loc.wentLeft, tree.NodeOf(k))

	return true
}

// Min returns the smallest key in the tree.
func (t *Tree[T]) Min() (k T, ok bool) {
	n, _ := t.root.Min()
	if n == nil {
		return
	}

	return n.Value, true
}

// Max returns the largest key in the tree.
func (t *Tree[T]) Max() (k T, ok bool) {
	n, _ := t.root.Max()
	if n == nil {
		return
	}

	return n.Value, true
}

// Predecessor returns the largest key in the left subtree of the node
// holding k. ok is false if k is not in the tree or that node has no
// left child. Use Less to find the next smaller key anywhere in the tree.
func (t *Tree[T]) Predecessor(k T) (p T, ok bool) {
	loc := t.locate(k)
	if !loc.found {
		return
	}

	pred, _ := loc.node.Predecessor()
	if pred == nil {
		return
	}

	return pred.Value, true
}

// Successor returns the smallest key in the right subtree of the node
// holding k. ok is false if k is not in the tree or that node has no
// right child. Use Greater to find the next larger key anywhere in the tree.
func (t *Tree[T]) Successor(k T) (s T, ok bool) {
	loc := t.locate(k)
	if !loc.found {
		return
	}

	succ, _ := loc.node.Successor()
	if succ == nil {
		return
	}

	return succ.Value, true
}

// Less returns the largest key in the tree
// that is less than k. k does not have to be in the tree.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// There are no parent pointers to climb back up,
	// so remember the last node where the walk turned right:
	// that is the closest smaller ancestor.
	var less *tree.Node[T]
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Value) {
		case tree.Less, tree.Equal:
			n = n.Left
		case tree.Greater:
			less, n = n, n.Right
		default:
			panic("unreachable")
		}
	}

	if less == nil {
		return
	}

	return less.Value, true
}

// Greater returns the smallest key in the tree
// that is greater than k. k does not have to be in the tree.
// If there is no key in the tree greater than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Greater(k T) (p T, ok bool) {
	var greater *tree.Node[T]
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Value) {
		case tree.Greater, tree.Equal:
			n = n.Right
		case tree.Less:
			greater, n = n, n.Left
		default:
			panic("unreachable")
		}
	}

	if greater == nil {
		return
	}

	return greater.Value, true
}

// Count returns the number of keys in the tree.
// It walks the whole tree, so it is O(n).
func (t *Tree[T]) Count() int {
	count := 0
	for i := t.InOrderIterator(); i.Next(); {
		count++
	}
	return count
}

// Height returns the actual height of the tree, along with the
// smallest height that a tree with the same number of keys could have.
func (t *Tree[T]) Height() (actual, ideal int) {
	return t.root.Height(), idealHeight(t.Count())
}

// idealHeight is the height of a complete tree with n keys.
func idealHeight(n int) int {
	return bits.Len(uint(n))
}

// Balanced returns true if the tree is as short as it can be.
func (t *Tree[T]) Balanced() bool {
	actual, ideal := t.Height()
	return actual == ideal
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	visit[T](t.InOrderIterator(), f)
}

// PreOrder applies f to each key in the tree pre-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	visit[T](t.PreOrderIterator(), f)
}

// PostOrder applies f to each key in the tree post-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PostOrder(f func(k T) bool) {
	visit[T](t.PostOrderIterator(), f)
}

func visit[T any](i iterator.Iterator[T], f func(k T) bool) {
	// Compare this to the classic recursive walk: the iterator keeps
	// its own stack, so arbitrarily deep trees are fine.
	for i.Next() {
		if !f(i.Item()) {
			return
		}
	}
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) InOrderCoroutine() chops.CoIterator[T] {
	return chops.CoIterate[T](t.InOrderIterator())
}

// Iterator returns an iterator object that yields keys
// from the tree in the order selected by m.
func (t *Tree[T]) Iterator(m iterator.Method) (iterator.Iterator[T], error) {
	i, err := iterator.New(t.root, m, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return i, nil
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order, which is ascending.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root, 0)
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree in descending order.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root, 0)
}

// PreOrderIterator returns an iterator object that yields
// keys from the tree pre-order.
func (t *Tree[T]) PreOrderIterator() *iterator.PreOrder[T] {
	return iterator.NewPreOrder(t.root, 0)
}

// PostOrderIterator returns an iterator object that yields
// keys from the tree post-order.
func (t *Tree[T]) PostOrderIterator() *iterator.PostOrder[T] {
	return iterator.NewPostOrder(t.root, 0)
}

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T any](
	sb *strings.Builder, n *tree.Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Value))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
