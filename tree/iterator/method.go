package iterator

import (
	"errors"
	"fmt"
	"strings"

	"go.lepak.sg/bst/tree"
)

// ErrUnknownMethod is returned for a Method that is not one
// of the constants below.
var ErrUnknownMethod = errors.New("unknown traversal method")

// Method selects a traversal order.
// The zero Method is InOrderMethod.
type Method int

const (
	InOrderMethod Method = iota
	PreOrderMethod
	PostOrderMethod
	InOrderReverseMethod
)

var methodNames = [...]string{
	InOrderMethod:        "inorder",
	PreOrderMethod:       "preorder",
	PostOrderMethod:      "postorder",
	InOrderReverseMethod: "reverse",
}

func (m Method) String() string {
	if !m.Valid() {
		return "<invalid iterator.Method>"
	}
	return methodNames[m]
}

// Valid reports whether m is one of the known methods.
func (m Method) Valid() bool {
	return m >= 0 && int(m) < len(methodNames)
}

// ParseMethod is the inverse of Method.String.
// Case and the separators "-" and "_" are ignored, so
// "in-order" and "PreOrder" are also accepted.
func ParseMethod(s string) (Method, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
	for m, name := range methodNames {
		if norm == name {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// New returns an iterator of the given method over the tree rooted at root.
// heightHint is passed through to the iterator constructor.
func New[T any](root *tree.Node[T], m Method, heightHint int) (Iterator[T], error) {
	switch m {
	case InOrderMethod:
		return NewInOrder(root, heightHint), nil
	case PreOrderMethod:
		return NewPreOrder(root, heightHint), nil
	case PostOrderMethod:
		return NewPostOrder(root, heightHint), nil
	case InOrderReverseMethod:
		return NewInOrderReverse(root, heightHint), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}
