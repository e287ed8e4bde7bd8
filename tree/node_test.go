package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompleteTree_2Tall() *Node[int] {
	return &Node[int]{
		Left: &Node[int]{
			Left: &Node[int]{
				Value: 1,
			},
			Value: 2,
			Right: &Node[int]{
				Value: 3,
			},
		},
		Value: 4,
		Right: &Node[int]{
			Left: &Node[int]{
				Value: 5,
			},
			Value: 6,
			Right: &Node[int]{
				Value: 7,
			},
		},
	}
}

func TestNewNode(t *testing.T) {
	shared := NodeOf(1)
	cyclic := NodeOf(9)
	cyclic.Left = NodeOf(8)
	cyclic.Left.Right = cyclic

	tests := []struct {
		name        string
		left, right func() *Node[int]
		err         error
	}{
		{
			name:  "leaf",
			left:  func() *Node[int] { return nil },
			right: func() *Node[int] { return nil },
		},
		{
			name:  "two children",
			left:  func() *Node[int] { return NodeOf(1) },
			right: func() *Node[int] { return NodeOf(3) },
		},
		{
			name:  "same child twice",
			left:  func() *Node[int] { return shared },
			right: func() *Node[int] { return shared },
			err:   ErrStructuralMisuse,
		},
		{
			name: "shared grandchild",
			left: func() *Node[int] {
				return &Node[int]{Value: 0, Right: shared}
			},
			right: func() *Node[int] {
				return &Node[int]{Value: 3, Left: shared}
			},
			err: ErrStructuralMisuse,
		},
		{
			name:  "cycle",
			left:  func() *Node[int] { return nil },
			right: func() *Node[int] { return cyclic },
			err:   ErrStructuralMisuse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := tt.left(), tt.right()
			n, err := NewNode(2, l, r)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, n)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 2, n.Value)
			assert.Same(t, l, n.Left)
			assert.Same(t, r, n.Right)
		})
	}
}

func TestNode_MinMax(t *testing.T) {
	n := newCompleteTree_2Tall()

	min, parent := n.Min()
	assert.Equal(t, 1, min.Value)
	assert.Equal(t, 2, parent.Value)

	max, parent := n.Max()
	assert.Equal(t, 7, max.Value)
	assert.Equal(t, 6, parent.Value)

	leaf := NodeOf(10)
	min, parent = leaf.Min()
	assert.Same(t, leaf, min)
	assert.Nil(t, parent)

	var nilNode *Node[int]
	min, parent = nilNode.Min()
	assert.Nil(t, min)
	assert.Nil(t, parent)
}

func TestNode_PredecessorSuccessor(t *testing.T) {
	n := newCompleteTree_2Tall()

	pred, parent := n.Predecessor()
	assert.Equal(t, 3, pred.Value)
	assert.Same(t, n.Left, parent)

	succ, parent := n.Successor()
	assert.Equal(t, 5, succ.Value)
	assert.Same(t, n.Right, parent)

	// direct child is the answer, so the receiver is the parent
	pred, parent = n.Left.Predecessor()
	assert.Equal(t, 1, pred.Value)
	assert.Same(t, n.Left, parent)

	succ, parent = n.Right.Successor()
	assert.Equal(t, 7, succ.Value)
	assert.Same(t, n.Right, parent)

	pred, parent = n.Left.Left.Predecessor()
	assert.Nil(t, pred)
	assert.Nil(t, parent)

	succ, parent = n.Left.Left.Successor()
	assert.Nil(t, succ)
	assert.Nil(t, parent)
}

func TestNode_Height(t *testing.T) {
	var nilNode *Node[int]
	assert.Equal(t, 0, nilNode.Height())
	assert.Equal(t, 1, NodeOf(1).Height())
	assert.Equal(t, 3, newCompleteTree_2Tall().Height())

	dogleg := &Node[int]{Value: 1, Right: &Node[int]{Value: 3, Left: NodeOf(2)}}
	assert.Equal(t, 3, dogleg.Height())
}

func TestCompare(t *testing.T) {
	assert.Equal(t, Less, Compare(1, 2))
	assert.Equal(t, Equal, Compare("a", "a"))
	assert.Equal(t, Greater, Compare(2.5, 1.0))
	assert.Equal(t, "Greater", Greater.String())
	assert.Equal(t, "<invalid tree.Order>", Order(7).String())
}
