package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/bst/testutils"
	"go.lepak.sg/bst/tree"
)

//	      4
//	    /   \
//	   2     6
//	  / \   / \
//	 1   3 5   7
func newCompleteTree_2Tall() *tree.Node[int] {
	return &tree.Node[int]{
		Left: &tree.Node[int]{
			Left: &tree.Node[int]{
				Value: 1,
			},
			Value: 2,
			Right: &tree.Node[int]{
				Value: 3,
			},
		},
		Value: 4,
		Right: &tree.Node[int]{
			Left: &tree.Node[int]{
				Value: 5,
			},
			Value: 6,
			Right: &tree.Node[int]{
				Value: 7,
			},
		},
	}
}

//	        8
//	       / \
//	      5   9
//	     / \
//	    1   7
//	       /
//	      6
func newDogleg() *tree.Node[int] {
	return &tree.Node[int]{
		Left: &tree.Node[int]{
			Left: &tree.Node[int]{
				Value: 1,
			},
			Value: 5,
			Right: &tree.Node[int]{
				Left: &tree.Node[int]{
					Value: 6,
				},
				Value: 7,
			},
		},
		Value: 8,
		Right: &tree.Node[int]{
			Value: 9,
		},
	}
}

// newLeftSpine returns a tree with n nodes where every node
// only has a left child: n, n-1, ..., 1.
func newLeftSpine(n int) *tree.Node[int] {
	var root *tree.Node[int]
	for k := 1; k <= n; k++ {
		root = &tree.Node[int]{Value: k, Left: root}
	}
	return root
}

func TestInOrder(t *testing.T) {
	tests := []struct {
		name       string
		create     func() *tree.Node[int]
		heightHint int
		want       []int
	}{
		{
			name: "empty",
			create: func() *tree.Node[int] {
				return nil
			},
		},
		{
			name: "one",
			create: func() *tree.Node[int] {
				return tree.NodeOf(1)
			},
			want: []int{1},
		},
		{
			name:       "height=2",
			create:     newCompleteTree_2Tall,
			heightHint: 2,
			want:       []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:       "dogleg",
			create:     newDogleg,
			heightHint: 3,
			want:       []int{1, 5, 6, 7, 8, 9},
		},
		{
			name: "left spine",
			create: func() *tree.Node[int] {
				return newLeftSpine(5)
			},
			want: []int{1, 2, 3, 4, 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutils.DrainIterator[int](t, tt.want, NewInOrder(tt.create(), tt.heightHint))
		})
	}
}

func TestInOrder_Nil(t *testing.T) {
	var i *InOrder[int]
	assert.False(t, i.Next())
}

func TestInOrder_Deep(t *testing.T) {
	// deep enough that a recursive walk would be a bad idea
	const depth = 100000
	i := NewInOrder(newLeftSpine(depth), 0)

	count := 0
	for i.Next() {
		count++
		if i.Item() != count {
			t.Fatalf("item %d: got %d", count, i.Item())
		}
	}
	assert.Equal(t, depth, count)
}

func TestInOrder_Interleaved(t *testing.T) {
	root := newDogleg()
	a, b := NewInOrder(root, 0), NewInOrder(root, 0)

	var gotA, gotB []int
	// b runs two steps for every step of a
	for {
		moreA := a.Next()
		if moreA {
			gotA = append(gotA, a.Item())
		}
		moreB := false
		for k := 0; k < 2; k++ {
			if b.Next() {
				moreB = true
				gotB = append(gotB, b.Item())
			}
		}
		if !moreA && !moreB {
			break
		}
	}

	want := []int{1, 5, 6, 7, 8, 9}
	assert.Equal(t, want, gotA)
	assert.Equal(t, want, gotB)
}
