package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/bst/testutils"
)

func TestMethod_String(t *testing.T) {
	var zero Method
	assert.Equal(t, InOrderMethod, zero)
	assert.Equal(t, "inorder", InOrderMethod.String())
	assert.Equal(t, "preorder", PreOrderMethod.String())
	assert.Equal(t, "postorder", PostOrderMethod.String())
	assert.Equal(t, "reverse", InOrderReverseMethod.String())
	assert.Equal(t, "<invalid iterator.Method>", Method(-1).String())
	assert.False(t, Method(4).Valid())
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
		err  bool
	}{
		{in: "inorder", want: InOrderMethod},
		{in: "In-Order", want: InOrderMethod},
		{in: "pre_order", want: PreOrderMethod},
		{in: "PostOrder", want: PostOrderMethod},
		{in: "reverse", want: InOrderReverseMethod},
		{in: "levelorder", err: true},
		{in: "", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseMethod(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, ErrUnknownMethod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
			assert.Equal(t, tt.want.String(), m.String())
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		method Method
		want   []int
	}{
		{method: InOrderMethod, want: []int{1, 2, 3, 4, 5, 6, 7}},
		{method: PreOrderMethod, want: []int{4, 2, 1, 3, 6, 5, 7}},
		{method: PostOrderMethod, want: []int{1, 3, 2, 5, 7, 6, 4}},
		{method: InOrderReverseMethod, want: []int{7, 6, 5, 4, 3, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			i, err := New(newCompleteTree_2Tall(), tt.method, 2)
			require.NoError(t, err)
			testutils.DrainIterator[int](t, tt.want, i)
		})
	}

	i, err := New(newCompleteTree_2Tall(), Method(42), 0)
	assert.ErrorIs(t, err, ErrUnknownMethod)
	assert.Nil(t, i)
}
