package testutils

import (
	"github.com/stretchr/testify/assert"
	"go.lepak.sg/bst/chops"
)

type TestT interface {
	Helper()
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// DrainIterator expects it to yield exactly data, in order,
// and then to stay exhausted.
func DrainIterator[T any](t TestT, data []T, it chops.Iterator[T]) {
	t.Helper()
	t.Logf("draining: expecting %v", data)

	for i, datum := range data {
		if !it.Next() {
			t.Errorf("iterator exhausted early at i=%d, expecting %v", i, datum)
			return
		}
		assert.Equal(t, datum, it.Item(), "i=%d", i)
	}

	if it.Next() {
		t.Errorf("iterator should be exhausted, but yielded: %v", it.Item())
	}
	if it.Next() {
		t.Error("iterator yielded again after being exhausted")
	}
}
