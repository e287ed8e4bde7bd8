package chops

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

var _ Iterator[int] = (*sliter)(nil)

type sliter struct {
	s []int
	i int
}

func newSliter(s ...int) *sliter {
	return &sliter{
		s: s,
		i: -1,
	}
}

func (sl *sliter) Next() bool {
	if sl == nil {
		return false
	}
	if sl.i < len(sl.s) {
		sl.i++
	}
	return sl.i < len(sl.s)
}

func (sl *sliter) Item() int {
	return sl.s[sl.i]
}

// recvAll receives from ch until it is closed or timeout elapses.
func recvAll(t *testing.T, ch <-chan int, timeout time.Duration) []int {
	t.Helper()

	var got []int
	deadline := time.After(timeout)
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return got
			}
			got = append(got, v)
		case <-deadline:
			t.Errorf("channel not closed after %v, received %v", timeout, got)
			return got
		}
	}
}

func TestCollect(t *testing.T) {
	assert.Nil(t, Collect[int](nil, nil))
	assert.Equal(t, []int{0, 1, 2, 3}, Collect([]int{0}, newSliter(1, 2, 3)))

	sl := newSliter(4)
	assert.Equal(t, []int{4}, Collect(nil, sl))
	// exhausted iterators stay exhausted
	assert.Empty(t, Collect(nil, sl))
}

func TestCoIterate_Nil(t *testing.T) {
	// This tests that untyped nil pointer can be handled
	co := CoIterate[int](nil)
	_, ok := <-co.Items()
	assert.False(t, ok)
}

func TestCoIterate(t *testing.T) {
	tests := []struct {
		name string
		sl   *sliter
		do   func(t *testing.T, co CoIterator[int])
	}{
		{
			name: "empty",
			do: func(t *testing.T, co CoIterator[int]) {
				assert.Empty(t, recvAll(t, co.Items(), time.Second))
			},
		},
		{
			name: "one",
			sl:   newSliter(1),
			do: func(t *testing.T, co CoIterator[int]) {
				assert.Equal(t, []int{1}, recvAll(t, co.Items(), time.Second))
			},
		},
		{
			name: "many",
			sl:   newSliter(1, 2, 3, 4),
			do: func(t *testing.T, co CoIterator[int]) {
				assert.Equal(t, []int{1, 2, 3, 4}, recvAll(t, co.Items(), time.Second))
			},
		},
		{
			name: "stopping",
			sl:   newSliter(1, 2, 3),
			do: func(t *testing.T, co CoIterator[int]) {
				assert.Equal(t, 1, <-co.Items())
				co.Stop()
				// at most one more item may already be in flight
				rest := recvAll(t, co.Items(), time.Second)
				assert.LessOrEqual(t, len(rest), 1)
				if len(rest) == 1 {
					assert.Equal(t, 2, rest[0])
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var it Iterator[int]
			if tt.sl != nil {
				it = tt.sl
			}
			tt.do(t, CoIterate(it))
			goleak.VerifyNone(t)
		})
	}
}

func TestCoIterate_Concurrent(t *testing.T) {
	s := make([]int, 100)
	for i := range s {
		s[i] = i + 1
	}
	co := CoIterate[int](newSliter(s...))

	barrier := make(chan struct{})
	var once sync.Once
	var wg sync.WaitGroup
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			<-barrier
			for j := range co.Items() {
				if j > 50 {
					once.Do(co.Stop)
				}
			}
		}()
	}

	close(barrier)
	wg.Wait()

	goleak.VerifyNone(t)
}
