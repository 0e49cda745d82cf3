//go:build unit

package deque

import (
	"github.com/gostonefire/collections/crt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCircularDeque_PushPop(t *testing.T) {
	t.Run("push back pop front behaves as FIFO", func(t *testing.T) {
		// Prepare
		d := NewCircularDeque[int]()
		for _, v := range []int{1, 2, 3} {
			d.PushBack(v)
		}

		// Execute and Check
		for _, want := range []int{1, 2, 3} {
			item, err := d.PopFront()
			assert.NoError(t, err, "pop front on populated deque")
			assert.Equal(t, want, item, "FIFO order")
		}
	})

	t.Run("push front pop front behaves as LIFO", func(t *testing.T) {
		// Prepare
		d := NewCircularDeque[int]()
		for _, v := range []int{1, 2, 3} {
			d.PushFront(v)
		}

		// Execute and Check
		for _, want := range []int{3, 2, 1} {
			item, err := d.PopFront()
			assert.NoError(t, err, "pop front on populated deque")
			assert.Equal(t, want, item, "LIFO order")
		}
	})

	t.Run("pop from empty deque returns error", func(t *testing.T) {
		// Prepare
		d := NewCircularDeque[int]()

		// Execute
		_, errFront := d.PopFront()
		_, errBack := d.PopBack()

		// Check
		assert.ErrorIs(t, errFront, crt.EmptyContainer{}, "empty container error on front")
		assert.ErrorIs(t, errBack, crt.EmptyContainer{}, "empty container error on back")
	})
}

func TestCircularDeque_Resize(t *testing.T) {
	t.Run("buffer grows when full and keeps order", func(t *testing.T) {
		// Prepare
		d := NewCircularDeque[int]()
		input := make([]int, 0, 20)
		for i := 0; i < 20; i++ {
			d.PushBack(i)
			input = append(input, i)
		}

		// Execute
		values := d.Values()

		// Check
		assert.Equal(t, input, values, "order preserved over resize")
		assert.GreaterOrEqual(t, d.Cap(), 20, "capacity grew")
	})

	t.Run("buffer shrinks when sparse", func(t *testing.T) {
		// Prepare
		d := NewCircularDeque[int]()
		for i := 0; i < 64; i++ {
			d.PushBack(i)
		}
		grown := d.Cap()

		// Execute
		for i := 0; i < 60; i++ {
			_, _ = d.PopFront()
		}

		// Check
		assert.Less(t, d.Cap(), grown, "capacity shrank")
		assert.Equal(t, []int{60, 61, 62, 63}, d.Values(), "remaining items intact")
	})

	t.Run("never shrinks below default capacity", func(t *testing.T) {
		// Prepare
		d := NewCircularDeque[int]()
		d.PushBack(1)

		// Execute
		_, _ = d.PopFront()

		// Check
		assert.Equal(t, 8, d.Cap(), "default capacity floor")
	})
}

func TestCircularDeque_FrontBack(t *testing.T) {
	t.Run("front and back do not remove items", func(t *testing.T) {
		// Prepare
		d := NewCircularDeque[string]()
		d.PushBack("a")
		d.PushBack("b")

		// Execute
		front, errF := d.Front()
		back, errB := d.Back()

		// Check
		assert.NoError(t, errF, "front on populated deque")
		assert.NoError(t, errB, "back on populated deque")
		assert.Equal(t, "a", front, "front item")
		assert.Equal(t, "b", back, "rear item")
		assert.Equal(t, 2, d.Len(), "length unchanged")
	})

	t.Run("front and back on empty deque return error", func(t *testing.T) {
		// Prepare
		d := NewCircularDeque[string]()

		// Execute
		_, errF := d.Front()
		_, errB := d.Back()

		// Check
		assert.ErrorIs(t, errF, crt.EmptyContainer{}, "empty container error on front")
		assert.ErrorIs(t, errB, crt.EmptyContainer{}, "empty container error on back")
	})
}

func TestCircularDeque_MixedEnds(t *testing.T) {
	t.Run("pushes at both ends interleave correctly", func(t *testing.T) {
		// Prepare
		d := NewCircularDeque[int]()

		// Execute
		d.PushBack(2)
		d.PushFront(1)
		d.PushBack(3)
		d.PushFront(0)

		// Check
		assert.Equal(t, []int{0, 1, 2, 3}, d.Values(), "both ends merged in order")

		item, _ := d.PopBack()
		assert.Equal(t, 3, item, "pop back takes rear")
		item, _ = d.PopFront()
		assert.Equal(t, 0, item, "pop front takes front")
	})
}
