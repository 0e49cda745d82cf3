//go:build unit

package deque

import (
	"github.com/gostonefire/collections/crt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDeque_PushFront(t *testing.T) {
	t.Run("push front places item first", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()
		d.PushBack(2)

		// Execute
		d.PushFront(1)

		// Check
		front, err := d.Front()
		assert.NoError(t, err, "front on populated deque")
		assert.Equal(t, 1, front, "pushed item at front")
		assert.Equal(t, 2, d.Len(), "length follows pushes")
	})
}

func TestDeque_PushBack(t *testing.T) {
	t.Run("push back places item last", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()
		d.PushBack(1)

		// Execute
		d.PushBack(2)

		// Check
		back, err := d.Back()
		assert.NoError(t, err, "back on populated deque")
		assert.Equal(t, 2, back, "pushed item at rear")
	})
}

func TestDeque_PopFront(t *testing.T) {
	t.Run("pop front returns items front to rear", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()
		for _, v := range []int{1, 2, 3} {
			d.PushBack(v)
		}

		// Execute and Check
		for _, want := range []int{1, 2, 3} {
			item, err := d.PopFront()
			assert.NoError(t, err, "pop front on populated deque")
			assert.Equal(t, want, item, "front to rear order")
		}
		assert.True(t, d.IsEmpty(), "deque drained")
	})

	t.Run("pop front from empty deque returns error", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()

		// Execute
		_, err := d.PopFront()

		// Check
		assert.ErrorIs(t, err, crt.EmptyContainer{}, "empty container error")
	})

	t.Run("pop front of last item resets both ends", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()
		d.PushBack(1)

		// Execute
		_, _ = d.PopFront()

		// Check
		assert.True(t, d.IsEmpty(), "deque empty")
		_, err := d.Back()
		assert.ErrorIs(t, err, crt.EmptyContainer{}, "rear gone as well")
	})
}

func TestDeque_PopBack(t *testing.T) {
	t.Run("pop back returns items rear to front", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()
		for _, v := range []int{1, 2, 3} {
			d.PushBack(v)
		}

		// Execute and Check
		for _, want := range []int{3, 2, 1} {
			item, err := d.PopBack()
			assert.NoError(t, err, "pop back on populated deque")
			assert.Equal(t, want, item, "rear to front order")
		}
	})

	t.Run("pop back from empty deque returns error", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()

		// Execute
		_, err := d.PopBack()

		// Check
		assert.ErrorIs(t, err, crt.EmptyContainer{}, "empty container error")
	})
}

func TestDeque_At(t *testing.T) {
	t.Run("positive index addresses from the front", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()
		for _, v := range []int{10, 20, 30} {
			d.PushBack(v)
		}

		// Execute
		item, err := d.At(1)

		// Check
		assert.NoError(t, err, "index within range")
		assert.Equal(t, 20, item, "correct item")
	})

	t.Run("negative index addresses from the rear", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()
		for _, v := range []int{10, 20, 30} {
			d.PushBack(v)
		}

		// Execute
		item, err := d.At(-1)

		// Check
		assert.NoError(t, err, "index within range")
		assert.Equal(t, 30, item, "rear item")
	})

	t.Run("index outside range returns error", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()
		d.PushBack(10)

		// Execute
		_, err := d.At(1)

		// Check
		assert.ErrorIs(t, err, crt.OutOfRange{}, "out of range error")
	})
}

func TestDeque_Contains(t *testing.T) {
	t.Run("finds present item and misses absent", func(t *testing.T) {
		// Prepare
		d := NewDeque[string]()
		d.PushBack("a")
		d.PushBack("b")

		// Execute and Check
		assert.True(t, d.Contains("b"), "present item found")
		assert.False(t, d.Contains("c"), "absent item not found")
	})
}

func TestDeque_Reversed(t *testing.T) {
	t.Run("reversed walks rear to front", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()
		for _, v := range []int{1, 2, 3} {
			d.PushBack(v)
		}

		// Execute
		values := d.Reversed()

		// Check
		assert.Equal(t, []int{3, 2, 1}, values, "rear to front order")
	})
}

func TestDeque_Equal(t *testing.T) {
	t.Run("deques with same items in same order are equal", func(t *testing.T) {
		// Prepare
		a := NewDeque[int]()
		b := NewDeque[int]()
		for _, v := range []int{1, 2, 3} {
			a.PushBack(v)
			b.PushBack(v)
		}

		// Execute and Check
		assert.True(t, a.Equal(b), "equal deques")

		b.PushBack(4)
		assert.False(t, a.Equal(b), "different lengths unequal")
	})
}

func TestDeque_Clear(t *testing.T) {
	t.Run("clear empties the deque", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()
		d.PushBack(1)
		d.PushFront(0)

		// Execute
		d.Clear()

		// Check
		assert.True(t, d.IsEmpty(), "deque empty after clear")
		assert.Equal(t, 0, d.Len(), "zero length after clear")
	})
}

func TestDeque_String(t *testing.T) {
	t.Run("string shows front to rear", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()
		d.PushBack(1)
		d.PushBack(2)

		// Execute
		str := d.String()

		// Check
		assert.Equal(t, "Deque([front: 1, 2 :rear])", str, "front to rear representation")
	})
}
