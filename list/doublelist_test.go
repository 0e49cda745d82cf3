//go:build unit

package list

import (
	"github.com/gostonefire/collections/crt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDoubleList_AppendPrepend(t *testing.T) {
	t.Run("append and prepend keep order at both ends", func(t *testing.T) {
		// Prepare
		l := NewDoubleList[int]()

		// Execute
		l.Append(2)
		l.Append(3)
		l.Prepend(1)

		// Check
		assert.Equal(t, []int{1, 2, 3}, l.Values(), "head to tail order")
		assert.Equal(t, []int{3, 2, 1}, l.ReversedValues(), "tail to head order")
		assert.Equal(t, 3, l.Len(), "length follows inserts")
	})
}

func TestDoubleList_Get(t *testing.T) {
	t.Run("get walks from the nearer end", func(t *testing.T) {
		// Prepare
		l := NewDoubleList[int]()
		for i := 0; i < 10; i++ {
			l.Append(i * 10)
		}

		// Execute
		near, errNear := l.Get(1)
		far, errFar := l.Get(8)

		// Check
		assert.NoError(t, errNear, "index near head")
		assert.NoError(t, errFar, "index near tail")
		assert.Equal(t, 10, near, "correct data near head")
		assert.Equal(t, 80, far, "correct data near tail")
	})

	t.Run("index outside range returns error", func(t *testing.T) {
		// Prepare
		l := NewDoubleList[int]()

		// Execute
		_, err := l.Get(0)

		// Check
		assert.ErrorIs(t, err, crt.OutOfRange{}, "out of range error")
	})
}

func TestDoubleList_Set(t *testing.T) {
	t.Run("set replaces data in place", func(t *testing.T) {
		// Prepare
		l := NewDoubleList[string]()
		l.Append("a")
		l.Append("b")

		// Execute
		err := l.Set(1, "B")

		// Check
		assert.NoError(t, err, "index within range")
		assert.Equal(t, []string{"a", "B"}, l.Values(), "data replaced")
	})
}

func TestDoubleList_RemoveAt(t *testing.T) {
	t.Run("removing middle node relinks both directions", func(t *testing.T) {
		// Prepare
		l := NewDoubleList[int]()
		for _, v := range []int{1, 2, 3} {
			l.Append(v)
		}

		// Execute
		item, err := l.RemoveAt(1)

		// Check
		assert.NoError(t, err, "index within range")
		assert.Equal(t, 2, item, "removed data returned")
		assert.Equal(t, []int{1, 3}, l.Values(), "forward chain intact")
		assert.Equal(t, []int{3, 1}, l.ReversedValues(), "backward chain intact")
	})

	t.Run("removing head and tail repoints ends", func(t *testing.T) {
		// Prepare
		l := NewDoubleList[int]()
		for _, v := range []int{1, 2, 3} {
			l.Append(v)
		}

		// Execute
		_, _ = l.RemoveAt(0)
		_, _ = l.RemoveAt(l.Len() - 1)

		// Check
		assert.Equal(t, []int{2}, l.Values(), "only middle item left")
	})

	t.Run("removing the only node empties the list", func(t *testing.T) {
		// Prepare
		l := NewDoubleList[int]()
		l.Append(1)

		// Execute
		_, err := l.RemoveAt(0)

		// Check
		assert.NoError(t, err, "index within range")
		assert.True(t, l.IsEmpty(), "list empty")
	})
}

func TestDoubleList_Contains(t *testing.T) {
	t.Run("finds present item and misses absent", func(t *testing.T) {
		// Prepare
		l := NewDoubleList[int]()
		l.Append(1)
		l.Append(2)

		// Execute and Check
		assert.True(t, l.Contains(2), "present item found")
		assert.False(t, l.Contains(3), "absent item not found")
	})
}

func TestDoubleList_String(t *testing.T) {
	t.Run("string shows linked items", func(t *testing.T) {
		// Prepare
		l := NewDoubleList[int]()
		l.Append(1)
		l.Append(2)

		// Execute
		str := l.String()

		// Check
		assert.Equal(t, "[1 <-> 2]", str, "double list representation")
	})
}
