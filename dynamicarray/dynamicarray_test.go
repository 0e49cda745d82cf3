//go:build unit

package dynamicarray

import (
	"github.com/gostonefire/collections/crt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDynamicArray_Append(t *testing.T) {
	t.Run("append grows capacity by doubling", func(t *testing.T) {
		// Prepare
		a := NewDynamicArray[int]()
		assert.Equal(t, 1, a.Cap(), "initial capacity is one")

		// Execute
		for i := 0; i < 5; i++ {
			a.Append(i)
		}

		// Check
		assert.Equal(t, 5, a.Len(), "length follows appends")
		assert.Equal(t, 8, a.Cap(), "capacity doubled to 8")
		assert.Equal(t, []int{0, 1, 2, 3, 4}, a.Values(), "insertion order kept")
	})
}

func TestDynamicArray_Get(t *testing.T) {
	t.Run("positive and negative indices address the same items", func(t *testing.T) {
		// Prepare
		a := NewDynamicArray[int]()
		for _, v := range []int{10, 20, 30} {
			a.Append(v)
		}

		// Execute
		first, errFirst := a.Get(0)
		last, errLast := a.Get(-1)

		// Check
		assert.NoError(t, errFirst, "positive index within range")
		assert.NoError(t, errLast, "negative index within range")
		assert.Equal(t, 10, first, "first item")
		assert.Equal(t, 30, last, "last item via negative index")
	})

	t.Run("index outside range returns error", func(t *testing.T) {
		// Prepare
		a := NewDynamicArray[int]()
		a.Append(1)

		// Execute
		_, errHigh := a.Get(1)
		_, errLow := a.Get(-2)

		// Check
		assert.ErrorIs(t, errHigh, crt.OutOfRange{}, "high index rejected")
		assert.ErrorIs(t, errLow, crt.OutOfRange{}, "low index rejected")
	})
}

func TestDynamicArray_Set(t *testing.T) {
	t.Run("set replaces item in place", func(t *testing.T) {
		// Prepare
		a := NewDynamicArray[string]()
		a.Append("a")
		a.Append("b")

		// Execute
		err := a.Set(-1, "B")

		// Check
		assert.NoError(t, err, "index within range")
		assert.Equal(t, []string{"a", "B"}, a.Values(), "item replaced")
	})

	t.Run("set outside range returns error", func(t *testing.T) {
		// Prepare
		a := NewDynamicArray[string]()

		// Execute
		err := a.Set(0, "x")

		// Check
		assert.ErrorIs(t, err, crt.OutOfRange{}, "out of range error")
	})
}

func TestDynamicArray_InsertAt(t *testing.T) {
	t.Run("insert shifts later items right", func(t *testing.T) {
		// Prepare
		a := NewDynamicArray[int]()
		a.Append(1)
		a.Append(3)

		// Execute
		err := a.InsertAt(1, 2)

		// Check
		assert.NoError(t, err, "insert within range")
		assert.Equal(t, []int{1, 2, 3}, a.Values(), "items shifted")
	})

	t.Run("insert at length appends", func(t *testing.T) {
		// Prepare
		a := NewDynamicArray[int]()
		a.Append(1)

		// Execute
		err := a.InsertAt(1, 2)

		// Check
		assert.NoError(t, err, "insert at end")
		assert.Equal(t, []int{1, 2}, a.Values(), "appended")
	})
}

func TestDynamicArray_RemoveAt(t *testing.T) {
	t.Run("remove shifts later items left", func(t *testing.T) {
		// Prepare
		a := NewDynamicArray[int]()
		for _, v := range []int{1, 2, 3} {
			a.Append(v)
		}

		// Execute
		item, err := a.RemoveAt(1)

		// Check
		assert.NoError(t, err, "index within range")
		assert.Equal(t, 2, item, "removed item returned")
		assert.Equal(t, []int{1, 3}, a.Values(), "items shifted left")
	})

	t.Run("capacity shrinks when sparse", func(t *testing.T) {
		// Prepare
		a := NewDynamicArray[int]()
		for i := 0; i < 16; i++ {
			a.Append(i)
		}
		grown := a.Cap()

		// Execute
		for i := 0; i < 13; i++ {
			_, _ = a.RemoveAt(a.Len() - 1)
		}

		// Check
		assert.Less(t, a.Cap(), grown, "capacity shrank")
		assert.Equal(t, []int{0, 1, 2}, a.Values(), "remaining items intact")
	})
}
