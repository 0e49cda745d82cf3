//go:build unit

package unionfind

import (
	"github.com/gostonefire/collections/crt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestUnionFind_NewUnionFind(t *testing.T) {
	t.Run("every element starts as its own component", func(t *testing.T) {
		// Prepare and Execute
		uf, err := NewUnionFind(5)

		// Check
		assert.NoError(t, err, "create forest")
		assert.Equal(t, 5, uf.Len(), "element count")
		assert.Equal(t, 5, uf.Components(), "component count")

		connected, _ := uf.Connected(0, 1)
		assert.False(t, connected, "no initial connections")
	})

	t.Run("non positive element count returns error", func(t *testing.T) {
		// Prepare and Execute
		_, err := NewUnionFind(0)

		// Check
		assert.Error(t, err, "zero elements rejected")
	})
}

func TestUnionFind_Union(t *testing.T) {
	t.Run("union joins components and reports it", func(t *testing.T) {
		// Prepare
		uf, _ := NewUnionFind(4)

		// Execute
		joined, err := uf.Union(0, 1)

		// Check
		assert.NoError(t, err, "union in range")
		assert.True(t, joined, "components joined")
		assert.Equal(t, 3, uf.Components(), "component count decreased")

		connected, _ := uf.Connected(0, 1)
		assert.True(t, connected, "elements connected")
	})

	t.Run("union within a component reports false", func(t *testing.T) {
		// Prepare
		uf, _ := NewUnionFind(3)
		uf.Union(0, 1)

		// Execute
		joined, err := uf.Union(1, 0)

		// Check
		assert.NoError(t, err, "union in range")
		assert.False(t, joined, "already joined")
		assert.Equal(t, 2, uf.Components(), "component count unchanged")
	})

	t.Run("connectivity is transitive", func(t *testing.T) {
		// Prepare
		uf, _ := NewUnionFind(6)
		uf.Union(0, 1)
		uf.Union(2, 3)

		// Execute
		uf.Union(1, 2)

		// Check
		connected, _ := uf.Connected(0, 3)
		assert.True(t, connected, "chain connected")
		assert.Equal(t, 3, uf.Components(), "two singletons remain apart")

		connected, _ = uf.Connected(0, 4)
		assert.False(t, connected, "singleton still apart")
	})

	t.Run("chained unions end in one component", func(t *testing.T) {
		// Prepare
		uf, _ := NewUnionFind(100)

		// Execute
		for i := 1; i < 100; i++ {
			uf.Union(0, i)
		}

		// Check
		assert.Equal(t, 1, uf.Components(), "all merged")

		connected, _ := uf.Connected(17, 83)
		assert.True(t, connected, "arbitrary pair connected")
	})
}

func TestUnionFind_Find(t *testing.T) {
	t.Run("elements in a component share a root", func(t *testing.T) {
		// Prepare
		uf, _ := NewUnionFind(4)
		uf.Union(0, 1)
		uf.Union(1, 2)

		// Execute
		rootA, errA := uf.Find(0)
		rootB, errB := uf.Find(2)

		// Check
		assert.NoError(t, errA, "find in range")
		assert.NoError(t, errB, "find in range")
		assert.Equal(t, rootA, rootB, "same representative")
	})

	t.Run("element outside the range returns error", func(t *testing.T) {
		// Prepare
		uf, _ := NewUnionFind(3)

		// Execute
		_, err := uf.Find(3)

		// Check
		assert.ErrorIs(t, err, crt.OutOfRange{}, "out of range error")

		_, err = uf.Find(-1)
		assert.ErrorIs(t, err, crt.OutOfRange{}, "out of range error")
	})
}
