//go:build stress

package test

import (
	"fmt"
	"github.com/gostonefire/collections/crt"
	"github.com/gostonefire/collections/hashtable"
	"github.com/gostonefire/collections/heap"
	"github.com/gostonefire/collections/priorityqueue"
	"github.com/gostonefire/collections/unionfind"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"sort"
	"testing"
)

const (
	nOperations = 100000
	keySpace    = 5000
)

func TestStress_HashMap(t *testing.T) {
	t.Run("random operations agree with the runtime map", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(1))
		m, err := hashtable.NewHashMap[int, int](16)
		assert.NoError(t, err, "create HashMap")
		oracle := make(map[int]int)

		// Execute
		for i := 0; i < nOperations; i++ {
			key := rnd.Intn(keySpace)
			switch rnd.Intn(3) {
			case 0, 1:
				m.Put(key, i)
				oracle[key] = i
			case 2:
				_, inOracle := oracle[key]
				removed := m.Remove(key)
				assert.Equal(t, inOracle, removed, fmt.Sprintf("remove agreement for key %d", key))
				delete(oracle, key)
			}
		}

		// Check
		assert.Equal(t, len(oracle), m.Len(), "record count agreement")
		for key, want := range oracle {
			value, err := m.Get(key)
			assert.NoError(t, err, fmt.Sprintf("get key %d", key))
			assert.Equal(t, want, value, fmt.Sprintf("value agreement for key %d", key))
		}
	})
}

func TestStress_OpenHashMap(t *testing.T) {
	t.Run("random operations agree with the runtime map", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(2))
		m, err := hashtable.NewOpenHashMap[int, int](16)
		assert.NoError(t, err, "create OpenHashMap")
		oracle := make(map[int]int)

		// Execute
		for i := 0; i < nOperations; i++ {
			key := rnd.Intn(keySpace)
			switch rnd.Intn(3) {
			case 0, 1:
				m.Put(key, i)
				oracle[key] = i
			case 2:
				_, inOracle := oracle[key]
				removed := m.Remove(key)
				assert.Equal(t, inOracle, removed, fmt.Sprintf("remove agreement for key %d", key))
				delete(oracle, key)
			}
		}

		// Check
		assert.Equal(t, len(oracle), m.Len(), "record count agreement")
		for key, want := range oracle {
			value, err := m.Get(key)
			assert.NoError(t, err, fmt.Sprintf("get key %d past tombstones", key))
			assert.Equal(t, want, value, fmt.Sprintf("value agreement for key %d", key))
		}
	})
}

func TestStress_MinHeap(t *testing.T) {
	t.Run("draining the heap is a full sort", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(3))
		input := make([]int, nOperations)
		h := heap.NewMinHeap[int]()
		for i := range input {
			input[i] = rnd.Int()
			h.Insert(input[i])
		}
		sort.Ints(input)

		// Execute
		output := make([]int, 0, len(input))
		for !h.IsEmpty() {
			value, err := h.Extract()
			assert.NoError(t, err, "extract on populated heap")
			output = append(output, value)
		}

		// Check
		assert.Equal(t, input, output, "extraction order agreement")
	})
}

func TestStress_PriorityQueue(t *testing.T) {
	t.Run("pops come in priority order after heavy churn", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(4))
		q := priorityqueue.NewPriorityQueue[int]()
		oracle := make(map[int]float64)

		// Execute
		for i := 0; i < nOperations; i++ {
			item := rnd.Intn(keySpace)
			switch rnd.Intn(4) {
			case 0, 1:
				priority := rnd.Float64()
				q.Push(item, priority)
				oracle[item] = priority
			case 2:
				_, inOracle := oracle[item]
				removed := q.Remove(item)
				assert.Equal(t, inOracle, removed, fmt.Sprintf("remove agreement for item %d", item))
				delete(oracle, item)
			case 3:
				if _, ok := oracle[item]; ok {
					priority := rnd.Float64()
					err := q.UpdatePriority(item, priority)
					assert.NoError(t, err, fmt.Sprintf("update queued item %d", item))
					oracle[item] = priority
				}
			}
		}

		// Check
		assert.Equal(t, len(oracle), q.Len(), "live count agreement")

		previous := -1.0
		for !q.IsEmpty() {
			item, priority, err := q.Pop()
			assert.NoError(t, err, "pop on populated queue")
			assert.GreaterOrEqual(t, priority, previous, "non decreasing priorities")
			assert.Equal(t, oracle[item], priority, fmt.Sprintf("priority agreement for item %d", item))
			delete(oracle, item)
			previous = priority
		}
		assert.Empty(t, oracle, "every live item popped")

		_, _, err := q.Pop()
		assert.ErrorIs(t, err, crt.EmptyContainer{}, "drained queue empty")
	})
}

func TestStress_UnionFind(t *testing.T) {
	t.Run("random unions converge to a single component", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(5))
		elements := 10000
		uf, err := unionfind.NewUnionFind(elements)
		assert.NoError(t, err, "create forest")

		// Execute - a spanning chain mixed with random extra unions
		for i := 1; i < elements; i++ {
			_, err = uf.Union(rnd.Intn(i), i)
			assert.NoError(t, err, "union in range")

			_, err = uf.Union(rnd.Intn(elements), rnd.Intn(elements))
			assert.NoError(t, err, "random union in range")
		}

		// Check
		assert.Equal(t, 1, uf.Components(), "fully merged")

		root, err := uf.Find(0)
		assert.NoError(t, err, "find in range")
		for i := 1; i < elements; i++ {
			r, err := uf.Find(i)
			assert.NoError(t, err, "find in range")
			assert.Equal(t, root, r, fmt.Sprintf("element %d shares the root", i))
		}
	})
}
