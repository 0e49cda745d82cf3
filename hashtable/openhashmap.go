package hashtable

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
	"github.com/gostonefire/collections/hashfunc"
	"github.com/gostonefire/collections/internal/hash"
)

// maxProbeLoadFactor - When records plus tombstones exceed this fraction of the table size the table doubles
const maxProbeLoadFactor = 0.5

// record - A slot in the open addressing table. A slot that was once in use and later removed is kept
// as a tombstone so probe sequences passing over it keep going.
type record[K comparable, V any] struct {
	key     K
	value   V
	inUse   bool
	deleted bool
}

// OpenHashMap - A hash table using open addressing with linear probing for collision resolution.
// All records live directly in the table array, and a removed record leaves a tombstone behind to
// keep probe sequences intact. The table doubles in size once records and tombstones together pass
// half the table, which also sweeps the tombstones out.
type OpenHashMap[K comparable, V any] struct {
	records   []record[K, V]
	algorithm hashfunc.HashAlgorithm
	size      int64
	used      int64
}

// NewOpenHashMap - Returns a pointer to a new OpenHashMap instance using the internal bucket selection algorithm
//
// It returns:
//   - hashMap is a pointer to the created instance
//   - err if the initial capacity is out of range
func NewOpenHashMap[K comparable, V any](initialCapacity int64) (hashMap *OpenHashMap[K, V], err error) {
	if initialCapacity < minInitialCapacity {
		err = fmt.Errorf("initial capacity must be at least %d", minInitialCapacity)
		return
	}

	algorithm := hash.NewLinearProbingHashAlgorithm(initialCapacity)
	hashMap = &OpenHashMap[K, V]{
		records:   make([]record[K, V], algorithm.GetTableSize()),
		algorithm: algorithm,
	}

	return
}

// Put - Stores the value under the given key, overwriting any existing value, O(1) amortized.
// The probe sequence reuses the first tombstone it passed if the key turns out to be new.
func (M *OpenHashMap[K, V]) Put(key K, value V) {
	if float64(M.used+1) > maxProbeLoadFactor*float64(len(M.records)) {
		M.resize(int64(len(M.records)) * 2)
	}

	hfValue := M.hashFor(key)
	freeSlot := int64(-1)

	for iteration := int64(0); iteration < int64(len(M.records)); iteration++ {
		slot := M.algorithm.Probe(hfValue, iteration)

		if M.records[slot].inUse {
			if M.records[slot].key == key {
				M.records[slot].value = value
				return
			}
			continue
		}

		if M.records[slot].deleted {
			if freeSlot == -1 {
				freeSlot = slot
			}
			continue
		}

		if freeSlot == -1 {
			freeSlot = slot
			M.used++
		}
		break
	}

	M.records[freeSlot] = record[K, V]{key: key, value: value, inUse: true}
	M.size++
}

// Get - Returns the value stored under the given key, O(1) amortized.
//
// It returns:
//   - value is the value stored under the key
//   - err is of type crt.NotFound if the key is not in the map
func (M *OpenHashMap[K, V]) Get(key K) (value V, err error) {
	slot, found := M.find(key)
	if !found {
		err = crt.NotFound{}
		return
	}

	value = M.records[slot].value

	return
}

// Remove - Removes the record stored under the given key by tombstoning its slot, O(1) amortized.
// It returns true if a record was removed, false if the key was not in the map.
func (M *OpenHashMap[K, V]) Remove(key K) bool {
	slot, found := M.find(key)
	if !found {
		return false
	}

	M.records[slot].inUse = false
	M.records[slot].deleted = true
	M.size--

	return true
}

// Pop - Removes the record stored under the given key and returns its value, O(1) amortized.
//
// It returns:
//   - value is the value that was stored under the key
//   - err is of type crt.NotFound if the key is not in the map
func (M *OpenHashMap[K, V]) Pop(key K) (value V, err error) {
	slot, found := M.find(key)
	if !found {
		err = crt.NotFound{}
		return
	}

	value = M.records[slot].value
	M.records[slot].inUse = false
	M.records[slot].deleted = true
	M.size--

	return
}

// Contains - Returns true if the given key is in the map
func (M *OpenHashMap[K, V]) Contains(key K) bool {
	_, found := M.find(key)
	return found
}

// Keys - Returns all keys in the map in no particular order
func (M *OpenHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, M.size)
	for i := range M.records {
		if M.records[i].inUse {
			keys = append(keys, M.records[i].key)
		}
	}

	return keys
}

// Values - Returns all values in the map in no particular order
func (M *OpenHashMap[K, V]) Values() []V {
	values := make([]V, 0, M.size)
	for i := range M.records {
		if M.records[i].inUse {
			values = append(values, M.records[i].value)
		}
	}

	return values
}

// Entries - Calls the given function once for every key/value record in the map.
// Iteration stops if the function returns false.
func (M *OpenHashMap[K, V]) Entries(f func(key K, value V) bool) {
	for i := range M.records {
		if M.records[i].inUse {
			if !f(M.records[i].key, M.records[i].value) {
				return
			}
		}
	}
}

// Len - Returns the number of records in the map
func (M *OpenHashMap[K, V]) Len() int {
	return int(M.size)
}

// Cap - Returns the number of slots the table currently addresses
func (M *OpenHashMap[K, V]) Cap() int {
	return len(M.records)
}

// Clear - Removes all records and tombstones from the map, keeping the current table size
func (M *OpenHashMap[K, V]) Clear() {
	M.records = make([]record[K, V], len(M.records))
	M.size = 0
	M.used = 0
}

// String - Returns a string representation of the map records in no particular order
func (M *OpenHashMap[K, V]) String() string {
	parts := make([]string, 0, M.size)
	M.Entries(func(key K, value V) bool {
		parts = append(parts, fmt.Sprintf("%v: %v", key, value))
		return true
	})

	return fmt.Sprintf("OpenHashMap{%s}", strings.Join(parts, ", "))
}

// hashFor - Returns the hash value for the given key
func (M *OpenHashMap[K, V]) hashFor(key K) int64 {
	return M.algorithm.HashFunc([]byte(fmt.Sprintf("%v", key)))
}

// find - Follows the probe sequence of the given key.
// A never used slot ends the sequence, a tombstone keeps it going.
//
// It returns:
//   - slot is the table index holding the key
//   - found is false if the probe sequence ended without finding the key
func (M *OpenHashMap[K, V]) find(key K) (slot int64, found bool) {
	hfValue := M.hashFor(key)

	for iteration := int64(0); iteration < int64(len(M.records)); iteration++ {
		slot = M.algorithm.Probe(hfValue, iteration)

		if M.records[slot].inUse && M.records[slot].key == key {
			found = true
			return
		}
		if !M.records[slot].inUse && !M.records[slot].deleted {
			return
		}
	}

	return
}

// resize - Grows the table to the new size and reinserts all live records, dropping tombstones
func (M *OpenHashMap[K, V]) resize(newSize int64) {
	old := M.records

	M.algorithm.SetTableSize(newSize)
	M.records = make([]record[K, V], M.algorithm.GetTableSize())
	M.size = 0
	M.used = 0

	for i := range old {
		if old[i].inUse {
			M.Put(old[i].key, old[i].value)
		}
	}
}
