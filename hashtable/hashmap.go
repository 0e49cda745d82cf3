package hashtable

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
	"github.com/gostonefire/collections/hashfunc"
	"github.com/gostonefire/collections/internal/hash"
)

// maxChainLoadFactor - When the number of records exceeds this fraction of the table size the table doubles
const maxChainLoadFactor = 0.75

// minInitialCapacity - The smallest accepted initial capacity of a hash table
const minInitialCapacity = 1

// pair - A key/value record stored in a bucket chain
type pair[K comparable, V any] struct {
	key   K
	value V
}

// HashMapStat - Statistics over a HashMap instance
//   - Records is the total number of records in the map
//   - Buckets is the number of buckets the table currently addresses
//   - BucketDistribution is the number of records per bucket (only if asked for)
type HashMapStat struct {
	Records            int64
	Buckets            int64
	BucketDistribution []int64
}

// HashMap - A hash table using separate chaining for collision resolution. Each bucket holds a short
// chain of records, and the table doubles in size once the overall load factor passes 0.75 to keep
// chains short. Bucket selection is delegated to a hashfunc.HashAlgorithm, which by default hashes
// the formatted key with CRC32 and masks it into a power of two table.
type HashMap[K comparable, V any] struct {
	buckets   [][]pair[K, V]
	algorithm hashfunc.HashAlgorithm
	size      int64
}

// NewHashMap - Returns a pointer to a new HashMap instance using the internal bucket selection algorithm
//
// It returns:
//   - hashMap is a pointer to the created instance
//   - err if the initial capacity is out of range
func NewHashMap[K comparable, V any](initialCapacity int64) (hashMap *HashMap[K, V], err error) {
	if initialCapacity < minInitialCapacity {
		err = fmt.Errorf("initial capacity must be at least %d", minInitialCapacity)
		return
	}

	return newHashMap[K, V](hash.NewSeparateChainingHashAlgorithm(initialCapacity)), nil
}

// NewHashMapWithHashAlgorithm - Returns a pointer to a new HashMap instance using a custom bucket
// selection algorithm. The algorithm's table size governs the initial number of buckets, and the
// algorithm is informed through SetTableSize whenever the table resizes.
//
// It returns:
//   - hashMap is a pointer to the created instance
//   - err if the supplied algorithm is nil or reports a non-positive table size
func NewHashMapWithHashAlgorithm[K comparable, V any](algorithm hashfunc.HashAlgorithm) (hashMap *HashMap[K, V], err error) {
	if algorithm == nil {
		err = fmt.Errorf("algorithm must not be nil")
		return
	}
	if algorithm.GetTableSize() < minInitialCapacity {
		err = fmt.Errorf("algorithm table size must be at least %d", minInitialCapacity)
		return
	}

	return newHashMap[K, V](algorithm), nil
}

// newHashMap - Allocates buckets according to the algorithm's table size
func newHashMap[K comparable, V any](algorithm hashfunc.HashAlgorithm) *HashMap[K, V] {
	return &HashMap[K, V]{
		buckets:   make([][]pair[K, V], algorithm.GetTableSize()),
		algorithm: algorithm,
	}
}

// Put - Stores the value under the given key, overwriting any existing value, O(1) amortized
func (M *HashMap[K, V]) Put(key K, value V) {
	if float64(M.size+1) > maxChainLoadFactor*float64(len(M.buckets)) {
		M.resize(int64(len(M.buckets)) * 2)
	}

	bucket := M.bucketFor(key)
	for i := range M.buckets[bucket] {
		if M.buckets[bucket][i].key == key {
			M.buckets[bucket][i].value = value
			return
		}
	}

	M.buckets[bucket] = append(M.buckets[bucket], pair[K, V]{key: key, value: value})
	M.size++
}

// Get - Returns the value stored under the given key, O(1) amortized.
//
// It returns:
//   - value is the value stored under the key
//   - err is of type crt.NotFound if the key is not in the map
func (M *HashMap[K, V]) Get(key K) (value V, err error) {
	bucket := M.bucketFor(key)
	for i := range M.buckets[bucket] {
		if M.buckets[bucket][i].key == key {
			value = M.buckets[bucket][i].value
			return
		}
	}

	err = crt.NotFound{}

	return
}

// Remove - Removes the record stored under the given key, O(1) amortized.
// It returns true if a record was removed, false if the key was not in the map.
func (M *HashMap[K, V]) Remove(key K) bool {
	bucket := M.bucketFor(key)
	chain := M.buckets[bucket]
	for i := range chain {
		if chain[i].key == key {
			M.buckets[bucket] = append(chain[:i], chain[i+1:]...)
			M.size--
			return true
		}
	}

	return false
}

// Pop - Removes the record stored under the given key and returns its value, O(1) amortized.
//
// It returns:
//   - value is the value that was stored under the key
//   - err is of type crt.NotFound if the key is not in the map
func (M *HashMap[K, V]) Pop(key K) (value V, err error) {
	bucket := M.bucketFor(key)
	chain := M.buckets[bucket]
	for i := range chain {
		if chain[i].key == key {
			value = chain[i].value
			M.buckets[bucket] = append(chain[:i], chain[i+1:]...)
			M.size--
			return
		}
	}

	err = crt.NotFound{}

	return
}

// Contains - Returns true if the given key is in the map
func (M *HashMap[K, V]) Contains(key K) bool {
	bucket := M.bucketFor(key)
	for i := range M.buckets[bucket] {
		if M.buckets[bucket][i].key == key {
			return true
		}
	}

	return false
}

// Keys - Returns all keys in the map in no particular order
func (M *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, M.size)
	for _, chain := range M.buckets {
		for i := range chain {
			keys = append(keys, chain[i].key)
		}
	}

	return keys
}

// Values - Returns all values in the map in no particular order
func (M *HashMap[K, V]) Values() []V {
	values := make([]V, 0, M.size)
	for _, chain := range M.buckets {
		for i := range chain {
			values = append(values, chain[i].value)
		}
	}

	return values
}

// Entries - Calls the given function once for every key/value record in the map.
// Iteration stops if the function returns false.
func (M *HashMap[K, V]) Entries(f func(key K, value V) bool) {
	for _, chain := range M.buckets {
		for i := range chain {
			if !f(chain[i].key, chain[i].value) {
				return
			}
		}
	}
}

// Len - Returns the number of records in the map
func (M *HashMap[K, V]) Len() int {
	return int(M.size)
}

// Cap - Returns the number of buckets the table currently addresses
func (M *HashMap[K, V]) Cap() int {
	return len(M.buckets)
}

// Clear - Removes all records from the map, keeping the current table size
func (M *HashMap[K, V]) Clear() {
	for i := range M.buckets {
		M.buckets[i] = nil
	}
	M.size = 0
}

// Stat - Returns statistics over the map. Gathering the per bucket distribution requires a pass
// over the whole table, hence it has to be asked for.
//   - includeDistribution set to true fills the BucketDistribution slice
func (M *HashMap[K, V]) Stat(includeDistribution bool) *HashMapStat {
	stat := &HashMapStat{
		Records: M.size,
		Buckets: int64(len(M.buckets)),
	}

	if includeDistribution {
		stat.BucketDistribution = make([]int64, len(M.buckets))
		for i, chain := range M.buckets {
			stat.BucketDistribution[i] = int64(len(chain))
		}
	}

	return stat
}

// String - Returns a string representation of the map records in no particular order
func (M *HashMap[K, V]) String() string {
	parts := make([]string, 0, M.size)
	M.Entries(func(key K, value V) bool {
		parts = append(parts, fmt.Sprintf("%v: %v", key, value))
		return true
	})

	return fmt.Sprintf("HashMap{%s}", strings.Join(parts, ", "))
}

// bucketFor - Returns the bucket number for the given key
func (M *HashMap[K, V]) bucketFor(key K) int64 {
	return M.algorithm.HashFunc([]byte(fmt.Sprintf("%v", key)))
}

// resize - Grows the table to the new size and redistributes all records over the new buckets
func (M *HashMap[K, V]) resize(newSize int64) {
	old := M.buckets

	M.algorithm.SetTableSize(newSize)
	M.buckets = make([][]pair[K, V], M.algorithm.GetTableSize())

	for _, chain := range old {
		for i := range chain {
			bucket := M.bucketFor(chain[i].key)
			M.buckets[bucket] = append(M.buckets[bucket], chain[i])
		}
	}
}
