package hashfunc

// HashAlgorithm - Interface that permits an implementation using a hash table to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a hash table is created and every time the table resizes. Hence, if a custom
	// hash algorithm is supplied that implements this interface and the instance is already having a table size, it
	// will be overwritten by the capacity of the table using it.
	//   - tableSize is the number of buckets the hash table will address
	SetTableSize(tableSize int64)

	// HashFunc - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	// It is very important that this function return the actual table size and not just the table size given
	// in a call to SetTableSize. Some algorithms are implemented by rounding up to nearest 2 to the power of x, or to
	// the nearest prime, and if such operations are built in the implementation of this interface it must be covered
	// in the GetTableSize.
	GetTableSize() int64

	// Probe - Returns a bucket number given the value from HashFunc and the current probe iteration.
	// Since this function will be called repeatedly in a collision resolution situation, and the actual hash value
	// from HashFunc is the same throughout iterations for one key, the function takes that value rather than
	// using the actual key as input.
	// The function is not used for separate chaining hash tables.
	Probe(hfValue, iteration int64) int64
}
