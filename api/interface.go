// Package api define types and interfaces common to all ordered
// containers implemented by this module.
package api

// Compare three-way comparison between two keys. Return a negative
// number if a sorts before b, zero if they are equal and a positive
// number if a sorts after b. Implementations must be a consistent
// total order, containers don't detect a broken comparator.
type Compare[K any] func(a, b K) int

// Visitor callback from Each API. Return false to stop the walk.
type Visitor[K, V any] func(key K, value V) bool

// Iterator pull entries one at a time, in sort order. Iterator
// return io.EOF after the last entry. Call it with fin as true to
// release the iterator before reaching the end.
type Iterator[K, V any] func(fin bool) (key K, value V, err error)

// Index interface for managing sorted key,value pairs.
type Index[K, V any] interface {
	// ID return index id. Typically, it is human readable and unique.
	ID() string

	// Count return the number of entries indexed.
	Count() int64

	// Len same as Count, as an int.
	Len() int

	// Equal return true if other is an index of the same type holding
	// the same set of key,value pairs.
	Equal(other interface{}) bool

	IndexReader[K, V]
	IndexWriter[K, V]
}

// IndexReader interface for fetching one or more entries from index.
type IndexReader[K, V any] interface {
	// Has checks wether key is present in the index.
	Has(key K) bool

	// Get value for key, ok is false if key is not present.
	Get(key K) (value V, ok bool)

	// Min get entry that sort before every other entries in the index.
	// ok is false if index is empty.
	Min() (key K, value V, ok bool)

	// Max get entry that sort after every other entries in the index.
	// ok is false if index is empty.
	Max() (key K, value V, ok bool)

	// Each call visitor for every entry in sort order. Return
	// ErrorNoVisitor if visitor is nil.
	Each(visitor Visitor[K, V]) error
}

// IndexWriter interface methods for updating index.
type IndexWriter[K, V any] interface {
	// Set a key,value pair. If key is already present, its value is
	// replaced and the old value returned with updated as true.
	Set(key K, value V) (oldvalue V, updated bool)

	// Delete entry specified by key, ok is false if key is missing.
	Delete(key K) (value V, ok bool)

	// DeleteMin delete the first entry in the index.
	DeleteMin() (key K, value V, ok bool)

	// DeleteMax delete the last entry in the index.
	DeleteMax() (key K, value V, ok bool)
}
