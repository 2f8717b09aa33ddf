// Package dict implement a dictionary of key,value pairs based on golang
// map. Primarily meant as reference for testing more useful storage
// algorithms.
package dict

import "sort"
import "iter"
import "reflect"

import "github.com/bnclabs/gollrb/api"

// Dict is a reference data structure, for validation purpose. Ordered
// operations like Min, Max and Each are O(n) or worse.
type Dict[K comparable, V any] struct {
	id   string
	dict map[K]V
	cmp  api.Compare[K]
}

// NewDict create a new golang map for indexing key,value. cmp defines
// the sort order for Min, Max and Each.
func NewDict[K comparable, V any](id string, cmp api.Compare[K]) *Dict[K, V] {
	if cmp == nil {
		panic("NewDict(): compare function is nil")
	}
	return &Dict[K, V]{id: id, dict: make(map[K]V), cmp: cmp}
}

//---- api.Index{} interface.

// ID implement api.Index{} interface.
func (d *Dict[K, V]) ID() string {
	return d.id
}

// Count implement api.Index{} interface.
func (d *Dict[K, V]) Count() int64 {
	return int64(len(d.dict))
}

// Len implement api.Index{} interface.
func (d *Dict[K, V]) Len() int {
	return len(d.dict)
}

// Equal implement api.Index{} interface. Other should be a Dict of
// same key and value type, with same set of keys and deeply equal
// values.
func (d *Dict[K, V]) Equal(other interface{}) bool {
	that, ok := other.(*Dict[K, V])
	if !ok || that == nil {
		return false
	} else if len(d.dict) != len(that.dict) {
		return false
	}
	for key, value := range d.dict {
		if thatvalue, ok := that.dict[key]; !ok {
			return false
		} else if !reflect.DeepEqual(value, thatvalue) {
			return false
		}
	}
	return true
}

//---- IndexReader{} interface.

// Has implement IndexReader{} interface.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.dict[key]
	return ok
}

// Get implement IndexReader{} interface.
func (d *Dict[K, V]) Get(key K) (value V, ok bool) {
	value, ok = d.dict[key]
	return value, ok
}

// Min implement IndexReader{} interface.
func (d *Dict[K, V]) Min() (key K, value V, ok bool) {
	for k, v := range d.dict {
		if !ok || d.cmp(k, key) < 0 {
			key, value, ok = k, v, true
		}
	}
	return key, value, ok
}

// Max implement IndexReader{} interface.
func (d *Dict[K, V]) Max() (key K, value V, ok bool) {
	for k, v := range d.dict {
		if !ok || d.cmp(k, key) > 0 {
			key, value, ok = k, v, true
		}
	}
	return key, value, ok
}

// Each implement IndexReader{} interface.
func (d *Dict[K, V]) Each(visitor api.Visitor[K, V]) error {
	if visitor == nil {
		return api.ErrorNoVisitor
	}
	for _, key := range d.sorted() {
		if !visitor(key, d.dict[key]) {
			break
		}
	}
	return nil
}

// All return entries in sort order, keys are sorted when the
// sequence starts.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range d.sorted() {
			if !yield(key, d.dict[key]) {
				return
			}
		}
	}
}

//---- IndexWriter{} interface.

// Set implement IndexWriter{} interface.
func (d *Dict[K, V]) Set(key K, value V) (oldvalue V, updated bool) {
	oldvalue, updated = d.dict[key]
	d.dict[key] = value
	return oldvalue, updated
}

// Delete implement IndexWriter{} interface.
func (d *Dict[K, V]) Delete(key K) (value V, ok bool) {
	if value, ok = d.dict[key]; ok {
		delete(d.dict, key)
	}
	return value, ok
}

// DeleteMin implement IndexWriter{} interface.
func (d *Dict[K, V]) DeleteMin() (key K, value V, ok bool) {
	if key, value, ok = d.Min(); ok {
		delete(d.dict, key)
	}
	return key, value, ok
}

// DeleteMax implement IndexWriter{} interface.
func (d *Dict[K, V]) DeleteMax() (key K, value V, ok bool) {
	if key, value, ok = d.Max(); ok {
		delete(d.dict, key)
	}
	return key, value, ok
}

func (d *Dict[K, V]) sorted() []K {
	keys := make([]K, 0, len(d.dict))
	for key := range d.dict {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return d.cmp(keys[i], keys[j]) < 0
	})
	return keys
}
