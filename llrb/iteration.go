package llrb

import "io"
import "iter"
import "reflect"
import "sync/atomic"

import "github.com/bnclabs/gollrb/api"

// Each entry in the index is visited in ascending key order. Return
// false from visitor to stop the walk.
func (llrb *LLRB[K, V]) Each(visitor api.Visitor[K, V]) error {
	if visitor == nil {
		return api.ErrorNoVisitor
	}
	atomic.AddInt64(&llrb.n_ranges, 1)
	llrb.traverse(llrb.root, visitor)
	return nil
}

func (llrb *LLRB[K, V]) traverse(nd *node[K, V], visitor api.Visitor[K, V]) bool {
	if nd == nil {
		return true
	}
	if !llrb.traverse(nd.left, visitor) {
		return false
	} else if !visitor(nd.key, nd.value) {
		return false
	}
	return llrb.traverse(nd.right, visitor)
}

// All return a sequence over entries in ascending key order, to use
// with range-over-func. Mutating the index while ranging over it is
// undefined.
func (llrb *LLRB[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		atomic.AddInt64(&llrb.n_ranges, 1)
		llrb.traverse(llrb.root, yield)
	}
}

// Scan return a pull iterator over entries in ascending key order.
// Iterator return io.EOF after the last entry, calling it with fin as
// true will close the iterator and release its state. Mutating the
// index invalidates the iterator.
func (llrb *LLRB[K, V]) Scan() api.Iterator[K, V] {
	var err error

	atomic.AddInt64(&llrb.n_ranges, 1)
	stack := pushleft(make([]*node[K, V], 0, 32), llrb.root)

	return func(fin bool) (key K, value V, rerr error) {
		if err != nil {
			return key, value, err
		} else if fin {
			err, stack = io.EOF, nil
			return key, value, err
		} else if len(stack) == 0 {
			err, stack = io.EOF, nil
			return key, value, err
		}

		nd := stack[len(stack)-1]
		stack = pushleft(stack[:len(stack)-1], nd.right)
		return nd.key, nd.value, nil
	}
}

func pushleft[K, V any](stack []*node[K, V], nd *node[K, V]) []*node[K, V] {
	for ; nd != nil; nd = nd.left {
		stack = append(stack, nd)
	}
	return stack
}

// Equal return true if other is an LLRB of the same key and value
// type, holding the same set of keys with deeply equal values.
func (llrb *LLRB[K, V]) Equal(other interface{}) bool {
	return llrb.EqualFunc(other, func(a, b V) bool {
		return reflect.DeepEqual(a, b)
	})
}

// EqualFunc same as Equal, but values are compared using eq.
func (llrb *LLRB[K, V]) EqualFunc(other interface{}, eq func(a, b V) bool) bool {
	that, ok := other.(*LLRB[K, V])
	if !ok || that == nil {
		return false
	} else if llrb == that {
		return true
	} else if llrb.Count() != that.Count() {
		return false
	}

	equal := true
	llrb.traverse(llrb.root, func(key K, value V) bool {
		nd := that.getkey(key)
		if nd == nil || !eq(value, nd.value) {
			equal = false
		}
		return equal
	})
	return equal
}
