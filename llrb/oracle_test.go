package llrb

import "testing"
import "math/rand"

import biogo "github.com/biogo/store/llrb"

import "github.com/bnclabs/gollrb/api"
import "github.com/bnclabs/gollrb/dict"

var _ api.Index[int, string] = &LLRB[int, string]{}

type intentry struct {
	key   int
	value int
}

func (e intentry) Compare(other biogo.Comparable) int {
	return e.key - other.(intentry).key
}

// TestLLRBBiogo replay random mutations on both trees and compare
// them entry by entry.
func TestLLRBBiogo(t *testing.T) {
	llrb := NewOrdered[int, int]("biogo", testsettings())
	ref := &biogo.Tree{}
	rnd := rand.New(rand.NewSource(1234))

	compare := func(op int) {
		if llrb.Len() != ref.Len() {
			t.Fatalf("op %v expected %v, got %v", op, ref.Len(), llrb.Len())
		}
		refs := []intentry{}
		ref.Do(func(c biogo.Comparable) bool {
			refs = append(refs, c.(intentry))
			return false
		})
		i := 0
		llrb.Each(func(key, value int) bool {
			if e := refs[i]; e.key != key || e.value != value {
				t.Fatalf("op %v expected %v, got {%v %v}", op, e, key, value)
			}
			i++
			return true
		})
	}

	for op := 0; op < 10000; op++ {
		key := rnd.Intn(1000)
		switch x := rnd.Intn(20); {
		case x < 12:
			llrb.Set(key, op)
			ref.Insert(intentry{key, op})

		case x < 18:
			_, ok := llrb.Delete(key)
			if refok := ref.Get(intentry{key: key}) != nil; ok != refok {
				t.Fatalf("op %v Delete(%v) expected %v, got %v", op, key, refok, ok)
			}
			ref.Delete(intentry{key: key})

		case x < 19:
			key, _, ok := llrb.DeleteMin()
			if ok {
				if min := ref.Min().(intentry); min.key != key {
					t.Fatalf("op %v expected %v, got %v", op, min.key, key)
				}
			}
			ref.DeleteMin()

		default:
			key, _, ok := llrb.DeleteMax()
			if ok {
				if max := ref.Max().(intentry); max.key != key {
					t.Fatalf("op %v expected %v, got %v", op, max.key, key)
				}
			}
			ref.DeleteMax()
		}

		if op%1000 == 0 {
			compare(op)
			if err := llrb.Validate(); err != nil {
				t.Fatal(err)
			}
		}
	}
	compare(10000)
}

// TestLLRBDict drive both indexes through api.Index and compare
// every return value.
func TestLLRBDict(t *testing.T) {
	var index, ref api.Index[int, int]

	index = NewOrdered[int, int]("llrb", testsettings())
	ref = dict.NewDict[int, int]("dict", api.Ordered[int]())
	rnd := rand.New(rand.NewSource(4321))

	for op := 0; op < 5000; op++ {
		key := rnd.Intn(500)
		switch x := rnd.Intn(10); {
		case x < 5:
			old1, upd1 := index.Set(key, op)
			old2, upd2 := ref.Set(key, op)
			if old1 != old2 || upd1 != upd2 {
				t.Fatalf("op %v Set(%v) expected %v %v, got %v %v", op, key, old2, upd2, old1, upd1)
			}
		case x < 8:
			v1, ok1 := index.Delete(key)
			v2, ok2 := ref.Delete(key)
			if v1 != v2 || ok1 != ok2 {
				t.Fatalf("op %v Delete(%v) expected %v %v, got %v %v", op, key, v2, ok2, v1, ok1)
			}
		case x < 9:
			k1, v1, ok1 := index.DeleteMin()
			k2, v2, ok2 := ref.DeleteMin()
			if k1 != k2 || v1 != v2 || ok1 != ok2 {
				t.Fatalf("op %v DeleteMin() expected %v %v, got %v %v", op, k2, v2, k1, v1)
			}
		default:
			k1, v1, ok1 := index.DeleteMax()
			k2, v2, ok2 := ref.DeleteMax()
			if k1 != k2 || v1 != v2 || ok1 != ok2 {
				t.Fatalf("op %v DeleteMax() expected %v %v, got %v %v", op, k2, v2, k1, v1)
			}
		}
		if index.Count() != ref.Count() || index.Has(key) != ref.Has(key) {
			t.Fatalf("op %v expected %v, got %v", op, ref.Count(), index.Count())
		}
	}

	keys1, keys2 := []int{}, []int{}
	index.Each(func(key, _ int) bool { keys1 = append(keys1, key); return true })
	ref.Each(func(key, _ int) bool { keys2 = append(keys2, key); return true })
	if len(keys1) != len(keys2) {
		t.Fatalf("expected %v, got %v", len(keys2), len(keys1))
	}
	for i := range keys1 {
		if keys1[i] != keys2[i] {
			t.Fatalf("expected %v, got %v", keys2[i], keys1[i])
		}
	}
	// different container types are never equal.
	if index.Equal(ref) || ref.Equal(index) {
		t.Errorf("expected not equal")
	}
}
