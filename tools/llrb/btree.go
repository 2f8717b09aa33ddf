package main

import "reflect"

import "github.com/google/btree"

import "github.com/bnclabs/gollrb/api"

type btreeitem struct {
	key   int
	value string
}

func (item btreeitem) Less(than btree.Item) bool {
	return item.key < than.(btreeitem).key
}

// btreeindex adapts google's btree to api.Index, so that it can be
// measured with the same workload as llrb and dict.
type btreeindex struct {
	id   string
	tree *btree.BTree
}

func newbtreeindex(id string, degree int) *btreeindex {
	return &btreeindex{id: id, tree: btree.New(degree)}
}

func (bt *btreeindex) ID() string {
	return bt.id
}

func (bt *btreeindex) Count() int64 {
	return int64(bt.tree.Len())
}

func (bt *btreeindex) Len() int {
	return bt.tree.Len()
}

func (bt *btreeindex) Equal(other interface{}) bool {
	that, ok := other.(*btreeindex)
	if !ok || that == nil || bt.Len() != that.Len() {
		return false
	}
	equal := true
	bt.tree.Ascend(func(i btree.Item) bool {
		x := that.tree.Get(i)
		equal = x != nil && reflect.DeepEqual(x, i)
		return equal
	})
	return equal
}

func (bt *btreeindex) Has(key int) bool {
	return bt.tree.Has(btreeitem{key: key})
}

func (bt *btreeindex) Get(key int) (string, bool) {
	if item := bt.tree.Get(btreeitem{key: key}); item != nil {
		return item.(btreeitem).value, true
	}
	return "", false
}

func (bt *btreeindex) Min() (int, string, bool) {
	return unpack(bt.tree.Min())
}

func (bt *btreeindex) Max() (int, string, bool) {
	return unpack(bt.tree.Max())
}

func (bt *btreeindex) Each(visitor api.Visitor[int, string]) error {
	if visitor == nil {
		return api.ErrorNoVisitor
	}
	bt.tree.Ascend(func(i btree.Item) bool {
		item := i.(btreeitem)
		return visitor(item.key, item.value)
	})
	return nil
}

func (bt *btreeindex) Set(key int, value string) (string, bool) {
	old := bt.tree.ReplaceOrInsert(btreeitem{key: key, value: value})
	if old != nil {
		return old.(btreeitem).value, true
	}
	return "", false
}

func (bt *btreeindex) Delete(key int) (string, bool) {
	if item := bt.tree.Delete(btreeitem{key: key}); item != nil {
		return item.(btreeitem).value, true
	}
	return "", false
}

func (bt *btreeindex) DeleteMin() (int, string, bool) {
	return unpack(bt.tree.DeleteMin())
}

func (bt *btreeindex) DeleteMax() (int, string, bool) {
	return unpack(bt.tree.DeleteMax())
}

func unpack(i btree.Item) (int, string, bool) {
	if i == nil {
		return 0, "", false
	}
	item := i.(btreeitem)
	return item.key, item.value, true
}
