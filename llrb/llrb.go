package llrb

import "io"
import "fmt"
import "bytes"
import "strings"
import "sync/atomic"

import "golang.org/x/exp/constraints"
import s "github.com/bnclabs/gosettings"

import "github.com/bnclabs/gollrb/api"
import "github.com/bnclabs/gollrb/lib"

// LLRB manage a single instance of in-memory sorted index using
// left-leaning-red-black tree. LLRB is not safe for concurrent use,
// applications sharing an instance across go-routines should guard
// it with their own sync.RWMutex. Read methods can run concurrently
// under a read lock.
type LLRB[K, V any] struct {
	llrbstats // 64-bit aligned counters.

	name          string
	root          *node[K, V]
	cmp           api.Compare[K]
	h_upsertdepth *lib.HistogramInt64

	// settings
	memcapacity   int64
	heightfactor  float64
	validateevery int64
	setts         s.Settings
	logprefix     string
}

// NewLLRB a new instance of in-memory sorted index. cmp defines the
// sort order for keys and must not be nil.
func NewLLRB[K, V any](
	name string, cmp api.Compare[K], setts s.Settings) *LLRB[K, V] {

	if cmp == nil {
		panic("NewLLRB(): compare function is nil")
	}

	llrb := &LLRB[K, V]{name: name, cmp: cmp}
	llrb.logprefix = fmt.Sprintf("LLRB [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	llrb.readsettings(setts)
	llrb.setts = setts

	llrb.h_upsertdepth = lib.NewHistogramInt64(1, 256, 1)

	infof("%v started ...\n", llrb.logprefix)
	return llrb
}

// NewOrdered a new instance of LLRB for keys that support the
// ordering operators.
func NewOrdered[K constraints.Ordered, V any](
	name string, setts s.Settings) *LLRB[K, V] {

	return NewLLRB[K, V](name, api.Ordered[K](), setts)
}

// ID return the name of this instance.
func (llrb *LLRB[K, V]) ID() string {
	return llrb.name
}

// Count return the number of entries indexed.
func (llrb *LLRB[K, V]) Count() int64 {
	return llrb.n_count
}

// Len same as Count.
func (llrb *LLRB[K, V]) Len() int {
	return int(llrb.n_count)
}

// Clone the whole tree, shape and colours included, into a new
// instance with the same comparator and settings.
func (llrb *LLRB[K, V]) Clone(name string) *LLRB[K, V] {
	newllrb := NewLLRB[K, V](name, llrb.cmp, llrb.setts)
	newllrb.root = llrb.root.clone()
	newllrb.n_count = llrb.n_count
	newllrb.n_inserts, newllrb.n_nodes = llrb.n_count, llrb.n_count
	llrb.n_clones += llrb.n_count
	infof("%v cloned into %q with %v entries\n", llrb.logprefix, name, llrb.n_count)
	return newllrb
}

// Dotdump to convert whole tree into dot script that can be
// visualized using graphviz.
func (llrb *LLRB[K, V]) Dotdump(w io.Writer) {
	lines := []string{
		"digraph llrb {",
		"  node[shape=record];\n",
		"}\n",
	}
	io.WriteString(w, strings.Join(lines[:len(lines)-1], "\n"))
	llrb.root.dotdump(w)
	io.WriteString(w, lines[len(lines)-1])
}

//---- api.IndexReader{} interface.

// Has checks wether key is present in the index.
func (llrb *LLRB[K, V]) Has(key K) bool {
	_, ok := llrb.Get(key)
	return ok
}

// Get value for key, ok is false if key is not present.
func (llrb *LLRB[K, V]) Get(key K) (value V, ok bool) {
	atomic.AddInt64(&llrb.n_lookups, 1)
	if nd := llrb.getkey(key); nd != nil {
		return nd.value, true
	}
	return value, false
}

func (llrb *LLRB[K, V]) getkey(key K) *node[K, V] {
	nd := llrb.root
	for nd != nil {
		if cmp := llrb.cmp(key, nd.key); cmp < 0 {
			nd = nd.left
		} else if cmp > 0 {
			nd = nd.right
		} else {
			return nd
		}
	}
	return nil
}

// Min return the entry that sort before every other entry, ok is
// false if the index is empty.
func (llrb *LLRB[K, V]) Min() (key K, value V, ok bool) {
	atomic.AddInt64(&llrb.n_lookups, 1)
	if nd := llrb.root.minnode(); nd != nil {
		return nd.key, nd.value, true
	}
	return key, value, false
}

// Max return the entry that sort after every other entry, ok is
// false if the index is empty.
func (llrb *LLRB[K, V]) Max() (key K, value V, ok bool) {
	atomic.AddInt64(&llrb.n_lookups, 1)
	if nd := llrb.root.maxnode(); nd != nil {
		return nd.key, nd.value, true
	}
	return key, value, false
}

//---- api.IndexWriter{} interface.

// Set a key,value pair. If key is already present its value is
// replaced in place and the previous value is returned with updated
// as true.
func (llrb *LLRB[K, V]) Set(key K, value V) (oldvalue V, updated bool) {
	var root *node[K, V]

	root, oldvalue, updated = llrb.upsert(llrb.root, 1 /*depth*/, key, value)
	root.setblack()
	llrb.root = root
	llrb.upsertcounts(updated)

	llrb.checkpoint()
	return oldvalue, updated
}

func (llrb *LLRB[K, V]) upsert(
	nd *node[K, V], depth int64,
	key K, value V) (*node[K, V], V, bool) {

	var oldvalue V
	var updated bool

	if nd == nil {
		llrb.h_upsertdepth.Add(depth)
		llrb.n_nodes++
		return newnode(key, value), oldvalue, false
	}

	if cmp := llrb.cmp(key, nd.key); cmp < 0 {
		nd.left, oldvalue, updated = llrb.upsert(nd.left, depth+1, key, value)
	} else if cmp > 0 {
		nd.right, oldvalue, updated = llrb.upsert(nd.right, depth+1, key, value)
	} else {
		oldvalue, updated = nd.value, true
		nd.value = value
		llrb.h_upsertdepth.Add(depth)
	}

	return llrb.walkuprot23(nd), oldvalue, updated
}

// DeleteMin delete the entry that sort before every other entry,
// ok is false if the index is empty.
func (llrb *LLRB[K, V]) DeleteMin() (key K, value V, ok bool) {
	if llrb.root == nil {
		return key, value, false
	}

	root, deleted := llrb.deletemin(llrb.root)
	if root != nil {
		root.setblack()
	}
	llrb.root = root
	llrb.delcount(deleted)

	llrb.checkpoint()
	return deleted.key, deleted.value, true
}

// using 2-3 trees
func (llrb *LLRB[K, V]) deletemin(nd *node[K, V]) (newnd, deleted *node[K, V]) {
	if nd == nil {
		return nil, nil
	}
	if nd.left == nil {
		return nil, nd
	}
	if !nd.left.isred() && !nd.left.left.isred() {
		nd = llrb.moveredleft(nd)
	}
	nd.left, deleted = llrb.deletemin(nd.left)
	return llrb.fixup(nd), deleted
}

// DeleteMax delete the entry that sort after every other entry,
// ok is false if the index is empty.
func (llrb *LLRB[K, V]) DeleteMax() (key K, value V, ok bool) {
	if llrb.root == nil {
		return key, value, false
	}

	root, deleted := llrb.deletemax(llrb.root)
	if root != nil {
		root.setblack()
	}
	llrb.root = root
	llrb.delcount(deleted)

	llrb.checkpoint()
	return deleted.key, deleted.value, true
}

// using 2-3 trees
func (llrb *LLRB[K, V]) deletemax(nd *node[K, V]) (newnd, deleted *node[K, V]) {
	if nd == nil {
		return nil, nil
	}
	if nd.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.right == nil {
		return nil, nd
	}
	if !nd.right.isred() && !nd.right.left.isred() {
		nd = llrb.moveredright(nd)
	}
	nd.right, deleted = llrb.deletemax(nd.right)
	return llrb.fixup(nd), deleted
}

// Delete entry specified by key and return its value, ok is false
// if key is missing.
func (llrb *LLRB[K, V]) Delete(key K) (value V, ok bool) {
	if llrb.root == nil {
		return value, false
	}

	root, deleted := llrb.delete(llrb.root, key)
	if root != nil {
		root.setblack()
	}
	llrb.root = root

	if deleted == nil { // handle key-missing
		return value, false
	}
	llrb.delcount(deleted)

	llrb.checkpoint()
	return deleted.value, true
}

func (llrb *LLRB[K, V]) delete(nd *node[K, V], key K) (newnd, deleted *node[K, V]) {
	if nd == nil {
		return nil, nil
	}

	if llrb.cmp(key, nd.key) < 0 {
		if nd.left == nil { // key not present. Nothing to delete
			return nd, nil
		}
		if !nd.left.isred() && !nd.left.left.isred() {
			nd = llrb.moveredleft(nd)
		}
		nd.left, deleted = llrb.delete(nd.left, key)

	} else {
		if nd.left.isred() {
			nd = llrb.rotateright(nd)
		}
		// If key equals nd.key and no right children at nd
		if llrb.cmp(key, nd.key) == 0 && nd.right == nil {
			return nil, nd
		}
		if nd.right != nil && !nd.right.isred() && !nd.right.left.isred() {
			nd = llrb.moveredright(nd)
		}
		// If key equals nd.key, and from above nd.right != nil
		if llrb.cmp(key, nd.key) == 0 {
			var succ *node[K, V]
			nd.right, succ = llrb.deletemin(nd.right)
			if succ == nil {
				panic("delete(): fatal logic, call the programmer")
			}
			// successor takes this position, the unlinked node carries
			// away the deleted entry.
			nd.key, succ.key = succ.key, nd.key
			nd.value, succ.value = succ.value, nd.value
			deleted = succ

		} else { // Else, key is bigger than nd.key
			nd.right, deleted = llrb.delete(nd.right, key)
		}
	}
	return llrb.fixup(nd), deleted
}

// rotation routines for 2-3 algorithm

func (llrb *LLRB[K, V]) walkuprot23(nd *node[K, V]) *node[K, V] {
	if nd.right.isred() && !nd.left.isred() {
		nd = llrb.rotateleft(nd)
	}
	if nd.left.isred() && nd.left.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.left.isred() && nd.right.isred() {
		llrb.flip(nd)
	}
	return nd
}

func (llrb *LLRB[K, V]) rotateleft(nd *node[K, V]) *node[K, V] {
	y := nd.right
	if y.isblack() {
		panic("rotateleft(): rotating a black link ? call the programmer")
	}
	nd.right = y.left
	y.left = nd
	y.copycolor(nd)
	nd.setred()
	llrb.n_rotates++
	return y
}

func (llrb *LLRB[K, V]) rotateright(nd *node[K, V]) *node[K, V] {
	x := nd.left
	if x.isblack() {
		panic("rotateright(): rotating a black link ? call the programmer")
	}
	nd.left = x.right
	x.right = nd
	x.copycolor(nd)
	nd.setred()
	llrb.n_rotates++
	return x
}

// absent children are left untouched.
func (llrb *LLRB[K, V]) flip(nd *node[K, V]) {
	nd.left.togglelink()
	nd.right.togglelink()
	nd.togglelink()
	llrb.n_flips++
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB[K, V]) moveredleft(nd *node[K, V]) *node[K, V] {
	llrb.flip(nd)
	if nd.right.left.isred() {
		nd.right = llrb.rotateright(nd.right)
		nd = llrb.rotateleft(nd)
		llrb.flip(nd)
	}
	return nd
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB[K, V]) moveredright(nd *node[K, V]) *node[K, V] {
	llrb.flip(nd)
	if nd.left.left.isred() {
		nd = llrb.rotateright(nd)
		llrb.flip(nd)
	}
	return nd
}

// fixup on the way up after a delete. Unlike walkuprot23, a red right
// link is rotated even when the left link is red, moveredleft can
// leave both children red with a red left grandchild.
func (llrb *LLRB[K, V]) fixup(nd *node[K, V]) *node[K, V] {
	if nd.right.isred() {
		nd = llrb.rotateleft(nd)
	}
	if nd.left.isred() && nd.left.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.left.isred() && nd.right.isred() {
		llrb.flip(nd)
	}
	return nd
}

//---- local functions

func (llrb *LLRB[K, V]) upsertcounts(updated bool) {
	if updated {
		llrb.n_updates++
		return
	}
	llrb.n_count++
	llrb.n_inserts++
}

func (llrb *LLRB[K, V]) delcount(nd *node[K, V]) {
	if nd != nil {
		nd.left, nd.right = nil, nil
		llrb.n_count--
		llrb.n_deletes++
		llrb.n_frees++
	}
}

// checkpoint validate the tree every `validate.everyn` mutations.
func (llrb *LLRB[K, V]) checkpoint() {
	if llrb.validateevery <= 0 {
		return
	}
	n := llrb.n_inserts + llrb.n_updates + llrb.n_deletes
	if n%llrb.validateevery == 0 {
		if err := llrb.Validate(); err != nil {
			errorf("%v after %v mutations: %v\n", llrb.logprefix, n, err)
			if dump := llrb.pprint(); dump != "" {
				errorf("%v tree:\n%v", llrb.logprefix, dump)
			}
			panic(err)
		}
	}
}

// trees with more entries than pprintmax are not dumped when
// validation fails.
const pprintmax = 64

// pprint the tree as indented text, return empty string if the tree
// has more than pprintmax entries.
func (llrb *LLRB[K, V]) pprint() string {
	if llrb.n_count > pprintmax {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	llrb.root.pprint(buf, "")
	return buf.String()
}
