package main

import "io"
import "os"
import "fmt"
import "time"
import "math/rand"

import "github.com/pkg/errors"
import humanize "github.com/dustin/go-humanize"
import s "github.com/bnclabs/gosettings"

import "github.com/bnclabs/gollrb/api"
import "github.com/bnclabs/gollrb/dict"
import "github.com/bnclabs/gollrb/llrb"

// bench replay the same shuffled workload on every index and report
// the time taken by each, phase by phase.
type bench struct {
	n        int
	searches int
	pops     int
	validate bool

	rnd     *rand.Rand
	keys    []int // shuffled 1..n
	lookups []int
	deletes []int

	dict    *dict.Dict[int, string]
	tree    *llrb.LLRB[int, string]
	btree   *btreeindex
	indexes []api.Index[int, string]
}

type phase struct {
	title string
	ops   int
	run   func(index api.Index[int, string])
}

func newbench(n int, seed int64, degree int) *bench {
	b := &bench{n: n, searches: 50000, pops: 500}
	b.rnd = rand.New(rand.NewSource(seed))

	b.dict = dict.NewDict[int, string]("dict", api.Ordered[int]())
	b.tree = llrb.NewOrdered[int, string]("llrb", s.Settings{})
	b.btree = newbtreeindex("btree", degree)
	b.indexes = []api.Index[int, string]{b.dict, b.tree, b.btree}
	return b
}

func (b *bench) generate() {
	b.keys = make([]int, 0, b.n)
	for _, x := range b.rnd.Perm(b.n) {
		b.keys = append(b.keys, x+1)
	}
	b.lookups = make([]int, 0, b.searches)
	for i := 0; i < b.searches; i++ {
		b.lookups = append(b.lookups, b.rnd.Intn(b.n)+1)
	}
	sample := append([]int{}, b.keys...)
	b.rnd.Shuffle(len(sample), func(i, j int) {
		sample[i], sample[j] = sample[j], sample[i]
	})
	b.deletes = sample[:b.n/10]
}

func (b *bench) phases() []phase {
	return []phase{
		{"Insertion", b.n, func(index api.Index[int, string]) {
			for _, key := range b.keys {
				index.Set(key, fmt.Sprintf("%v", key))
			}
		}},
		{fmt.Sprintf("Searching (%v times)", b.searches), b.searches,
			func(index api.Index[int, string]) {
				for _, key := range b.lookups {
					index.Get(key)
				}
			}},
		{fmt.Sprintf("Returning size (%v times)", b.searches), b.searches,
			func(index api.Index[int, string]) {
				for i := 0; i < b.searches; i++ {
					index.Count()
				}
			}},
		{fmt.Sprintf("Finding maximum (%v times)", b.pops), b.pops,
			func(index api.Index[int, string]) {
				for i := 0; i < b.pops; i++ {
					index.Max()
				}
			}},
		{fmt.Sprintf("Finding minimum (%v times)", b.pops), b.pops,
			func(index api.Index[int, string]) {
				for i := 0; i < b.pops; i++ {
					index.Min()
				}
			}},
		{"Iteration (once)", b.n, func(index api.Index[int, string]) {
			index.Each(func(key int, value string) bool {
				_ = fmt.Sprintf("%v: %q", key, value)
				return true
			})
		}},
		{fmt.Sprintf("Deletion (%v elements)", len(b.deletes)), len(b.deletes),
			func(index api.Index[int, string]) {
				for _, key := range b.deletes {
					index.Delete(key)
				}
			}},
		{fmt.Sprintf("Delete maximum (%v times)", b.pops), b.pops,
			func(index api.Index[int, string]) {
				for i := 0; i < b.pops; i++ {
					index.DeleteMax()
				}
			}},
		{fmt.Sprintf("Delete minimum (%v times)", b.pops), b.pops,
			func(index api.Index[int, string]) {
				for i := 0; i < b.pops; i++ {
					index.DeleteMin()
				}
			}},
	}
}

func (b *bench) run(w io.Writer) error {
	b.generate()
	for _, ph := range b.phases() {
		fmt.Fprintf(w, "%v:\n", ph.title)
		for _, index := range b.indexes {
			start := time.Now()
			ph.run(index)
			elapsed := time.Since(start)
			fmsg := "  - %-6v %14v %12v ops/sec\n"
			fmt.Fprintf(w, fmsg, index.ID()+":", elapsed, opsrate(ph.ops, elapsed))
		}
		if b.validate {
			if err := b.check(); err != nil {
				return errors.Wrapf(err, "after %q", ph.title)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%v entries left, %v bytes of llrb nodes\n",
		humanize.Comma(b.tree.Count()),
		humanize.Bytes(uint64(b.tree.Stats()["memory.nodes"].(int64))))
	return nil
}

func opsrate(ops int, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "-"
	}
	rate := float64(ops) / elapsed.Seconds()
	return humanize.Comma(int64(rate))
}

// check the llrb tree and verify that every index holds the same
// entries in the same order.
func (b *bench) check() error {
	if err := b.tree.Validate(); err != nil {
		return err
	}

	type entry struct {
		key   int
		value string
	}
	var ref []entry
	for i, index := range b.indexes {
		entries := make([]entry, 0, index.Len())
		index.Each(func(key int, value string) bool {
			entries = append(entries, entry{key, value})
			return true
		})
		if i == 0 {
			ref = entries
			continue
		}
		if len(entries) != len(ref) {
			fmsg := "%v has %v entries, %v has %v"
			return errors.Errorf(fmsg, index.ID(), len(entries), b.indexes[0].ID(), len(ref))
		}
		for j, e := range entries {
			if e != ref[j] {
				fmsg := "%v entry %v is %v, expected %v"
				return errors.Errorf(fmsg, index.ID(), j, e, ref[j])
			}
		}
	}
	return nil
}

func (b *bench) dotdump(filename string) error {
	fd, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "dotdump %q", filename)
	}
	defer fd.Close()
	b.tree.Dotdump(fd)
	return nil
}
