package llrb

import "fmt"
import "unsafe"
import "strings"
import "sync/atomic"

import gohumanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/gollrb/lib"

// llrbstats counters, all of them are cumulative since the instance
// was created except n_count.
type llrbstats struct {
	n_count   int64 // number of entries in the tree.
	n_lookups int64
	n_ranges  int64
	n_inserts int64
	n_updates int64
	n_deletes int64
	n_nodes   int64
	n_frees   int64
	n_clones  int64
	n_rotates int64
	n_flips   int64
}

// Stats return a map of counters and memory estimates. Stats is
// O(1), refer Fullstats for tree shape.
func (llrb *LLRB[K, V]) Stats() map[string]interface{} {
	stats := llrb.stattree(map[string]interface{}{})
	stats = llrb.statsmem(stats)
	stats["h_upsertdepth"] = llrb.h_upsertdepth.Fullstats()
	return stats
}

// Fullstats same as Stats, along with height histogram and black
// height of the tree. Fullstats walks the whole tree.
func (llrb *LLRB[K, V]) Fullstats() map[string]interface{} {
	stats := llrb.Stats()
	h_height := lib.NewHistogramInt64(1, 256, 1)
	llrb.heightstats(llrb.root, 1 /*depth*/, h_height)
	stats["h_height"] = h_height.Fullstats()
	stats["n_blacks"] = countblacks(llrb.root)
	return stats
}

func (llrb *LLRB[K, V]) stattree(stats map[string]interface{}) map[string]interface{} {
	stats["n_count"] = llrb.n_count
	stats["n_lookups"] = atomic.LoadInt64(&llrb.n_lookups)
	stats["n_ranges"] = atomic.LoadInt64(&llrb.n_ranges)
	stats["n_inserts"] = llrb.n_inserts
	stats["n_updates"] = llrb.n_updates
	stats["n_deletes"] = llrb.n_deletes
	stats["n_nodes"] = llrb.n_nodes
	stats["n_frees"] = llrb.n_frees
	stats["n_clones"] = llrb.n_clones
	stats["n_rotates"] = llrb.n_rotates
	stats["n_flips"] = llrb.n_flips
	return stats
}

func (llrb *LLRB[K, V]) statsmem(stats map[string]interface{}) map[string]interface{} {
	stats["memory.nodes"] = llrb.nodememory()
	stats["memcapacity"] = llrb.memcapacity
	return stats
}

// nodememory is an estimate, memory referred by keys and values, like
// strings and slices, is not accounted.
func (llrb *LLRB[K, V]) nodememory() int64 {
	var nd node[K, V]
	return int64(unsafe.Sizeof(nd)) * llrb.n_count
}

func (llrb *LLRB[K, V]) heightstats(
	nd *node[K, V], depth int64, av *lib.HistogramInt64) {

	if nd == nil {
		return
	}
	av.Add(depth)
	llrb.heightstats(nd.left, depth+1, av)
	llrb.heightstats(nd.right, depth+1, av)
}

// countblacks along the left most path, for a valid tree this is
// same for every path from root to an absent child.
func countblacks[K, V any](nd *node[K, V]) int64 {
	count := int64(0)
	for ; nd != nil; nd = nd.left {
		if nd.isblack() {
			count++
		}
	}
	return count
}

// Log vital statistics for this instance, if humanize is true memory
// figures are logged in human readable form.
func (llrb *LLRB[K, V]) Log(humanize bool) {
	stats := llrb.Fullstats()

	dohumanize := func(val interface{}) interface{} {
		if humanize {
			return gohumanize.Bytes(uint64(val.(int64)))
		}
		return val.(int64)
	}

	memory, capacity := stats["memory.nodes"].(int64), llrb.memcapacity
	fmsg := "%v memory: %v nodes, %v capacity\n"
	infof(fmsg, llrb.logprefix, dohumanize(memory), dohumanize(capacity))
	if capacity > 0 && memory > capacity {
		warnf("%v node memory exceeds capacity\n", llrb.logprefix)
	}

	// tree shape
	h_height := stats["h_height"].(map[string]interface{})
	fmsg = "%v height: min %v max %v mean %v, blacks %v\n"
	infof(fmsg, llrb.logprefix,
		h_height["min"], h_height["max"], h_height["mean"], stats["n_blacks"])

	// counters
	keys := []string{
		"n_count", "n_lookups", "n_ranges", "n_inserts", "n_updates",
		"n_deletes", "n_rotates", "n_flips",
	}
	outs := []string{}
	for _, key := range keys {
		val := stats[key].(int64)
		if humanize {
			outs = append(outs, fmt.Sprintf("%v:%v", key, gohumanize.Comma(val)))
		} else {
			outs = append(outs, fmt.Sprintf("%v:%v", key, val))
		}
	}
	infof("%v counts: %v\n", llrb.logprefix, strings.Join(outs, " "))

	infof("%v stats: %v\n", llrb.logprefix, lib.Prettystats(stats, false))
}
