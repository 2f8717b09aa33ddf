package llrb

import "math"

import "github.com/pkg/errors"

import "github.com/bnclabs/gollrb/lib"

// LLRB rule, from sedgewick's paper.
var errRedafterred = errors.New("consecutive red spotted")

// LLRB rule, from sedgewick's paper.
var errRedright = errors.New("right leaning red spotted")

// height of the tree cannot exceed a certain limit. For example if the
// tree holds 1-million entries, a fully balanced tree shall have a
// height of 20 levels. factor provide breathing space on top of ideal
// height.
func maxheight(entries int64, factor float64) int64 {
	return int64(math.Ceil(factor * math.Log2(float64(entries+1))))
}

// Validate the tree against LLRB rules, sort order and book-keeping
// counters. Return the first violation found, nil otherwise. Validate
// walks the whole tree.
func (llrb *LLRB[K, V]) Validate() error {
	root := llrb.root
	if root.isred() {
		return errors.Errorf("validate(): root %v is red", root.key)
	}

	h := lib.NewHistogramInt64(1, 256, 1)
	_, err := llrb.validatetree(root, 1 /*depth*/, h)
	if err != nil {
		return err
	}

	if h.Samples() != llrb.n_count {
		fmsg := "validate(): reachable nodes %v != n_count %v"
		return errors.Errorf(fmsg, h.Samples(), llrb.n_count)
	}

	// `h_height`.max should not exceed certain limit
	limit := maxheight(llrb.n_count, llrb.heightfactor)
	if h.Max() > limit {
		fmsg := "validate(): max height %v exceeds %v for %v entries"
		return errors.Errorf(fmsg, h.Max(), limit, llrb.n_count)
	}

	if err := llrb.validatestats(); err != nil {
		return err
	}
	debugf("%v validated %v entries, height %v\n", llrb.logprefix, h.Samples(), h.Max())
	return nil
}

// validatetree return the black height of nd, absent children are
// black and contribute to the count.
func (llrb *LLRB[K, V]) validatetree(
	nd *node[K, V], depth int64, h *lib.HistogramInt64) (int64, error) {

	if nd == nil {
		return 1, nil
	}
	h.Add(depth)

	if nd.right.isred() {
		return 0, errors.Wrapf(errRedright, "at %v", nd.right.key)
	} else if nd.isred() && nd.left.isred() {
		return 0, errors.Wrapf(errRedafterred, "at %v", nd.key)
	}

	if nd.left != nil && llrb.cmp(nd.left.key, nd.key) >= 0 {
		fmsg := "validate(): sort order, left node %v is >= node %v"
		return 0, errors.Errorf(fmsg, nd.left.key, nd.key)
	}
	if nd.right != nil && llrb.cmp(nd.right.key, nd.key) <= 0 {
		fmsg := "validate(): sort order, right node %v is <= node %v"
		return 0, errors.Errorf(fmsg, nd.right.key, nd.key)
	}

	lblacks, err := llrb.validatetree(nd.left, depth+1, h)
	if err != nil {
		return 0, err
	}
	rblacks, err := llrb.validatetree(nd.right, depth+1, h)
	if err != nil {
		return 0, err
	}
	if lblacks != rblacks {
		fmsg := "validate(): unbalancedblacks {%v,%v} at %v"
		return 0, errors.Errorf(fmsg, lblacks, rblacks, nd.key)
	}

	// subtree bounds, comparing with immediate children alone does
	// not catch a key misplaced deeper down.
	if nd.left != nil {
		if mx := nd.left.maxnode(); llrb.cmp(mx.key, nd.key) >= 0 {
			fmsg := "validate(): sort order, left subtree %v is >= node %v"
			return 0, errors.Errorf(fmsg, mx.key, nd.key)
		}
	}
	if nd.right != nil {
		if mn := nd.right.minnode(); llrb.cmp(mn.key, nd.key) <= 0 {
			fmsg := "validate(): sort order, right subtree %v is <= node %v"
			return 0, errors.Errorf(fmsg, mn.key, nd.key)
		}
	}

	if nd.isblack() {
		lblacks++
	}
	return lblacks, nil
}

func (llrb *LLRB[K, V]) validatestats() error {
	// n_count should match (n_inserts - n_deletes)
	n_count := llrb.n_count
	n_inserts, n_deletes := llrb.n_inserts, llrb.n_deletes
	if n_count != (n_inserts - n_deletes) {
		fmsg := "validatestats(): n_count:%v != (n_inserts:%v - n_deletes:%v)"
		return errors.Errorf(fmsg, n_count, n_inserts, n_deletes)
	}
	// live nodes should match n_count
	n_nodes, n_frees := llrb.n_nodes, llrb.n_frees
	if n_count != (n_nodes - n_frees) {
		fmsg := "validatestats(): n_count:%v != (n_nodes:%v - n_frees:%v)"
		return errors.Errorf(fmsg, n_count, n_nodes, n_frees)
	}
	return nil
}
