package llrb

import "io"
import "fmt"
import "strings"

const (
	ndBlack uint8 = 0x1
)

// node in LLRB tree. Colour is the colour of the link from parent to
// this node. A nil node is an absent child and is always black.
type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
	flags uint8
}

func newnode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value} // born red
}

func (nd *node[K, V]) isblack() bool {
	if nd == nil {
		return true
	}
	return (nd.flags & ndBlack) == ndBlack
}

func (nd *node[K, V]) isred() bool {
	return !nd.isblack()
}

func (nd *node[K, V]) setblack() *node[K, V] {
	nd.flags |= ndBlack
	return nd
}

func (nd *node[K, V]) setred() *node[K, V] {
	nd.flags &= ^ndBlack
	return nd
}

// togglelink on an absent child is a no-op.
func (nd *node[K, V]) togglelink() *node[K, V] {
	if nd != nil {
		nd.flags ^= ndBlack
	}
	return nd
}

func (nd *node[K, V]) copycolor(other *node[K, V]) *node[K, V] {
	if other.isblack() {
		return nd.setblack()
	}
	return nd.setred()
}

func (nd *node[K, V]) minnode() *node[K, V] {
	for nd != nil && nd.left != nil {
		nd = nd.left
	}
	return nd
}

func (nd *node[K, V]) maxnode() *node[K, V] {
	for nd != nil && nd.right != nil {
		nd = nd.right
	}
	return nd
}

func (nd *node[K, V]) clone() *node[K, V] {
	if nd == nil {
		return nil
	}
	newnd := *nd
	newnd.left, newnd.right = nd.left.clone(), nd.right.clone()
	return &newnd
}

//---- maintanence methods.

func (nd *node[K, V]) repr() string {
	return fmt.Sprintf("%v %v", nd.key, nd.isblack())
}

func (nd *node[K, V]) pprint(w io.Writer, prefix string) {
	if nd == nil {
		fmt.Fprintf(w, "%v\n", nil)
		return
	}
	fmt.Fprintf(w, "%v%v\n", prefix, nd.repr())
	prefix += "  "
	fmt.Fprintf(w, "%vleft: ", prefix)
	nd.left.pprint(w, prefix)
	fmt.Fprintf(w, "%vright: ", prefix)
	nd.right.pprint(w, prefix)
}

func (nd *node[K, V]) dotdump(w io.Writer) {
	if nd == nil {
		return
	}

	whatcolor := func(childnd *node[K, V]) string {
		if childnd.isred() {
			return "red"
		}
		return "black"
	}

	lines := []string{
		fmt.Sprintf("  \"%v\" [label=\"{%v}\"];\n", nd.key, nd.key),
	}
	fmsg := "  \"%v\" -> \"%v\" [color=%v];\n"
	if nd.left != nil {
		line := fmt.Sprintf(fmsg, nd.key, nd.left.key, whatcolor(nd.left))
		lines = append(lines, line)
	}
	if nd.right != nil {
		line := fmt.Sprintf(fmsg, nd.key, nd.right.key, whatcolor(nd.right))
		lines = append(lines, line)
	}
	io.WriteString(w, strings.Join(lines, ""))
	nd.left.dotdump(w)
	nd.right.dotdump(w)
}
