package btree

import (
	"cmp"

	"github.com/npillmayer/ordtrees/cost"
)

// Walk calls fn for every key in ascending order, together with its
// multiplicity. Iteration stops early if fn returns false.
func (t *Tree[K]) Walk(fn func(key K, count int) bool) {
	if fn == nil {
		return
	}
	walkNode(t.root, fn)
}

func walkNode[K cmp.Ordered](n *node[K], fn func(K, int) bool) bool {
	assert(n != nil, "walkNode called with nil node")
	for i, key := range n.keys {
		if !n.isLeaf() && !walkNode(n.children[i], fn) {
			return false
		}
		if !fn(key, n.counts[i]) {
			return false
		}
	}
	if !n.isLeaf() {
		return walkNode(n.children[len(n.keys)], fn)
	}
	return true
}

// maxEntry returns the largest key in the subtree at n together with its
// multiplicity. Nodes without keys are skipped, which only happens for
// minimum degree 1. ok is false if the subtree holds no key at all.
// Every node visited is charged as a comparison.
func maxEntry[K cmp.Ordered](n *node[K], c *cost.Tally) (key K, count int, ok bool) {
	c.Compares++
	if n.isLeaf() {
		if last := len(n.keys) - 1; last >= 0 {
			return n.keys[last], n.counts[last], true
		}
		return key, 0, false
	}
	for j := len(n.children) - 1; j >= 0; j-- {
		if key, count, ok = maxEntry(n.children[j], c); ok {
			return
		}
		if j > 0 {
			return n.keys[j-1], n.counts[j-1], true
		}
	}
	return key, 0, false
}

// minEntry is the mirror image of maxEntry.
func minEntry[K cmp.Ordered](n *node[K], c *cost.Tally) (key K, count int, ok bool) {
	c.Compares++
	if n.isLeaf() {
		if len(n.keys) > 0 {
			return n.keys[0], n.counts[0], true
		}
		return key, 0, false
	}
	for j := 0; j < len(n.children); j++ {
		if key, count, ok = minEntry(n.children[j], c); ok {
			return
		}
		if j < len(n.keys) {
			return n.keys[j], n.counts[j], true
		}
	}
	return key, 0, false
}
