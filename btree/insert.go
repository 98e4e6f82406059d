package btree

import (
	"github.com/npillmayer/ordtrees/cost"
)

// Insert adds one occurrence of key. If key is already present, its
// multiplicity is incremented and the structure of the tree is not touched.
// Otherwise full nodes are split on the way down and key is placed into a
// leaf with multiplicity 1.
func (t *Tree[K]) Insert(key K) {
	c := t.meter.Insertion()
	if n, i := t.search(key, c); n != nil {
		n.counts[i]++
		return
	}
	if t.isFull(t.root) {
		old := t.root
		t.root = t.newNode(false, c)
		t.root.children = append(t.root.children, old)
		c.Links++
		t.splitChild(t.root, 0, c)
		tracer().Debugf("btree: split root, height is now %d", t.Height())
	}
	t.insertNonFull(t.root, key, c)
	t.size++
}

// insertNonFull descends from the non-full node x to the leaf receiving key,
// splitting every full child before entering it.
func (t *Tree[K]) insertNonFull(x *node[K], key K, c *cost.Tally) {
	var moved int
	for {
		i, found := t.locate(x, key, c)
		assert(!found, "insertNonFull: key is already present")
		if x.isLeaf() {
			x.keys, moved = insertAt(x.keys, i, key)
			x.counts, _ = insertAt(x.counts, i, 1)
			c.Links += int64(moved + 1)
			return
		}
		if t.isFull(x.children[i]) {
			t.splitChild(x, i, c)
			c.Compares++
			if key > x.keys[i] {
				i++
			}
		}
		x = x.children[i]
	}
}

// splitChild splits the full child y = x.children[i] around its median key.
// The median moves up into x at position i, the upper half of y becomes a new
// right sibling of y.
func (t *Tree[K]) splitChild(x *node[K], i int, c *cost.Tally) {
	y := x.children[i]
	assert(t.isFull(y), "splitChild: child is not full")
	m := t.degree - 1 // position of the median
	z := t.newNode(y.isLeaf(), c)
	median, medianCount := y.keys[m], y.counts[m]
	z.keys = append(z.keys, y.keys[m+1:]...)
	z.counts = append(z.counts, y.counts[m+1:]...)
	c.Links += int64(len(z.keys))
	if !y.isLeaf() {
		z.children = append(z.children, y.children[m+1:]...)
		c.Links += int64(len(z.children))
		y.children = truncate(y.children, m+1)
	}
	y.keys = truncate(y.keys, m)
	y.counts = truncate(y.counts, m)
	var moved, cmoved int
	x.keys, moved = insertAt(x.keys, i, median)
	x.counts, _ = insertAt(x.counts, i, medianCount)
	x.children, cmoved = insertAt(x.children, i+1, z)
	c.Links += int64(moved + cmoved + 2)
	c.Restructures++
}
