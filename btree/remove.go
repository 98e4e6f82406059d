package btree

import (
	"github.com/npillmayer/ordtrees/cost"
)

// RemoveOne removes one occurrence of key. It returns false if key is not
// present, in which case only the comparisons of the search are charged.
// A multiplicity above 1 is decremented; otherwise the key is deleted from
// the tree and the tree is restructured as needed.
func (t *Tree[K]) RemoveOne(key K) bool {
	c := t.meter.Removal()
	n, i := t.search(key, c)
	if n == nil {
		return false
	}
	if n.counts[i] > 1 {
		n.counts[i]--
		return true
	}
	t.remove(t.root, key, c)
	t.size--
	for t.root.isEmpty() && !t.root.isLeaf() {
		old := t.root
		t.root = old.children[0]
		old.children, old.keys, old.counts = nil, nil, nil
		c.Links++
		c.Frees++
		tracer().Debugf("btree: root collapsed, height is now %d", t.Height())
	}
	return true
}

// remove physically deletes key, which must be present in the subtree at x,
// regardless of its multiplicity. Every node entered, except possibly the
// root, holds at least t keys, so a key may be taken out of it without
// further repair.
func (t *Tree[K]) remove(x *node[K], key K, c *cost.Tally) {
	for {
		i, found := t.locate(x, key, c)
		if found {
			if x.isLeaf() {
				var moved int
				x.keys, moved = removeAt(x.keys, i)
				x.counts, _ = removeAt(x.counts, i)
				c.Links += int64(moved)
				return
			}
			t.removeFromInner(x, i, c)
			return
		}
		assert(!x.isLeaf(), "remove: key vanished from the tree")
		if len(x.children[i].keys) < t.degree {
			i = t.fill(x, i, c)
		}
		x = x.children[i]
	}
}

// removeFromInner deletes key x.keys[i] from the inner node x. The key is
// replaced by its predecessor or successor if the respective child can spare
// a key; otherwise both children are merged around the key and the key is
// deleted from the merged node.
func (t *Tree[K]) removeFromInner(x *node[K], i int, c *cost.Tally) {
	left, right := x.children[i], x.children[i+1]
	c.Compares++
	if len(left.keys) >= t.degree {
		pk, pc, ok := maxEntry(left, c)
		assert(ok, "removeFromInner: no predecessor in a non-empty child")
		x.keys[i], x.counts[i] = pk, pc
		c.Links++
		t.remove(left, pk, c)
		return
	}
	c.Compares++
	if len(right.keys) >= t.degree {
		sk, sc, ok := minEntry(right, c)
		assert(ok, "removeFromInner: no successor in a non-empty child")
		x.keys[i], x.counts[i] = sk, sc
		c.Links++
		t.remove(right, sk, c)
		return
	}
	key := x.keys[i]
	t.merge(x, i, c)
	t.remove(left, key, c)
}

// fill makes sure child x.children[i] holds at least t keys, borrowing from
// a sibling or merging with one. It returns the position of the child which
// now covers the key range of the original child.
func (t *Tree[K]) fill(x *node[K], i int, c *cost.Tally) int {
	c.Compares++
	if i > 0 && len(x.children[i-1].keys) >= t.degree {
		t.borrowFromLeft(x, i, c)
		return i
	}
	c.Compares++
	if i < len(x.keys) && len(x.children[i+1].keys) >= t.degree {
		t.borrowFromRight(x, i, c)
		return i
	}
	if i < len(x.keys) {
		t.merge(x, i, c)
		return i
	}
	t.merge(x, i-1, c)
	return i - 1
}

// borrowFromLeft rotates a key from the left sibling of x.children[i]
// through the parent separator into that child.
func (t *Tree[K]) borrowFromLeft(x *node[K], i int, c *cost.Tally) {
	child, sib := x.children[i], x.children[i-1]
	last := len(sib.keys) - 1
	var moved int
	child.keys, moved = insertAt(child.keys, 0, x.keys[i-1])
	child.counts, _ = insertAt(child.counts, 0, x.counts[i-1])
	c.Links += int64(moved + 1)
	if !child.isLeaf() {
		lastChild := len(sib.children) - 1
		child.children, moved = insertAt(child.children, 0, sib.children[lastChild])
		sib.children = truncate(sib.children, lastChild)
		c.Links += int64(moved + 1)
	}
	x.keys[i-1], x.counts[i-1] = sib.keys[last], sib.counts[last]
	sib.keys = truncate(sib.keys, last)
	sib.counts = truncate(sib.counts, last)
	c.Links++
	c.Restructures++
}

// borrowFromRight rotates a key from the right sibling of x.children[i]
// through the parent separator into that child.
func (t *Tree[K]) borrowFromRight(x *node[K], i int, c *cost.Tally) {
	child, sib := x.children[i], x.children[i+1]
	child.keys = append(child.keys, x.keys[i])
	child.counts = append(child.counts, x.counts[i])
	c.Links++
	var moved int
	if !child.isLeaf() {
		child.children = append(child.children, sib.children[0])
		sib.children, moved = removeAt(sib.children, 0)
		c.Links += int64(moved + 1)
	}
	x.keys[i], x.counts[i] = sib.keys[0], sib.counts[0]
	sib.keys, moved = removeAt(sib.keys, 0)
	sib.counts, _ = removeAt(sib.counts, 0)
	c.Links += int64(moved + 1)
	c.Restructures++
}

// merge joins x.children[i], the separator x.keys[i] and x.children[i+1]
// into x.children[i] and releases the right node.
func (t *Tree[K]) merge(x *node[K], i int, c *cost.Tally) {
	left, right := x.children[i], x.children[i+1]
	left.keys = append(left.keys, x.keys[i])
	left.counts = append(left.counts, x.counts[i])
	left.keys = append(left.keys, right.keys...)
	left.counts = append(left.counts, right.counts...)
	c.Links += int64(1 + len(right.keys))
	if !left.isLeaf() {
		left.children = append(left.children, right.children...)
		c.Links += int64(len(right.children))
	}
	assert(len(left.keys) <= t.maxKeys(), "merge: merged node overflows")
	var moved, cmoved int
	x.keys, moved = removeAt(x.keys, i)
	x.counts, _ = removeAt(x.counts, i)
	x.children, cmoved = removeAt(x.children, i+1)
	c.Links += int64(moved + cmoved)
	right.keys, right.counts, right.children = nil, nil, nil
	c.Frees++
	c.Restructures++
}
