package btree

import (
	"cmp"

	"github.com/npillmayer/ordtrees/cost"
)

// Tree is a B-tree of minimum degree t holding keys of type K together with
// their multiplicities. The zero value is not usable, create trees with New.
//
// A tree must not be used from more than one goroutine at a time.
type Tree[K cmp.Ordered] struct {
	root   *node[K] // never nil, an empty tree has a leaf root without keys
	degree int
	size   int // number of distinct keys
	meter  *cost.Meter
}

// New creates an empty tree. A minimum degree below MinDegree is clamped.
func New[K cmp.Ordered](cfg Config) *Tree[K] {
	cfg = cfg.normalized()
	t := &Tree[K]{degree: cfg.Degree, meter: cfg.Meter}
	t.root = t.newNode(true, nil)
	return t
}

// Degree returns the effective minimum degree t.
func (t *Tree[K]) Degree() int {
	return t.degree
}

// Meter returns the cost meter of the tree.
func (t *Tree[K]) Meter() *cost.Meter {
	return t.meter
}

// Len returns the number of distinct keys in the tree.
func (t *Tree[K]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.size == 0
}

// Height returns the number of levels of the tree. A tree consisting of a
// single leaf root, even an empty one, has height 1. For t ≥ 2 the height is
// logarithmic in Len; for t=1 it grows linearly.
func (t *Tree[K]) Height() int {
	h := 1
	for n := t.root; !n.isLeaf(); n = n.children[0] {
		h++
	}
	return h
}

// RootKeys returns the number of keys held by the root node.
func (t *Tree[K]) RootKeys() int {
	return len(t.root.keys)
}

// Count returns the multiplicity of key, or 0 if key is not present.
// Count does not charge the meter.
func (t *Tree[K]) Count(key K) int {
	var scratch cost.Tally
	if n, i := t.search(key, &scratch); n != nil {
		return n.counts[i]
	}
	return 0
}

// search returns the node holding key and the key's position within it,
// or nil if key is not present.
func (t *Tree[K]) search(key K, c *cost.Tally) (*node[K], int) {
	n := t.root
	for {
		i, found := t.locate(n, key, c)
		if found {
			return n, i
		}
		if n.isLeaf() {
			return nil, 0
		}
		n = n.children[i]
	}
}

// DrainInsertCost returns the accumulated insertion cost and resets it.
func (t *Tree[K]) DrainInsertCost() int64 {
	return t.meter.DrainInsert().Total()
}

// DrainRemoveCost returns the accumulated removal cost and resets it.
func (t *Tree[K]) DrainRemoveCost() int64 {
	return t.meter.DrainRemove().Total()
}

// Clear releases every node bottom-up and leaves an empty leaf root. The tree
// is usable afterwards. Released nodes are charged to the removal tally.
func (t *Tree[K]) Clear() {
	if t.root.isLeaf() && t.root.isEmpty() {
		return
	}
	c := t.meter.Removal()
	released := release(t.root, c)
	t.root = t.newNode(true, nil)
	t.size = 0
	tracer().Debugf("btree: cleared tree, released %d nodes", released)
}

func release[K cmp.Ordered](n *node[K], c *cost.Tally) int {
	cnt := 1
	for _, child := range n.children {
		cnt += release(child, c)
	}
	clear(n.children)
	n.children, n.keys, n.counts = nil, nil, nil
	c.Frees++
	return cnt
}
