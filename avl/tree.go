package avl

import (
	"cmp"

	"github.com/npillmayer/ordtrees/cost"
)

type node[K cmp.Ordered] struct {
	key    K
	count  int // multiplicity, >= 1
	height int // height of subtree, 1 for a leaf
	left   *node[K]
	right  *node[K]
}

func height[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// balance is height(left) - height(right).
func balance[K cmp.Ordered](n *node[K]) int {
	return height(n.left) - height(n.right)
}

// Config configures an AVL tree.
type Config struct {
	// Meter receives the cost of tree operations. If nil, the tree creates a
	// private meter.
	Meter *cost.Meter
}

func (cfg Config) normalized() Config {
	if cfg.Meter == nil {
		cfg.Meter = cost.New()
	}
	return cfg
}

// Tree is an AVL tree holding keys of type K together with their
// multiplicities. The zero value is not usable, create trees with New.
//
// A tree must not be used from more than one goroutine at a time.
type Tree[K cmp.Ordered] struct {
	root  *node[K]
	size  int         // number of distinct keys
	meter *cost.Meter // receives structural cost
	path  []*node[K]  // scratch stack of ancestors, reused between operations
}

// New creates an empty tree.
func New[K cmp.Ordered](cfg Config) *Tree[K] {
	cfg = cfg.normalized()
	return &Tree[K]{meter: cfg.Meter}
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
	return t.root == nil
}

// Height returns the height of the tree, 0 for an empty tree.
func (t *Tree[K]) Height() int {
	return height(t.root)
}

// Count returns the multiplicity of key, or 0 if key is not present.
// Count does not charge the meter.
func (t *Tree[K]) Count(key K) int {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.count
		}
	}
	return 0
}

// Walk calls fn for every key in ascending order, together with its
// multiplicity. Iteration stops early if fn returns false.
func (t *Tree[K]) Walk(fn func(key K, count int) bool) {
	if fn == nil {
		return
	}
	walk(t.root, fn)
}

func walk[K cmp.Ordered](n *node[K], fn func(K, int) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, fn) && fn(n.key, n.count) && walk(n.right, fn)
}

// DrainInsertCost returns the accumulated insertion cost and resets it.
func (t *Tree[K]) DrainInsertCost() int64 {
	return t.meter.DrainInsert().Total()
}

// DrainRemoveCost returns the accumulated removal cost and resets it.
func (t *Tree[K]) DrainRemoveCost() int64 {
	return t.meter.DrainRemove().Total()
}

// Clear releases every node. The tree is empty and usable afterwards.
// Released nodes are charged to the removal tally.
func (t *Tree[K]) Clear() {
	c := t.meter.Removal()
	released := release(t.root, c)
	t.root, t.size = nil, 0
	t.path = t.path[:0]
	tracer().Debugf("avl: cleared tree, released %d nodes", released)
}

func release[K cmp.Ordered](n *node[K], c *cost.Tally) int {
	if n == nil {
		return 0
	}
	cnt := release(n.left, c) + release(n.right, c) + 1
	n.left, n.right = nil, nil
	c.Frees++
	return cnt
}
