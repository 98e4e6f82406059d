package rbtree

import (
	"cmp"

	"github.com/npillmayer/ordtrees/cost"
)

// Color is the balance attribute of a red-black node.
type Color bool

const (
	Red   Color = false
	Black Color = true
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}

type node[K cmp.Ordered] struct {
	key   K
	count int // multiplicity, >= 1
	color Color
	left  *node[K]
	right *node[K]
}

// colorOf treats empty slots as black.
func colorOf[K cmp.Ordered](n *node[K]) Color {
	if n == nil {
		return Black
	}
	return n.color
}

func isRed[K cmp.Ordered](n *node[K]) bool {
	return colorOf(n) == Red
}

// Config configures a red-black tree.
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

// Tree is a red-black tree holding keys of type K together with their
// multiplicities. Create trees with New.
//
// A tree must not be used from more than one goroutine at a time.
type Tree[K cmp.Ordered] struct {
	root  *node[K]
	size  int         // number of distinct keys
	meter *cost.Meter // receives structural cost
	path  []*node[K]  // scratch stack of ancestors
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
	// iterative in-order walk with an explicit stack
	stack := make([]*node[K], 0, 64)
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.key, n.count) {
			return
		}
		n = n.right
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

// Clear releases every node. The tree stays usable.
func (t *Tree[K]) Clear() {
	c := t.meter.Removal()
	released := release(t.root, c)
	t.root, t.size = nil, 0
	t.path = t.path[:0]
	tracer().Debugf("rbtree: cleared tree, released %d nodes", released)
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

// --- Rotations -------------------------------------------------------------

// rotateLeft lifts x's right child y into x's position below parent (nil
// for the root) and returns y.
func (t *Tree[K]) rotateLeft(x, parent *node[K], c *cost.Tally) *node[K] {
	y := x.right
	assert(y != nil, "rbtree: rotateLeft without right child")
	x.right = y.left
	y.left = x
	c.Links += 2
	c.Restructures++
	t.replaceChild(parent, x, y, c)
	return y
}

// rotateRight lifts x's left child y into x's position below parent and
// returns y.
func (t *Tree[K]) rotateRight(x, parent *node[K], c *cost.Tally) *node[K] {
	y := x.left
	assert(y != nil, "rbtree: rotateRight without left child")
	x.left = y.right
	y.right = x
	c.Links += 2
	c.Restructures++
	t.replaceChild(parent, x, y, c)
	return y
}

func (t *Tree[K]) replaceChild(parent, old, repl *node[K], c *cost.Tally) {
	c.Links++
	if parent == nil {
		t.root = repl
		return
	}
	if parent.left == old {
		parent.left = repl
	} else {
		assert(parent.right == old, "rbtree: node is not a child of its recorded parent")
		parent.right = repl
	}
}

func (t *Tree[K]) paint(n *node[K], col Color, c *cost.Tally) {
	n.color = col
	c.Rebalances++
}
