package avl

import (
	"github.com/npillmayer/ordtrees/cost"
)

// Insert adds one occurrence of key. If key is already present, its
// multiplicity is incremented and the shape of the tree does not change.
func (t *Tree[K]) Insert(key K) {
	c := t.meter.Insertion()
	path := t.path[:0]
	n := t.root
	for n != nil {
		c.Compares++
		switch {
		case key < n.key:
			path = append(path, n)
			n = n.left
		case key > n.key:
			path = append(path, n)
			n = n.right
		default:
			n.count++
			t.path = path[:0]
			return
		}
	}
	leaf := &node[K]{key: key, count: 1, height: 1}
	c.Allocs++
	t.size++
	if len(path) == 0 {
		t.root = leaf
		c.Links++
		t.path = path
		return
	}
	parent := path[len(path)-1]
	if key < parent.key {
		parent.left = leaf
	} else {
		parent.right = leaf
	}
	c.Links++
	t.rebalancePath(path, c)
	t.path = path[:0]
}

// RemoveOne removes one occurrence of key and reports whether key was
// present. A key with multiplicity > 1 just has its count decremented;
// otherwise its node is removed from the tree and the tree is rebalanced.
func (t *Tree[K]) RemoveOne(key K) bool {
	c := t.meter.Removal()
	path := t.path[:0]
	n := t.root
	for n != nil {
		c.Compares++
		if key < n.key {
			path = append(path, n)
			n = n.left
		} else if key > n.key {
			path = append(path, n)
			n = n.right
		} else {
			break
		}
	}
	if n == nil {
		t.path = path[:0]
		return false
	}
	if n.count > 1 {
		n.count--
		t.path = path[:0]
		return true
	}
	target := n
	if n.left != nil && n.right != nil {
		// replace n's payload by its in-order successor, then splice out the
		// successor, which has no left child
		path = append(path, n)
		s := n.right
		for s.left != nil {
			c.Compares++
			path = append(path, s)
			s = s.left
		}
		n.key, n.count = s.key, s.count
		c.Links++
		target = s
	}
	child := target.left
	if child == nil {
		child = target.right
	}
	var parent *node[K]
	if len(path) > 0 {
		parent = path[len(path)-1]
	}
	t.replaceChild(parent, target, child, c)
	target.left, target.right = nil, nil
	c.Frees++
	t.size--
	t.rebalancePath(path, c)
	t.path = path[:0]
	return true
}

// rebalancePath walks the ancestor path bottom-up, recomputing heights and
// repairing every node whose balance factor left {-1,0,1}.
func (t *Tree[K]) rebalancePath(path []*node[K], c *cost.Tally) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		n.height = 1 + max(height(n.left), height(n.right))
		c.Rebalances++
		if sub := t.rebalance(n, c); sub != n {
			var parent *node[K]
			if i > 0 {
				parent = path[i-1]
			}
			t.replaceChild(parent, n, sub, c)
		}
	}
}

// rebalance repairs n if it is out of balance and returns the root of the
// repaired subtree. The selection of the case uses the "≥0 / ≤0" tie-break,
// which is required after deletions where the heavy child may be balanced.
func (t *Tree[K]) rebalance(n *node[K], c *cost.Tally) *node[K] {
	switch bf := balance(n); {
	case bf > 1:
		if balance(n.left) < 0 {
			n.left = t.rotateLeft(n.left, c)
		}
		return t.rotateRight(n, c)
	case bf < -1:
		if balance(n.right) > 0 {
			n.right = t.rotateRight(n.right, c)
		}
		return t.rotateLeft(n, c)
	}
	return n
}

// rotateLeft lifts n's right child into n's position and returns it. The
// caller re-links the returned node with n's former parent.
func (t *Tree[K]) rotateLeft(n *node[K], c *cost.Tally) *node[K] {
	r := n.right
	assert(r != nil, "avl: rotateLeft without right child")
	n.right = r.left
	r.left = n
	n.height = 1 + max(height(n.left), height(n.right))
	r.height = 1 + max(height(r.left), height(r.right))
	c.Links += 2
	c.Rebalances += 2
	c.Restructures++
	return r
}

// rotateRight lifts n's left child into n's position and returns it.
func (t *Tree[K]) rotateRight(n *node[K], c *cost.Tally) *node[K] {
	l := n.left
	assert(l != nil, "avl: rotateRight without left child")
	n.left = l.right
	l.right = n
	n.height = 1 + max(height(n.left), height(n.right))
	l.height = 1 + max(height(l.left), height(l.right))
	c.Links += 2
	c.Rebalances += 2
	c.Restructures++
	return l
}

// replaceChild makes repl take the place of old below parent. A nil parent
// denotes the root position.
func (t *Tree[K]) replaceChild(parent, old, repl *node[K], c *cost.Tally) {
	c.Links++
	if parent == nil {
		t.root = repl
		return
	}
	if parent.left == old {
		parent.left = repl
	} else {
		assert(parent.right == old, "avl: node is not a child of its recorded parent")
		parent.right = repl
	}
}
