package rbtree

import (
	"github.com/npillmayer/ordtrees/cost"
)

// Insert adds one occurrence of key. If key is already present, its
// multiplicity is incremented and the tree does not change shape.
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
	z := &node[K]{key: key, count: 1, color: Red}
	c.Allocs++
	t.size++
	if len(path) == 0 {
		t.root = z
	} else if p := path[len(path)-1]; key < p.key {
		p.left = z
	} else {
		p.right = z
	}
	c.Links++
	path = t.insertFixup(z, path, c)
	t.paint(t.root, Black, c)
	t.path = path[:0]
}

// insertFixup restores the red-black properties after z has been linked in
// as a red node. path holds the ancestors of z, root first.
func (t *Tree[K]) insertFixup(z *node[K], path []*node[K], c *cost.Tally) []*node[K] {
	for len(path) > 0 && isRed(path[len(path)-1]) {
		c.Compares++
		// a red parent is never the root, so the grandparent exists
		assert(len(path) >= 2, "rbtree: red node at root position")
		p, g := path[len(path)-1], path[len(path)-2]
		var gg *node[K]
		if len(path) >= 3 {
			gg = path[len(path)-3]
		}
		if p == g.left {
			if u := g.right; isRed(u) {
				t.paint(p, Black, c)
				t.paint(u, Black, c)
				t.paint(g, Red, c)
				z = g
				path = path[:len(path)-2]
				continue
			}
			if z == p.right { // inner grandchild
				t.rotateLeft(p, g, c)
				p = z
			}
			t.paint(p, Black, c)
			t.paint(g, Red, c)
			t.rotateRight(g, gg, c)
		} else {
			if u := g.left; isRed(u) {
				t.paint(p, Black, c)
				t.paint(u, Black, c)
				t.paint(g, Red, c)
				z = g
				path = path[:len(path)-2]
				continue
			}
			if z == p.left { // inner grandchild
				t.rotateRight(p, g, c)
				p = z
			}
			t.paint(p, Black, c)
			t.paint(g, Red, c)
			t.rotateLeft(g, gg, c)
		}
		break // p is black now
	}
	return path
}

// RemoveOne removes one occurrence of key and reports whether key was
// present. A key with multiplicity > 1 just has its count decremented.
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
		// splice the in-order successor instead, after moving its payload
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
	x := target.left
	if x == nil {
		x = target.right
	}
	var parent *node[K]
	if len(path) > 0 {
		parent = path[len(path)-1]
	}
	t.replaceChild(parent, target, x, c)
	removed := target.color
	target.left, target.right = nil, nil
	c.Frees++
	t.size--
	if removed == Black {
		path = t.removeFixup(x, path, c)
	}
	t.path = path[:0]
	return true
}

// removeFixup restores the black-height after a black node has been spliced
// out and x (possibly empty) has taken its place. path holds the ancestors
// of x's position, root first.
func (t *Tree[K]) removeFixup(x *node[K], path []*node[K], c *cost.Tally) []*node[K] {
	for len(path) > 0 && !isRed(x) {
		c.Compares++
		p := path[len(path)-1]
		var g *node[K]
		if len(path) >= 2 {
			g = path[len(path)-2]
		}
		// If x is empty and p.left is empty as well, x is the left child: the
		// other side carries extra black height and cannot be empty.
		if x == p.left {
			w := p.right
			assert(w != nil, "rbtree: missing sibling in remove fix-up")
			if isRed(w) {
				t.paint(w, Black, c)
				t.paint(p, Red, c)
				t.rotateLeft(p, g, c)
				path = append(path[:len(path)-1], w, p) // w is p's parent now
				g = w
				w = p.right
			}
			if !isRed(w.left) && !isRed(w.right) {
				t.paint(w, Red, c)
				x = p
				path = path[:len(path)-1]
				continue
			}
			if !isRed(w.right) {
				t.paint(w.left, Black, c)
				t.paint(w, Red, c)
				w = t.rotateRight(w, p, c)
			}
			t.paint(w, p.color, c)
			t.paint(p, Black, c)
			t.paint(w.right, Black, c)
			t.rotateLeft(p, g, c)
		} else {
			w := p.left
			assert(w != nil, "rbtree: missing sibling in remove fix-up")
			if isRed(w) {
				t.paint(w, Black, c)
				t.paint(p, Red, c)
				t.rotateRight(p, g, c)
				path = append(path[:len(path)-1], w, p)
				g = w
				w = p.left
			}
			if !isRed(w.left) && !isRed(w.right) {
				t.paint(w, Red, c)
				x = p
				path = path[:len(path)-1]
				continue
			}
			if !isRed(w.left) {
				t.paint(w.right, Black, c)
				t.paint(w, Red, c)
				w = t.rotateLeft(w, p, c)
			}
			t.paint(w, p.color, c)
			t.paint(p, Black, c)
			t.paint(w.left, Black, c)
			t.rotateRight(p, g, c)
		}
		x = t.root
		path = path[:0]
	}
	if x != nil {
		t.paint(x, Black, c)
	}
	return path
}
