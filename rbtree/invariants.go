package rbtree

import (
	"cmp"
	"fmt"
)

// Check validates BST order, multiplicities and the red-black properties.
// It is meant to be used in tests.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if isRed(t.root) {
		return fmt.Errorf("%w: root is red", ErrInvariant)
	}
	cnt, _, err := checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if cnt != t.size {
		return fmt.Errorf("%w: size mismatch (%d nodes, size=%d)", ErrInvariant, cnt, t.size)
	}
	return nil
}

// checkNode returns the node count and black-height of the subtree at n.
func checkNode[K cmp.Ordered](n *node[K], lo, hi *K) (int, int, error) {
	if n == nil {
		return 0, 1, nil
	}
	if lo != nil && n.key <= *lo {
		return 0, 0, fmt.Errorf("%w: key %v not greater than %v", ErrInvariant, n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		return 0, 0, fmt.Errorf("%w: key %v not less than %v", ErrInvariant, n.key, *hi)
	}
	if n.count < 1 {
		return 0, 0, fmt.Errorf("%w: key %v has multiplicity %d", ErrInvariant, n.key, n.count)
	}
	if n.color == Red && (isRed(n.left) || isRed(n.right)) {
		return 0, 0, fmt.Errorf("%w: red node %v has a red child", ErrInvariant, n.key)
	}
	lcnt, lbh, err := checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rcnt, rbh, err := checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, fmt.Errorf("%w: node %v has black-heights %d/%d", ErrInvariant, n.key, lbh, rbh)
	}
	bh := lbh
	if n.color == Black {
		bh++
	}
	return lcnt + rcnt + 1, bh, nil
}

// BlackHeight returns the number of black nodes on every path from the root
// down to an empty slot, counting the empty slot. The result is only
// meaningful for a valid tree.
func (t *Tree[K]) BlackHeight() int {
	bh := 1
	for n := t.root; n != nil; n = n.left {
		if n.color == Black {
			bh++
		}
	}
	return bh
}
