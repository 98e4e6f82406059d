package avl

import (
	"cmp"
	"fmt"
)

// Check validates the structural invariants of the tree: strict BST order,
// positive multiplicities, correct heights and balance factors within
// {-1,0,1}. It is meant to be used in tests.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
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

// checkNode checks the subtree at n, whose keys must lie strictly between
// lo and hi (nil meaning unbounded). It returns node count and height.
func checkNode[K cmp.Ordered](n *node[K], lo, hi *K) (int, int, error) {
	if n == nil {
		return 0, 0, nil
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
	lcnt, lh, err := checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rcnt, rh, err := checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	h := 1 + max(lh, rh)
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: node %v stores height %d, actual %d", ErrInvariant, n.key, n.height, h)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("%w: node %v has balance factor %d", ErrInvariant, n.key, bf)
	}
	return lcnt + rcnt + 1, h, nil
}
