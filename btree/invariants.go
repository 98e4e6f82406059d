package btree

import (
	"cmp"
	"fmt"
)

// Check validates the structural invariants of the tree:
//
//   - every node holds at most 2t−1 keys, every non-root node at least t−1
//   - an inner root holds at least one key
//   - keys within a node are strictly increasing, and every key of a subtree
//     lies strictly between the separators bounding the subtree
//   - an inner node with k keys has k+1 children, leaves have none
//   - all leaves are on the same level
//   - multiplicities are positive
//
// It is meant to be used in tests.
func (t *Tree[K]) Check() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: tree has no root", ErrInvariant)
	}
	if !t.root.isLeaf() && t.root.isEmpty() {
		return fmt.Errorf("%w: inner root without keys", ErrInvariant)
	}
	leafDepth := -1
	cnt, err := t.checkNode(t.root, 0, &leafDepth, nil, nil)
	if err != nil {
		return err
	}
	if cnt != t.size {
		return fmt.Errorf("%w: size mismatch (%d keys, size=%d)", ErrInvariant, cnt, t.size)
	}
	return nil
}

func (t *Tree[K]) checkNode(n *node[K], depth int, leafDepth *int, lo, hi *K) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node at depth %d", ErrInvariant, depth)
	}
	if len(n.keys) > t.maxKeys() {
		return 0, fmt.Errorf("%w: node at depth %d holds %d keys, max is %d",
			ErrInvariant, depth, len(n.keys), t.maxKeys())
	}
	if n != t.root && len(n.keys) < t.minKeys() {
		return 0, fmt.Errorf("%w: node at depth %d holds %d keys, min is %d",
			ErrInvariant, depth, len(n.keys), t.minKeys())
	}
	if len(n.counts) != len(n.keys) {
		return 0, fmt.Errorf("%w: node at depth %d has %d keys but %d counts",
			ErrInvariant, depth, len(n.keys), len(n.counts))
	}
	if err := checkKeys(n, lo, hi); err != nil {
		return 0, err
	}
	if n.isLeaf() {
		if len(n.children) != 0 {
			return 0, fmt.Errorf("%w: leaf at depth %d has children", ErrInvariant, depth)
		}
		if *leafDepth < 0 {
			*leafDepth = depth
		} else if *leafDepth != depth {
			return 0, fmt.Errorf("%w: leaves at depths %d and %d", ErrInvariant, *leafDepth, depth)
		}
		return len(n.keys), nil
	}
	if len(n.children) != len(n.keys)+1 {
		return 0, fmt.Errorf("%w: inner node at depth %d has %d keys and %d children",
			ErrInvariant, depth, len(n.keys), len(n.children))
	}
	cnt := len(n.keys)
	for i, child := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			chi = &n.keys[i]
		}
		c, err := t.checkNode(child, depth+1, leafDepth, clo, chi)
		if err != nil {
			return 0, err
		}
		cnt += c
	}
	return cnt, nil
}

func checkKeys[K cmp.Ordered](n *node[K], lo, hi *K) error {
	for i, key := range n.keys {
		if i > 0 && n.keys[i-1] >= key {
			return fmt.Errorf("%w: keys %v and %v out of order", ErrInvariant, n.keys[i-1], key)
		}
		if lo != nil && key <= *lo {
			return fmt.Errorf("%w: key %v not greater than separator %v", ErrInvariant, key, *lo)
		}
		if hi != nil && key >= *hi {
			return fmt.Errorf("%w: key %v not less than separator %v", ErrInvariant, key, *hi)
		}
		if n.counts[i] < 1 {
			return fmt.Errorf("%w: key %v has multiplicity %d", ErrInvariant, key, n.counts[i])
		}
	}
	return nil
}
