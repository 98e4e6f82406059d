package btree

import "cmp"

// node is a B-tree page. keys and counts are parallel; for an inner node
// len(children) == len(keys)+1, a leaf has no children.
//
// Storage is allocated once with the capacities of a full node (2t−1 keys,
// 2t children); all shifting happens inside that storage.
type node[K cmp.Ordered] struct {
	keys     []K
	counts   []int
	children []*node[K]
	leaf     bool
}

func (n *node[K]) isLeaf() bool {
	return n.leaf
}

func (n *node[K]) isEmpty() bool {
	return len(n.keys) == 0
}
