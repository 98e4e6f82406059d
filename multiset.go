package ordtrees

import (
	"cmp"

	"github.com/npillmayer/ordtrees/avl"
	"github.com/npillmayer/ordtrees/btree"
	"github.com/npillmayer/ordtrees/cost"
	"github.com/npillmayer/ordtrees/rbtree"
	"github.com/npillmayer/ordtrees/render"
)

// Multiset is the capability surface shared by all tree engines: an ordered
// multiset of keys which counts the structural work of its operations.
//
// Implementations are not safe for concurrent use.
type Multiset[K cmp.Ordered] interface {
	// Insert adds one occurrence of key.
	Insert(key K)
	// RemoveOne removes one occurrence of key and reports whether key was
	// present.
	RemoveOne(key K) bool
	// Clear removes all keys. The multiset stays usable.
	Clear()
	// DrainInsertCost returns the cost accumulated by insertions since the
	// last drain and resets it.
	DrainInsertCost() int64
	// DrainRemoveCost returns the cost accumulated by removals and clears
	// since the last drain and resets it.
	DrainRemoveCost() int64

	Len() int
	Count(key K) int
	Walk(fn func(key K, count int) bool)
	Check() error
	Meter() *cost.Meter
	Shape() render.Node
}

var (
	_ Multiset[int] = (*avl.Tree[int])(nil)
	_ Multiset[int] = (*rbtree.Tree[int])(nil)
	_ Multiset[int] = (*btree.Tree[int])(nil)
)

// Keys returns the keys of m in ascending order, every key repeated
// according to its multiplicity.
func Keys[K cmp.Ordered](m Multiset[K]) []K {
	keys := make([]K, 0, m.Len())
	m.Walk(func(key K, count int) bool {
		for range count {
			keys = append(keys, key)
		}
		return true
	})
	return keys
}
