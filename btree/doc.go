/*
Package btree implements a multiway balanced search tree (B-tree) of minimum
degree t as an ordered multiset.

Every node holds a strictly increasing sequence of up to 2t−1 keys, each with
its multiplicity, and an inner node holds one child more than it has keys.
Every node except the root holds at least t−1 keys, and all leaves are on the
same level. An empty tree is a leaf root without keys.

Insertion splits full nodes on the way down, so that a key can always be
placed into a leaf by a single shift of the keys above its position.
Deletion fills under-occupied children before descending into them, by
borrowing a key from a sibling through the parent or by merging with a
sibling.

Before an insertion descends, the tree is searched for the key. An existing
key gets its multiplicity incremented and the tree is left as it is; no node
is split on behalf of a duplicate.

A minimum degree below 1 is clamped to 1. With t=1 nodes hold at most one key
and non-root nodes may be empty; the tree degenerates but stays valid. It
does not stay shallow, though: with t=1 the height grows linearly with the
number of keys, and so do the cost of every operation and the recursion
depth of removals. For t ≥ 2 the height is bounded by O(log_t n).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtrees'
func tracer() tracing.Trace {
	return tracing.Select("ordtrees")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
