/*
Package avl implements a height-balanced binary search tree (AVL tree) as an
ordered multiset.

Every node stores a key, the multiplicity of that key and the height of its
subtree. After every structural change the heights along the path to the
root are recomputed and any node with a balance factor outside {-1,0,1} is
repaired by a single or a double rotation.

Nodes do not point to their parents. Mutating operations record the path of
ancestors while descending and walk that path back up for rebalancing.

All structural work is charged to the tree's cost.Meter.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package avl

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
