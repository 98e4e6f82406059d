/*
Package rbtree implements a red-black tree as an ordered multiset.

Nodes carry a key, its multiplicity and a color. Empty child slots are nil
and count as black; there is no shared sentinel node. Nodes do not point to
their parents: insertion and removal record the path of ancestors while
descending, and the fix-up loops walk that path upward, adjusting it when a
rotation changes the ancestry of the current node.

Invariants maintained after every operation:
  - the root is black,
  - no red node has a red child,
  - every path from a node down to an empty slot passes the same number of
    black nodes.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package rbtree

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
