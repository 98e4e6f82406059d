/*
Package ordtrees offers ordered multisets of keys, backed by interchangeable
self-balancing search trees, which count the structural work they perform.

Three engines are available:

  - package avl: a height-balanced binary tree
  - package rbtree: a red-black binary tree
  - package btree: a multiway B-tree of configurable minimum degree

All of them implement Multiset. Every key is stored once, together with its
multiplicity: inserting a present key increments the multiplicity, RemoveOne
decrements it and deletes the key only when the last occurrence goes away.

Cost accounting

Every tree charges comparisons, link rewrites, rebalancing steps, structural
changes, allocations and releases to a cost.Meter. The meter keeps separate
tallies for insertions and for removals, which clients read and reset with
DrainInsertCost and DrainRemoveCost. This makes it possible to compare the
engines on identical workloads, as package experiment does.

Engines are selected by name:

	m, err := ordtrees.New[int]("b5") // B-tree with t=5
	m.Insert(42)
	m.Insert(42)
	m.RemoveOne(42)   // 42 is still present once

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package ordtrees

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtrees'
func tracer() tracing.Trace {
	return tracing.Select("ordtrees")
}
