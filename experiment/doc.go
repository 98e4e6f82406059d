/*
Package experiment measures the structural cost of the tree engines of
package ordtrees on identical workloads.

For every repetition a shuffled permutation of the keys 1…MaxN is drawn and
shared by all engines. Each engine inserts the keys one by one. Whenever the
number of inserted keys n reaches a multiple of the sample step, the cost of
the insertions since the previous sample is recorded, then the first n keys
are removed one by one and the cost of these removals is recorded. Finally
the tree is cleared and rebuilt with the first n keys, and the cost of
rebuilding is discarded. Samples are averaged over all repetitions.

Engines are measured concurrently, each with its own tree and cost meter.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package experiment

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtrees'
func tracer() tracing.Trace {
	return tracing.Select("ordtrees")
}
