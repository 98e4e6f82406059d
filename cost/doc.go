/*
Package cost provides the instrumentation layer for the ordtrees engines.

Every engine owns a Meter. A meter keeps two tallies, one for the insertion
path and one for the removal path, and each tally counts structural work by
category: key comparisons, link rewrites, rebalancing updates, restructuring
steps (rotations, splits, borrows, merges) and node allocation/release.

Callers read a tally and reset it in a single step by draining it:

	ins := tree.Meter().DrainInsert()
	fmt.Println(ins.Total(), ins.Restructures)

Meters are not safe for concurrent use. A meter may be shared between several
trees, in which case the caller must not interleave operations of different
trees between two drains if per-tree figures are wanted.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package cost
