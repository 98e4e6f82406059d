package btree

import "errors"

// ErrInvariant signals a violation of a structural B-tree invariant.
var ErrInvariant = errors.New("btree: invariant violated")
