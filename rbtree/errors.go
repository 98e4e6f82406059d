package rbtree

import "errors"

// ErrInvariant signals a violation of a red-black invariant.
var ErrInvariant = errors.New("rbtree: invariant violated")
