package avl

import "errors"

// ErrInvariant signals a violation of a structural tree invariant.
var ErrInvariant = errors.New("avl: invariant violated")
