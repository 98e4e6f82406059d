package ordtrees

import "errors"

// ErrUnknownEngine is returned when an engine name is not registered.
var ErrUnknownEngine = errors.New("ordtrees: unknown engine")
