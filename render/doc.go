/*
Package render draws the internal shape of ordtrees engines, for debugging
and for the treecost command.

Engines expose a read-only structural view implementing Node. Dot writes that
view in Graphviz DOT format, Console prints it as an indented tree to a
terminal, optionally colored.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtrees'
func tracer() tracing.Trace {
	return tracing.Select("ordtrees")
}
