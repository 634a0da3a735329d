/*
Package hiccup models markup-like element trees as tagged, ordered
structures: every element is a tag, an optional attribute mapping, and a
sequence of children. Children may be elements themselves, opaque scalar
content, or ordered collections of values produced by iteration.

Trees of this shape are typically produced by rendering functions outside
of this module; package hiccup only fixes their Go representation and
offers constructors, a YAML ingestion adapter and a debugging printer.
Trees are never mutated after construction.

License

Governed by an MIT license. License file may be found in the root
folder of this module.

Copyright © 2016–2023 Boaz Rosenan

*/
package hiccup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rq.hiccup'.
func tracer() tracing.Trace {
	return tracing.Select("rq.hiccup")
}
