/*
Package rq is a selector engine for hiccup-style element trees: it
navigates trees of tagged, ordered nodes with paths of compact selectors,
much like CSS/jQuery paths navigate a DOM, and projects child content,
attribute values or matching sub-nodes — without any manual tree walking
on the caller's side.

	ui := render(state) // some rendering function producing a hiccup tree

	// text of all :p children of elements classed "cart-item", anywhere:
	texts := rq.Find(ui, ".cart-item", "p")

	// the on-change callback of the quantity input:
	cb := rq.Query(ui, "div.cart", "input.quantity:on-change")

All operations are pure projections: trees are never mutated, every call
constructs a fresh result sequence, and concurrent callers need no
coordination.

License

Governed by an MIT license. License file may be found in the root
folder of this module.

Copyright © 2016–2023 Boaz Rosenan

*/
package rq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rq.query'.
func tracer() tracing.Trace {
	return tracing.Select("rq.query")
}
