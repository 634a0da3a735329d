package rq

/*
License

Governed by an MIT license. License file may be found in the root
folder of this module.

Copyright © 2016–2023 Boaz Rosenan

*/

import (
	"reflect"

	"github.com/brosenan/reagent-query/hiccup"
	"github.com/brosenan/reagent-query/selector"
)

// Query applies a path of selector steps to a tree, threading the result
// sequence of each step into the next: every step is matched against each
// survivor of the previous step and the matches are concatenated in
// document order. With no steps the result is just [root].
//
// Steps may be anything selector.ToSelector accepts — compact tokens,
// token/attrVals pairs and ready-made Selectors mix freely within one
// path.
func Query(root hiccup.Value, steps ...any) []hiccup.Value {
	results := []hiccup.Value{root}
	for _, step := range steps {
		sel := selector.ToSelector(step)
		var next []hiccup.Value
		for _, r := range results {
			next = append(next, Match(r, sel)...)
		}
		tracer().Debugf("step %v: %d -> %d results", step, len(results), len(next))
		results = next
	}
	return results
}

// Find evaluates a path against every element of the tree instead of only
// the root: anywhere-search. It is exactly Query over the flattened
// element sequence, relying on Match's distribution over collections.
func Find(root hiccup.Value, steps ...any) []hiccup.Value {
	return Query(hiccup.Seq(AllElems(root)), steps...)
}

// AllElems flattens a tree into the sequence of all its element nodes in
// pre-order, depth-first, left to right. Collections are distributed over
// transparently; scalar leaves are not elements and are excluded.
func AllElems(root hiccup.Value) []hiccup.Value {
	switch n := root.(type) {
	case *hiccup.Element:
		out := []hiccup.Value{n}
		for _, c := range n.Children {
			out = append(out, AllElems(c)...)
		}
		return out
	case hiccup.Seq:
		var out []hiccup.Value
		for _, c := range n {
			out = append(out, AllElems(c)...)
		}
		return out
	}
	return nil
}

// Match tests one selector against one tree value and returns the
// resulting sequence: the element's children, a single projected
// attribute value, or nothing. Collections distribute: matching a Seq
// concatenates the matches of its items in order, which is how
// iteration-produced siblings travel through a path unnoticed.
func Match(v hiccup.Value, sel selector.Selector) []hiccup.Value {
	switch n := v.(type) {
	case hiccup.Seq:
		var out []hiccup.Value
		for _, item := range n {
			out = append(out, Match(item, sel)...)
		}
		return out
	case *hiccup.Element:
		return matchElement(n, sel)
	}
	return nil
}

// matchElement implements the single-node matching semantics. Tag and
// class checks short-circuit to the empty sequence. Attribute-value
// constraints gate the rest: when they fail, even a requested attribute
// projection yields nothing. A projected attribute always occupies
// exactly one result slot, hiccup.None when the element does not carry
// it.
func matchElement(e *hiccup.Element, sel selector.Selector) []hiccup.Value {
	if sel.Elem != nil && !sameTag(sel.Elem, e.CanonicalTag()) {
		return nil
	}
	if len(sel.Classes) > 0 {
		classes := e.ClassSet()
		for _, c := range sel.Classes {
			if !classes[c] {
				return nil
			}
		}
	}
	for name, want := range sel.AttrVals {
		got, ok := e.Attrs.Get(name)
		if !ok || !eqValue(got, want) {
			return nil
		}
	}
	if sel.Attr != "" {
		if v, ok := e.Attrs.Get(sel.Attr); ok {
			return []hiccup.Value{hiccup.V(v)}
		}
		return []hiccup.Value{hiccup.None}
	}
	return e.Children
}

// sameTag compares tags within the sum: symbolic names by value, opaque
// component handles by identity. Tags of different kinds never match.
func sameTag(a, b hiccup.Tag) bool {
	switch ta := a.(type) {
	case hiccup.Name:
		tb, ok := b.(hiccup.Name)
		return ok && ta == tb
	case *hiccup.Component:
		tb, ok := b.(*hiccup.Component)
		return ok && ta == tb
	}
	return false
}

// eqValue is exact equality without type coercion. Values of
// uncomparable dynamic types (functions, slices, maps) never match a
// required attribute value.
func eqValue(got, want any) bool {
	if got == nil || want == nil {
		return got == nil && want == nil
	}
	t := reflect.TypeOf(got)
	if t != reflect.TypeOf(want) || !t.Comparable() {
		return false
	}
	return got == want
}
