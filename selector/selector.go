/*
Package selector parses the compact selector notation used to address
parts of a hiccup tree. A selector constrains an element's tag, its class
set and its attribute values, and may project a single attribute value
instead of the element's children.

The compact token grammar is

	[elem][.class]*[:attr]

e.g. "li.selected:on-click". An empty elem fragment leaves the tag
unconstrained, so ".selected" matches any element carrying the class and
":value" projects the value attribute of any element.

License

Governed by an MIT license. License file may be found in the root
folder of this module.

Copyright © 2016–2023 Boaz Rosenan

*/
package selector

import (
	"strings"

	"github.com/brosenan/reagent-query/hiccup"
)

// Selector is a normalized match criterion. The zero Selector is the most
// permissive one: it matches every element and projects its children.
// Selectors are immutable once constructed; they never reference tree
// values.
type Selector struct {
	Elem     hiccup.Tag     // required canonical tag; nil matches any tag
	Classes  []string       // classes that must all be present
	Attr     string         // attribute to project instead of children; "" for none
	AttrVals map[string]any // attribute values that must match exactly
}

// HasClass tells whether class is among the selector's required classes.
func (sel Selector) HasClass(class string) bool {
	for _, c := range sel.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// ToSelector normalizes an arbitrary step value into a Selector. It is
// total: malformed input degrades to a permissive selector rather than
// failing. Accepted forms, in priority order:
//
//  1. A Selector (or *Selector): returned as-is, missing fields simply
//     meaning "unconstrained".
//  2. A two-element []any{token, attrVals}: token parsed per rule 3,
//     attrVals taken from the second element.
//  3. A compact token — string, hiccup.Name or *hiccup.Component — of
//     grammar [elem][.class]*[:attr].
func ToSelector(step any) Selector {
	switch s := step.(type) {
	case Selector:
		return s
	case *Selector:
		if s == nil {
			return Selector{}
		}
		return *s
	case []any:
		return pairSelector(s)
	case *hiccup.Component:
		return Selector{Elem: s}
	case hiccup.Name:
		return parseToken(string(s))
	case string:
		return parseToken(s)
	}
	return Selector{}
}

func pairSelector(pair []any) Selector {
	if len(pair) != 2 {
		return Selector{}
	}
	sel := ToSelector(pair[0])
	switch vals := pair[1].(type) {
	case map[string]any:
		sel.AttrVals = vals
	case hiccup.Attrs:
		sel.AttrVals = vals
	}
	return sel
}

// parseToken splits a compact token on the first ':' into the
// elem+classes part and the projected attribute name, then splits the
// left part on '.' into elem and classes.
func parseToken(token string) Selector {
	var sel Selector
	head := token
	if at := strings.Index(token, ":"); at >= 0 {
		head = token[:at]
		sel.Attr = token[at+1:]
	}
	parts := strings.Split(head, ".")
	if parts[0] != "" {
		sel.Elem = hiccup.Name(parts[0])
	}
	for _, c := range parts[1:] {
		if c != "" && !sel.HasClass(c) {
			sel.Classes = append(sel.Classes, c)
		}
	}
	return sel
}
