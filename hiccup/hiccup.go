package hiccup

/*
License

Governed by an MIT license. License file may be found in the root
folder of this module.

Copyright © 2016–2023 Boaz Rosenan

*/

import (
	"errors"
	"fmt"
)

// ErrInvalidNodeShape flags a structural contract violation: an element
// without a tag. The query engine itself never raises it; clients may call
// Valid to fail fast on trees of dubious origin.
var ErrInvalidNodeShape = errors.New("invalid node shape: element has no tag")

// Value is one slot of a hiccup tree. It is a closed variant over
//
//	*Element   a tagged node [tag, attrs?, children…]
//	Seq        an ordered collection of values (iteration output)
//	Scalar     opaque leaf content (strings, numbers, callbacks, …)
//	None
//
// Consumers dispatch on the concrete type; there is no common behavior
// beyond membership in the variant.
type Value interface {
	isValue()
}

// Element is a single markup-like node. Attrs may be nil, meaning no
// attributes. Children hold the content slots in document order; the
// attribute mapping is not part of Children.
type Element struct {
	Tag      Tag
	Attrs    Attrs
	Children []Value
}

func (e *Element) isValue() {}

func (e *Element) String() string {
	return fmt.Sprintf("[%v #attrs=%d #ch=%d]", e.Tag, len(e.Attrs), len(e.Children))
}

// Seq is an ordered collection of values. It is not an element itself:
// matching and flattening distribute over it transparently, so iteration
// output mixes with static siblings without extra nesting ceremony.
type Seq []Value

func (s Seq) isValue() {}

// Scalar wraps opaque leaf content.
type Scalar struct {
	Val any
}

func (s Scalar) isValue() {}

func (s Scalar) String() string {
	return fmt.Sprintf("%v", s.Val)
}

type noneValue struct{}

func (n noneValue) isValue() {}

func (n noneValue) String() string { return "<none>" }

// None marks the absence of a value. It occupies exactly one result slot,
// e.g. when an attribute selector addresses an attribute the element does
// not carry.
var None Value = noneValue{}

// IsNone tells whether v is the absence marker.
func IsNone(v Value) bool {
	_, ok := v.(noneValue)
	return ok
}

// --- Tags ------------------------------------------------------------------

// Tag identifies an element. It is a sum over Name (a symbolic tag,
// possibly carrying dotted-class shorthand in its textual form) and
// *Component (an opaque handle, compared by identity).
type Tag interface {
	isTag()
}

// Name is a symbolic tag such as "div" or "input". It may embed class
// shorthand, as in "div.selected.hidden".
type Name string

func (n Name) isTag() {}

// Component is an opaque tag referring to a rendering function. Two
// component tags are equal iff they are the same *Component. The engine
// never calls Render; it is carried for the benefit of tree producers.
type Component struct {
	Name   string
	Render func(args ...any) Value
}

func (c *Component) isTag() {}

func (c *Component) String() string {
	return fmt.Sprintf("<component %s>", c.Name)
}

// Comp creates an opaque component tag.
func Comp(name string) *Component {
	return &Component{Name: name}
}

// Attrs is an element's attribute mapping. A nil Attrs behaves like an
// empty one.
type Attrs map[string]any

// Get returns the value of attribute name, and whether it is present.
func (a Attrs) Get(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}

// --- Constructors ----------------------------------------------------------

// E constructs an element. tag may be a Name, a plain string (converted to
// Name, shorthand classes included), or a *Component. If the first element
// of args is an Attrs or a map[string]any, it becomes the attribute
// mapping; all remaining args become children, wrapped by V.
//
//	hiccup.E("ul.menu",
//	    hiccup.E("li", hiccup.Attrs{"key": 1}, "One"),
//	    hiccup.E("li", hiccup.Attrs{"key": 2}, "Two"))
func E(tag any, args ...any) *Element {
	e := &Element{Tag: asTag(tag)}
	if len(args) > 0 {
		switch a := args[0].(type) {
		case Attrs:
			e.Attrs = a
			args = args[1:]
		case map[string]any:
			e.Attrs = Attrs(a)
			args = args[1:]
		}
	}
	for _, arg := range args {
		e.Children = append(e.Children, V(arg))
	}
	return e
}

// S constructs an ordered collection from args, wrapping each by V.
func S(args ...any) Seq {
	s := make(Seq, len(args))
	for i, arg := range args {
		s[i] = V(arg)
	}
	return s
}

// V lifts an arbitrary Go value into the tree domain: Values pass through
// unchanged, everything else becomes a Scalar.
func V(x any) Value {
	if v, ok := x.(Value); ok {
		return v
	}
	return Scalar{Val: x}
}

func asTag(tag any) Tag {
	switch t := tag.(type) {
	case Tag:
		return t
	case string:
		return Name(t)
	case fmt.Stringer:
		return Name(t.String())
	}
	return nil
}

// Valid walks v and reports the first structural contract violation, i.e.
// an element with no tag or a Name that is empty after shorthand
// expansion. The query operations do not require validation; they treat
// malformed elements as unmatchable.
func Valid(v Value) error {
	switch n := v.(type) {
	case *Element:
		if n.Tag == nil {
			return ErrInvalidNodeShape
		}
		if name, ok := n.Tag.(Name); ok {
			if canonical, _ := SplitName(name); canonical == "" {
				return ErrInvalidNodeShape
			}
		}
		for _, c := range n.Children {
			if err := Valid(c); err != nil {
				return err
			}
		}
	case Seq:
		for _, c := range n {
			if err := Valid(c); err != nil {
				return err
			}
		}
	}
	return nil
}
