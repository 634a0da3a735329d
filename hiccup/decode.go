package hiccup

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// FromYAML decodes a YAML document into a tree Value. The YAML rendition
// mirrors the hiccup shape directly:
//
//	- ul.menu
//	- - li
//	  - {key: 1}
//	  - One
//	- - li
//	  - {key: 2}
//	  - Two
//
// A sequence whose first item is a string is an element (tag, optional
// attribute mapping in the second slot, then children). Any other
// sequence is an ordered collection. Mappings are only legal in the
// attribute slot; everything else decodes to a Scalar.
func FromYAML(data []byte) (Value, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("hiccup: cannot parse YAML: %w", err)
	}
	v, err := fromAny(doc)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("decoded YAML tree: %v", v)
	return v, nil
}

// MustFromYAML is FromYAML for fixtures; it panics on error.
func MustFromYAML(data []byte) Value {
	v, err := FromYAML(data)
	if err != nil {
		panic(err)
	}
	return v
}

func fromAny(doc any) (Value, error) {
	switch d := doc.(type) {
	case []any:
		if len(d) > 0 {
			if tag, ok := d[0].(string); ok {
				return elementFromSlice(tag, d[1:])
			}
		}
		seq := make(Seq, 0, len(d))
		for i, item := range d {
			v, err := fromAny(item)
			if err != nil {
				return nil, fmt.Errorf("collection item %d: %w", i, err)
			}
			seq = append(seq, v)
		}
		return seq, nil
	case map[string]any:
		return nil, fmt.Errorf("hiccup: mapping outside attribute position")
	default:
		return Scalar{Val: d}, nil
	}
}

func elementFromSlice(tag string, rest []any) (Value, error) {
	e := &Element{Tag: Name(tag)}
	if len(rest) > 0 {
		if m, ok := rest[0].(map[string]any); ok {
			e.Attrs = Attrs(m)
			rest = rest[1:]
		}
	}
	for i, item := range rest {
		c, err := fromAny(item)
		if err != nil {
			return nil, fmt.Errorf("child %d of %q: %w", i, tag, err)
		}
		e.Children = append(e.Children, c)
	}
	return e, nil
}
