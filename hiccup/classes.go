package hiccup

import "strings"

// SplitName separates a symbolic tag from its dotted-class shorthand:
// "div.a.b" yields ("div", ["a" "b"]). A name without dots yields itself
// and no classes.
func SplitName(n Name) (string, []string) {
	parts := strings.Split(string(n), ".")
	if len(parts) == 1 {
		return parts[0], nil
	}
	classes := make([]string, 0, len(parts)-1)
	for _, c := range parts[1:] {
		if c != "" {
			classes = append(classes, c)
		}
	}
	return parts[0], classes
}

// CanonicalTag returns e's tag with any class shorthand stripped.
// Component tags carry no shorthand and are returned as-is.
func (e *Element) CanonicalTag() Tag {
	if name, ok := e.Tag.(Name); ok {
		canonical, _ := SplitName(name)
		return Name(canonical)
	}
	return e.Tag
}

// ClassSet computes e's effective class set: the union of shorthand
// classes embedded in the tag and the space-separated tokens of the
// "class" attribute. Duplicates collapse; order is not preserved.
func (e *Element) ClassSet() map[string]bool {
	set := make(map[string]bool)
	if name, ok := e.Tag.(Name); ok {
		_, shorthand := SplitName(name)
		for _, c := range shorthand {
			set[c] = true
		}
	}
	if attr, ok := e.Attrs.Get("class"); ok {
		if s, ok := attr.(string); ok {
			for _, c := range strings.Fields(s) {
				set[c] = true
			}
		}
	}
	return set
}
