package selector

import (
	"testing"

	"github.com/brosenan/reagent-query/hiccup"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Selector
	}{
		{"elem only", "ul", Selector{Elem: hiccup.Name("ul")}},
		{"elem and class", "li.selected", Selector{
			Elem:    hiccup.Name("li"),
			Classes: []string{"selected"},
		}},
		{"elem and classes", "li.a.b", Selector{
			Elem:    hiccup.Name("li"),
			Classes: []string{"a", "b"},
		}},
		{"classes only", ".a.b", Selector{Classes: []string{"a", "b"}}},
		{"duplicate classes collapse", "li.a.a", Selector{
			Elem:    hiccup.Name("li"),
			Classes: []string{"a"},
		}},
		{"elem and attr", "div:id", Selector{
			Elem: hiccup.Name("div"),
			Attr: "id",
		}},
		{"attr only", ":value", Selector{Attr: "value"}},
		{"class and attr", ".quantity:on-change", Selector{
			Classes: []string{"quantity"},
			Attr:    "on-change",
		}},
		{"second colon belongs to attr", "a:b:c", Selector{
			Elem: hiccup.Name("a"),
			Attr: "b:c",
		}},
		{"empty token is permissive", "", Selector{}},
		{"lone dot is permissive", ".", Selector{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToSelector(tt.token)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToSelector(%q) mismatch (-want +got):\n%s", tt.token, diff)
			}
		})
	}
}

func TestToSelectorPassthrough(t *testing.T) {
	sel := Selector{Elem: hiccup.Name("p"), Attr: "id"}
	if got := ToSelector(sel); !cmp.Equal(sel, got) {
		t.Errorf("expected Selector input to pass through unchanged, got %v", got)
	}
	if got := ToSelector(&sel); !cmp.Equal(sel, got) {
		t.Errorf("expected *Selector input to pass through unchanged, got %v", got)
	}
	var nilSel *Selector
	if got := ToSelector(nilSel); !cmp.Equal(Selector{}, got) {
		t.Errorf("expected nil *Selector to be permissive, got %v", got)
	}
}

func TestToSelectorPair(t *testing.T) {
	got := ToSelector([]any{"li.x", map[string]any{"key": 2}})
	assert.Equal(t, hiccup.Name("li"), got.Elem)
	assert.Equal(t, []string{"x"}, got.Classes)
	assert.Equal(t, map[string]any{"key": 2}, got.AttrVals)

	got = ToSelector([]any{"input", hiccup.Attrs{"type": "text"}})
	assert.Equal(t, hiccup.Name("input"), got.Elem)
	assert.Equal(t, "text", got.AttrVals["type"])
}

func TestToSelectorComponent(t *testing.T) {
	comp := hiccup.Comp("cart-item")
	got := ToSelector(comp)
	if got.Elem != hiccup.Tag(comp) {
		t.Errorf("expected component selector to require the component tag, got %v", got.Elem)
	}
}

func TestToSelectorMalformed(t *testing.T) {
	// absence of structure is a valid, permissive selector
	for _, step := range []any{nil, 42, []any{}, []any{"a", "b", "c"}} {
		if got := ToSelector(step); !cmp.Equal(Selector{}, got) {
			t.Errorf("expected %v to degrade to a permissive selector, got %v", step, got)
		}
	}
	// a malformed pair still keeps its parsable half
	got := ToSelector([]any{"li", "not a mapping"})
	assert.Equal(t, hiccup.Name("li"), got.Elem)
	assert.Nil(t, got.AttrVals)
}
