package rq

// Event mimics the shape of a browser change event: a target object
// carrying the changed attribute. It is consumed as an opaque value by
// callbacks extracted from a tree with attribute selectors; no matching
// logic applies to it.
type Event struct {
	Target map[string]any
}

// MockChangeEvent builds an event whose target carries value under
// attrName, defaulting to "value":
//
//	cb := rq.Query(ui, "input.quantity:on-change")
//	cb[0].(hiccup.Scalar).Val.(func(rq.Event))(rq.MockChangeEvent("3"))
func MockChangeEvent(value any, attrName ...string) Event {
	name := "value"
	if len(attrName) > 0 && attrName[0] != "" {
		name = attrName[0]
	}
	return Event{Target: map[string]any{name: value}}
}
