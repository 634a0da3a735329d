package hiccup

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestFromYAMLElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rq.hiccup")
	defer teardown()
	//
	v, err := FromYAML([]byte(`
- ul.menu
- - li
  - {class: other}
  - One
- - li
  - {class: "other selected"}
  - Two
`))
	require.NoError(t, err)
	t.Logf("tree =\n%s", Print(v))

	ul, ok := v.(*Element)
	require.True(t, ok, "expected top-level element")
	require.Equal(t, Name("ul.menu"), ul.Tag)
	require.Len(t, ul.Children, 2)

	li := ul.Children[1].(*Element)
	require.Equal(t, Name("li"), li.Tag)
	require.True(t, li.ClassSet()["selected"])
	require.Equal(t, Scalar{Val: "Two"}, li.Children[0])
}

func TestFromYAMLCollection(t *testing.T) {
	v, err := FromYAML([]byte(`
- - li
  - a
- - li
  - b
`))
	require.NoError(t, err)
	seq, ok := v.(Seq)
	require.True(t, ok, "expected a collection, not an element")
	require.Len(t, seq, 2)
}

func TestFromYAMLScalar(t *testing.T) {
	v, err := FromYAML([]byte(`plain text`))
	require.NoError(t, err)
	require.Equal(t, Scalar{Val: "plain text"}, v)
}

func TestFromYAMLErrors(t *testing.T) {
	_, err := FromYAML([]byte(`{a: 1}`))
	require.Error(t, err, "mapping outside attribute position")

	_, err = FromYAML([]byte("- [unclosed"))
	require.Error(t, err, "YAML syntax error")
}

func TestMustFromYAMLPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustFromYAML to panic on bad input, didn't")
		}
	}()
	MustFromYAML([]byte(`{a: 1}`))
}
