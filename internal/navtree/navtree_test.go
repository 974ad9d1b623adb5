package navtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		longname string
		want     []string
	}{
		{"Widget", []string{"Widget"}},
		{"ns.Widget", []string{"ns", "Widget"}},
		{"ns.Widget#draw", []string{"ns", "Widget", "draw"}},
		{"ns.Widget~inner", []string{"ns", "Widget", "inner"}},
		{"module:foo/bar", []string{"module:foo/bar"}},
		{"module:foo/bar~Baz", []string{"module:foo/bar", "Baz"}},
		{"external:jquery", []string{"external:jquery"}},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Segments(tt.longname), "longname %q", tt.longname)
	}
}

func TestBuildTree_InsertionOrderPreserved(t *testing.T) {
	root := BuildTree([]string{"zeta", "alpha", "zeta.Sub"})

	assert.Equal(t, []string{"zeta", "alpha"}, root.Keys())
	zeta := root.Child("zeta")
	require.NotNil(t, zeta)
	assert.True(t, zeta.Present)
	assert.Equal(t, "zeta", zeta.Longname)

	sub := zeta.Child("Sub")
	require.NotNil(t, sub)
	assert.True(t, sub.Present)
	assert.Equal(t, "zeta.Sub", sub.Longname)
}

func TestBuildTree_IntermediateNodesNotPresent(t *testing.T) {
	root := BuildTree([]string{"a.b.c"})

	a := root.Child("a")
	require.NotNil(t, a)
	assert.False(t, a.Present)
	b := a.Child("b")
	require.NotNil(t, b)
	assert.False(t, b.Present)
	c := b.Child("c")
	require.NotNil(t, c)
	assert.True(t, c.Present)
	assert.Equal(t, "a.b.c", c.Longname)
}

func TestBuildTree_RepeatedLongnameIdempotent(t *testing.T) {
	root := BuildTree([]string{"x", "x"})
	assert.Equal(t, []string{"x"}, root.Keys())
	assert.Equal(t, 1, root.Len())
}
