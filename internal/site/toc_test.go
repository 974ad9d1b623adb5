package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/symdoc/internal/navtree"
)

func TestBuildTOC_SiblingsSortedNotInsertionOrder(t *testing.T) {
	// Navigation tree keeps insertion order ["b", "a"]; the TOC walk must
	// visit siblings sorted.
	root := navtree.BuildTree([]string{"b", "a"})
	require.Equal(t, []string{"b", "a"}, root.Keys())

	entries := buildTOC(root)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Label)
	assert.Equal(t, "b", entries[1].Label)
}

func TestBuildTOC_DepthFirstShape(t *testing.T) {
	root := navtree.BuildTree([]string{"ns", "ns.Widget", "ns.Alpha"})

	entries := buildTOC(root)
	require.Len(t, entries, 1)
	ns := entries[0]
	assert.Equal(t, "ns", ns.Label)
	assert.Equal(t, "ns", ns.ID)
	require.Len(t, ns.Children, 2)
	// Children sorted by label, each carrying the present longname as id.
	assert.Equal(t, "Alpha", ns.Children[0].Label)
	assert.Equal(t, "ns.Alpha", ns.Children[0].ID)
	assert.Equal(t, "Widget", ns.Children[1].Label)
	assert.Equal(t, "ns.Widget", ns.Children[1].ID)
}

func TestBuildTOC_StructuralNodesGetPathIDs(t *testing.T) {
	root := navtree.BuildTree([]string{"outer.inner.Leaf"})

	entries := buildTOC(root)
	require.Len(t, entries, 1)
	outer := entries[0]
	assert.Equal(t, "outer", outer.ID) // no doclet named "outer"
	require.Len(t, outer.Children, 1)
	assert.Equal(t, "outer.inner", outer.Children[0].ID)
	require.Len(t, outer.Children[0].Children, 1)
	assert.Equal(t, "outer.inner.Leaf", outer.Children[0].Children[0].ID)
}

func TestBuildTOC_EmptyTree(t *testing.T) {
	entries := buildTOC(navtree.NewRoot())
	assert.Empty(t, entries)
}
