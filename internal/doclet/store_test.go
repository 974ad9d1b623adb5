package doclet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_SortsByLongnameVersionSince(t *testing.T) {
	store := NewStore([]*Doclet{
		{Kind: KindClass, Longname: "Beta", Name: "Beta"},
		{Kind: KindClass, Longname: "Alpha", Name: "Alpha", Version: "2.0"},
		{Kind: KindClass, Longname: "Alpha", Name: "Alpha", Version: "1.0"},
	})

	got := store.Get()
	require.Len(t, got, 3)
	assert.Equal(t, "Alpha", got[0].Longname)
	assert.Equal(t, "1.0", got[0].Version)
	assert.Equal(t, "2.0", got[1].Version)
	assert.Equal(t, "Beta", got[2].Longname)
}

func TestNewStore_PrunesUndocumentedAndNil(t *testing.T) {
	store := NewStore([]*Doclet{
		nil,
		{Kind: KindClass, Longname: "Hidden", Undocumented: true},
		{Kind: KindClass, Longname: "Kept"},
	})
	require.Equal(t, 1, store.Len())
	assert.Equal(t, "Kept", store.Get()[0].Longname)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doclets.json")
	payload := `[
		{"kind": "class", "longname": "Widget", "name": "Widget", "meta": {"path": "/src", "filename": "widget.js"}},
		{"kind": "function", "longname": "Widget#draw", "name": "draw", "memberof": "Widget", "scope": "instance"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	store, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	assert.Equal(t, "Widget", store.Get()[0].Longname)
	assert.Equal(t, "/src/widget.js", store.Get()[0].Meta.SourcePath())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := LoadFile(path)
	require.Error(t, err)
}
