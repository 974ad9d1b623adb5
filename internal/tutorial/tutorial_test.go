package tutorial

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir_MissingDirectoryYieldsEmptyRoot(t *testing.T) {
	root, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, root.Children)
}

func TestLoadDir_EmptyPathYieldsEmptyRoot(t *testing.T) {
	root, err := LoadDir("")
	require.NoError(t, err)
	assert.Empty(t, root.Children)
}

func TestLoadDir_LexicalOrderAndNesting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "02-advanced.md"), []byte("Advanced content.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01-basics.md"), []byte("# Getting Started\n\nHello.\n"), 0o644))
	sub := filepath.Join(dir, "00-recipes")
	require.NoError(t, os.Mkdir(sub, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "caching.md"), []byte("Cache things.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	root, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, root.Children, 3)

	recipes := root.Children[0]
	assert.Equal(t, "00-recipes", recipes.Name)
	assert.Equal(t, "00 recipes", recipes.Title)
	require.Len(t, recipes.Children, 1)
	assert.Equal(t, "caching", recipes.Children[0].Name)

	basics := root.Children[1]
	assert.Equal(t, "01-basics", basics.Name)
	// Title comes from the first level-one heading when present.
	assert.Equal(t, "Getting Started", basics.Title)

	advanced := root.Children[2]
	assert.Equal(t, "02-advanced", advanced.Name)
	assert.Equal(t, "02 advanced", advanced.Title)
}

func TestContent_ConvertsMarkdown(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guide.md"), []byte("# Guide\n\nSome *emphasis*.\n"), 0o644))

	root, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	html, err := root.Children[0].Content()
	require.NoError(t, err)
	assert.Contains(t, html, "<em>emphasis</em>")
}

func TestContent_EmptyNode(t *testing.T) {
	html, err := (&Node{Name: "bare"}).Content()
	require.NoError(t, err)
	assert.Empty(t, html)
}
