package site

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/symdoc/internal/navtree"
)

// TOCEntry is one node of the table-of-contents payload.
type TOCEntry struct {
	Label    string      `json:"label"`
	ID       string      `json:"id"`
	Children []*TOCEntry `json:"children"`
}

// buildTOC walks the navigation tree depth first. Sibling keys are visited in
// collated order, a deliberate divergence from the insertion-order-stable
// rest of the pipeline. The ancestor path travels as a value, so no walk
// state leaks between siblings.
func buildTOC(root *navtree.Node) []*TOCEntry {
	coll := collate.New(language.English)
	return tocChildren(coll, root, nil)
}

func tocChildren(coll *collate.Collator, node *navtree.Node, ancestors []string) []*TOCEntry {
	keys := node.Keys()
	coll.SortStrings(keys)

	entries := make([]*TOCEntry, 0, len(keys))
	for _, key := range keys {
		child := node.Child(key)
		path := append(append([]string(nil), ancestors...), key)
		id := child.Longname
		if !child.Present {
			id = strings.Join(path, ".")
		}
		entry := &TOCEntry{Label: key, ID: id, Children: []*TOCEntry{}}
		entry.Children = tocChildren(coll, child, path)
		entries = append(entries, entry)
	}
	return entries
}
