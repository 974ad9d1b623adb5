// Package navtree builds the navigation hierarchy over file-worthy symbol
// longnames. Tree shape is derived purely from longname path segments; the
// caller supplies the exact ordered longname list, and child insertion order
// is preserved so consumers can choose between insertion and sorted
// traversals.
package navtree

import (
	"regexp"
	"strings"
)

// scope punctuation separating longname segments, e.g. ns.Class#method~inner
var segmentSeparator = regexp.MustCompile(`[.#~]`)

// Node is one entry in the navigation tree. A node with Present=false is a
// structural intermediate that no doclet names directly.
type Node struct {
	Key      string // segment label
	Longname string // full longname when Present
	Present  bool
	children map[string]*Node
	order    []string // child keys in insertion order
}

// NewRoot returns an empty tree root.
func NewRoot() *Node {
	return &Node{children: make(map[string]*Node)}
}

// Child returns the named child, or nil.
func (n *Node) Child(key string) *Node {
	return n.children[key]
}

// Keys returns child keys in insertion order. The returned slice is a copy.
func (n *Node) Keys() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Len returns the number of direct children.
func (n *Node) Len() int { return len(n.order) }

func (n *Node) ensureChild(key string) *Node {
	if c, ok := n.children[key]; ok {
		return c
	}
	c := &Node{Key: key, children: make(map[string]*Node)}
	n.children[key] = c
	n.order = append(n.order, key)
	return c
}

// BuildTree constructs the hierarchy for the given ordered longnames. Each
// longname's terminal node is marked present; intermediate segments become
// structural nodes. Repeated longnames are idempotent.
func BuildTree(orderedLongnames []string) *Node {
	root := NewRoot()
	for _, lname := range orderedLongnames {
		node := root
		for _, seg := range Segments(lname) {
			node = node.ensureChild(seg)
		}
		if node != root {
			node.Present = true
			node.Longname = lname
		}
	}
	return root
}

// Segments splits a longname into its path segments. A module prefix stays
// attached to the head segment so "module:foo/bar.Baz" yields
// ["module:foo/bar", "Baz"].
func Segments(longname string) []string {
	if longname == "" {
		return nil
	}
	head := longname
	var rest string
	if strings.HasPrefix(longname, "module:") || strings.HasPrefix(longname, "external:") {
		// Module identifiers may contain dots and slashes; only scope
		// punctuation after the identifier separates members.
		if i := strings.IndexAny(longname, "#~"); i >= 0 {
			head, rest = longname[:i], longname[i+1:]
		} else {
			return []string{longname}
		}
	} else if i := segmentSeparator.FindStringIndex(longname); i != nil {
		head, rest = longname[:i[0]], longname[i[0]+1:]
	} else {
		return []string{longname}
	}
	segs := []string{head}
	if rest != "" {
		segs = append(segs, segmentSeparator.Split(rest, -1)...)
	}
	return segs
}
