// Package tutorial models the rooted tutorial tree fed into page generation.
// Tutorials are authored as markdown files; directories nest into child
// tutorials. Content production converts markdown to HTML via goldmark.
package tutorial

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
)

// Node is one tutorial. The root node is synthetic and carries only children.
type Node struct {
	Name     string // registry name, derived from the file stem
	Title    string
	Children []*Node

	markdown []byte
}

// Content converts the tutorial body to HTML.
func (n *Node) Content() (string, error) {
	if len(n.markdown) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert(n.markdown, &buf); err != nil {
		return "", fmt.Errorf("convert tutorial %s: %w", n.Name, err)
	}
	return buf.String(), nil
}

// LoadDir reads a tutorial directory into a tree. Markdown files become
// nodes; subdirectories nest. Sibling order follows lexical filename order so
// authors control ordering with prefixes. A missing directory yields an empty
// root, not an error.
func LoadDir(dir string) (*Node, error) {
	root := &Node{Name: "tutorials", Title: "Tutorials"}
	if dir == "" {
		return root, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return root, nil
	}
	if err := loadInto(root, dir); err != nil {
		return nil, err
	}
	return root, nil
}

func loadInto(parent *Node, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read tutorial directory %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			child := &Node{Name: entry.Name(), Title: titleFromStem(entry.Name())}
			if err := loadInto(child, full); err != nil {
				return err
			}
			parent.Children = append(parent.Children, child)
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(full)
		if err != nil {
			return fmt.Errorf("read tutorial %s: %w", full, err)
		}
		stem := strings.TrimSuffix(entry.Name(), ".md")
		child := &Node{Name: stem, Title: titleFromMarkdown(data, stem), markdown: data}
		parent.Children = append(parent.Children, child)
	}
	return nil
}

// titleFromMarkdown uses the first level-one heading when present.
func titleFromMarkdown(data []byte, stem string) string {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return titleFromStem(stem)
}

func titleFromStem(stem string) string {
	s := strings.ReplaceAll(stem, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.TrimSpace(s)
}
