package doclet

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Store holds the pruned, ordered doclet collection the graph builder
// consumes. Ordering is stable by (longname, version, since) so downstream
// URL and id assignment is reproducible.
type Store struct {
	doclets []*Doclet
}

// NewStore prunes undocumented records and sorts the remainder.
func NewStore(doclets []*Doclet) *Store {
	kept := make([]*Doclet, 0, len(doclets))
	for _, d := range doclets {
		if d == nil || d.Undocumented {
			continue
		}
		kept = append(kept, d)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.Longname != b.Longname {
			return a.Longname < b.Longname
		}
		if a.Version != b.Version {
			return a.Version < b.Version
		}
		return a.Since < b.Since
	})
	return &Store{doclets: kept}
}

// Get returns the ordered doclet sequence. The slice is shared; callers must
// not mutate it.
func (s *Store) Get() []*Doclet {
	return s.doclets
}

// Len returns the number of doclets in the store.
func (s *Store) Len() int { return len(s.doclets) }

// LoadFile reads a JSON doclet export (a top-level array) into a Store.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read doclet file: %w", err)
	}
	var doclets []*Doclet
	if err := json.Unmarshal(data, &doclets); err != nil {
		return nil, fmt.Errorf("parse doclet file %s: %w", path, err)
	}
	return NewStore(doclets), nil
}
