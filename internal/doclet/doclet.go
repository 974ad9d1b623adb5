// Package doclet defines the input record model handed over by the upstream
// extractor, plus the closed kind/category vocabulary used to file records
// into documentation buckets. Records are treated as immutable once loaded;
// all derived state lives in symbolgraph wrappers.
package doclet

import "path/filepath"

// Meta is the optional source-location record attached to a doclet.
type Meta struct {
	// Path is the directory portion. The extractor emits the literal string
	// "null" when a doclet has no directory context.
	Path     string `json:"path,omitempty"`
	Filename string `json:"filename,omitempty"`
	Lineno   int    `json:"lineno,omitempty"`
}

// SourcePath joins directory and filename. A literal "null" directory means
// the doclet carries only a bare filename.
func (m *Meta) SourcePath() string {
	if m == nil || m.Filename == "" {
		return ""
	}
	if m.Path == "" || m.Path == "null" {
		return m.Filename
	}
	return filepath.Join(m.Path, m.Filename)
}

// Doclet is one symbol record from the extractor. Field presence follows the
// extractor's JSON export: absent fields decode to their zero value.
type Doclet struct {
	Kind         Kind     `json:"kind"`
	Longname     string   `json:"longname,omitempty"`
	Name         string   `json:"name,omitempty"`
	Memberof     string   `json:"memberof,omitempty"`
	Scope        string   `json:"scope,omitempty"`
	Description  string   `json:"description,omitempty"`
	Version      string   `json:"version,omitempty"`
	Since        string   `json:"since,omitempty"`
	Meta         *Meta    `json:"meta,omitempty"`
	Examples     []string `json:"examples,omitempty"`
	See          []string `json:"see,omitempty"`
	Listens      []string `json:"listens,omitempty"`
	Undocumented bool     `json:"undocumented,omitempty"`
}

// globalKinds are the kinds eligible for global classification.
var globalKinds = map[Kind]bool{
	KindMember:   true,
	KindFunction: true,
	KindConstant: true,
	KindTypedef:  true,
}

// IsGlobal reports whether the doclet is a global symbol: an eligible kind
// with no containing symbol and no scope narrower than global.
func (d *Doclet) IsGlobal() bool {
	if !globalKinds[d.Kind] {
		return false
	}
	if d.Memberof != "" {
		return false
	}
	return d.Scope == "" || d.Scope == "global"
}
