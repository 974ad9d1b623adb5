package symbolgraph

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/symdoc/internal/doclet"
)

// Example is a normalized code example with its optional caption split out.
type Example struct {
	Caption string
	Code    string
}

// Symbol wraps one input doclet with every field derived during graph
// construction. The underlying doclet is never mutated; display rewrites
// (external quote stripping, module-export call-style names) land here.
type Symbol struct {
	Doclet   *doclet.Doclet
	Category doclet.Category

	// Name is the display name, possibly rewritten from the input record.
	Name string

	// Ancestors is the ordered chain of parent longnames, outermost first.
	Ancestors []string

	// URL and ID are assigned during finalization.
	URL string
	ID  string

	// ShortPath is the display-friendly relative source path.
	ShortPath string

	// Exports is the merged export representative for module symbols.
	Exports *Symbol

	// Listeners holds listener longnames attached to event symbols.
	Listeners []string

	Examples []Example
	See      []string

	// exportCandidate marks a class/function pending merge into its module.
	exportCandidate bool
}

// Longname returns the underlying doclet's longname.
func (s *Symbol) Longname() string { return s.Doclet.Longname }

// Kind returns the underlying doclet's kind.
func (s *Symbol) Kind() doclet.Kind { return s.Doclet.Kind }

var captionPattern = regexp.MustCompile(`(?s)^\s*<caption>(.+?)</caption>\s*(.*)$`)

// normalizeExamples splits each raw example into a caption/code pair. When
// the caption tag is absent the caption defaults to empty and the code is the
// raw text.
func normalizeExamples(raw []string) []Example {
	if len(raw) == 0 {
		return nil
	}
	out := make([]Example, 0, len(raw))
	for _, ex := range raw {
		if m := captionPattern.FindStringSubmatch(ex); m != nil {
			out = append(out, Example{Caption: m[1], Code: m[2]})
			continue
		}
		out = append(out, Example{Code: ex})
	}
	return out
}

// stripQuotes removes one pair of surrounding quote characters from an
// external name so `"jquery.fn"` displays without literal quotes while still
// being treated as a flat name.
func stripQuotes(name string) string {
	if len(name) >= 2 && strings.HasPrefix(name, `"`) && strings.HasSuffix(name, `"`) {
		return name[1 : len(name)-1]
	}
	return name
}

// requireStyleName rewrites a module identifier into a call-style display
// label: module:foo/bar becomes require("foo/bar").
func requireStyleName(name string) string {
	if rest, ok := strings.CutPrefix(name, "module:"); ok {
		return `require("` + rest + `")`
	}
	return name
}
