// Package linkmap is the single source of truth mapping symbol longnames (and
// other named targets such as short source paths or the synthetic globals
// page) to exactly one output URL. It also issues globally unique output
// filenames and page-unique fragment ids.
//
// URL and id assignment is pure given insertion order: the same names
// registered in the same order always produce the same URLs and ids, which
// keeps builds reproducible.
package linkmap

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/symdoc/internal/doclet"
)

const (
	// GlobalTarget is the synthetic registry name for the globals page.
	GlobalTarget = "global"
	// IndexTarget is the synthetic registry name for the landing page.
	IndexTarget = "index"
)

var (
	namespacePrefix = regexp.MustCompile(`^(module|external|event|package):`)
	unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_.$()=!^-]`)
	unsafeIDChars   = regexp.MustCompile(`[\s"']`)
)

// Registry owns the longname→URL mapping for one generation run. It is not a
// process-wide singleton; construct one per run and pass it by reference into
// both the indexer and the publisher.
type Registry struct {
	urls      map[string]string          // registered name -> full URL
	files     map[string]string          // name -> assigned filename
	usedFiles map[string]bool            // filename -> taken
	usedIDs   map[string]map[string]bool // URL -> fragment ids issued
}

// NewRegistry creates an empty link registry.
func NewRegistry() *Registry {
	return &Registry{
		urls:      make(map[string]string),
		files:     make(map[string]string),
		usedFiles: make(map[string]bool),
		usedIDs:   make(map[string]map[string]bool),
	}
}

// RegisterLink assigns a dedicated output file URL to name. Registering the
// same name twice returns the previously assigned URL.
func (r *Registry) RegisterLink(name string) string {
	if u, ok := r.urls[name]; ok {
		return u
	}
	u := r.fileFor(name)
	r.urls[name] = u
	return u
}

// CreateLink decides whether the doclet gets its own file or an in-page
// fragment URL on its owning container's page, registers the result under the
// doclet's longname, and returns it. Idempotent per longname.
func (r *Registry) CreateLink(d *doclet.Doclet, needsOwnPage func(longname string) bool) string {
	lname := d.Longname
	if u, ok := r.urls[lname]; ok {
		return u
	}
	var u string
	if needsOwnPage != nil && needsOwnPage(lname) {
		u = r.fileFor(lname)
	} else {
		base := r.fileFor(GlobalTarget)
		if d.Memberof != "" {
			base = r.fileFor(d.Memberof)
		}
		u = base + "#" + fragmentName(d.Name)
	}
	r.urls[lname] = u
	return u
}

// URLFor looks up the URL registered for name.
func (r *Registry) URLFor(name string) (string, bool) {
	u, ok := r.urls[name]
	return u, ok
}

// UniqueID returns a fragment id unique among all ids already issued for the
// given URL. On collision a numeric suffix is appended in first-come order.
func (r *Registry) UniqueID(url, candidate string) string {
	id := fragmentName(candidate)
	if id == "" {
		id = "anonymous"
	}
	issued := r.usedIDs[url]
	if issued == nil {
		issued = make(map[string]bool)
		r.usedIDs[url] = issued
	}
	unique := id
	for n := 2; issued[unique]; n++ {
		unique = fmt.Sprintf("%s%d", id, n)
	}
	issued[unique] = true
	return unique
}

// LinkTo resolves a longname to a hyperlink if registered, otherwise degrades
// to plain text. It never fails for an unresolved reference; broken or
// forward cross-references are expected while documentation is incomplete.
func (r *Registry) LinkTo(longname, displayText string) string {
	if displayText == "" {
		displayText = longname
	}
	u, ok := r.urls[longname]
	if !ok {
		return html.EscapeString(displayText)
	}
	return fmt.Sprintf("<a href=%q>%s</a>", u, html.EscapeString(displayText))
}

// Fragment returns the in-page fragment portion of a URL, or "" when the URL
// addresses a whole file.
func Fragment(url string) string {
	if i := strings.IndexByte(url, '#'); i >= 0 {
		return url[i+1:]
	}
	return ""
}

// fileFor returns the stable output filename for a name, assigning a new
// collision-free one on first use.
func (r *Registry) fileFor(name string) string {
	if f, ok := r.files[name]; ok {
		return f
	}
	base := sanitizeFilename(name)
	candidate := base + ".html"
	for n := 1; r.usedFiles[candidate]; n++ {
		candidate = fmt.Sprintf("%s_%d.html", base, n)
	}
	r.usedFiles[candidate] = true
	r.files[name] = candidate
	return candidate
}

// sanitizeFilename turns an arbitrary longname into a filename-safe stem.
// Namespace prefixes are dropped and punctuation that is unsafe on common
// filesystems is folded to underscores.
func sanitizeFilename(name string) string {
	stem := namespacePrefix.ReplaceAllString(name, "")
	stem = strings.ReplaceAll(stem, "/", "_")
	stem = strings.ReplaceAll(stem, "\\", "_")
	stem = unsafeFileChars.ReplaceAllString(stem, "_")
	stem = strings.Trim(stem, "_")
	if stem == "" {
		stem = "index"
	}
	return stem
}

// fragmentName folds characters that would break an anchor into hyphens.
func fragmentName(name string) string {
	return unsafeIDChars.ReplaceAllString(name, "-")
}
