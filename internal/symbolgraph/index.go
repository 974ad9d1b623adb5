// Package symbolgraph transforms the unordered doclet collection into the
// indexed, cross-referenced symbol graph that drives page generation:
// categorized buckets, longname and membership indices, the global bucket,
// module-export merging, event/listener resolution, short source paths, the
// navigation tree, and per-symbol URL/id assignment.
package symbolgraph

import (
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/symdoc/internal/doclet"
	serrors "git.home.luguber.info/inful/symdoc/internal/errors"
	"git.home.luguber.info/inful/symdoc/internal/linkmap"
	"git.home.luguber.info/inful/symdoc/internal/logfields"
	"git.home.luguber.info/inful/symdoc/internal/navtree"
)

// Stats summarizes one ingestion pass.
type Stats struct {
	Ingested     int
	SkippedKinds int
}

// Index is the symbol graph for one generation run. Build it with Ingest
// followed by exactly one Finalize; afterwards it is immutable and safe for
// concurrent reads.
type Index struct {
	all        []*Symbol // ingestion order
	byLongname map[string]*Bucket
	byMemberof map[string]*Bucket
	globals    *Bucket
	listeners  map[string]*Bucket // event longname -> listener symbols

	ownPage      map[string]bool
	ownPageOrder []string

	firstByLongname map[string]*Symbol // ancestor chain resolution

	sourcePaths []string // first-seen order
	sourceSeen  map[string]bool
	shortByRaw  map[string]string

	exportCandidates []*Symbol

	nav       *navtree.Node
	stats     Stats
	finalized bool
}

// NewIndex returns an empty symbol graph.
func NewIndex() *Index {
	return &Index{
		byLongname:      make(map[string]*Bucket),
		byMemberof:      make(map[string]*Bucket),
		globals:         NewBucket(),
		listeners:       make(map[string]*Bucket),
		ownPage:         make(map[string]bool),
		firstByLongname: make(map[string]*Symbol),
		sourceSeen:      make(map[string]bool),
		shortByRaw:      make(map[string]string),
	}
}

// Ingest files every doclet from the store into the graph, in store order.
func (x *Index) Ingest(store *doclet.Store) Stats {
	for _, d := range store.Get() {
		x.ingestOne(d)
	}
	return x.stats
}

func (x *Index) ingestOne(d *doclet.Doclet) {
	category, ok := doclet.CategoryForKind(d.Kind)
	if !ok {
		slog.Warn("Skipping doclet with unrecognized kind",
			logfields.Kind(string(d.Kind)), logfields.Longname(d.Longname))
		x.stats.SkippedKinds++
		return
	}

	sym := &Symbol{
		Doclet:   d,
		Category: category,
		Name:     d.Name,
		Examples: normalizeExamples(d.Examples),
		See:      append([]string(nil), d.See...),
	}

	switch {
	case d.Kind == doclet.KindExternal:
		sym.Name = stripQuotes(d.Name)
	case (d.Kind == doclet.KindClass || d.Kind == doclet.KindFunction) &&
		d.Longname != "" && d.Longname == d.Name && strings.HasPrefix(d.Longname, "module:"):
		// The symbol is a module's export representative; it merges into the
		// module at finalization instead of filing under its own category.
		sym.exportCandidate = true
		x.exportCandidates = append(x.exportCandidates, sym)
	}

	x.all = append(x.all, sym)
	x.stats.Ingested++

	if d.Longname != "" {
		if _, seen := x.firstByLongname[d.Longname]; !seen {
			x.firstByLongname[d.Longname] = sym
		}
	}

	if !sym.exportCandidate {
		if d.IsGlobal() {
			// Globals live only in the global bucket, never in the
			// longname/memberof indices.
			x.globals.Append(category, sym)
		} else {
			if d.Longname != "" {
				x.bucketFor(x.byLongname, d.Longname).Append(category, sym)
				if doclet.OwnPageCategories[category] && !x.ownPage[d.Longname] {
					x.ownPage[d.Longname] = true
					x.ownPageOrder = append(x.ownPageOrder, d.Longname)
				}
			}
			if d.Memberof != "" {
				x.bucketFor(x.byMemberof, d.Memberof).Append(category, sym)
			}
		}
	}

	for _, event := range d.Listens {
		x.bucketFor(x.listeners, event).Append(doclet.CategoryListeners, sym)
	}

	if p := d.Meta.SourcePath(); p != "" && !x.sourceSeen[p] {
		x.sourceSeen[p] = true
		x.sourcePaths = append(x.sourcePaths, p)
	}

	sym.Ancestors = x.resolveAncestors(d)
}

func (x *Index) bucketFor(m map[string]*Bucket, key string) *Bucket {
	b, ok := m[key]
	if !ok {
		b = NewBucket()
		m[key] = b
	}
	return b
}

// resolveAncestors walks the memberof chain through already-ingested symbols,
// outermost first. A missing parent truncates the chain rather than failing.
func (x *Index) resolveAncestors(d *doclet.Doclet) []string {
	var chain []string
	cur := d.Memberof
	for cur != "" {
		parent, ok := x.firstByLongname[cur]
		if !ok {
			break
		}
		chain = append(chain, cur)
		cur = parent.Doclet.Memberof
	}
	// Walked innermost-out; the documented order is outermost first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Finalize runs the finishing passes in order: module-export resolution,
// short-path computation, listener attachment, navigation-tree construction,
// and link/id assignment through the registry. It must be called exactly
// once, after all doclets are ingested.
func (x *Index) Finalize(reg *linkmap.Registry) error {
	if x.finalized {
		return serrors.Consistency("symbol graph already finalized")
	}

	x.resolveModuleExports()
	x.shortByRaw = shortPaths(x.sourcePaths)
	x.attachListeners()
	x.nav = navtree.BuildTree(x.ownPageOrder)

	if err := x.assignLinks(reg); err != nil {
		return err
	}
	x.finalized = true
	return nil
}

// resolveModuleExports attaches each pending export candidate to the module
// doclet sharing its longname and rewrites the candidate's display name to
// call style. A module with no matching candidate is left unmodified.
func (x *Index) resolveModuleExports() {
	byLongname := make(map[string]*Symbol, len(x.exportCandidates))
	for _, c := range x.exportCandidates {
		if _, taken := byLongname[c.Longname()]; !taken {
			byLongname[c.Longname()] = c
		}
	}
	for _, sym := range x.all {
		if sym.Category != doclet.CategoryModules {
			continue
		}
		candidate, ok := byLongname[sym.Longname()]
		if !ok {
			continue
		}
		sym.Exports = candidate
		candidate.Name = requireStyleName(candidate.Name)
	}
}

// attachListeners copies listener longnames onto every event symbol,
// append-only in insertion order, never duplicating an entry.
func (x *Index) attachListeners() {
	for _, sym := range x.all {
		if sym.Category != doclet.CategoryEvents || sym.Longname() == "" {
			continue
		}
		bucket, ok := x.listeners[sym.Longname()]
		if !ok {
			continue
		}
		seen := make(map[string]bool, len(sym.Listeners))
		for _, l := range sym.Listeners {
			seen[l] = true
		}
		for _, listener := range bucket.Get(doclet.CategoryListeners) {
			lname := listener.Longname()
			if lname == "" || seen[lname] {
				continue
			}
			seen[lname] = true
			sym.Listeners = append(sym.Listeners, lname)
		}
	}
}

// assignLinks registers a canonical URL for every symbol's longname, then
// computes page-unique fragment ids in ingestion order. Registration happens
// for all symbols before any id is issued; a missing URL during id assignment
// is an internal-consistency fault.
func (x *Index) assignLinks(reg *linkmap.Registry) error {
	for _, sym := range x.all {
		if sym.Longname() == "" {
			continue
		}
		reg.CreateLink(sym.Doclet, x.NeedsOwnPage)
	}
	for _, sym := range x.all {
		if sym.Longname() == "" {
			continue
		}
		url, ok := reg.URLFor(sym.Longname())
		if !ok {
			return serrors.Consistency(
				fmt.Sprintf("no registered link for longname %q during id assignment", sym.Longname()))
		}
		sym.URL = url

		candidate := sym.Name
		if frag := linkmap.Fragment(url); frag != "" {
			candidate = frag
		}
		page := url
		if i := strings.IndexByte(url, '#'); i >= 0 {
			page = url[:i]
		}
		sym.ID = reg.UniqueID(page, candidate)

		if p := sym.Doclet.Meta.SourcePath(); p != "" {
			sym.ShortPath = x.shortByRaw[p]
		}
		x.resolveSeeAnchors(sym)
	}
	return nil
}

// resolveSeeAnchors rewrites see entries that start with a local-anchor
// marker into full cross-references against the symbol's own page.
func (x *Index) resolveSeeAnchors(sym *Symbol) {
	for i, item := range sym.See {
		if !strings.HasPrefix(item, "#") {
			continue
		}
		page := sym.URL
		if j := strings.IndexByte(page, '#'); j >= 0 {
			page = page[:j]
		}
		sym.See[i] = fmt.Sprintf("<a href=%q>%s</a>", page+item, item)
	}
}

// NeedsOwnPage reports whether the longname requires a dedicated output file.
func (x *Index) NeedsOwnPage(longname string) bool {
	return x.ownPage[longname]
}

// OwnPageLongnames returns file-worthy longnames in first-seen ingestion
// order. The returned slice is a copy.
func (x *Index) OwnPageLongnames() []string {
	out := make([]string, len(x.ownPageOrder))
	copy(out, x.ownPageOrder)
	return out
}

// Longname returns the bucket of symbols registered under the longname, or
// nil when none exist.
func (x *Index) Longname(lname string) *Bucket { return x.byLongname[lname] }

// Members returns the bucket of symbols whose memberof equals the longname.
func (x *Index) Members(lname string) *Bucket { return x.byMemberof[lname] }

// Globals returns the bucket of global symbols.
func (x *Index) Globals() *Bucket { return x.globals }

// All returns every ingested symbol in ingestion order. The slice is shared;
// callers must not mutate it.
func (x *Index) All() []*Symbol { return x.all }

// Nav returns the navigation tree built over file-worthy longnames. Nil
// before Finalize.
func (x *Index) Nav() *navtree.Node { return x.nav }

// SourcePaths returns the distinct raw source paths in first-seen order.
func (x *Index) SourcePaths() []string {
	out := make([]string, len(x.sourcePaths))
	copy(out, x.sourcePaths)
	return out
}

// ShortPath returns the display path for a raw source path.
func (x *Index) ShortPath(raw string) string { return x.shortByRaw[raw] }

// Packages returns the package symbols in ingestion order.
func (x *Index) Packages() []*Symbol {
	var out []*Symbol
	for _, sym := range x.all {
		if sym.Category == doclet.CategoryPackages {
			out = append(out, sym)
		}
	}
	return out
}

// Stats returns ingestion statistics.
func (x *Index) Stats() Stats { return x.stats }
