package symbolgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/symdoc/internal/doclet"
	"git.home.luguber.info/inful/symdoc/internal/linkmap"
)

func buildIndex(t *testing.T, doclets []*doclet.Doclet) (*Index, *linkmap.Registry) {
	t.Helper()
	idx := NewIndex()
	idx.Ingest(doclet.NewStore(doclets))
	reg := linkmap.NewRegistry()
	reg.RegisterLink(linkmap.IndexTarget)
	reg.RegisterLink(linkmap.GlobalTarget)
	require.NoError(t, idx.Finalize(reg))
	return idx, reg
}

func TestIngest_CategorizationIsTotalForRecognizedKinds(t *testing.T) {
	doclets := []*doclet.Doclet{
		{Kind: doclet.KindClass, Longname: "Alpha", Name: "Alpha"},
		{Kind: doclet.KindNamespace, Longname: "ns", Name: "ns"},
		{Kind: doclet.KindMember, Longname: "ns.x", Name: "x", Memberof: "ns"},
	}
	idx, _ := buildIndex(t, doclets)

	require.Equal(t, 3, idx.Stats().Ingested)
	assert.True(t, idx.Longname("Alpha").Has(doclet.CategoryClasses))
	assert.True(t, idx.Longname("ns").Has(doclet.CategoryNamespaces))
	assert.True(t, idx.Longname("ns.x").Has(doclet.CategoryMembers))
}

func TestIngest_UnrecognizedKindIsSoftSkipped(t *testing.T) {
	idx := NewIndex()
	stats := idx.Ingest(doclet.NewStore([]*doclet.Doclet{
		{Kind: "hologram", Longname: "weird", Name: "weird"},
		{Kind: doclet.KindClass, Longname: "Alpha", Name: "Alpha"},
	}))

	assert.Equal(t, 1, stats.Ingested)
	assert.Equal(t, 1, stats.SkippedKinds)
	assert.Nil(t, idx.Longname("weird"))
}

func TestIngest_ConstantNormalizesToMember(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindConstant, Longname: "ns.LIMIT", Name: "LIMIT", Memberof: "ns", Scope: "static"},
	})
	assert.True(t, idx.Longname("ns.LIMIT").Has(doclet.CategoryMembers))
}

func TestIngest_GlobalExclusivity(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindFunction, Longname: "loneFn", Name: "loneFn", Scope: "global"},
	})

	require.True(t, idx.Globals().Has(doclet.CategoryFunctions))
	// A global must not appear in the longname or memberof indices.
	assert.Nil(t, idx.Longname("loneFn"))
	assert.Nil(t, idx.Members("loneFn"))
}

func TestIngest_ExternalQuotesStripped(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindExternal, Longname: `external:"jquery.fn"`, Name: `"jquery.fn"`},
	})
	syms := idx.Longname(`external:"jquery.fn"`).Get(doclet.CategoryExternals)
	require.Len(t, syms, 1)
	assert.Equal(t, "jquery.fn", syms[0].Name)
}

func TestFinalize_ModuleExportMerge(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindModule, Longname: "module:foo", Name: "module:foo"},
		{Kind: doclet.KindClass, Longname: "module:foo", Name: "module:foo"},
	})

	modules := idx.Longname("module:foo").Get(doclet.CategoryModules)
	require.Len(t, modules, 1)
	mod := modules[0]
	require.NotNil(t, mod.Exports)
	assert.Equal(t, `require("foo")`, mod.Exports.Name)
	// The export representative is excluded from its own category.
	assert.False(t, idx.Longname("module:foo").Has(doclet.CategoryClasses))
}

func TestFinalize_ModuleWithoutExportCandidateIsUnmodified(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindModule, Longname: "module:bare", Name: "module:bare"},
	})
	modules := idx.Longname("module:bare").Get(doclet.CategoryModules)
	require.Len(t, modules, 1)
	assert.Nil(t, modules[0].Exports)
}

func TestFinalize_EachModuleMatchesItsOwnExport(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindModule, Longname: "module:a", Name: "module:a"},
		{Kind: doclet.KindClass, Longname: "module:a", Name: "module:a"},
		{Kind: doclet.KindModule, Longname: "module:b", Name: "module:b"},
		{Kind: doclet.KindFunction, Longname: "module:b", Name: "module:b"},
	})

	modA := idx.Longname("module:a").Get(doclet.CategoryModules)[0]
	modB := idx.Longname("module:b").Get(doclet.CategoryModules)[0]
	require.NotNil(t, modA.Exports)
	require.NotNil(t, modB.Exports)
	assert.Equal(t, `require("a")`, modA.Exports.Name)
	assert.Equal(t, `require("b")`, modB.Exports.Name)
}

func TestFinalize_ListenerAttachment(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindEvent, Longname: "event:E", Name: "E", Memberof: "ns"},
		{Kind: doclet.KindFunction, Longname: "ns.onE", Name: "onE", Memberof: "ns", Listens: []string{"event:E"}},
		{Kind: doclet.KindNamespace, Longname: "ns", Name: "ns"},
	})

	events := idx.Longname("event:E").Get(doclet.CategoryEvents)
	require.Len(t, events, 1)
	assert.Equal(t, []string{"ns.onE"}, events[0].Listeners)
}

func TestFinalize_ListenerAttachedExactlyOnce(t *testing.T) {
	idx := NewIndex()
	idx.Ingest(doclet.NewStore([]*doclet.Doclet{
		{Kind: doclet.KindNamespace, Longname: "ns", Name: "ns"},
		{Kind: doclet.KindEvent, Longname: "event:E", Name: "E", Memberof: "ns"},
		{Kind: doclet.KindFunction, Longname: "ns.onE", Name: "onE", Memberof: "ns",
			Listens: []string{"event:E", "event:E"}},
	}))
	reg := linkmap.NewRegistry()
	require.NoError(t, idx.Finalize(reg))

	events := idx.Longname("event:E").Get(doclet.CategoryEvents)
	require.Len(t, events, 1)
	assert.Equal(t, []string{"ns.onE"}, events[0].Listeners)
}

func TestIngest_AncestorChainOutermostFirst(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindNamespace, Longname: "a", Name: "a"},
		{Kind: doclet.KindNamespace, Longname: "a.b", Name: "b", Memberof: "a"},
		{Kind: doclet.KindMember, Longname: "a.b.c", Name: "c", Memberof: "a.b", Scope: "static"},
	})

	syms := idx.Longname("a.b.c").Get(doclet.CategoryMembers)
	require.Len(t, syms, 1)
	assert.Equal(t, []string{"a", "a.b"}, syms[0].Ancestors)
}

func TestIngest_AncestorChainTruncatesOnMissingParent(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindNamespace, Longname: "ns.sub", Name: "sub", Memberof: "ns.missing"},
	})
	syms := idx.Longname("ns.sub").Get(doclet.CategoryNamespaces)
	require.Len(t, syms, 1)
	assert.Empty(t, syms[0].Ancestors)
}

func TestIngest_ExampleCaptionSplit(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindClass, Longname: "Alpha", Name: "Alpha", Examples: []string{
			"<caption>Basic use</caption>\nnew Alpha();",
			"plain code only",
		}},
	})
	syms := idx.Longname("Alpha").Get(doclet.CategoryClasses)
	require.Len(t, syms, 1)
	require.Len(t, syms[0].Examples, 2)
	assert.Equal(t, "Basic use", syms[0].Examples[0].Caption)
	assert.Equal(t, "new Alpha();", syms[0].Examples[0].Code)
	assert.Equal(t, "", syms[0].Examples[1].Caption)
	assert.Equal(t, "plain code only", syms[0].Examples[1].Code)
}

func TestFinalize_ShortPaths(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindClass, Longname: "A", Name: "A",
			Meta: &doclet.Meta{Path: "/a/b", Filename: "x.js"}},
		{Kind: doclet.KindClass, Longname: "B", Name: "B",
			Meta: &doclet.Meta{Path: "/a/b/c", Filename: "y.js"}},
	})

	assert.Equal(t, "x.js", idx.ShortPath("/a/b/x.js"))
	assert.Equal(t, "c/y.js", idx.ShortPath("/a/b/c/y.js"))
}

func TestFinalize_ShortPathsSingleFile(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindClass, Longname: "A", Name: "A",
			Meta: &doclet.Meta{Path: "/deep/tree", Filename: "only.js"}},
	})
	assert.Equal(t, "only.js", idx.ShortPath("/deep/tree/only.js"))
}

func TestIngest_SourcePathsFirstSeenOrderNoDuplicates(t *testing.T) {
	idx := NewIndex()
	idx.Ingest(doclet.NewStore([]*doclet.Doclet{
		{Kind: doclet.KindClass, Longname: "A", Name: "A",
			Meta: &doclet.Meta{Path: "/src", Filename: "b.js"}},
		{Kind: doclet.KindClass, Longname: "B", Name: "B",
			Meta: &doclet.Meta{Path: "/src", Filename: "a.js"}},
		{Kind: doclet.KindMember, Longname: "A.x", Name: "x", Memberof: "A", Scope: "static",
			Meta: &doclet.Meta{Path: "/src", Filename: "b.js"}},
	}))
	// Store sorts by longname, so A (b.js) ingests before B (a.js).
	assert.Equal(t, []string{"/src/b.js", "/src/a.js"}, idx.SourcePaths())
}

func TestFinalize_IDsUniquePerPage(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindClass, Longname: "Widget", Name: "Widget"},
		{Kind: doclet.KindFunction, Longname: "Widget#draw", Name: "draw", Memberof: "Widget", Scope: "instance"},
		{Kind: doclet.KindFunction, Longname: "Widget.draw", Name: "draw", Memberof: "Widget", Scope: "static"},
	})

	instance := idx.Longname("Widget#draw").Get(doclet.CategoryFunctions)[0]
	static := idx.Longname("Widget.draw").Get(doclet.CategoryFunctions)[0]
	require.NotEmpty(t, instance.ID)
	require.NotEmpty(t, static.ID)
	assert.NotEqual(t, instance.ID, static.ID)
}

func TestFinalize_IDFromFragmentOrName(t *testing.T) {
	idx, reg := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindClass, Longname: "Widget", Name: "Widget"},
		{Kind: doclet.KindFunction, Longname: "Widget#draw", Name: "draw", Memberof: "Widget", Scope: "instance"},
	})

	widget := idx.Longname("Widget").Get(doclet.CategoryClasses)[0]
	draw := idx.Longname("Widget#draw").Get(doclet.CategoryFunctions)[0]
	// Own-page symbol has no fragment, so the id falls back to its name.
	assert.Equal(t, "Widget", widget.ID)
	// Member URL carries a fragment; the id is that fragment.
	url, ok := reg.URLFor("Widget#draw")
	require.True(t, ok)
	assert.Contains(t, url, "#")
	assert.Equal(t, "draw", draw.ID)
}

func TestFinalize_SeeAnchorResolvedAgainstOwnPage(t *testing.T) {
	idx, reg := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindClass, Longname: "Widget", Name: "Widget",
			See: []string{"#draw", "OtherThing"}},
	})

	sym := idx.Longname("Widget").Get(doclet.CategoryClasses)[0]
	url, _ := reg.URLFor("Widget")
	require.Len(t, sym.See, 2)
	assert.Equal(t, `<a href="`+url+`#draw">#draw</a>`, sym.See[0])
	assert.Equal(t, "OtherThing", sym.See[1])
}

func TestFinalize_NeedsOwnPageSet(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindClass, Longname: "Alpha", Name: "Alpha"},
		{Kind: doclet.KindMixin, Longname: "Mixy", Name: "Mixy"},
		{Kind: doclet.KindFunction, Longname: "Alpha#run", Name: "run", Memberof: "Alpha", Scope: "instance"},
	})

	assert.True(t, idx.NeedsOwnPage("Alpha"))
	assert.True(t, idx.NeedsOwnPage("Mixy"))
	assert.False(t, idx.NeedsOwnPage("Alpha#run"))
	assert.Equal(t, []string{"Alpha", "Mixy"}, idx.OwnPageLongnames())
}

func TestFinalize_CalledTwiceIsConsistencyError(t *testing.T) {
	idx := NewIndex()
	idx.Ingest(doclet.NewStore(nil))
	reg := linkmap.NewRegistry()
	require.NoError(t, idx.Finalize(reg))
	err := idx.Finalize(reg)
	require.Error(t, err)
}

func TestFinalize_NavTreeCoversOwnPageLongnames(t *testing.T) {
	idx, _ := buildIndex(t, []*doclet.Doclet{
		{Kind: doclet.KindNamespace, Longname: "ns", Name: "ns"},
		{Kind: doclet.KindClass, Longname: "ns.Widget", Name: "Widget", Memberof: "ns", Scope: "static"},
	})

	nav := idx.Nav()
	require.NotNil(t, nav)
	ns := nav.Child("ns")
	require.NotNil(t, ns)
	assert.True(t, ns.Present)
	widget := ns.Child("Widget")
	require.NotNil(t, widget)
	assert.Equal(t, "ns.Widget", widget.Longname)
}
