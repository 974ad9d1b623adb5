package doclet

import "fmt"

// Kind is the symbol kind tag emitted by the upstream extractor.
type Kind string

const (
	KindClass     Kind = "class"
	KindConstant  Kind = "constant"
	KindEvent     Kind = "event"
	KindExternal  Kind = "external"
	KindFunction  Kind = "function"
	KindMember    Kind = "member"
	KindMixin     Kind = "mixin"
	KindModule    Kind = "module"
	KindNamespace Kind = "namespace"
	KindPackage   Kind = "package"
	KindTypedef   Kind = "typedef"
)

// Category is the closed set of documentation groupings that decide page
// structure. A doclet maps to at most one category via its kind.
type Category int

const (
	CategoryNone Category = iota
	CategoryClasses
	CategoryEvents
	CategoryExternals
	CategoryFunctions
	CategoryGlobals
	CategoryListeners
	CategoryMembers
	CategoryMixins
	CategoryModules
	CategoryNamespaces
	CategoryPackages
	CategoryTypedefs
)

var categoryNames = map[Category]string{
	CategoryNone:       "none",
	CategoryClasses:    "classes",
	CategoryEvents:     "events",
	CategoryExternals:  "externals",
	CategoryFunctions:  "functions",
	CategoryGlobals:    "globals",
	CategoryListeners:  "listeners",
	CategoryMembers:    "members",
	CategoryMixins:     "mixins",
	CategoryModules:    "modules",
	CategoryNamespaces: "namespaces",
	CategoryPackages:   "packages",
	CategoryTypedefs:   "typedefs",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// AllCategories lists every category in declaration order (excluding None).
// Iteration over buckets must be deterministic, so callers range over this
// slice rather than a map.
var AllCategories = []Category{
	CategoryClasses,
	CategoryEvents,
	CategoryExternals,
	CategoryFunctions,
	CategoryGlobals,
	CategoryListeners,
	CategoryMembers,
	CategoryMixins,
	CategoryModules,
	CategoryNamespaces,
	CategoryPackages,
	CategoryTypedefs,
}

var kindCategories = map[Kind]Category{
	KindClass:     CategoryClasses,
	KindEvent:     CategoryEvents,
	KindExternal:  CategoryExternals,
	KindFunction:  CategoryFunctions,
	KindMember:    CategoryMembers,
	KindMixin:     CategoryMixins,
	KindModule:    CategoryModules,
	KindNamespace: CategoryNamespaces,
	KindPackage:   CategoryPackages,
	KindTypedef:   CategoryTypedefs,
}

// CategoryForKind resolves the category a kind files under. Constants are
// normalized to members before classification, so KindConstant maps to
// CategoryMembers. Unrecognized kinds return CategoryNone and false.
func CategoryForKind(k Kind) (Category, bool) {
	if k == KindConstant {
		return CategoryMembers, true
	}
	c, ok := kindCategories[k]
	return c, ok
}

// OwnPageCategories are the categories whose symbols get a dedicated output
// file rather than a fragment on a container's page.
var OwnPageCategories = map[Category]bool{
	CategoryClasses:    true,
	CategoryExternals:  true,
	CategoryMixins:     true,
	CategoryModules:    true,
	CategoryNamespaces: true,
}
