package symbolgraph

import "git.home.luguber.info/inful/symdoc/internal/doclet"

// Bucket is an ordered-insertion collection of symbols per category. A single
// longname may own symbols across several categories, so buckets are keyed by
// category internally while preserving append order within each.
type Bucket struct {
	byCategory map[doclet.Category][]*Symbol
}

// NewBucket returns an empty bucket.
func NewBucket() *Bucket {
	return &Bucket{byCategory: make(map[doclet.Category][]*Symbol)}
}

// Append files a symbol under the given category. The same symbol is never
// duplicated within one category.
func (b *Bucket) Append(c doclet.Category, s *Symbol) {
	for _, existing := range b.byCategory[c] {
		if existing == s {
			return
		}
	}
	b.byCategory[c] = append(b.byCategory[c], s)
}

// Get returns all symbols filed under the category, in insertion order. The
// returned slice is shared; callers must not mutate it.
func (b *Bucket) Get(c doclet.Category) []*Symbol {
	if b == nil {
		return nil
	}
	return b.byCategory[c]
}

// Has reports whether any symbol is filed under the category.
func (b *Bucket) Has(c doclet.Category) bool {
	return b != nil && len(b.byCategory[c]) > 0
}

// HasAny reports whether the bucket holds any symbol in any category.
func (b *Bucket) HasAny() bool {
	if b == nil {
		return false
	}
	for _, syms := range b.byCategory {
		if len(syms) > 0 {
			return true
		}
	}
	return false
}

// Len returns the total number of symbols across all categories.
func (b *Bucket) Len() int {
	if b == nil {
		return 0
	}
	n := 0
	for _, syms := range b.byCategory {
		n += len(syms)
	}
	return n
}
