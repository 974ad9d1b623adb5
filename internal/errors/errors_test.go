package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(CategoryRender, SeverityError, "view exploded")
	assert.Equal(t, "render (error): view exploded", plain.Error())

	wrapped := Wrap(errors.New("boom"), CategoryInput, SeverityFatal, "doclet load failed")
	assert.Equal(t, "input (fatal): doclet load failed: boom", wrapped.Error())
	assert.Equal(t, "boom", errors.Unwrap(wrapped).Error())
}

func TestCategoryClassification(t *testing.T) {
	err := Consistency("page longname has no registered link")
	assert.True(t, IsCategory(err, CategoryConsistency))
	assert.False(t, IsCategory(err, CategoryRender))
	assert.True(t, IsFatal(err))
	assert.Equal(t, CategoryConsistency, GetCategory(err))

	// Classification survives fmt wrapping.
	deep := fmt.Errorf("step symbol_pages: %w", err)
	assert.True(t, IsCategory(deep, CategoryConsistency))
	assert.True(t, IsFatal(deep))
}

func TestGetCategory_ForeignError(t *testing.T) {
	assert.Equal(t, CategoryInternal, GetCategory(errors.New("plain")))
}

func TestWithContext(t *testing.T) {
	err := New(CategoryRender, SeverityWarning, "partial page").
		WithContext("view", "container").
		WithContext("page", "Widget.html")
	assert.Equal(t, "container", err.Context["view"])
	assert.Equal(t, "Widget.html", err.Context["page"])
}
