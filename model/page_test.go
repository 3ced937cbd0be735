// model/page_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		content := []*Account{{ID: "ACCPAGE00001"}, {ID: "ACCPAGE00002"}}
		page := NewPage(content, 1, 2, 5)

		assert.Equal(t, int64(5), page.TotalElements)
		assert.Equal(t, 3, page.TotalPages)
		assert.False(t, page.First)
		assert.False(t, page.Last)
		assert.False(t, page.Empty)
	})

	t.Run("last page", func(t *testing.T) {
		page := NewPage([]*Account{{ID: "ACCPAGE00005"}}, 2, 2, 5)

		assert.True(t, page.Last)
		assert.False(t, page.First)
	})

	t.Run("empty result", func(t *testing.T) {
		page := NewPage(nil, 0, 10, 0)

		assert.NotNil(t, page.Content)
		assert.Empty(t, page.Content)
		assert.Equal(t, 0, page.TotalPages)
		assert.True(t, page.First)
		assert.True(t, page.Last)
		assert.True(t, page.Empty)
	})
}

func TestAccountSearchCriteria_HasFilters(t *testing.T) {
	assert.False(t, AccountSearchCriteria{Page: 3, Size: 20, SortBy: "balance"}.HasFilters())
	assert.True(t, AccountSearchCriteria{HolderName: "doe"}.HasFilters())
	assert.True(t, AccountSearchCriteria{Status: StatusActive}.HasFilters())
}
