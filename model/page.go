package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountSearchCriteria collects the optional, conjunctive filters of an
// account search together with pagination and sorting. Zero values mean
// "not filtered".
type AccountSearchCriteria struct {
	HolderName    string
	AccountNumber string
	Status        AccountStatus
	Currency      string
	MinBalance    *decimal.Decimal
	MaxBalance    *decimal.Decimal
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	UpdatedFrom   *time.Time
	UpdatedTo     *time.Time

	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// HasFilters reports whether any search criterion beyond pagination is
// set. Without filters a search is equivalent to an unfiltered listing.
func (c AccountSearchCriteria) HasFilters() bool {
	return c.HolderName != "" ||
		c.AccountNumber != "" ||
		c.Status != "" ||
		c.Currency != "" ||
		c.MinBalance != nil ||
		c.MaxBalance != nil ||
		c.CreatedFrom != nil ||
		c.CreatedTo != nil ||
		c.UpdatedFrom != nil ||
		c.UpdatedTo != nil
}

// Page is a zero-indexed slice of a larger result set.
type Page struct {
	Content       []*Account `json:"content"`
	Page          int        `json:"page"`
	Size          int        `json:"size"`
	TotalElements int64      `json:"total_elements"`
	TotalPages    int        `json:"total_pages"`
	First         bool       `json:"first"`
	Last          bool       `json:"last"`
	Empty         bool       `json:"empty"`
}

// NewPage assembles a Page from one page of content and the total match
// count.
func NewPage(content []*Account, page, size int, total int64) *Page {
	if content == nil {
		content = []*Account{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return &Page{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page >= totalPages-1,
		Empty:         len(content) == 0,
	}
}
