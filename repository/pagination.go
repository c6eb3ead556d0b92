package repository

import "github.com/Haukuraj/sqlverk/validation"

// PageRequest describes one page of a paginated listing.
//
// Page is 1-indexed. SortBy is optional; nil means database-default
// order.
type PageRequest struct {
	Page         int `validate:"gte=1"`
	ItemsPerPage int `validate:"gte=1"`
	SortBy       *SortBy
}

// Offset is the 0-based row offset of this page:
// (page-1) * itemsPerPage.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.ItemsPerPage
}

// validate checks the page bounds and resolves the sort clause against
// the entity's sortable-column allow-list. It returns the ORDER BY
// fragment ("" when no sort was requested) or a validation error; no
// query is issued when it fails.
func (p PageRequest) validate(columns sortColumns) (string, error) {
	if err := validation.Struct(p); err != nil {
		return "", err
	}
	return columns.orderClause(p.SortBy)
}
