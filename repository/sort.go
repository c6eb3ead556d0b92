package repository

import (
	"fmt"
	"strings"

	"github.com/Haukuraj/sqlverk/errs"
)

// SortOrder is the direction of a requested sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortBy names a sortable column token and a direction. The key is a
// caller-facing token, not a raw column: it must resolve through the
// entity's allow-list before it gets near a query string.
type SortBy struct {
	Key   string
	Order SortOrder
}

// sortColumns maps caller-facing sort-key tokens to validated column
// identifiers for one entity. Only identifiers from these maps are
// ever spliced into an ORDER BY clause.
type sortColumns map[string]string

var (
	athleteSortColumns = sortColumns{
		"id":     "id",
		"name":   "name",
		"gender": "gender",
		"height": "height",
	}

	competitionSortColumns = sortColumns{
		"id":    "id",
		"place": "place",
		"held":  "held",
	}

	// Keys follow the output columns of the joined results listing;
	// aliased outputs sort by their alias.
	resultSortColumns = sortColumns{
		"place":     "c.place",
		"held":      "c.held",
		"sport":     "sport",
		"athleteid": "athleteid",
		"name":      "a.name",
		"result":    "r.result",
	}
)

// orderClause resolves sortBy into an " ORDER BY ..." fragment.
//
// A nil sortBy yields the empty string (database-default order). An
// unknown key or direction fails with a validation error before any
// query is composed.
func (sc sortColumns) orderClause(sortBy *SortBy) (string, error) {
	if sortBy == nil {
		return "", nil
	}

	column, ok := sc[sortBy.Key]
	if !ok {
		code := "INVALID_SORT_KEY"
		return "", errs.NewValidationError(
			fmt.Sprintf("sort key %q does not match any sortable column", sortBy.Key),
			&code,
			[]errs.FieldError{{Field: "sortby.key", Error: "is not a sortable column"}},
		)
	}

	switch SortOrder(strings.ToLower(string(sortBy.Order))) {
	case SortAsc, "":
		return " ORDER BY " + column + " ASC", nil
	case SortDesc:
		return " ORDER BY " + column + " DESC", nil
	default:
		code := "INVALID_SORT_ORDER"
		return "", errs.NewValidationError(
			fmt.Sprintf("sort order %q is not one of asc, desc", sortBy.Order),
			&code,
			[]errs.FieldError{{Field: "sortby.order", Error: "must be one of: asc desc"}},
		)
	}
}
