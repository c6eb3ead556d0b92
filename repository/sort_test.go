package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haukuraj/sqlverk/errs"
)

func TestOrderClauseNilMeansDefaultOrder(t *testing.T) {
	clause, err := athleteSortColumns.orderClause(nil)

	require.NoError(t, err)
	assert.Equal(t, "", clause)
}

func TestOrderClauseDirections(t *testing.T) {
	tests := []struct {
		name     string
		sortBy   SortBy
		expected string
	}{
		{"asc", SortBy{Key: "name", Order: SortAsc}, " ORDER BY name ASC"},
		{"desc", SortBy{Key: "name", Order: SortDesc}, " ORDER BY name DESC"},
		{"empty order defaults to asc", SortBy{Key: "height"}, " ORDER BY height ASC"},
		{"order is case-insensitive", SortBy{Key: "id", Order: "DESC"}, " ORDER BY id DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, err := athleteSortColumns.orderClause(&tt.sortBy)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, clause)
		})
	}
}

func TestOrderClauseRejectsUnknownKey(t *testing.T) {
	_, err := athleteSortColumns.orderClause(&SortBy{Key: "password_hash"})

	require.ErrorIs(t, err, errs.ErrValidation)

	var gwErr *errs.Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "INVALID_SORT_KEY", gwErr.Code)
}

func TestOrderClauseRejectsInjectionAttempt(t *testing.T) {
	_, err := athleteSortColumns.orderClause(&SortBy{Key: "name; DROP TABLE athletes--"})

	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestOrderClauseRejectsUnknownOrder(t *testing.T) {
	_, err := athleteSortColumns.orderClause(&SortBy{Key: "name", Order: "sideways"})

	require.ErrorIs(t, err, errs.ErrValidation)

	var gwErr *errs.Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "INVALID_SORT_ORDER", gwErr.Code)
}

func TestResultSortColumnsResolveJoinedIdentifiers(t *testing.T) {
	clause, err := resultSortColumns.orderClause(&SortBy{Key: "held", Order: SortDesc})
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY c.held DESC", clause)

	clause, err = resultSortColumns.orderClause(&SortBy{Key: "sport"})
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY sport ASC", clause)
}

func TestCompetitionSortColumns(t *testing.T) {
	for _, key := range []string{"id", "place", "held"} {
		_, err := competitionSortColumns.orderClause(&SortBy{Key: key})
		assert.NoError(t, err, key)
	}

	_, err := competitionSortColumns.orderClause(&SortBy{Key: "sport_id"})
	assert.Error(t, err)
}
