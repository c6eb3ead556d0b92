package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haukuraj/sqlverk/errs"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		perPage  int
		expected int
	}{
		{"first page", 1, 20, 0},
		{"second page", 2, 20, 20},
		{"fifth page of ten", 5, 10, 40},
		{"single item pages", 3, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := PageRequest{Page: tt.page, ItemsPerPage: tt.perPage}
			assert.Equal(t, tt.expected, req.Offset())
		})
	}
}

func TestPageRequestValidate(t *testing.T) {
	clause, err := PageRequest{Page: 1, ItemsPerPage: 10}.validate(athleteSortColumns)

	require.NoError(t, err)
	assert.Equal(t, "", clause)
}

func TestPageRequestValidateRejectsBadBounds(t *testing.T) {
	tests := []struct {
		name string
		req  PageRequest
	}{
		{"zero page", PageRequest{Page: 0, ItemsPerPage: 10}},
		{"negative page", PageRequest{Page: -1, ItemsPerPage: 10}},
		{"zero items per page", PageRequest{Page: 1, ItemsPerPage: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.validate(athleteSortColumns)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestPageRequestValidateResolvesSort(t *testing.T) {
	req := PageRequest{Page: 2, ItemsPerPage: 25, SortBy: &SortBy{Key: "name", Order: SortDesc}}

	clause, err := req.validate(athleteSortColumns)

	require.NoError(t, err)
	assert.Equal(t, " ORDER BY name DESC", clause)
}
