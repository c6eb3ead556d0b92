package sqlerr

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haukuraj/sqlverk/errs"
)

func TestMapCode(t *testing.T) {
	tests := []struct {
		sqlstate string
		expected Code
	}{
		{"23505", UniqueViolation},
		{"23503", ForeignKeyViolation},
		{"23502", NotNullViolation},
		{"23514", CheckViolation},
		{"22P02", InvalidTextRepresentation},
		{"42501", InsufficientPrivilege},
		{"08006", ConnectionException},
		{"08001", ConnectionException},
		{"42601", Other},
		{"", Other},
	}

	for _, tt := range tests {
		t.Run(tt.sqlstate, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapCode(tt.sqlstate))
		})
	}
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityError, MapSeverity("ERROR"))
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityPanic, MapSeverity("PANIC"))
	assert.Equal(t, SeverityUnknown, MapSeverity("NOTICE"))
}

func TestConvertPgError(t *testing.T) {
	src := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "users",
		ConstraintName: "users_username_key",
	}

	converted := ConvertPgError(src)

	assert.Equal(t, UniqueViolation, converted.Code)
	assert.Equal(t, SeverityError, converted.Severity)
	assert.Equal(t, "23505", converted.DatabaseCode)
	assert.ErrorIs(t, converted, src)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23503",
		TableName:  "results",
		ColumnName: "sport_id",
	})

	require.ErrorIs(t, err, errs.ErrValidation)

	var gwErr *errs.Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "RESULT_NOT_FOUND", gwErr.Code)
	assert.Equal(t, "The referenced Sport does not exist", gwErr.Message)
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		TableName:      "users",
		ConstraintName: "users_username_key",
	})

	require.ErrorIs(t, err, errs.ErrDatabase)

	var gwErr *errs.Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "USER_ALREADY_EXISTS", gwErr.Code)
	assert.Equal(t, "A User with this Username already exists", gwErr.Message)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23502",
		TableName:  "athletes",
		ColumnName: "name",
	})

	require.ErrorIs(t, err, errs.ErrValidation)

	var gwErr *errs.Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "ATHLETE_REQUIRED", gwErr.Code)
	require.Len(t, gwErr.Errors, 1)
	assert.Equal(t, "name", gwErr.Errors[0].Field)
}

func TestHandleErrorInsufficientPrivilege(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "42501"})

	assert.ErrorIs(t, err, errs.ErrPermission)
}

func TestHandleErrorConnectionClass(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "08006"})

	assert.ErrorIs(t, err, errs.ErrConnection)
}

func TestHandleErrorNoRows(t *testing.T) {
	assert.ErrorIs(t, HandleError(pgx.ErrNoRows), errs.ErrNotFound)
}

func TestHandleErrorPassesThroughClassified(t *testing.T) {
	original := errs.NewPermissionError("not an editor")

	assert.Same(t, error(original), HandleError(original))
}

func TestHandleErrorUnknownBecomesDatabase(t *testing.T) {
	cause := errors.New("socket closed unexpectedly")
	err := HandleError(cause)

	require.ErrorIs(t, err, errs.ErrDatabase)
	assert.ErrorIs(t, err, cause)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		expected   string
	}{
		{"key suffix", "users_username_key", "username"},
		{"ukey suffix", "sports_name_ukey", "name"},
		{"unique prefix", "unique_users_username", "username"},
		{"unrecognized", "pk_users", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractColumnForUniqueViolation(tt.constraint))
		})
	}
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23503"})

	assert.Equal(t, ForeignKeyViolation, ErrCode(converted))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}
