package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Haukuraj/sqlverk/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the mapped sqlerr.Code for a given error.
//
// Behavior:
//   - If err can be unwrapped into *sqlerr.Error, return its Code.
//   - Otherwise return sqlerr.Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our
// custom sqlerr.Error.
//
// pgconn.PgError contains Postgres-specific fields like the SQLSTATE,
// severity, and table/column/constraint names. We map SQLSTATE and
// severity into our enums for easier switching.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates consistent application error codes from DB
// errors.
//
// Output format:
//
//	<DOMAIN>_<ACTION>
//
// Example:
//
//	athletes + UniqueViolation => ATHLETE_ALREADY_EXISTS
//
// Rules:
//   - DOMAIN comes from tableName (uppercased, singularized crudely by
//     removing a trailing 'S')
//   - ACTION depends on the violation type
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextRepresentation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces a caller-facing error message.
//
// It uses table/column info to phrase messages in a more human way.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is later replaced if we can infer a column name
		// from the constraint.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case InvalidTextRepresentation:
		return "A value has the wrong format for its column"

	case InsufficientPrivilege:
		return "The database role is not allowed to perform this statement"

	default:
		return "An error occurred while processing the request"
	}
}

// getEntityName tries to infer an entity name from table/column data.
//
// Priority rules:
//  1. If column ends with "_id", use that base name (best for FK
//     relations): "sport_id" -> "Sport".
//  2. Otherwise use the table name, singularized if it ends with "s".
//  3. Otherwise fall back to "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case identifiers into Title Case.
//
// Example:
//
//	"role_name" -> "Role Name"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation tries to infer the column name from a
// unique constraint name.
//
// It supports two conventions:
//
//  1. "unique_<table>_<column>"
//     Example: unique_users_username -> "username"
//
//  2. "<table>_<column>_(key|ukey)"
//     Example: users_username_key -> "username"
var uniqueConstraintRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueConstraintRe.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into a gateway error.
//
// Output:
//   - If already *errs.Error: returned unchanged
//   - If pgconn.PgError: mapped by SQLSTATE category
//   - If ErrNoRows: mapped to a not-found error
//   - Otherwise: a generic database error wrapping the cause
//
// This function is intended to be called by repository methods after a
// DB call fails.
func HandleError(err error) error {
	// Already classified; don't re-wrap. Prevents double-wrapping and
	// preserves the exact error shape.
	var gwErr *errs.Error
	if errors.As(err, &gwErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			// Inserting a row whose reference doesn't exist.
			return errs.NewValidationError(userMessage, &errorCode, nil)

		case UniqueViolation:
			// Try to infer which column caused it and name it.
			columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName)
			if columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewDatabaseError(userMessage, &errorCode, sqlErr)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewValidationError(userMessage, &errorCode, fieldErrors)

		case CheckViolation, InvalidTextRepresentation:
			return errs.NewValidationError(userMessage, &errorCode, nil)

		case InsufficientPrivilege:
			return errs.NewPermissionError(userMessage)

		case ConnectionException:
			return errs.NewConnectionError(userMessage, sqlErr)

		default:
			return errs.NewDatabaseError(userMessage, nil, sqlErr)
		}
	}

	// "No rows found" from SELECT ... Scan. Both pgx and database/sql
	// define their own sentinel.
	switch {
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		return errs.NewNotFoundError("Resource not found", nil)
	}

	return errs.NewDatabaseError("An error occurred while processing the request", nil, err)
}
