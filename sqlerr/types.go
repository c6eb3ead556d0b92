package sqlerr

import "strings"

// Code is a friendly category for a PostgreSQL SQLSTATE.
type Code int

const (
	// Other is any SQLSTATE we do not classify specifically.
	Other Code = iota

	// UniqueViolation is SQLSTATE 23505.
	UniqueViolation

	// ForeignKeyViolation is SQLSTATE 23503.
	ForeignKeyViolation

	// NotNullViolation is SQLSTATE 23502.
	NotNullViolation

	// CheckViolation is SQLSTATE 23514.
	CheckViolation

	// InvalidTextRepresentation is SQLSTATE 22P02 (bad literal for a
	// column type, e.g. "abc" into an integer).
	InvalidTextRepresentation

	// InsufficientPrivilege is SQLSTATE 42501 (the connected database
	// role lacks a grant for the statement).
	InsufficientPrivilege

	// ConnectionException covers SQLSTATE class 08 (connection errors).
	ConnectionException
)

// Severity mirrors the severity field of a PostgreSQL error.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// Error is a parsed PostgreSQL error with the driver metadata we care
// about. It keeps the original driver error for Unwrap.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string // original SQLSTATE
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error (*pgconn.PgError).
func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE string to a Code.
//
// Specific states are matched first, then the class prefix for
// connection errors (class 08 has several members).
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	case "22P02":
		return InvalidTextRepresentation
	case "42501":
		return InsufficientPrivilege
	}
	if strings.HasPrefix(sqlstate, "08") {
		return ConnectionException
	}
	return Other
}

// MapSeverity maps the driver's severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch strings.ToUpper(severity) {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	}
	return SeverityUnknown
}
