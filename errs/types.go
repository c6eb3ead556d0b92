package errs

import "strings"

// Kind classifies a gateway failure. Every error produced by this module
// carries exactly one Kind, so callers can branch without string matching.
type Kind string

const (
	// KindConnection means the database connection could not be
	// established or maintained. Not recoverable by retrying inside
	// the gateway.
	KindConnection Kind = "connection"

	// KindNotFound means a referenced row (usually the acting username)
	// does not exist.
	KindNotFound Kind = "not_found"

	// KindPermission means the acting user exists but lacks a role that
	// permits the operation.
	KindPermission Kind = "permission"

	// KindValidation means the input was malformed: unknown sort key,
	// invalid date, invalid identifier pattern.
	KindValidation Kind = "validation"

	// KindDependencyConflict means a delete was blocked by existing
	// dependent rows and no cascade was requested.
	KindDependencyConflict Kind = "dependency_conflict"

	// KindDatabase covers errors reported by the database itself
	// (constraint violations, syntax errors) that do not map to a more
	// specific kind. The driver error stays reachable via Unwrap.
	KindDatabase Kind = "database"
)

// Sentinel values for errors.Is checks. Matching is by Kind, so
//
//	errors.Is(err, errs.ErrNotFound)
//
// is true for any not-found error regardless of message or code.
var (
	ErrConnection         = &Error{Kind: KindConnection}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrPermission         = &Error{Kind: KindPermission}
	ErrValidation         = &Error{Kind: KindValidation}
	ErrDependencyConflict = &Error{Kind: KindDependencyConflict}
	ErrDatabase           = &Error{Kind: KindDatabase}
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "page", "error": "must be at least 1" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "page").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// Error is the gateway's error type.
//
// Fields:
//   - Kind: failure category, used by Is.
//   - Code: machine-friendly code (e.g. "SPORT_HAS_DEPENDENTS").
//   - Message: human-friendly message.
//   - Errors: per-field validation errors, when applicable.
//
// The wrapped cause (if any) is reachable via Unwrap, so driver errors
// such as *pgconn.PgError stay inspectable with errors.As.
type Error struct {
	Kind    Kind         `json:"kind"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`

	cause error
}

// Error makes *Error satisfy the built-in error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if one was recorded.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same Kind.
// This is what makes the package sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// WithMessage returns a copy of this error with Message replaced.
// The original is not mutated.
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		Kind:    e.Kind,
		Code:    e.Code,
		Message: message,
		Errors:  e.Errors,
		cause:   e.cause,
	}
}

// NewConnectionError creates a connection-kind error wrapping cause.
func NewConnectionError(message string, cause error) *Error {
	return &Error{
		Kind:    KindConnection,
		Code:    "CONNECTION_FAILED",
		Message: message,
		cause:   cause,
	}
}

// NewNotFoundError creates a not-found error.
//
// Parameters:
//   - message: text describing what was missing
//   - code: optional custom code (nil defaults to "NOT_FOUND")
func NewNotFoundError(message string, code *string) *Error {
	formattedCode := "NOT_FOUND"
	if code != nil {
		formattedCode = *code
	}
	return &Error{
		Kind:    KindNotFound,
		Code:    formattedCode,
		Message: message,
	}
}

// NewPermissionError creates a permission error for an actor whose role
// is outside the required role set.
func NewPermissionError(message string) *Error {
	return &Error{
		Kind:    KindPermission,
		Code:    "PERMISSION_DENIED",
		Message: message,
	}
}

// NewValidationError creates a validation error.
//
// This supports extra payload:
//   - code: optional custom code string (nil defaults to "VALIDATION_FAILED")
//   - fields: optional slice of field errors
func NewValidationError(message string, code *string, fields []FieldError) *Error {
	formattedCode := "VALIDATION_FAILED"
	if code != nil {
		formattedCode = *code
	}
	return &Error{
		Kind:    KindValidation,
		Code:    formattedCode,
		Message: message,
		Errors:  fields,
	}
}

// NewDependencyConflictError creates a dependency-conflict error for a
// delete blocked by dependent rows.
func NewDependencyConflictError(message string, code *string) *Error {
	formattedCode := "DEPENDENCY_CONFLICT"
	if code != nil {
		formattedCode = *code
	}
	return &Error{
		Kind:    KindDependencyConflict,
		Code:    formattedCode,
		Message: message,
	}
}

// NewDatabaseError creates a database-kind error wrapping the driver
// error so callers can still reach it with errors.As.
func NewDatabaseError(message string, code *string, cause error) *Error {
	formattedCode := "DATABASE_ERROR"
	if code != nil {
		formattedCode = *code
	}
	return &Error{
		Kind:    KindDatabase,
		Code:    formattedCode,
		Message: message,
		cause:   cause,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an
// UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"sport has dependents" -> "SPORT_HAS_DEPENDENTS"
//
// Used to create stable machine-readable error codes.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
