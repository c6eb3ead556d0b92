// Package sqlerr specifically handles database driver errors.
//
// It parses SQLSTATE codes from the PostgreSQL driver and converts
// them into the gateway's typed errors (e.g., converting a
// "foreign key violation" into a validation error that names the
// missing entity).
package sqlerr
