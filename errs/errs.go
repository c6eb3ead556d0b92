// Package errs defines the typed error taxonomy of the gateway.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for invalid input or kind-tagged errors for
// authorization failures) so that callers receive meaningful,
// actionable, and consistent failures they can branch on with
// errors.Is.
package errs
