package validation

import "regexp"

// identifierRegex matches the identifiers we are willing to splice into
// role-management statements, which cannot take bind parameters.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsValidIdentifier checks whether a string is a safe SQL identifier:
// a leading letter or underscore followed by letters, digits, or
// underscores. Anything else is rejected before query composition.
func IsValidIdentifier(ident string) bool {
	return identifierRegex.MatchString(ident)
}
