package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Haukuraj/sqlverk/errs"
	"github.com/Haukuraj/sqlverk/sqlerr"
	"github.com/Haukuraj/sqlverk/validation"
)

// validateRoleIdentifiers checks the role name and username against the
// strict identifier pattern. Role DDL and GRANT statements cannot take
// bind parameters, so anything outside [A-Za-z_][A-Za-z0-9_]* is
// rejected before query composition.
func validateRoleIdentifiers(roleName, username string) error {
	var fields []errs.FieldError
	if !validation.IsValidIdentifier(roleName) {
		fields = append(fields, errs.FieldError{Field: "rolename", Error: "must match [A-Za-z_][A-Za-z0-9_]*"})
	}
	if !validation.IsValidIdentifier(username) {
		fields = append(fields, errs.FieldError{Field: "username", Error: "must match [A-Za-z_][A-Za-z0-9_]*"})
	}
	if len(fields) > 0 {
		code := "INVALID_IDENTIFIER"
		return errs.NewValidationError("identifiers must be plain SQL identifiers", &code, fields)
	}
	return nil
}

// CreateRoleAndUser creates a new database role with a fixed grant set
// and inserts the corresponding user row.
//
// The role receives INSERT on competitions and SELECT on athletes and
// results. The password is bcrypt-hashed before storage. Role
// creation, grants, and the user insert run in one transaction.
func (g *Gateway) CreateRoleAndUser(ctx context.Context, roleName, username, password string) error {
	if err := validateRoleIdentifiers(roleName, username); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		code := "INVALID_PASSWORD"
		return errs.NewValidationError("password cannot be hashed: "+err.Error(), &code, nil)
	}

	return g.db.WithTx(ctx, func(tx pgx.Tx) error {
		// roleName passed the identifier check above; these statements
		// cannot be parameterized.
		if _, err := tx.Exec(ctx, fmt.Sprintf("CREATE ROLE %s WITH LOGIN", roleName)); err != nil {
			return sqlerr.HandleError(err)
		}
		if _, err := tx.Exec(ctx, fmt.Sprintf("GRANT INSERT ON competitions TO %s", roleName)); err != nil {
			return sqlerr.HandleError(err)
		}
		if _, err := tx.Exec(ctx, fmt.Sprintf("GRANT SELECT ON athletes, results TO %s", roleName)); err != nil {
			return sqlerr.HandleError(err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO users (username, password_hash, role_name) VALUES ($1, $2, $3)`,
			username, string(hash), roleName,
		); err != nil {
			return sqlerr.HandleError(err)
		}

		g.log.Debug().Str("role", roleName).Str("username", username).Msg("role and user created")
		return nil
	})
}
