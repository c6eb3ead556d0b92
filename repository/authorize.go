package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Haukuraj/sqlverk/errs"
	"github.com/Haukuraj/sqlverk/sqlerr"
)

const roleLookupQuery = `SELECT role_name FROM users WHERE username = $1`

// authorizeWriter is the shared pre-check for every mutating operation.
//
// It resolves username to a role and checks it against the write
// policy. It fails closed: a missing user is a not-found error, a role
// outside the policy is a permission error, and either aborts the
// caller's transaction before any mutating statement runs.
func (g *Gateway) authorizeWriter(ctx context.Context, q rowQuerier, username string) error {
	var role string
	err := q.QueryRow(ctx, roleLookupQuery, username).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		code := "USER_NOT_FOUND"
		return errs.NewNotFoundError(fmt.Sprintf("user %q does not exist", username), &code)
	}
	if err != nil {
		return sqlerr.HandleError(err)
	}

	if !g.policy.Allows(role) {
		g.log.Debug().Str("username", username).Str("role", role).Msg("write rejected by role policy")
		return errs.NewPermissionError(fmt.Sprintf("role %q is not permitted to modify records", role))
	}

	return nil
}
