package repository

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Haukuraj/sqlverk/sqlerr"
)

const credentialsQuery = `SELECT password_hash, role_name FROM users WHERE username = $1`

// dummyHash is compared against when the username does not resolve, so
// a lookup miss costs the same bcrypt work as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("sqlverk.dummy.password"), bcrypt.DefaultCost)

// CheckUserCredentials checks a user's login information.
//
// If a user with the given username exists, the supplied password is
// verified against the stored bcrypt hash. On success it returns the
// user's role and true.
//
// A missing user, a failed verification, and a lookup error all return
// ("", false): authentication failure is an expected outcome, not an
// error, and the cases are deliberately indistinguishable so usernames
// cannot be enumerated.
func (g *Gateway) CheckUserCredentials(ctx context.Context, username, password string) (string, bool) {
	var hash, role string
	err := g.db.Pool.QueryRow(ctx, credentialsQuery, username).Scan(&hash, &role)
	if err != nil {
		g.log.Debug().Err(err).Msg("credential lookup did not resolve")
		// Burn the same hashing cost as the found-user path.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", false
	}

	if !verifyPassword(hash, password) {
		return "", false
	}
	return role, true
}

// verifyPassword reports whether password matches the stored bcrypt
// hash. bcrypt's comparison is constant-time over the digest.
func verifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CurrentRole reports the database role the pool authenticated as.
// Useful for verifying which grants apply to this connection.
func (g *Gateway) CurrentRole(ctx context.Context) (string, error) {
	var role string
	if err := g.db.Pool.QueryRow(ctx, `SELECT current_user`).Scan(&role); err != nil {
		return "", sqlerr.HandleError(err)
	}
	return role, nil
}
