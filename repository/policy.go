package repository

import "github.com/Haukuraj/sqlverk/config"

// WritePolicy decides whether a role may perform mutating operations.
//
// It is an injectable policy rather than a hardcoded set so a new role
// can be granted write access without touching any call site.
type WritePolicy interface {
	Allows(role string) bool
}

// RoleSet is a WritePolicy backed by a fixed set of role names.
type RoleSet map[string]struct{}

// NewRoleSet builds a RoleSet from the given role names.
func NewRoleSet(roles ...string) RoleSet {
	rs := make(RoleSet, len(roles))
	for _, role := range roles {
		rs[role] = struct{}{}
	}
	return rs
}

// Allows reports whether role is a member of the set.
func (rs RoleSet) Allows(role string) bool {
	_, ok := rs[role]
	return ok
}

// DefaultWriterRoles returns the standard writer allow-list.
func DefaultWriterRoles() RoleSet {
	return NewRoleSet(config.DefaultWriterRoles...)
}

// WriterRolesFromConfig builds the write policy from the configured
// gateway.writerroles list.
func WriterRolesFromConfig(cfg *config.Config) RoleSet {
	return NewRoleSet(cfg.Gateway.WriterRoles...)
}
