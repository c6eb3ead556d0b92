// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries and the typed methods to fetch,
// persist, or delete sports-results data, abstracting SQL logic away
// from callers. The Gateway owns one connection pool and enforces
// write authorization inline with every mutating call.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/Haukuraj/sqlverk/database"
)

// Gateway is the data-access gateway for the sports-results schema.
//
// It exposes CRUD and paginated-query operations for Users, Sports,
// Athletes, Competitions, Results, and Genders. Mutating operations
// check the acting user's role against the configured write policy
// before any statement runs.
type Gateway struct {
	db     *database.Database
	log    *zerolog.Logger
	policy WritePolicy
}

// New constructs a Gateway.
//
// Parameters:
//   - db: the shared connection pool wrapper
//   - logger: structured logger; nil disables gateway logging
//   - policy: write authorization policy; nil applies DefaultWriterRoles
func New(db *database.Database, logger *zerolog.Logger, policy WritePolicy) *Gateway {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if policy == nil {
		policy = DefaultWriterRoles()
	}
	return &Gateway{
		db:     db,
		log:    logger,
		policy: policy,
	}
}

// rowQuerier is the subset of querying shared by *pgxpool.Pool and
// pgx.Tx, so the same lookup helpers run inside and outside
// transactions.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
