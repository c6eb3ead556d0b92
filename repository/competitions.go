package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Haukuraj/sqlverk/errs"
	"github.com/Haukuraj/sqlverk/sqlerr"
)

// minCompetitionYear is the earliest year a competition may be held.
const minCompetitionYear = 2024

// ListCompetitionsByPlace returns one page of competitions held at
// place plus the total count of matching rows.
//
// Sortable keys: id, place, held.
func (g *Gateway) ListCompetitionsByPlace(ctx context.Context, place string, req PageRequest) ([]Competition, int, error) {
	orderClause, err := req.validate(competitionSortColumns)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := g.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM competitions WHERE place = $1`, place).Scan(&total); err != nil {
		return nil, 0, sqlerr.HandleError(err)
	}

	query := `SELECT id, place, held FROM competitions WHERE place = $1` + orderClause + ` LIMIT $2 OFFSET $3`
	rows, err := g.db.Pool.Query(ctx, query, place, req.ItemsPerPage, req.Offset())
	if err != nil {
		return nil, 0, sqlerr.HandleError(err)
	}
	defer rows.Close()

	var competitions []Competition
	for rows.Next() {
		var c Competition
		if err := rows.Scan(&c.ID, &c.Place, &c.Held); err != nil {
			return nil, 0, sqlerr.HandleError(err)
		}
		competitions = append(competitions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, sqlerr.HandleError(err)
	}

	return competitions, total, nil
}

// ListDistinctPlaces returns all distinct competition places.
func (g *Gateway) ListDistinctPlaces(ctx context.Context) ([]string, error) {
	rows, err := g.db.Pool.Query(ctx, `SELECT DISTINCT place FROM competitions`)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	var places []string
	for rows.Next() {
		var place string
		if err := rows.Scan(&place); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return places, nil
}

// validateHeldDate enforces the domain rule on competition dates: when
// a date is supplied its year must be at least minCompetitionYear. The
// schema does not enforce this, so it is checked at write time.
func validateHeldDate(held *time.Time) error {
	if held == nil {
		return nil
	}
	if held.Year() < minCompetitionYear {
		code := "COMPETITION_HELD_TOO_EARLY"
		return errs.NewValidationError(
			fmt.Sprintf("competitions must be held in %d or later", minCompetitionYear),
			&code,
			[]errs.FieldError{{Field: "held", Error: fmt.Sprintf("year must be at least %d", minCompetitionYear)}},
		)
	}
	return nil
}

// AddCompetition adds a new competition on behalf of username and
// returns the new row's id. held may be nil when the date is unknown.
//
// Order of checks matters for callers: authorization failures
// (not-found, permission) are reported before and distinctly from the
// held-date validation failure. Everything runs in one transaction.
func (g *Gateway) AddCompetition(ctx context.Context, username, place string, held *time.Time) (int64, error) {
	var id int64
	err := g.db.WithTx(ctx, func(tx pgx.Tx) error {
		if err := g.authorizeWriter(ctx, tx, username); err != nil {
			return err
		}

		if err := validateHeldDate(held); err != nil {
			return err
		}

		err := tx.QueryRow(ctx,
			`INSERT INTO competitions (place, held) VALUES ($1, $2) RETURNING id`,
			place, held,
		).Scan(&id)
		if err != nil {
			return sqlerr.HandleError(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
