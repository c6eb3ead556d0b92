package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Haukuraj/sqlverk/errs"
	"github.com/Haukuraj/sqlverk/sqlerr"
)

// ListSports returns all rows from the sports table.
func (g *Gateway) ListSports(ctx context.Context) ([]Sport, error) {
	rows, err := g.db.Pool.Query(ctx, `SELECT id, name FROM sports`)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	var sports []Sport
	for rows.Next() {
		var s Sport
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		sports = append(sports, s)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return sports, nil
}

// dependentRowsQuery counts the rows that reference a sport. Results
// and competitions are the dependency model for sports; nothing else
// in the schema carries a sport reference.
const dependentRowsQuery = `
SELECT (SELECT COUNT(*) FROM results WHERE sport_id = $1)
     + (SELECT COUNT(*) FROM competitions WHERE sport_id = $1)`

// cascadeResultsQuery removes every result that blocks the cascade: rows
// of the sport itself, and rows of any other sport that reference one of
// this sport's competitions. Without the second leg the competitions
// delete would hit a foreign-key violation.
const cascadeResultsQuery = `
DELETE FROM results
WHERE sport_id = $1
   OR competition_id IN (SELECT id FROM competitions WHERE sport_id = $1)`

// DeleteSport deletes a sport by name on behalf of username.
//
// After the write-authorization check, dependent result and
// competition rows are counted. If dependents exist and forceDelete is
// false the call fails with a dependency-conflict error and performs
// no deletion. With forceDelete the dependents are removed first, then
// the sport row. The whole sequence runs in one transaction: either
// all deletions commit or none do.
func (g *Gateway) DeleteSport(ctx context.Context, username, sportName string, forceDelete bool) error {
	return g.db.WithTx(ctx, func(tx pgx.Tx) error {
		if err := g.authorizeWriter(ctx, tx, username); err != nil {
			return err
		}

		var sportID int64
		err := tx.QueryRow(ctx, `SELECT id FROM sports WHERE name = $1`, sportName).Scan(&sportID)
		if errors.Is(err, pgx.ErrNoRows) {
			code := "SPORT_NOT_FOUND"
			return errs.NewNotFoundError(fmt.Sprintf("sport %q does not exist", sportName), &code)
		}
		if err != nil {
			return sqlerr.HandleError(err)
		}

		var dependents int
		if err := tx.QueryRow(ctx, dependentRowsQuery, sportID).Scan(&dependents); err != nil {
			return sqlerr.HandleError(err)
		}

		if dependents > 0 && !forceDelete {
			code := "SPORT_HAS_DEPENDENTS"
			return errs.NewDependencyConflictError(
				fmt.Sprintf("sport %q has %d dependent rows; request a cascade delete to remove them", sportName, dependents),
				&code,
			)
		}

		if forceDelete {
			if _, err := tx.Exec(ctx, cascadeResultsQuery, sportID); err != nil {
				return sqlerr.HandleError(err)
			}
			if _, err := tx.Exec(ctx, `DELETE FROM competitions WHERE sport_id = $1`, sportID); err != nil {
				return sqlerr.HandleError(err)
			}
		}

		if _, err := tx.Exec(ctx, `DELETE FROM sports WHERE id = $1`, sportID); err != nil {
			return sqlerr.HandleError(err)
		}

		g.log.Debug().Str("sport", sportName).Bool("cascade", forceDelete).Msg("sport deleted")
		return nil
	})
}
