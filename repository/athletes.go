package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Haukuraj/sqlverk/sqlerr"
)

// ListAthletes returns one page of the athletes table plus the total
// row count, so callers can compute the number of pages.
//
// Sortable keys: id, name, gender, height. An unknown key fails with a
// validation error before any query is issued.
func (g *Gateway) ListAthletes(ctx context.Context, req PageRequest) ([]Athlete, int, error) {
	orderClause, err := req.validate(athleteSortColumns)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := g.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM athletes`).Scan(&total); err != nil {
		return nil, 0, sqlerr.HandleError(err)
	}

	query := `SELECT id, name, gender, height FROM athletes` + orderClause + ` LIMIT $1 OFFSET $2`
	rows, err := g.db.Pool.Query(ctx, query, req.ItemsPerPage, req.Offset())
	if err != nil {
		return nil, 0, sqlerr.HandleError(err)
	}
	defer rows.Close()

	var athletes []Athlete
	for rows.Next() {
		var a Athlete
		if err := rows.Scan(&a.ID, &a.Name, &a.Gender, &a.Height); err != nil {
			return nil, 0, sqlerr.HandleError(err)
		}
		athletes = append(athletes, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, sqlerr.HandleError(err)
	}

	return athletes, total, nil
}

// AddAthlete adds a new athlete on behalf of username.
//
// The write-authorization check and the insert run in one transaction;
// an unauthorized user causes no mutation at all.
func (g *Gateway) AddAthlete(ctx context.Context, username, name, gender string, height float64) error {
	return g.db.WithTx(ctx, func(tx pgx.Tx) error {
		if err := g.authorizeWriter(ctx, tx, username); err != nil {
			return err
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO athletes (name, height, gender) VALUES ($1, $2, $3)`,
			name, height, gender,
		)
		if err != nil {
			return sqlerr.HandleError(err)
		}
		return nil
	})
}

// AddAthleteViaFunction adds a new athlete through the insert_athlete
// SQL function and returns the new row's id. The function performs its
// own role check on the supplied username; its errors surface through
// the usual database-error translation.
func (g *Gateway) AddAthleteViaFunction(ctx context.Context, username, name, gender string, height float64) (int64, error) {
	var id int64
	err := g.db.Pool.QueryRow(ctx,
		`SELECT insert_athlete($1, $2, $3, $4)`,
		username, name, height, gender,
	).Scan(&id)
	if err != nil {
		return 0, sqlerr.HandleError(err)
	}
	return id, nil
}
