package repository

import (
	"context"

	"github.com/Haukuraj/sqlverk/sqlerr"
)

// ListGenders returns all rows from the gender lookup table.
func (g *Gateway) ListGenders(ctx context.Context) ([]Gender, error) {
	rows, err := g.db.Pool.Query(ctx, `SELECT id, name FROM gender`)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	var genders []Gender
	for rows.Next() {
		var gen Gender
		if err := rows.Scan(&gen.ID, &gen.Name); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		genders = append(genders, gen)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return genders, nil
}
