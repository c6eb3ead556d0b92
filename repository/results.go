package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Haukuraj/sqlverk/sqlerr"
)

// resultsJoin is the FROM block shared by the filtered results listing
// and its count query, so both always see the same row set.
const resultsJoin = `
FROM results r
JOIN competitions c ON r.competition_id = c.id
JOIN sports s ON r.sport_id = s.id
JOIN athletes a ON r.athlete_id = a.id`

const resultsSelect = `SELECT c.place, c.held, s.name AS sport, a.id AS athleteid, a.name, r.result` + resultsJoin

// ListResults returns all raw rows from the results table.
func (g *Gateway) ListResults(ctx context.Context) ([]Result, error) {
	rows, err := g.db.Pool.Query(ctx, `SELECT id, athlete_id, sport_id, competition_id, result FROM results`)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.AthleteID, &r.SportID, &r.CompetitionID, &r.Value); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return results, nil
}

// buildResultsFilter composes the WHERE fragment for the optional
// place and sport inclusion filters.
//
// Each non-empty list becomes a set-membership predicate
// (= ANY($n)); both present combine with AND; both empty yields no
// WHERE clause at all. Returned args line up with the $n placeholders.
func buildResultsFilter(places, sports []string) (string, []any) {
	var filters []string
	var args []any

	if len(places) > 0 {
		args = append(args, places)
		filters = append(filters, fmt.Sprintf("c.place = ANY($%d)", len(args)))
	}
	if len(sports) > 0 {
		args = append(args, sports)
		filters = append(filters, fmt.Sprintf("s.name = ANY($%d)", len(args)))
	}

	if len(filters) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(filters, " AND "), args
}

// buildResultsCountQuery builds the total-count query over the joined,
// filtered result set.
func buildResultsCountQuery(places, sports []string) (string, []any) {
	filter, args := buildResultsFilter(places, sports)
	return `SELECT COUNT(*)` + resultsJoin + filter, args
}

// buildResultsPageQuery builds the page query: joined select, optional
// filter, optional order clause, and LIMIT/OFFSET appended as the last
// two placeholders.
func buildResultsPageQuery(places, sports []string, orderClause string, limit, offset int) (string, []any) {
	filter, args := buildResultsFilter(places, sports)
	args = append(args, limit, offset)
	query := resultsSelect + filter + orderClause +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return query, args
}

// ListResultsByPlacesAndSports returns one page of joined result rows
// filtered by the given places and sports, plus the total count of
// matching rows.
//
// places and sports are inclusion filters: an empty list means "no
// restriction on that dimension", not "match nothing". Sortable keys:
// place, held, sport, athleteid, name, result.
func (g *Gateway) ListResultsByPlacesAndSports(ctx context.Context, places, sports []string, req PageRequest) ([]ResultRow, int, error) {
	orderClause, err := req.validate(resultSortColumns)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs := buildResultsCountQuery(places, sports)
	var total int
	if err := g.db.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, sqlerr.HandleError(err)
	}

	pageQuery, pageArgs := buildResultsPageQuery(places, sports, orderClause, req.ItemsPerPage, req.Offset())
	rows, err := g.db.Pool.Query(ctx, pageQuery, pageArgs...)
	if err != nil {
		return nil, 0, sqlerr.HandleError(err)
	}
	defer rows.Close()

	var resultRows []ResultRow
	for rows.Next() {
		var r ResultRow
		if err := rows.Scan(&r.Place, &r.Held, &r.Sport, &r.AthleteID, &r.AthleteName, &r.Value); err != nil {
			return nil, 0, sqlerr.HandleError(err)
		}
		resultRows = append(resultRows, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, sqlerr.HandleError(err)
	}

	return resultRows, total, nil
}
