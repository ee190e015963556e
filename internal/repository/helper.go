package repository

import (
	"github.com/finverde/Family-Finance-Backend/internal/model"
)

// appendCreatedAtRange extends a query with a created_at range filter when a
// range is given. Returns the extended query and argument list.
func appendCreatedAtRange(query string, args []any, rng *model.DateRange) (string, []any) {
	if rng == nil {
		return query, args
	}
	query += " AND created_at >= ? AND created_at <= ?"
	args = append(args, rng.Start, rng.End)
	return query, args
}
