package repository

import (
	"database/sql"
	"fmt"

	"github.com/finverde/Family-Finance-Backend/internal/finance"
	"github.com/finverde/Family-Finance-Backend/internal/model"
)

// IncomeRepository provides data access methods for the income_sources table.
type IncomeRepository struct {
	db *sql.DB
}

// NewIncomeRepository creates a new IncomeRepository with the provided database connection.
func NewIncomeRepository(db *sql.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

// GetIncomeSources retrieves income sources for an owner. When onlyActive is
// set, inactive sources are filtered out; when rng is given, only rows created
// inside the range are returned. Returns an empty slice when nothing matches.
func (r *IncomeRepository) GetIncomeSources(ownerID string, onlyActive bool, rng *model.DateRange) ([]model.IncomeSource, error) {
	query := `
          SELECT id, owner_id, name, amount, frequency, category, tax_rate, is_active, created_at
          FROM income_sources
          WHERE owner_id = ?
      `
	args := []any{ownerID}

	if onlyActive {
		query += " AND is_active = ?"
		args = append(args, 1)
	}
	query, args = appendCreatedAtRange(query, args, rng)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query income_sources table: %w", err)
	}
	defer rows.Close()

	sources := []model.IncomeSource{}

	for rows.Next() {
		var s model.IncomeSource
		var frequency string

		err := rows.Scan(
			&s.ID,
			&s.OwnerID,
			&s.Name,
			&s.Amount,
			&frequency,
			&s.Category,
			&s.TaxRate,
			&s.IsActive,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income_sources table results: %w", err)
		}
		s.Frequency = finance.Frequency(frequency)

		sources = append(sources, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income_sources table: %w", err)
	}

	return sources, nil
}
