package repository

import (
	"database/sql"
	"fmt"

	"github.com/finverde/Family-Finance-Backend/internal/finance"
	"github.com/finverde/Family-Finance-Backend/internal/model"
)

// ExpenseRepository provides data access methods for the expenses table.
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository with the provided database connection.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// GetExpenses retrieves expenses for an owner, optionally restricted to rows
// created inside the given range. Returns an empty slice when nothing matches.
func (r *ExpenseRepository) GetExpenses(ownerID string, rng *model.DateRange) ([]model.Expense, error) {
	query := `
          SELECT id, owner_id, description, amount, frequency, category, is_recurring, created_at
          FROM expenses
          WHERE owner_id = ?
      `
	args := []any{ownerID}
	query, args = appendCreatedAtRange(query, args, rng)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses table: %w", err)
	}
	defer rows.Close()

	expenses := []model.Expense{}

	for rows.Next() {
		var e model.Expense
		var frequency string

		err := rows.Scan(
			&e.ID,
			&e.OwnerID,
			&e.Description,
			&e.Amount,
			&frequency,
			&e.Category,
			&e.IsRecurring,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expenses table results: %w", err)
		}
		e.Frequency = finance.Frequency(frequency)

		expenses = append(expenses, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses table: %w", err)
	}

	return expenses, nil
}
