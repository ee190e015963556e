package repository

import (
	"database/sql"
	"fmt"

	"github.com/finverde/Family-Finance-Backend/internal/model"
)

// LiabilityRepository provides data access methods for the loans and bills tables.
type LiabilityRepository struct {
	db *sql.DB
}

// NewLiabilityRepository creates a new LiabilityRepository with the provided database connection.
func NewLiabilityRepository(db *sql.DB) *LiabilityRepository {
	return &LiabilityRepository{db: db}
}

// GetLoans retrieves all loans for an owner.
func (r *LiabilityRepository) GetLoans(ownerID string) ([]model.Loan, error) {
	query := `
          SELECT id, owner_id, name, amount, remaining_amount, monthly_payment, created_at
          FROM loans
          WHERE owner_id = ?
      `

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans table: %w", err)
	}
	defer rows.Close()

	loans := []model.Loan{}

	for rows.Next() {
		var l model.Loan

		err := rows.Scan(
			&l.ID,
			&l.OwnerID,
			&l.Name,
			&l.Amount,
			&l.RemainingAmount,
			&l.MonthlyPayment,
			&l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loans table results: %w", err)
		}

		loans = append(loans, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loans table: %w", err)
	}

	return loans, nil
}

// GetBills retrieves all bills for an owner.
func (r *LiabilityRepository) GetBills(ownerID string) ([]model.Bill, error) {
	query := `
          SELECT id, owner_id, name, amount, is_active, is_paid, next_due, created_at
          FROM bills
          WHERE owner_id = ?
      `

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills table: %w", err)
	}
	defer rows.Close()

	bills := []model.Bill{}

	for rows.Next() {
		var b model.Bill

		err := rows.Scan(
			&b.ID,
			&b.OwnerID,
			&b.Name,
			&b.Amount,
			&b.IsActive,
			&b.IsPaid,
			&b.NextDue,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bills table results: %w", err)
		}

		bills = append(bills, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bills table: %w", err)
	}

	return bills, nil
}
