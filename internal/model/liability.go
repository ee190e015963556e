package model

import "time"

// Loan represents an outstanding debt.
type Loan struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	Amount          float64   `json:"amount"`
	RemainingAmount float64   `json:"remaining_amount"`
	MonthlyPayment  float64   `json:"monthly_payment"`
	CreatedAt       time.Time `json:"created_at"`
}

// Bill represents a recurring bill with a due date.
type Bill struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	IsActive  bool      `json:"is_active"`
	IsPaid    bool      `json:"is_paid"`
	NextDue   time.Time `json:"next_due"`
	CreatedAt time.Time `json:"created_at"`
}

// Overdue reports whether the bill is active, unpaid and past its due date.
func (b Bill) Overdue(now time.Time) bool {
	return b.IsActive && !b.IsPaid && b.NextDue.Before(now)
}
