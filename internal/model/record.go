package model

import (
	"time"

	"github.com/finverde/Family-Finance-Backend/internal/finance"
)

// IncomeSource represents a recurring or one-off income row from the database.
type IncomeSource struct {
	ID        string            `json:"id"`
	OwnerID   string            `json:"owner_id"`
	Name      string            `json:"name"`
	Amount    float64           `json:"amount"`
	Frequency finance.Frequency `json:"frequency"`
	Category  string            `json:"category"`
	TaxRate   float64           `json:"tax_rate"`
	IsActive  bool              `json:"is_active"`
	CreatedAt time.Time         `json:"created_at"`
}

// Expense represents a recurring or one-off expense row from the database.
type Expense struct {
	ID          string            `json:"id"`
	OwnerID     string            `json:"owner_id"`
	Description string            `json:"description"`
	Amount      float64           `json:"amount"`
	Frequency   finance.Frequency `json:"frequency"`
	Category    string            `json:"category"`
	IsRecurring bool              `json:"is_recurring"`
	CreatedAt   time.Time         `json:"created_at"`
}

// DateRange restricts a query to rows created inside [Start, End].
type DateRange struct {
	Start time.Time
	End   time.Time
}
