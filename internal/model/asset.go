package model

import "time"

// Investment represents a market investment position.
type Investment struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Quantity      float64   `json:"quantity"`
	CurrentPrice  float64   `json:"current_price"`
	CurrentValue  float64   `json:"current_value"`
	PurchasePrice float64   `json:"purchase_price"`
	DividendYield float64   `json:"dividend_yield"`
	MonthlyIncome float64   `json:"monthly_income"`
	PurchaseDate  time.Time `json:"purchase_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// RealEstate represents a property holding.
type RealEstate struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	PropertyType    string    `json:"property_type"`
	CurrentValue    float64   `json:"current_value"`
	PurchasePrice   float64   `json:"purchase_price"`
	RentalIncome    float64   `json:"rental_income"`
	MonthlyExpenses float64   `json:"monthly_expenses"`
	IPTU            float64   `json:"iptu"` // yearly property tax
	IsRented        bool      `json:"is_rented"`
	PurchaseDate    time.Time `json:"purchase_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// Vehicle represents a registered vehicle.
type Vehicle struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	CurrentValue    float64   `json:"current_value"`
	PurchasePrice   float64   `json:"purchase_price"`
	MonthlyExpenses float64   `json:"monthly_expenses"`
	Depreciation    float64   `json:"depreciation"`
	IPVA            float64   `json:"ipva"` // yearly vehicle tax
	PurchaseDate    time.Time `json:"purchase_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// ExoticAsset represents a collectible or other non-standard asset.
type ExoticAsset struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	CurrentValue  float64   `json:"current_value"`
	PurchasePrice float64   `json:"purchase_price"`
	PurchaseDate  time.Time `json:"purchase_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// BankAccount represents a bank account with its current balance. Balances
// are point-in-time liquidity, not assets with a purchase history, so the
// wealth history always values them at current balance.
type BankAccount struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}
