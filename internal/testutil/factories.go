package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/finverde/Family-Finance-Backend/internal/finance"
	"github.com/finverde/Family-Finance-Backend/internal/model"
)

// IncomeSourceBuilder provides a fluent interface for creating test income sources.
//
// Example usage:
//
//	// Simple creation with defaults
//	income := testutil.NewIncomeSource(ownerID).Build(t, db)
//
//	// Customized income source
//	income := testutil.NewIncomeSource(ownerID).
//	    WithAmount(1200).
//	    WithFrequency(finance.FrequencyWeekly).
//	    Inactive().
//	    Build(t, db)
type IncomeSourceBuilder struct {
	income model.IncomeSource
}

// NewIncomeSource creates an IncomeSourceBuilder with sensible defaults.
func NewIncomeSource(ownerID string) *IncomeSourceBuilder {
	return &IncomeSourceBuilder{
		income: model.IncomeSource{
			ID:        MakeID(),
			OwnerID:   ownerID,
			Name:      "Test Income",
			Amount:    3000,
			Frequency: finance.FrequencyMonthly,
			Category:  "Salary",
			IsActive:  true,
			CreatedAt: time.Now().UTC(),
		},
	}
}

// WithName sets a custom name.
func (b *IncomeSourceBuilder) WithName(name string) *IncomeSourceBuilder {
	b.income.Name = name
	return b
}

// WithAmount sets a custom amount.
func (b *IncomeSourceBuilder) WithAmount(amount float64) *IncomeSourceBuilder {
	b.income.Amount = amount
	return b
}

// WithFrequency sets a custom frequency.
func (b *IncomeSourceBuilder) WithFrequency(freq finance.Frequency) *IncomeSourceBuilder {
	b.income.Frequency = freq
	return b
}

// WithCategory sets a custom category.
func (b *IncomeSourceBuilder) WithCategory(category string) *IncomeSourceBuilder {
	b.income.Category = category
	return b
}

// WithCreatedAt sets the creation timestamp, used by date-filter tests.
func (b *IncomeSourceBuilder) WithCreatedAt(t time.Time) *IncomeSourceBuilder {
	b.income.CreatedAt = t
	return b
}

// Inactive marks the income source as inactive.
func (b *IncomeSourceBuilder) Inactive() *IncomeSourceBuilder {
	b.income.IsActive = false
	return b
}

// Build creates the income source in the database and returns it.
func (b *IncomeSourceBuilder) Build(t *testing.T, db *sql.DB) model.IncomeSource {
	t.Helper()

	query := `
		INSERT INTO income_sources (id, owner_id, name, amount, frequency, category, tax_rate, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	i := b.income
	_, err := db.Exec(query, i.ID, i.OwnerID, i.Name, i.Amount, string(i.Frequency), i.Category, i.TaxRate, i.IsActive, i.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test income source: %v", err)
	}

	return i
}

// ExpenseBuilder provides a fluent interface for creating test expenses.
type ExpenseBuilder struct {
	expense model.Expense
}

// NewExpense creates an ExpenseBuilder with sensible defaults.
func NewExpense(ownerID string) *ExpenseBuilder {
	return &ExpenseBuilder{
		expense: model.Expense{
			ID:          MakeID(),
			OwnerID:     ownerID,
			Description: "Test Expense",
			Amount:      500,
			Frequency:   finance.FrequencyMonthly,
			Category:    "General",
			IsRecurring: true,
			CreatedAt:   time.Now().UTC(),
		},
	}
}

// WithDescription sets a custom description.
func (b *ExpenseBuilder) WithDescription(desc string) *ExpenseBuilder {
	b.expense.Description = desc
	return b
}

// WithAmount sets a custom amount.
func (b *ExpenseBuilder) WithAmount(amount float64) *ExpenseBuilder {
	b.expense.Amount = amount
	return b
}

// WithFrequency sets a custom frequency.
func (b *ExpenseBuilder) WithFrequency(freq finance.Frequency) *ExpenseBuilder {
	b.expense.Frequency = freq
	return b
}

// WithCategory sets a custom category.
func (b *ExpenseBuilder) WithCategory(category string) *ExpenseBuilder {
	b.expense.Category = category
	return b
}

// WithCreatedAt sets the creation timestamp, used by date-filter tests.
func (b *ExpenseBuilder) WithCreatedAt(t time.Time) *ExpenseBuilder {
	b.expense.CreatedAt = t
	return b
}

// Build creates the expense in the database and returns it.
func (b *ExpenseBuilder) Build(t *testing.T, db *sql.DB) model.Expense {
	t.Helper()

	query := `
		INSERT INTO expenses (id, owner_id, description, amount, frequency, category, is_recurring, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	e := b.expense
	_, err := db.Exec(query, e.ID, e.OwnerID, e.Description, e.Amount, string(e.Frequency), e.Category, e.IsRecurring, e.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test expense: %v", err)
	}

	return e
}

// InvestmentBuilder provides a fluent interface for creating test investments.
type InvestmentBuilder struct {
	investment model.Investment
}

// NewInvestment creates an InvestmentBuilder with sensible defaults.
func NewInvestment(ownerID string) *InvestmentBuilder {
	return &InvestmentBuilder{
		investment: model.Investment{
			ID:           MakeID(),
			OwnerID:      ownerID,
			Name:         "Test Investment",
			Type:         "stock",
			CurrentValue: 1000,
			PurchaseDate: time.Now().UTC().AddDate(-1, 0, 0),
			CreatedAt:    time.Now().UTC(),
		},
	}
}

// WithName sets a custom name.
func (b *InvestmentBuilder) WithName(name string) *InvestmentBuilder {
	b.investment.Name = name
	return b
}

// WithType sets a custom investment type.
func (b *InvestmentBuilder) WithType(investmentType string) *InvestmentBuilder {
	b.investment.Type = investmentType
	return b
}

// WithQuantityAndPrice sets a position valued as quantity times price.
func (b *InvestmentBuilder) WithQuantityAndPrice(quantity, price float64) *InvestmentBuilder {
	b.investment.Quantity = quantity
	b.investment.CurrentPrice = price
	return b
}

// WithCurrentValue sets a custom current value.
func (b *InvestmentBuilder) WithCurrentValue(value float64) *InvestmentBuilder {
	b.investment.CurrentValue = value
	return b
}

// WithPurchasePrice sets a custom purchase price.
func (b *InvestmentBuilder) WithPurchasePrice(price float64) *InvestmentBuilder {
	b.investment.PurchasePrice = price
	return b
}

// WithDividendYield sets a custom yearly dividend yield percentage.
func (b *InvestmentBuilder) WithDividendYield(yield float64) *InvestmentBuilder {
	b.investment.DividendYield = yield
	return b
}

// WithMonthlyIncome sets an explicit monthly income figure.
func (b *InvestmentBuilder) WithMonthlyIncome(income float64) *InvestmentBuilder {
	b.investment.MonthlyIncome = income
	return b
}

// WithPurchaseDate sets the acquisition date, used by wealth history tests.
func (b *InvestmentBuilder) WithPurchaseDate(t time.Time) *InvestmentBuilder {
	b.investment.PurchaseDate = t
	return b
}

// Build creates the investment in the database and returns it.
func (b *InvestmentBuilder) Build(t *testing.T, db *sql.DB) model.Investment {
	t.Helper()

	query := `
		INSERT INTO investments (id, owner_id, name, type, amount, quantity, current_price, current_value,
		                         purchase_price, dividend_yield, monthly_income, purchase_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	i := b.investment
	_, err := db.Exec(query, i.ID, i.OwnerID, i.Name, i.Type, i.Amount, i.Quantity, i.CurrentPrice,
		i.CurrentValue, i.PurchasePrice, i.DividendYield, i.MonthlyIncome, i.PurchaseDate, i.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test investment: %v", err)
	}

	return i
}

// Insert helpers for the remaining collections. Zero IDs and timestamps are
// filled with defaults so callers only set the fields they assert on.

// InsertRealEstate creates a property row and returns it.
func InsertRealEstate(t *testing.T, db *sql.DB, p model.RealEstate) model.RealEstate {
	t.Helper()
	fillDefaults(&p.ID, &p.CreatedAt)
	if p.PurchaseDate.IsZero() {
		p.PurchaseDate = p.CreatedAt
	}

	query := `
		INSERT INTO real_estate (id, owner_id, name, property_type, current_value, purchase_price,
		                         rental_income, monthly_expenses, iptu, is_rented, purchase_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query, p.ID, p.OwnerID, p.Name, p.PropertyType, p.CurrentValue, p.PurchasePrice,
		p.RentalIncome, p.MonthlyExpenses, p.IPTU, p.IsRented, p.PurchaseDate, p.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test property: %v", err)
	}
	return p
}

// InsertVehicle creates a vehicle row and returns it.
func InsertVehicle(t *testing.T, db *sql.DB, v model.Vehicle) model.Vehicle {
	t.Helper()
	fillDefaults(&v.ID, &v.CreatedAt)
	if v.PurchaseDate.IsZero() {
		v.PurchaseDate = v.CreatedAt
	}

	query := `
		INSERT INTO vehicles (id, owner_id, name, type, current_value, purchase_price,
		                      monthly_expenses, depreciation, ipva, purchase_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query, v.ID, v.OwnerID, v.Name, v.Type, v.CurrentValue, v.PurchasePrice,
		v.MonthlyExpenses, v.Depreciation, v.IPVA, v.PurchaseDate, v.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test vehicle: %v", err)
	}
	return v
}

// InsertExoticAsset creates an exotic asset row and returns it.
func InsertExoticAsset(t *testing.T, db *sql.DB, a model.ExoticAsset) model.ExoticAsset {
	t.Helper()
	fillDefaults(&a.ID, &a.CreatedAt)
	if a.PurchaseDate.IsZero() {
		a.PurchaseDate = a.CreatedAt
	}

	query := `
		INSERT INTO exotic_assets (id, owner_id, name, type, current_value, purchase_price, purchase_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query, a.ID, a.OwnerID, a.Name, a.Type, a.CurrentValue, a.PurchasePrice, a.PurchaseDate, a.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test exotic asset: %v", err)
	}
	return a
}

// InsertBankAccount creates a bank account row and returns it.
func InsertBankAccount(t *testing.T, db *sql.DB, a model.BankAccount) model.BankAccount {
	t.Helper()
	fillDefaults(&a.ID, &a.CreatedAt)

	query := `
		INSERT INTO bank_accounts (id, owner_id, name, balance, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query, a.ID, a.OwnerID, a.Name, a.Balance, a.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test bank account: %v", err)
	}
	return a
}

// InsertLoan creates a loan row and returns it.
func InsertLoan(t *testing.T, db *sql.DB, l model.Loan) model.Loan {
	t.Helper()
	fillDefaults(&l.ID, &l.CreatedAt)

	query := `
		INSERT INTO loans (id, owner_id, name, amount, remaining_amount, monthly_payment, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query, l.ID, l.OwnerID, l.Name, l.Amount, l.RemainingAmount, l.MonthlyPayment, l.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test loan: %v", err)
	}
	return l
}

// InsertBill creates a bill row and returns it.
func InsertBill(t *testing.T, db *sql.DB, b model.Bill) model.Bill {
	t.Helper()
	fillDefaults(&b.ID, &b.CreatedAt)
	if b.NextDue.IsZero() {
		b.NextDue = b.CreatedAt.AddDate(0, 1, 0)
	}

	query := `
		INSERT INTO bills (id, owner_id, name, amount, is_active, is_paid, next_due, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query, b.ID, b.OwnerID, b.Name, b.Amount, b.IsActive, b.IsPaid, b.NextDue, b.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test bill: %v", err)
	}
	return b
}

// InsertRetirementPlan creates a retirement plan row and returns it.
func InsertRetirementPlan(t *testing.T, db *sql.DB, p model.RetirementPlan) model.RetirementPlan {
	t.Helper()
	fillDefaults(&p.ID, &p.CreatedAt)

	query := `
		INSERT INTO retirement_plans (id, owner_id, name, type, current_balance, contribution, monthly_contribution, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query, p.ID, p.OwnerID, p.Name, p.Type, p.CurrentBalance, p.Contribution, p.MonthlyContribution, p.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test retirement plan: %v", err)
	}
	return p
}

// InsertFinancialGoal creates a financial goal row and returns it.
func InsertFinancialGoal(t *testing.T, db *sql.DB, g model.FinancialGoal) model.FinancialGoal {
	t.Helper()
	fillDefaults(&g.ID, &g.CreatedAt)
	if g.TargetDate.IsZero() {
		g.TargetDate = g.CreatedAt.AddDate(1, 0, 0)
	}
	if g.Status == "" {
		g.Status = "active"
	}

	query := `
		INSERT INTO financial_goals (id, owner_id, name, description, current_amount, target_amount, status, target_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query, g.ID, g.OwnerID, g.Name, g.Description, g.CurrentAmount, g.TargetAmount, g.Status, g.TargetDate, g.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test financial goal: %v", err)
	}
	return g
}

func fillDefaults(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = MakeID()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now().UTC()
	}
}
