package model

import "time"

// RetirementPlan represents a pension or retirement savings plan.
type RetirementPlan struct {
	ID                  string    `json:"id"`
	OwnerID             string    `json:"owner_id"`
	Name                string    `json:"name"`
	Type                string    `json:"type"`
	CurrentBalance      float64   `json:"current_balance"`
	Contribution        float64   `json:"contribution"`
	MonthlyContribution float64   `json:"monthly_contribution"`
	CreatedAt           time.Time `json:"created_at"`
}

// MonthlyContributionAmount prefers the explicit monthly contribution field,
// falling back to the legacy contribution column.
func (p RetirementPlan) MonthlyContributionAmount() float64 {
	if p.MonthlyContribution > 0 {
		return p.MonthlyContribution
	}
	return p.Contribution
}

// FinancialGoal represents a savings goal.
type FinancialGoal struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CurrentAmount float64   `json:"current_amount"`
	TargetAmount  float64   `json:"target_amount"`
	Status        string    `json:"status"`
	TargetDate    time.Time `json:"target_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProgressPercentage is how far along the goal is, zero-guarded.
func (g FinancialGoal) ProgressPercentage() float64 {
	if g.TargetAmount == 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}
