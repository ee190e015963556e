package repository

import (
	"database/sql"
	"fmt"

	"github.com/finverde/Family-Finance-Backend/internal/model"
)

// PlanningRepository provides data access methods for the retirement_plans
// and financial_goals tables.
type PlanningRepository struct {
	db *sql.DB
}

// NewPlanningRepository creates a new PlanningRepository with the provided database connection.
func NewPlanningRepository(db *sql.DB) *PlanningRepository {
	return &PlanningRepository{db: db}
}

// GetRetirementPlans retrieves all retirement plans for an owner.
func (r *PlanningRepository) GetRetirementPlans(ownerID string) ([]model.RetirementPlan, error) {
	query := `
          SELECT id, owner_id, name, type, current_balance, contribution, monthly_contribution, created_at
          FROM retirement_plans
          WHERE owner_id = ?
      `

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query retirement_plans table: %w", err)
	}
	defer rows.Close()

	plans := []model.RetirementPlan{}

	for rows.Next() {
		var p model.RetirementPlan

		err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Name,
			&p.Type,
			&p.CurrentBalance,
			&p.Contribution,
			&p.MonthlyContribution,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan retirement_plans table results: %w", err)
		}

		plans = append(plans, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating retirement_plans table: %w", err)
	}

	return plans, nil
}

// GetFinancialGoals retrieves all financial goals for an owner.
func (r *PlanningRepository) GetFinancialGoals(ownerID string) ([]model.FinancialGoal, error) {
	query := `
          SELECT id, owner_id, name, description, current_amount, target_amount, status, target_date, created_at
          FROM financial_goals
          WHERE owner_id = ?
      `

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial_goals table: %w", err)
	}
	defer rows.Close()

	goals := []model.FinancialGoal{}

	for rows.Next() {
		var g model.FinancialGoal

		err := rows.Scan(
			&g.ID,
			&g.OwnerID,
			&g.Name,
			&g.Description,
			&g.CurrentAmount,
			&g.TargetAmount,
			&g.Status,
			&g.TargetDate,
			&g.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan financial_goals table results: %w", err)
		}

		goals = append(goals, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating financial_goals table: %w", err)
	}

	return goals, nil
}
