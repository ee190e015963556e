package repository

import (
	"database/sql"
	"fmt"

	"github.com/finverde/Family-Finance-Backend/internal/model"
)

// InsightRepository provides data access methods for the insights and
// goal_recommendations tables.
type InsightRepository struct {
	db *sql.DB
}

// NewInsightRepository creates a new InsightRepository with the provided database connection.
func NewInsightRepository(db *sql.DB) *InsightRepository {
	return &InsightRepository{db: db}
}

// GetInsights retrieves all stored insights for an owner, newest first.
func (r *InsightRepository) GetInsights(ownerID string) ([]model.Insight, error) {
	query := `
          SELECT id, owner_id, type, title, description, impact,
                 potential_savings, action_path, action_label, date
          FROM insights
          WHERE owner_id = ?
          ORDER BY date DESC
      `

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query insights table: %w", err)
	}
	defer rows.Close()

	insights := []model.Insight{}

	for rows.Next() {
		var i model.Insight

		err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.Type,
			&i.Title,
			&i.Description,
			&i.Impact,
			&i.PotentialSavings,
			&i.ActionPath,
			&i.ActionLabel,
			&i.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan insights table results: %w", err)
		}

		insights = append(insights, i)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating insights table: %w", err)
	}

	return insights, nil
}

// ReplaceInsights atomically replaces all stored insights for an owner with
// the given set.
func (r *InsightRepository) ReplaceInsights(ownerID string, insights []model.Insight) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM insights WHERE owner_id = ?", ownerID); err != nil {
		return fmt.Errorf("failed to clear insights for owner: %w", err)
	}

	insert := `
          INSERT INTO insights (id, owner_id, type, title, description, impact,
                                potential_savings, action_path, action_label, date)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	for _, i := range insights {
		_, err := tx.Exec(insert,
			i.ID,
			i.OwnerID,
			i.Type,
			i.Title,
			i.Description,
			i.Impact,
			i.PotentialSavings,
			i.ActionPath,
			i.ActionLabel,
			i.Date,
		)
		if err != nil {
			return fmt.Errorf("failed to insert insight: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit insights: %w", err)
	}

	return nil
}

// GetRecommendations retrieves all recommendations for an owner, newest first.
func (r *InsightRepository) GetRecommendations(ownerID string) ([]model.Recommendation, error) {
	query := `
          SELECT id, owner_id, type, title, description, potential_savings,
                 priority, difficulty, category, is_applied, created_at
          FROM goal_recommendations
          WHERE owner_id = ?
          ORDER BY created_at DESC
      `

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal_recommendations table: %w", err)
	}
	defer rows.Close()

	recommendations := []model.Recommendation{}

	for rows.Next() {
		var rec model.Recommendation

		err := rows.Scan(
			&rec.ID,
			&rec.OwnerID,
			&rec.Type,
			&rec.Title,
			&rec.Description,
			&rec.PotentialSavings,
			&rec.Priority,
			&rec.Difficulty,
			&rec.Category,
			&rec.IsApplied,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal_recommendations table results: %w", err)
		}

		recommendations = append(recommendations, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal_recommendations table: %w", err)
	}

	return recommendations, nil
}

// InsertRecommendations stores a batch of recommendations for an owner.
// Existing recommendations are left untouched.
func (r *InsightRepository) InsertRecommendations(recommendations []model.Recommendation) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `
          INSERT INTO goal_recommendations (id, owner_id, type, title, description,
                                            potential_savings, priority, difficulty,
                                            category, is_applied, created_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	for _, rec := range recommendations {
		_, err := tx.Exec(insert,
			rec.ID,
			rec.OwnerID,
			rec.Type,
			rec.Title,
			rec.Description,
			rec.PotentialSavings,
			rec.Priority,
			rec.Difficulty,
			rec.Category,
			rec.IsApplied,
			rec.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recommendation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recommendations: %w", err)
	}

	return nil
}

// ListOwnerIDs returns the distinct owner IDs present across the core data
// tables. Used by the scheduled refresh to decide which owners to process.
func (r *InsightRepository) ListOwnerIDs() ([]string, error) {
	query := `
          SELECT owner_id FROM income_sources
          UNION
          SELECT owner_id FROM expenses
          UNION
          SELECT owner_id FROM investments
          UNION
          SELECT owner_id FROM bank_accounts
          UNION
          SELECT owner_id FROM financial_goals
          UNION
          SELECT owner_id FROM bills
      `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query owner ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan owner id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating owner ids: %w", err)
	}

	return ids, nil
}
