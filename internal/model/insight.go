package model

import "time"

// Insight types.
const (
	InsightTypeAchievement = "achievement"
	InsightTypeWarning     = "warning"
	InsightTypeSuggestion  = "suggestion"
	InsightTypeFeature     = "feature"
)

// Impact and priority levels shared by insights and recommendations.
const (
	ImpactLow    = "low"
	ImpactMedium = "medium"
	ImpactHigh   = "high"
)

// Insight is a generated, non-interactive observation about the owner's
// finances. Insights are regenerated wholesale on every refresh.
type Insight struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	Type             string    `json:"type"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Impact           string    `json:"impact"`
	PotentialSavings float64   `json:"potential_savings,omitempty"`
	ActionPath       string    `json:"action_path"`
	ActionLabel      string    `json:"action_label"`
	Date             time.Time `json:"date"`
}

// Recommendation is a generated, actionable saving opportunity. Unlike
// insights, recommendations persist until applied or dismissed, so they are
// only generated when none exist for the owner.
type Recommendation struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	Type             string    `json:"type"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	PotentialSavings float64   `json:"potential_savings"`
	Priority         string    `json:"priority"`
	Difficulty       string    `json:"difficulty"`
	Category         string    `json:"category"`
	IsApplied        bool      `json:"is_applied"`
	CreatedAt        time.Time `json:"created_at"`
}
