package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finverde/Family-Finance-Backend/internal/finance"
	"github.com/finverde/Family-Finance-Backend/internal/model"
	"github.com/finverde/Family-Finance-Backend/internal/repository"
)

// Rule thresholds for insight and recommendation generation.
const (
	highAvgExpenseThreshold    = 200
	dominantCategoryShare      = 40
	dominantCategorySavings    = 0.15
	minInvestedForDiversify    = 5000
	reduceCategoryShare        = 25
	reduceCategoryMinAmount    = 500
	negotiableBillMinAmount    = 200
	negotiableBillSavingsRate  = 0.10
	emergencyFundRate          = 0.20
	emergencyFundCap           = 15000
	diversifyPortfolioMinValue = 10000
	recentExpenseWindowDays    = 30
)

// InsightService generates rule-driven insights and saving recommendations
// from the owner's collections. Insights are replaced wholesale on every run;
// recommendations persist and are only generated when none exist yet.
type InsightService struct {
	incomeRepo    *repository.IncomeRepository
	expenseRepo   *repository.ExpenseRepository
	assetRepo     *repository.AssetRepository
	liabilityRepo *repository.LiabilityRepository
	planningRepo  *repository.PlanningRepository
	insightRepo   *repository.InsightRepository
}

// NewInsightService creates a new InsightService with the provided repository dependencies.
func NewInsightService(
	incomeRepo *repository.IncomeRepository,
	expenseRepo *repository.ExpenseRepository,
	assetRepo *repository.AssetRepository,
	liabilityRepo *repository.LiabilityRepository,
	planningRepo *repository.PlanningRepository,
	insightRepo *repository.InsightRepository,
) *InsightService {
	return &InsightService{
		incomeRepo:    incomeRepo,
		expenseRepo:   expenseRepo,
		assetRepo:     assetRepo,
		liabilityRepo: liabilityRepo,
		planningRepo:  planningRepo,
		insightRepo:   insightRepo,
	}
}

// InsightReport is the full insight payload for an owner: the stored insights
// and recommendations plus a derived financial health score.
type InsightReport struct {
	Insights        []model.Insight        `json:"insights"`
	Recommendations []model.Recommendation `json:"recommendations"`
	FinancialScore  int                    `json:"financial_score"`
}

// Report returns the stored insights and recommendations for an owner along
// with the financial score derived from them.
func (s *InsightService) Report(ownerID string) (InsightReport, error) {
	insights, err := s.insightRepo.GetInsights(ownerID)
	if err != nil {
		return InsightReport{}, fmt.Errorf("failed to load insights: %w", err)
	}
	recommendations, err := s.insightRepo.GetRecommendations(ownerID)
	if err != nil {
		return InsightReport{}, fmt.Errorf("failed to load recommendations: %w", err)
	}

	return InsightReport{
		Insights:        insights,
		Recommendations: recommendations,
		FinancialScore:  FinancialScore(insights, recommendations),
	}, nil
}

// Generate rebuilds the owner's insights from current data and, when the
// owner has no stored recommendations yet, generates an initial set.
func (s *InsightService) Generate(ownerID string, now time.Time) error {
	incomes, err := s.incomeRepo.GetIncomeSources(ownerID, true, nil)
	if err != nil {
		return fmt.Errorf("failed to load income sources: %w", err)
	}
	expenses, err := s.expenseRepo.GetExpenses(ownerID, nil)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}
	investments, err := s.assetRepo.GetInvestments(ownerID)
	if err != nil {
		return fmt.Errorf("failed to load investments: %w", err)
	}
	bills, err := s.liabilityRepo.GetBills(ownerID)
	if err != nil {
		return fmt.Errorf("failed to load bills: %w", err)
	}
	goals, err := s.planningRepo.GetFinancialGoals(ownerID)
	if err != nil {
		return fmt.Errorf("failed to load financial goals: %w", err)
	}

	insights := buildInsights(ownerID, now, incomes, expenses, investments, bills, goals)
	if err := s.insightRepo.ReplaceInsights(ownerID, insights); err != nil {
		return fmt.Errorf("failed to store insights: %w", err)
	}

	return s.ensureRecommendations(ownerID, now, incomes, expenses, investments, bills, goals)
}

// RefreshAll regenerates insights for every known owner. Failures are logged
// and skipped so one broken owner does not block the rest of the run. Returns
// the number of owners refreshed successfully.
func (s *InsightService) RefreshAll(now time.Time) (int, error) {
	ownerIDs, err := s.insightRepo.ListOwnerIDs()
	if err != nil {
		return 0, fmt.Errorf("failed to list owners: %w", err)
	}

	refreshed := 0
	for _, ownerID := range ownerIDs {
		if err := s.Generate(ownerID, now); err != nil {
			log.Printf("insight refresh failed for owner %s: %v", ownerID, err)
			continue
		}
		refreshed++
	}

	return refreshed, nil
}

// FinancialScore derives a 0-100 health score: base 75, +5 per achievement
// insight, +1 per recommendation up to 10, +8 per applied recommendation.
func FinancialScore(insights []model.Insight, recommendations []model.Recommendation) int {
	score := 75
	for _, i := range insights {
		if i.Type == model.InsightTypeAchievement {
			score += 5
		}
	}
	if len(recommendations) < 10 {
		score += len(recommendations)
	} else {
		score += 10
	}
	for _, r := range recommendations {
		if r.IsApplied {
			score += 8
		}
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func buildInsights(
	ownerID string,
	now time.Time,
	incomes []model.IncomeSource,
	expenses []model.Expense,
	investments []model.Investment,
	bills []model.Bill,
	goals []model.FinancialGoal,
) []model.Insight {
	insights := []model.Insight{}
	add := func(insightType, title, description, impact string, savings float64, actionPath, actionLabel string) {
		insights = append(insights, model.Insight{
			ID:               uuid.NewString(),
			OwnerID:          ownerID,
			Type:             insightType,
			Title:            title,
			Description:      description,
			Impact:           impact,
			PotentialSavings: savings,
			ActionPath:       actionPath,
			ActionLabel:      actionLabel,
			Date:             now,
		})
	}

	var monthlyIncome float64
	for _, inc := range incomes {
		monthlyIncome += finance.MonthlyEquivalent(inc.Amount, inc.Frequency)
	}
	if monthlyIncome > 0 {
		add(model.InsightTypeAchievement,
			"Income registered",
			fmt.Sprintf("You have active income sources worth %.2f per month. Keeping them up to date makes every other number on the dashboard more accurate.", monthlyIncome),
			model.ImpactMedium, 0, "/revenue", "Review income")
	}

	// Recent spending rules look at expenses created in the last 30 days.
	recentCutoff := now.AddDate(0, 0, -recentExpenseWindowDays)
	recentEntries := []finance.Entry{}
	var recentTotal float64
	for _, exp := range expenses {
		if exp.CreatedAt.Before(recentCutoff) {
			continue
		}
		amount := finance.MonthlyEquivalent(exp.Amount, exp.Frequency)
		recentEntries = append(recentEntries, finance.Entry{Category: exp.Category, Amount: amount})
		recentTotal += amount
	}

	if len(recentEntries) > 0 {
		avg := recentTotal / float64(len(recentEntries))
		if avg > highAvgExpenseThreshold {
			add(model.InsightTypeWarning,
				"High average spending",
				fmt.Sprintf("Your recent expenses average %.2f each. Reviewing the largest ones could free up room in your budget.", avg),
				model.ImpactHigh, 0, "/expenses", "Review expenses")
		}

		_, byCategory := finance.Breakdown(recentEntries)
		if len(byCategory) > 0 && byCategory[0].Percentage > dominantCategoryShare {
			top := byCategory[0]
			add(model.InsightTypeSuggestion,
				fmt.Sprintf("Spending concentrated in %s", top.Category),
				fmt.Sprintf("%s accounts for %.0f%% of your recent spending. Cutting it by 15%% would save %.2f per month.", top.Category, top.Percentage, top.Amount*dominantCategorySavings),
				model.ImpactHigh, top.Amount*dominantCategorySavings, "/expenses", "See breakdown")
		}
	}

	overdue := 0
	activeBills := 0
	for _, bill := range bills {
		if bill.IsActive {
			activeBills++
		}
		if bill.Overdue(now) {
			overdue++
		}
	}
	if overdue > 0 {
		add(model.InsightTypeWarning,
			"Overdue bills",
			fmt.Sprintf("You have %d overdue bill(s). Late fees and interest add up quickly, settle them as soon as possible.", overdue),
			model.ImpactHigh, 0, "/bills", "See bills")
	} else if activeBills > 0 {
		add(model.InsightTypeAchievement,
			"Bills under control",
			"All your active bills are paid or not yet due. Staying current avoids late fees entirely.",
			model.ImpactLow, 0, "/bills", "See bills")
	}

	var totalInvested float64
	investmentTypes := map[string]bool{}
	for _, inv := range investments {
		totalInvested += finance.CurrentWorth(investmentRecord(inv))
		investmentTypes[inv.Type] = true
	}
	if len(investments) > 0 {
		add(model.InsightTypeAchievement,
			"Investor profile",
			fmt.Sprintf("You hold %d investment(s) worth %.2f. Consistent investing is the strongest driver of long-term net worth.", len(investments), totalInvested),
			model.ImpactMedium, 0, "/investments", "See portfolio")
	}
	if len(investmentTypes) == 1 && totalInvested > minInvestedForDiversify {
		add(model.InsightTypeSuggestion,
			"Diversify your investments",
			"All your invested money sits in a single asset type. Spreading it across types reduces the risk of one bad market taking the whole portfolio down.",
			model.ImpactMedium, 0, "/investments", "Explore options")
	}

	for _, goal := range goals {
		progress := goal.ProgressPercentage()
		if progress >= 100 {
			add(model.InsightTypeAchievement,
				fmt.Sprintf("Goal achieved: %s", goal.Name),
				fmt.Sprintf("You reached the target of %.2f. Consider setting a new goal to keep the momentum.", goal.TargetAmount),
				model.ImpactMedium, 0, "/goals", "See goals")
		} else if progress >= 75 {
			add(model.InsightTypeAchievement,
				fmt.Sprintf("Almost there: %s", goal.Name),
				fmt.Sprintf("You are %.0f%% of the way to %.2f. The last stretch is the easiest to lose focus on.", progress, goal.TargetAmount),
				model.ImpactLow, 0, "/goals", "See goals")
		}
	}
	if len(goals) == 0 {
		add(model.InsightTypeSuggestion,
			"Set a financial goal",
			"People with written goals save measurably more. Start with something concrete, like an emergency fund or a trip.",
			model.ImpactMedium, 0, "/goals", "Create goal")
	}

	if len(incomes) == 0 && len(expenses) == 0 && len(investments) == 0 {
		add(model.InsightTypeFeature,
			"Getting started",
			"Register your income sources and expenses to unlock personalized insights about your finances.",
			model.ImpactLow, 0, "/revenue", "Add income")
	}

	return insights
}

// ensureRecommendations generates an initial recommendation set, but only
// when the owner has none stored. Recommendations persist until applied or
// dismissed, so regenerating them would clobber user state.
func (s *InsightService) ensureRecommendations(
	ownerID string,
	now time.Time,
	incomes []model.IncomeSource,
	expenses []model.Expense,
	investments []model.Investment,
	bills []model.Bill,
	goals []model.FinancialGoal,
) error {
	existing, err := s.insightRepo.GetRecommendations(ownerID)
	if err != nil {
		return fmt.Errorf("failed to load recommendations: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	recommendations := []model.Recommendation{}
	add := func(recType, title, description string, savings float64, priority, difficulty, category string) {
		recommendations = append(recommendations, model.Recommendation{
			ID:               uuid.NewString(),
			OwnerID:          ownerID,
			Type:             recType,
			Title:            title,
			Description:      description,
			PotentialSavings: savings,
			Priority:         priority,
			Difficulty:       difficulty,
			Category:         category,
			CreatedAt:        now,
		})
	}

	entries := make([]finance.Entry, len(expenses))
	var monthlyExpenses float64
	for i, exp := range expenses {
		amount := finance.MonthlyEquivalent(exp.Amount, exp.Frequency)
		entries[i] = finance.Entry{Category: exp.Category, Amount: amount}
		monthlyExpenses += amount
	}
	_, byCategory := finance.Breakdown(entries)
	for _, cat := range byCategory {
		if cat.Percentage > reduceCategoryShare && cat.Amount > reduceCategoryMinAmount {
			add("reduce_category",
				fmt.Sprintf("Reduce spending on %s", cat.Category),
				fmt.Sprintf("%s takes %.0f%% of your monthly spending. Trimming it by 15%% saves %.2f per month.", cat.Category, cat.Percentage, cat.Amount*dominantCategorySavings),
				cat.Amount*dominantCategorySavings, model.ImpactHigh, model.ImpactMedium, cat.Category)
		}
	}

	negotiated := 0
	for _, bill := range bills {
		if !bill.IsActive || bill.Amount <= negotiableBillMinAmount {
			continue
		}
		add("negotiate_bill",
			fmt.Sprintf("Negotiate %s", bill.Name),
			fmt.Sprintf("Recurring bills above %.0f are usually negotiable. A 10%% discount on %s saves %.2f per month.", float64(negotiableBillMinAmount), bill.Name, bill.Amount*negotiableBillSavingsRate),
			bill.Amount*negotiableBillSavingsRate, model.ImpactMedium, model.ImpactLow, "Bills")
		negotiated++
		if negotiated == 2 {
			break
		}
	}

	var totalInvested float64
	investmentTypes := map[string]bool{}
	for _, inv := range investments {
		totalInvested += finance.CurrentWorth(investmentRecord(inv))
		investmentTypes[inv.Type] = true
	}

	if totalInvested > 0 && !hasEmergencyFundGoal(goals) {
		target := totalInvested * emergencyFundRate
		if target > emergencyFundCap {
			target = emergencyFundCap
		}
		add("emergency_fund",
			"Build an emergency fund",
			fmt.Sprintf("Set aside %.2f in a liquid account so an unexpected expense never forces you to sell investments at a bad time.", target),
			target, model.ImpactHigh, model.ImpactMedium, "Savings")
	}

	if len(investmentTypes) < 3 && totalInvested > diversifyPortfolioMinValue {
		add("diversify",
			"Diversify your portfolio",
			"Your portfolio is concentrated in few asset types. Adding one or two uncorrelated types smooths out returns.",
			0, model.ImpactMedium, model.ImpactMedium, "Investments")
	}

	if len(goals) == 0 {
		add("create_goal",
			"Create your first financial goal",
			"A concrete target with a deadline turns vague saving intentions into a plan you can track.",
			0, model.ImpactMedium, model.ImpactLow, "Goals")
	}

	var monthlyIncome float64
	for _, inc := range incomes {
		monthlyIncome += finance.MonthlyEquivalent(inc.Amount, inc.Frequency)
	}
	if net := monthlyIncome - monthlyExpenses; net > 0 {
		add("cash_flow",
			"Automate your surplus",
			fmt.Sprintf("You end the month with %.2f left over. Automating a transfer of even 10%% of it (%.2f) makes saving effortless.", net, net*0.10),
			net*0.10, model.ImpactMedium, model.ImpactLow, "Savings")
	}

	if len(recommendations) == 0 {
		return nil
	}
	if err := s.insightRepo.InsertRecommendations(recommendations); err != nil {
		return fmt.Errorf("failed to store recommendations: %w", err)
	}

	return nil
}

func hasEmergencyFundGoal(goals []model.FinancialGoal) bool {
	for _, goal := range goals {
		text := strings.ToLower(goal.Name + " " + goal.Description)
		if strings.Contains(text, "emergency") || strings.Contains(text, "emergência") {
			return true
		}
	}
	return false
}
