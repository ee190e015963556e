package finance

import "sort"

// CategoryTotal is one slice of a category breakdown. Percentage is the
// share of the parent total, zero when the parent total is zero.
type CategoryTotal struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Entry is a single (category, amount) contribution to a breakdown. Amounts
// are expected to already be monthly equivalents.
type Entry struct {
	Category string
	Amount   float64
}

// Breakdown reduces entries into a total and a per-category breakdown sorted
// descending by amount. Categories with equal totals keep first-seen order.
func Breakdown(entries []Entry) (float64, []CategoryTotal) {
	var total float64
	amounts := make(map[string]float64)
	order := []string{}

	for _, e := range entries {
		if _, seen := amounts[e.Category]; !seen {
			order = append(order, e.Category)
		}
		amounts[e.Category] += e.Amount
		total += e.Amount
	}

	byCategory := make([]CategoryTotal, len(order))
	for i, category := range order {
		amount := amounts[category]
		pct := 0.0
		if total > 0 {
			pct = amount / total * 100
		}
		byCategory[i] = CategoryTotal{
			Category:   category,
			Amount:     amount,
			Percentage: pct,
		}
	}

	// Stable so equal amounts keep discovery order.
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].Amount > byCategory[j].Amount
	})

	return total, byCategory
}

//
// COMPOSITE METRICS
//
// Pure functions over already-aggregated group totals. Every ratio is
// zero-guarded so NaN/Infinity never reaches a consumer.
//

// NetMonthlyIncome is income minus expenses, both monthly equivalents.
func NetMonthlyIncome(income, expenses float64) float64 {
	return income - expenses
}

// TotalAssets sums the asset-class totals that count toward net worth.
func TotalAssets(investments, realEstate, vehicles, exoticAssets, retirementSaved float64) float64 {
	return investments + realEstate + vehicles + exoticAssets + retirementSaved
}

// NetWorth is total assets minus total debt.
func NetWorth(totalAssets, totalDebt float64) float64 {
	return totalAssets - totalDebt
}

// SavingsRate is the share of income not consumed by expenses, as a
// percentage. Zero when income is zero.
func SavingsRate(income, expenses float64) float64 {
	if income == 0 {
		return 0
	}
	return (income - expenses) / income * 100
}

// DebtToIncomeRatio relates total debt to yearly income, as a percentage.
// Zero when income is zero.
func DebtToIncomeRatio(totalDebt, monthlyIncome float64) float64 {
	if monthlyIncome == 0 {
		return 0
	}
	return totalDebt / (monthlyIncome * 12) * 100
}

// EmergencyFundMonths is how many months of expenses the investment balance
// covers. Returns 0 when expenses are zero, keeping the metric finite.
func EmergencyFundMonths(totalInvestmentValue, monthlyExpenses float64) float64 {
	if monthlyExpenses == 0 {
		return 0
	}
	return totalInvestmentValue / monthlyExpenses
}
