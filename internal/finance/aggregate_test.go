package finance_test

import (
	"math"
	"testing"

	"github.com/finverde/Family-Finance-Backend/internal/finance"
)

func TestBreakdown(t *testing.T) {
	t.Run("sums per category and sorts descending", func(t *testing.T) {
		total, byCategory := finance.Breakdown([]finance.Entry{
			{Category: "Housing", Amount: 1200},
			{Category: "Food", Amount: 400},
			{Category: "Housing", Amount: 300},
			{Category: "Transport", Amount: 600},
		})

		if total != 2500 {
			t.Errorf("expected total 2500, got %v", total)
		}
		want := []string{"Housing", "Transport", "Food"}
		for i, category := range want {
			if byCategory[i].Category != category {
				t.Errorf("position %d: expected %s, got %s", i, category, byCategory[i].Category)
			}
		}
	})

	t.Run("percentages sum to roughly 100", func(t *testing.T) {
		_, byCategory := finance.Breakdown([]finance.Entry{
			{Category: "A", Amount: 333.33},
			{Category: "B", Amount: 333.33},
			{Category: "C", Amount: 333.34},
		})

		var sum float64
		for _, c := range byCategory {
			sum += c.Percentage
		}
		if sum < 99.9 || sum > 100.1 {
			t.Errorf("percentages sum to %v, want ~100", sum)
		}
	})

	t.Run("equal amounts keep discovery order", func(t *testing.T) {
		_, byCategory := finance.Breakdown([]finance.Entry{
			{Category: "First", Amount: 100},
			{Category: "Second", Amount: 100},
			{Category: "Third", Amount: 100},
		})

		want := []string{"First", "Second", "Third"}
		for i, category := range want {
			if byCategory[i].Category != category {
				t.Errorf("position %d: expected %s, got %s", i, category, byCategory[i].Category)
			}
		}
	})

	t.Run("zero total yields zero percentages", func(t *testing.T) {
		total, byCategory := finance.Breakdown([]finance.Entry{
			{Category: "Empty", Amount: 0},
		})

		if total != 0 {
			t.Errorf("expected zero total, got %v", total)
		}
		if byCategory[0].Percentage != 0 {
			t.Errorf("expected zero percentage, got %v", byCategory[0].Percentage)
		}
	})

	t.Run("no entries yields empty breakdown", func(t *testing.T) {
		total, byCategory := finance.Breakdown(nil)
		if total != 0 || len(byCategory) != 0 {
			t.Errorf("expected empty result, got total=%v categories=%d", total, len(byCategory))
		}
	})
}

func TestCompositeMetrics(t *testing.T) {
	t.Run("net monthly income", func(t *testing.T) {
		// One monthly income of 3000 against one weekly expense of 1200.
		income := finance.MonthlyEquivalent(3000, finance.FrequencyMonthly)
		expenses := finance.MonthlyEquivalent(1200, finance.FrequencyWeekly)

		if income != 3000 {
			t.Errorf("expected income 3000, got %v", income)
		}
		if math.Abs(expenses-5196) > 1e-9 {
			t.Errorf("expected expenses 5196, got %v", expenses)
		}
		if net := finance.NetMonthlyIncome(income, expenses); math.Abs(net-(-2196)) > 1e-9 {
			t.Errorf("expected net -2196, got %v", net)
		}
	})

	t.Run("net worth identity", func(t *testing.T) {
		tests := []struct {
			name                                             string
			investments, realEstate, vehicles, exotic, saved float64
			debt                                             float64
		}{
			{"mixed", 10000, 250000, 30000, 5000, 40000, 120000},
			{"all zero", 0, 0, 0, 0, 0, 0},
			{"debt only", 0, 0, 0, 0, 0, 5000},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assets := finance.TotalAssets(tt.investments, tt.realEstate, tt.vehicles, tt.exotic, tt.saved)
				if got := finance.NetWorth(assets, tt.debt); got != assets-tt.debt {
					t.Errorf("NetWorth = %v, want %v", got, assets-tt.debt)
				}
			})
		}
	})

	t.Run("savings rate zero-guard", func(t *testing.T) {
		if got := finance.SavingsRate(0, 5000); got != 0 {
			t.Errorf("expected 0 for zero income, got %v", got)
		}
		if got := finance.SavingsRate(4000, 3000); got != 25 {
			t.Errorf("expected 25, got %v", got)
		}
	})

	t.Run("debt to income zero-guard", func(t *testing.T) {
		if got := finance.DebtToIncomeRatio(100000, 0); got != 0 {
			t.Errorf("expected 0 for zero income, got %v", got)
		}
		if got := finance.DebtToIncomeRatio(24000, 1000); got != 200 {
			t.Errorf("expected 200, got %v", got)
		}
	})

	t.Run("emergency fund months zero-guard", func(t *testing.T) {
		if got := finance.EmergencyFundMonths(30000, 0); got != 0 {
			t.Errorf("expected 0 for zero expenses, got %v", got)
		}
		if got := finance.EmergencyFundMonths(30000, 5000); got != 6 {
			t.Errorf("expected 6, got %v", got)
		}
	})
}
