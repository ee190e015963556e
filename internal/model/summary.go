package model

import "github.com/finverde/Family-Finance-Backend/internal/finance"

// DashboardSummary aggregates every per-class total the dashboard shows.
// It is recomputed on every request and never persisted.
type DashboardSummary struct {
	TotalMonthlyIncome   float64 `json:"totalMonthlyIncome"`
	TotalMonthlyExpenses float64 `json:"totalMonthlyExpenses"`
	NetMonthlyIncome     float64 `json:"netMonthlyIncome"`

	TotalInvestmentValue          float64 `json:"totalInvestmentValue"`
	TotalInvestmentIncome         float64 `json:"totalInvestmentIncome"`
	TotalRealEstateValue          float64 `json:"totalRealEstateValue"`
	TotalRealEstateIncome         float64 `json:"totalRealEstateIncome"`
	TotalVehicleValue             float64 `json:"totalVehicleValue"`
	TotalVehicleExpenses          float64 `json:"totalVehicleExpenses"`
	TotalVehicleDepreciation      float64 `json:"totalVehicleDepreciation"`
	TotalExoticAssetsValue        float64 `json:"totalExoticAssetsValue"`
	TotalExoticAssetsAppreciation float64 `json:"totalExoticAssetsAppreciation"`
	TotalRetirementSaved          float64 `json:"totalRetirementSaved"`
	TotalRetirementContribution   float64 `json:"totalRetirementContribution"`
	TotalFinancialGoals           float64 `json:"totalFinancialGoals"`
	TotalBankBalance              float64 `json:"totalBankBalance"`

	TotalDebt         float64 `json:"totalDebt"`
	TotalLoanPayments float64 `json:"totalLoanPayments"`
	TotalBills        float64 `json:"totalBills"`
	TotalTaxes        float64 `json:"totalTaxes"`

	TotalAssets float64 `json:"totalAssets"`
	NetWorth    float64 `json:"netWorth"`

	SavingsRate         float64 `json:"savingsRate"`
	DebtToIncomeRatio   float64 `json:"debtToIncomeRatio"`
	EmergencyFundMonths float64 `json:"emergencyFundMonths"`

	// DateFilterApplied is true when the income/expense figures come from the
	// filtered period rather than the general data fallback.
	DateFilterApplied bool `json:"dateFilterApplied"`

	// Warnings lists collections that could not be fetched and degraded to
	// zero. A non-empty list means the summary is partial, not failed.
	Warnings []string `json:"warnings,omitempty"`
}

// CategoryBreakdown is a group total with its per-category split.
type CategoryBreakdown struct {
	Total      float64                 `json:"total"`
	ByCategory []finance.CategoryTotal `json:"byCategory"`
}

// BucketSnapshot is the wealth composition for one time bucket of the
// history chart. Total always equals the sum of the four subtotals.
type BucketSnapshot struct {
	Label        string  `json:"label"`
	Total        float64 `json:"total"`
	Investments  float64 `json:"investments"`
	RealEstate   float64 `json:"realEstate"`
	BankAccounts float64 `json:"bankAccounts"`
	Other        float64 `json:"other"`
}
