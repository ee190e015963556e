package service

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/finverde/Family-Finance-Backend/internal/apperrors"
	"github.com/finverde/Family-Finance-Backend/internal/finance"
	"github.com/finverde/Family-Finance-Backend/internal/model"
	"github.com/finverde/Family-Finance-Backend/internal/repository"
)

// DashboardService computes the aggregate financial summary shown on the
// dashboard. It coordinates every repository, fetching all collections in
// parallel and letting each group settle independently so one broken table
// never takes down the whole summary.
type DashboardService struct {
	incomeRepo    *repository.IncomeRepository
	expenseRepo   *repository.ExpenseRepository
	assetRepo     *repository.AssetRepository
	liabilityRepo *repository.LiabilityRepository
	planningRepo  *repository.PlanningRepository
}

// NewDashboardService creates a new DashboardService with the provided repository dependencies.
func NewDashboardService(
	incomeRepo *repository.IncomeRepository,
	expenseRepo *repository.ExpenseRepository,
	assetRepo *repository.AssetRepository,
	liabilityRepo *repository.LiabilityRepository,
	planningRepo *repository.PlanningRepository,
) *DashboardService {
	return &DashboardService{
		incomeRepo:    incomeRepo,
		expenseRepo:   expenseRepo,
		assetRepo:     assetRepo,
		liabilityRepo: liabilityRepo,
		planningRepo:  planningRepo,
	}
}

// dashboardData holds the raw collections behind one summary computation.
// Each slot is filled by its own goroutine; a failed fetch leaves the slot
// empty and records the group name so the caller can surface a warning.
type dashboardData struct {
	incomes      []model.IncomeSource
	expenses     []model.Expense
	investments  []model.Investment
	realEstate   []model.RealEstate
	vehicles     []model.Vehicle
	exoticAssets []model.ExoticAsset
	bankAccounts []model.BankAccount
	loans        []model.Loan
	bills        []model.Bill
	plans        []model.RetirementPlan
	goals        []model.FinancialGoal
}

// Summary computes the full dashboard summary for an owner. When rng is
// non-nil, income and expense figures are recomputed from records created
// inside the range; if that filtered pass finds no rows the general figures
// stand and DateFilterApplied stays false.
func (s *DashboardService) Summary(ownerID string, rng *model.DateRange) (model.DashboardSummary, error) {
	var data dashboardData
	fetchErrs := make([]error, 11)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		data.incomes, err = s.incomeRepo.GetIncomeSources(ownerID, false, nil)
		fetchErrs[0] = err
		return nil
	})
	g.Go(func() error {
		var err error
		data.expenses, err = s.expenseRepo.GetExpenses(ownerID, nil)
		fetchErrs[1] = err
		return nil
	})
	g.Go(func() error {
		var err error
		data.investments, err = s.assetRepo.GetInvestments(ownerID)
		fetchErrs[2] = err
		return nil
	})
	g.Go(func() error {
		var err error
		data.realEstate, err = s.assetRepo.GetRealEstate(ownerID)
		fetchErrs[3] = err
		return nil
	})
	g.Go(func() error {
		var err error
		data.vehicles, err = s.assetRepo.GetVehicles(ownerID)
		fetchErrs[4] = err
		return nil
	})
	g.Go(func() error {
		var err error
		data.exoticAssets, err = s.assetRepo.GetExoticAssets(ownerID)
		fetchErrs[5] = err
		return nil
	})
	g.Go(func() error {
		var err error
		data.bankAccounts, err = s.assetRepo.GetBankAccounts(ownerID)
		fetchErrs[6] = err
		return nil
	})
	g.Go(func() error {
		var err error
		data.loans, err = s.liabilityRepo.GetLoans(ownerID)
		fetchErrs[7] = err
		return nil
	})
	g.Go(func() error {
		var err error
		data.bills, err = s.liabilityRepo.GetBills(ownerID)
		fetchErrs[8] = err
		return nil
	})
	g.Go(func() error {
		var err error
		data.plans, err = s.planningRepo.GetRetirementPlans(ownerID)
		fetchErrs[9] = err
		return nil
	})
	g.Go(func() error {
		var err error
		data.goals, err = s.planningRepo.GetFinancialGoals(ownerID)
		fetchErrs[10] = err
		return nil
	})

	// Goroutines never return errors, so Wait only synchronizes.
	_ = g.Wait()

	groupNames := []string{
		"income sources", "expenses", "investments", "real estate", "vehicles",
		"exotic assets", "bank accounts", "loans", "bills",
		"retirement plans", "financial goals",
	}
	warnings := []string{}
	for i, err := range fetchErrs {
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to load %s, counted as zero", groupNames[i]))
		}
	}
	if len(warnings) == len(fetchErrs) {
		return model.DashboardSummary{}, fmt.Errorf("%w: %v", apperrors.ErrDataStoreUnavailable, fetchErrs[0])
	}

	summary := buildSummary(data)
	summary.Warnings = warnings

	if rng != nil {
		s.applyDateFilter(&summary, ownerID, rng)
	}

	return summary, nil
}

// buildSummary derives every dashboard figure from the fetched collections.
func buildSummary(data dashboardData) model.DashboardSummary {
	var sum model.DashboardSummary

	for _, inc := range data.incomes {
		sum.TotalMonthlyIncome += finance.MonthlyEquivalent(inc.Amount, inc.Frequency)
	}
	for _, exp := range data.expenses {
		sum.TotalMonthlyExpenses += finance.MonthlyEquivalent(exp.Amount, exp.Frequency)
	}

	for _, inv := range data.investments {
		value := finance.CurrentWorth(investmentRecord(inv))
		sum.TotalInvestmentValue += value
		if inv.MonthlyIncome > 0 {
			sum.TotalInvestmentIncome += inv.MonthlyIncome
		} else {
			sum.TotalInvestmentIncome += value * inv.DividendYield / 100 / 12
		}
	}

	for _, prop := range data.realEstate {
		sum.TotalRealEstateValue += prop.CurrentValue
		if prop.IsRented {
			sum.TotalRealEstateIncome += prop.RentalIncome
		}
		sum.TotalRealEstateIncome -= prop.MonthlyExpenses
		sum.TotalTaxes += prop.IPTU / 12
	}

	for _, v := range data.vehicles {
		sum.TotalVehicleValue += v.CurrentValue
		sum.TotalVehicleExpenses += v.MonthlyExpenses
		sum.TotalVehicleDepreciation += v.Depreciation
		sum.TotalTaxes += v.IPVA / 12
	}

	for _, a := range data.exoticAssets {
		sum.TotalExoticAssetsValue += a.CurrentValue
		sum.TotalExoticAssetsAppreciation += a.CurrentValue - a.PurchasePrice
	}

	for _, p := range data.plans {
		sum.TotalRetirementSaved += p.CurrentBalance
		sum.TotalRetirementContribution += p.MonthlyContributionAmount()
	}

	for _, goal := range data.goals {
		sum.TotalFinancialGoals += goal.CurrentAmount
	}

	for _, acc := range data.bankAccounts {
		sum.TotalBankBalance += acc.Balance
	}

	for _, loan := range data.loans {
		if loan.RemainingAmount > 0 {
			sum.TotalDebt += loan.RemainingAmount
		} else {
			sum.TotalDebt += loan.Amount
		}
		sum.TotalLoanPayments += loan.MonthlyPayment
	}

	for _, bill := range data.bills {
		if bill.IsActive {
			sum.TotalBills += bill.Amount
		}
	}

	sum.NetMonthlyIncome = finance.NetMonthlyIncome(sum.TotalMonthlyIncome, sum.TotalMonthlyExpenses)
	sum.TotalAssets = finance.TotalAssets(
		sum.TotalInvestmentValue,
		sum.TotalRealEstateValue,
		sum.TotalVehicleValue,
		sum.TotalExoticAssetsValue,
		sum.TotalRetirementSaved,
	)
	sum.NetWorth = finance.NetWorth(sum.TotalAssets, sum.TotalDebt)
	sum.SavingsRate = finance.SavingsRate(sum.TotalMonthlyIncome, sum.TotalMonthlyExpenses)
	sum.DebtToIncomeRatio = finance.DebtToIncomeRatio(sum.TotalDebt, sum.TotalMonthlyIncome)
	sum.EmergencyFundMonths = finance.EmergencyFundMonths(sum.TotalInvestmentValue, sum.TotalMonthlyExpenses)

	return sum
}

// applyDateFilter re-fetches income sources (active only) and expenses
// restricted to the range and overrides the flow figures when either fetch
// finds rows. One-time records inside the window count at face value.
func (s *DashboardService) applyDateFilter(sum *model.DashboardSummary, ownerID string, rng *model.DateRange) {
	incomes, incErr := s.incomeRepo.GetIncomeSources(ownerID, true, rng)
	expenses, expErr := s.expenseRepo.GetExpenses(ownerID, rng)

	if incErr != nil || expErr != nil {
		sum.Warnings = append(sum.Warnings, "failed to apply date filter, showing general figures")
		return
	}
	if len(incomes) == 0 && len(expenses) == 0 {
		return
	}

	var income, expense float64
	for _, inc := range incomes {
		income += finance.MonthlyEquivalent(inc.Amount, inc.Frequency)
	}
	for _, exp := range expenses {
		expense += finance.MonthlyEquivalent(exp.Amount, exp.Frequency)
	}

	sum.TotalMonthlyIncome = income
	sum.TotalMonthlyExpenses = expense
	sum.NetMonthlyIncome = finance.NetMonthlyIncome(income, expense)
	sum.SavingsRate = finance.SavingsRate(income, expense)
	sum.DebtToIncomeRatio = finance.DebtToIncomeRatio(sum.TotalDebt, income)
	sum.EmergencyFundMonths = finance.EmergencyFundMonths(sum.TotalInvestmentValue, expense)
	sum.DateFilterApplied = true
}

// IncomeBreakdown returns the monthly-equivalent income split per category.
func (s *DashboardService) IncomeBreakdown(ownerID string) (model.CategoryBreakdown, error) {
	incomes, err := s.incomeRepo.GetIncomeSources(ownerID, false, nil)
	if err != nil {
		return model.CategoryBreakdown{}, fmt.Errorf("failed to load income sources: %w", err)
	}

	entries := make([]finance.Entry, len(incomes))
	for i, inc := range incomes {
		entries[i] = finance.Entry{
			Category: inc.Category,
			Amount:   finance.MonthlyEquivalent(inc.Amount, inc.Frequency),
		}
	}

	total, byCategory := finance.Breakdown(entries)
	return model.CategoryBreakdown{Total: total, ByCategory: byCategory}, nil
}

// ExpenseBreakdown returns the monthly-equivalent expense split per category.
func (s *DashboardService) ExpenseBreakdown(ownerID string) (model.CategoryBreakdown, error) {
	expenses, err := s.expenseRepo.GetExpenses(ownerID, nil)
	if err != nil {
		return model.CategoryBreakdown{}, fmt.Errorf("failed to load expenses: %w", err)
	}

	entries := make([]finance.Entry, len(expenses))
	for i, exp := range expenses {
		entries[i] = finance.Entry{
			Category: exp.Category,
			Amount:   finance.MonthlyEquivalent(exp.Amount, exp.Frequency),
		}
	}

	total, byCategory := finance.Breakdown(entries)
	return model.CategoryBreakdown{Total: total, ByCategory: byCategory}, nil
}

// investmentRecord maps an investment row onto the shared valuation record.
func investmentRecord(inv model.Investment) finance.AssetRecord {
	return finance.AssetRecord{
		Quantity:      inv.Quantity,
		CurrentPrice:  inv.CurrentPrice,
		CurrentValue:  inv.CurrentValue,
		PurchasePrice: inv.PurchasePrice,
		Amount:        inv.Amount,
		AcquiredAt:    inv.PurchaseDate,
	}
}
