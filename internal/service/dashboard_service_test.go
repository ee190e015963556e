package service_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/finverde/Family-Finance-Backend/internal/finance"
	"github.com/finverde/Family-Finance-Backend/internal/model"
	"github.com/finverde/Family-Finance-Backend/internal/testutil"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestDashboardSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestDashboardService(t, db)

	t.Run("normalizes income and expense frequencies", func(t *testing.T) {
		ownerID := testutil.MakeID()
		testutil.NewIncomeSource(ownerID).WithAmount(3000).Build(t, db)
		testutil.NewExpense(ownerID).WithAmount(1200).WithFrequency(finance.FrequencyWeekly).Build(t, db)

		summary, err := svc.Summary(ownerID, nil)
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}

		if !approxEqual(summary.TotalMonthlyIncome, 3000) {
			t.Errorf("Expected income 3000, got %f", summary.TotalMonthlyIncome)
		}
		if !approxEqual(summary.TotalMonthlyExpenses, 5196) {
			t.Errorf("Expected expenses 5196, got %f", summary.TotalMonthlyExpenses)
		}
		if !approxEqual(summary.NetMonthlyIncome, -2196) {
			t.Errorf("Expected net -2196, got %f", summary.NetMonthlyIncome)
		}
	})

	t.Run("net worth is assets minus debt", func(t *testing.T) {
		ownerID := testutil.MakeID()
		testutil.NewInvestment(ownerID).WithCurrentValue(10000).Build(t, db)
		testutil.InsertLoan(t, db, model.Loan{OwnerID: ownerID, Name: "Car loan", Amount: 8000, RemainingAmount: 4000, MonthlyPayment: 300})

		summary, err := svc.Summary(ownerID, nil)
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}

		if !approxEqual(summary.TotalAssets, 10000) {
			t.Errorf("Expected assets 10000, got %f", summary.TotalAssets)
		}
		if !approxEqual(summary.TotalDebt, 4000) {
			t.Errorf("Expected debt 4000, got %f", summary.TotalDebt)
		}
		if !approxEqual(summary.NetWorth, 6000) {
			t.Errorf("Expected net worth 6000, got %f", summary.NetWorth)
		}
		if !approxEqual(summary.TotalLoanPayments, 300) {
			t.Errorf("Expected loan payments 300, got %f", summary.TotalLoanPayments)
		}
	})

	t.Run("falls back to original loan amount when nothing repaid yet", func(t *testing.T) {
		ownerID := testutil.MakeID()
		testutil.InsertLoan(t, db, model.Loan{OwnerID: ownerID, Name: "New loan", Amount: 2500})

		summary, err := svc.Summary(ownerID, nil)
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}

		if !approxEqual(summary.TotalDebt, 2500) {
			t.Errorf("Expected debt 2500, got %f", summary.TotalDebt)
		}
	})

	t.Run("yearly taxes are spread across twelve months", func(t *testing.T) {
		ownerID := testutil.MakeID()
		testutil.InsertRealEstate(t, db, model.RealEstate{OwnerID: ownerID, Name: "Apartment", CurrentValue: 300000, IPTU: 1200})
		testutil.InsertVehicle(t, db, model.Vehicle{OwnerID: ownerID, Name: "Sedan", CurrentValue: 40000, IPVA: 600})

		summary, err := svc.Summary(ownerID, nil)
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}

		if !approxEqual(summary.TotalTaxes, 150) {
			t.Errorf("Expected taxes 150, got %f", summary.TotalTaxes)
		}
	})

	t.Run("rental income only counts for rented properties", func(t *testing.T) {
		ownerID := testutil.MakeID()
		testutil.InsertRealEstate(t, db, model.RealEstate{
			OwnerID: ownerID, Name: "Rented flat", CurrentValue: 200000,
			RentalIncome: 1500, MonthlyExpenses: 200, IsRented: true,
		})
		testutil.InsertRealEstate(t, db, model.RealEstate{
			OwnerID: ownerID, Name: "Empty flat", CurrentValue: 150000,
			RentalIncome: 1000, MonthlyExpenses: 100, IsRented: false,
		})

		summary, err := svc.Summary(ownerID, nil)
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}

		// 1500 - 200 for the rented one, -100 upkeep for the empty one.
		if !approxEqual(summary.TotalRealEstateIncome, 1200) {
			t.Errorf("Expected real estate income 1200, got %f", summary.TotalRealEstateIncome)
		}
	})

	t.Run("investment income prefers explicit monthly income over yield", func(t *testing.T) {
		ownerID := testutil.MakeID()
		testutil.NewInvestment(ownerID).WithCurrentValue(12000).WithMonthlyIncome(80).WithDividendYield(6).Build(t, db)
		testutil.NewInvestment(ownerID).WithCurrentValue(12000).WithDividendYield(6).Build(t, db)

		summary, err := svc.Summary(ownerID, nil)
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}

		// 80 explicit plus 12000 * 6% / 12 = 60 derived.
		if !approxEqual(summary.TotalInvestmentIncome, 140) {
			t.Errorf("Expected investment income 140, got %f", summary.TotalInvestmentIncome)
		}
	})

	t.Run("ratios are zero-guarded", func(t *testing.T) {
		ownerID := testutil.MakeID()
		testutil.NewExpense(ownerID).WithAmount(500).Build(t, db)

		summary, err := svc.Summary(ownerID, nil)
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}

		if summary.SavingsRate != 0 {
			t.Errorf("Expected savings rate 0 with no income, got %f", summary.SavingsRate)
		}
		if summary.DebtToIncomeRatio != 0 {
			t.Errorf("Expected debt-to-income 0 with no income, got %f", summary.DebtToIncomeRatio)
		}
		if summary.EmergencyFundMonths != 0 {
			t.Errorf("Expected emergency fund months 0 with no investments, got %f", summary.EmergencyFundMonths)
		}
	})

	t.Run("only active bills count toward the total", func(t *testing.T) {
		ownerID := testutil.MakeID()
		testutil.InsertBill(t, db, model.Bill{OwnerID: ownerID, Name: "Electricity", Amount: 150, IsActive: true})
		testutil.InsertBill(t, db, model.Bill{OwnerID: ownerID, Name: "Old gym", Amount: 90, IsActive: false})

		summary, err := svc.Summary(ownerID, nil)
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}

		if !approxEqual(summary.TotalBills, 150) {
			t.Errorf("Expected bills 150, got %f", summary.TotalBills)
		}
	})
}

func TestDashboardSummaryDateFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestDashboardService(t, db)

	ownerID := testutil.MakeID()
	inWindow := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	outOfWindow := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	testutil.NewIncomeSource(ownerID).WithAmount(4000).WithCreatedAt(outOfWindow).Build(t, db)
	testutil.NewIncomeSource(ownerID).WithAmount(1000).WithCreatedAt(inWindow).Build(t, db)
	testutil.NewExpense(ownerID).WithAmount(700).WithCreatedAt(inWindow).Build(t, db)

	t.Run("overrides flow figures when the window has rows", func(t *testing.T) {
		rng := &model.DateRange{
			Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
		}

		summary, err := svc.Summary(ownerID, rng)
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}

		if !summary.DateFilterApplied {
			t.Error("Expected DateFilterApplied to be true")
		}
		if !approxEqual(summary.TotalMonthlyIncome, 1000) {
			t.Errorf("Expected filtered income 1000, got %f", summary.TotalMonthlyIncome)
		}
		if !approxEqual(summary.TotalMonthlyExpenses, 700) {
			t.Errorf("Expected filtered expenses 700, got %f", summary.TotalMonthlyExpenses)
		}
	})

	t.Run("keeps general figures when the window is empty", func(t *testing.T) {
		rng := &model.DateRange{
			Start: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2022, 1, 31, 23, 59, 59, 0, time.UTC),
		}

		summary, err := svc.Summary(ownerID, rng)
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}

		if summary.DateFilterApplied {
			t.Error("Expected DateFilterApplied to be false")
		}
		if !approxEqual(summary.TotalMonthlyIncome, 5000) {
			t.Errorf("Expected general income 5000, got %f", summary.TotalMonthlyIncome)
		}
	})

	t.Run("inactive sources are excluded from the filtered pass", func(t *testing.T) {
		testutil.NewIncomeSource(ownerID).WithAmount(999).WithCreatedAt(inWindow).Inactive().Build(t, db)

		rng := &model.DateRange{
			Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
		}

		summary, err := svc.Summary(ownerID, rng)
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}

		if !approxEqual(summary.TotalMonthlyIncome, 1000) {
			t.Errorf("Expected filtered income 1000 without inactive source, got %f", summary.TotalMonthlyIncome)
		}
	})
}

func TestDashboardSummaryPartialFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestDashboardService(t, db)

	ownerID := testutil.MakeID()
	testutil.NewIncomeSource(ownerID).WithAmount(2000).Build(t, db)
	testutil.InsertBankAccount(t, db, model.BankAccount{OwnerID: ownerID, Name: "Checking", Balance: 800})

	// Break one collection only.
	if _, err := db.Exec("DROP TABLE investments"); err != nil {
		t.Fatalf("Failed to drop investments table: %v", err)
	}

	summary, err := svc.Summary(ownerID, nil)
	if err != nil {
		t.Fatalf("Expected partial summary, got error: %v", err)
	}

	found := false
	for _, w := range summary.Warnings {
		if strings.Contains(w, "investments") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a warning about investments, got %v", summary.Warnings)
	}

	if summary.TotalInvestmentValue != 0 {
		t.Errorf("Expected investment value to degrade to 0, got %f", summary.TotalInvestmentValue)
	}
	if !approxEqual(summary.TotalMonthlyIncome, 2000) {
		t.Errorf("Expected income to survive, got %f", summary.TotalMonthlyIncome)
	}
	if !approxEqual(summary.TotalBankBalance, 800) {
		t.Errorf("Expected bank balance to survive, got %f", summary.TotalBankBalance)
	}
}

func TestCategoryBreakdowns(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestDashboardService(t, db)

	ownerID := testutil.MakeID()
	testutil.NewExpense(ownerID).WithAmount(600).WithCategory("Housing").Build(t, db)
	testutil.NewExpense(ownerID).WithAmount(300).WithCategory("Food").Build(t, db)
	testutil.NewExpense(ownerID).WithAmount(100).WithCategory("Food").Build(t, db)

	breakdown, err := svc.ExpenseBreakdown(ownerID)
	if err != nil {
		t.Fatalf("ExpenseBreakdown failed: %v", err)
	}

	if !approxEqual(breakdown.Total, 1000) {
		t.Errorf("Expected total 1000, got %f", breakdown.Total)
	}
	if len(breakdown.ByCategory) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(breakdown.ByCategory))
	}
	if breakdown.ByCategory[0].Category != "Housing" {
		t.Errorf("Expected Housing first, got %s", breakdown.ByCategory[0].Category)
	}
	if !approxEqual(breakdown.ByCategory[1].Amount, 400) {
		t.Errorf("Expected Food total 400, got %f", breakdown.ByCategory[1].Amount)
	}

	var pctSum float64
	for _, c := range breakdown.ByCategory {
		pctSum += c.Percentage
	}
	if !approxEqual(pctSum, 100) {
		t.Errorf("Expected percentages to sum to 100, got %f", pctSum)
	}
}
