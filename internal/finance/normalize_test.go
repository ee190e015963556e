package finance_test

import (
	"math"
	"testing"
	"time"

	"github.com/finverde/Family-Finance-Backend/internal/finance"
)

func TestMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		freq     finance.Frequency
		expected float64
	}{
		{"monthly passes through", 3000, finance.FrequencyMonthly, 3000},
		{"weekly times 4.33", 1200, finance.FrequencyWeekly, 1200 * 4.33},
		{"yearly divided by 12", 2400, finance.FrequencyYearly, 200},
		{"one-time counted at face value", 500, finance.FrequencyOneTime, 500},
		{"unknown frequency treated as monthly", 150, finance.Frequency("fortnightly"), 150},
		{"zero amount", 0, finance.FrequencyWeekly, 0},
		{"negative amount clamped to zero", -100, finance.FrequencyMonthly, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finance.MonthlyEquivalent(tt.amount, tt.freq)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("MonthlyEquivalent(%v, %q) = %v, want %v", tt.amount, tt.freq, got, tt.expected)
			}
		})
	}
}

func TestParseFrequency(t *testing.T) {
	for _, raw := range []string{"monthly", "weekly", "yearly", "one-time"} {
		if _, err := finance.ParseFrequency(raw); err != nil {
			t.Errorf("ParseFrequency(%q) returned unexpected error: %v", raw, err)
		}
	}

	if _, err := finance.ParseFrequency("quarterly"); err == nil {
		t.Error("ParseFrequency(\"quarterly\") should fail")
	}
}

func TestValueInWindow(t *testing.T) {
	window := finance.Window{
		Start: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	t.Run("record acquired after window end contributes nothing", func(t *testing.T) {
		rec := finance.AssetRecord{
			CurrentValue: 1000,
			AcquiredAt:   time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC),
		}
		if got := finance.ValueInWindow(rec, window, false); got != 0 {
			t.Errorf("expected 0 for record acquired after window end, got %v", got)
		}
	})

	t.Run("record predating filter start uses current valuation", func(t *testing.T) {
		// Ten units at a current price of 50, purchased before the filter
		// window opened: the bucket should see 500, not the purchase price.
		rec := finance.AssetRecord{
			Quantity:      10,
			CurrentPrice:  50,
			PurchasePrice: 300,
			AcquiredAt:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		if got := finance.ValueInWindow(rec, window, true); got != 500 {
			t.Errorf("expected current valuation 500, got %v", got)
		}
	})

	t.Run("record acquired inside filter window uses acquisition valuation", func(t *testing.T) {
		rec := finance.AssetRecord{
			CurrentValue:  800,
			PurchasePrice: 600,
			AcquiredAt:    time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
		}
		if got := finance.ValueInWindow(rec, window, false); got != 600 {
			t.Errorf("expected acquisition valuation 600, got %v", got)
		}
	})
}

func TestCurrentWorthFallbackChain(t *testing.T) {
	tests := []struct {
		name     string
		rec      finance.AssetRecord
		expected float64
	}{
		{"quantity times price wins", finance.AssetRecord{Quantity: 10, CurrentPrice: 50, CurrentValue: 999}, 500},
		{"current value next", finance.AssetRecord{CurrentValue: 800, PurchasePrice: 600}, 800},
		{"current price without quantity", finance.AssetRecord{CurrentPrice: 120, Amount: 90}, 120},
		{"purchase price next", finance.AssetRecord{PurchasePrice: 600, Amount: 90}, 600},
		{"amount as last resort", finance.AssetRecord{Amount: 90}, 90},
		{"all zero", finance.AssetRecord{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := finance.CurrentWorth(tt.rec); got != tt.expected {
				t.Errorf("CurrentWorth() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAcquisitionWorth(t *testing.T) {
	rec := finance.AssetRecord{PurchasePrice: 450, Amount: 200, CurrentValue: 999}
	if got := finance.AcquisitionWorth(rec); got != 450 {
		t.Errorf("expected purchase price 450, got %v", got)
	}

	rec = finance.AssetRecord{Amount: 200}
	if got := finance.AcquisitionWorth(rec); got != 200 {
		t.Errorf("expected amount fallback 200, got %v", got)
	}
}
