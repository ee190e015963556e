package finance

import (
	"errors"
	"time"
)

// ErrUnknownFrequency indicates a frequency string outside the four
// recognized values.
var ErrUnknownFrequency = errors.New("unknown frequency")

// MonthlyEquivalent converts an amount at the given frequency to its monthly
// equivalent for aggregate (non-time-aware) views.
//
// One-time amounts are counted at face value, as if they recurred monthly.
// That inflates aggregate totals for one-off records and differs from the
// time-aware bucket path, where a one-time record only lands in the bucket
// overlapping its date. See DESIGN.md before changing either behavior.
//
// An unrecognized frequency resolves as already-monthly. This is the single
// fallthrough point for legacy rows; validation rejects such rows at the edge.
func MonthlyEquivalent(amount float64, freq Frequency) float64 {
	if amount < 0 {
		return 0
	}
	switch freq {
	case FrequencyWeekly:
		return amount * WeeksPerMonth
	case FrequencyYearly:
		return amount / 12
	case FrequencyMonthly, FrequencyOneTime:
		return amount
	default:
		return amount
	}
}

// Window is a contiguous date range, inclusive on both ends.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window (inclusive).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// AssetRecord carries the valuation fields shared by the asset collections
// (investments, real estate, vehicles, exotic assets). Fields that do not
// apply to a given collection are left zero and skipped by the fallback
// chains below.
type AssetRecord struct {
	Quantity      float64
	CurrentPrice  float64
	CurrentValue  float64
	PurchasePrice float64
	Amount        float64
	AcquiredAt    time.Time
}

// CurrentWorth returns the record's present valuation using the fallback
// chain quantity*price -> current value -> current price -> purchase price
// -> amount.
func CurrentWorth(rec AssetRecord) float64 {
	if rec.Quantity > 0 && rec.CurrentPrice > 0 {
		return rec.Quantity * rec.CurrentPrice
	}
	if rec.CurrentValue > 0 {
		return rec.CurrentValue
	}
	if rec.CurrentPrice > 0 {
		return rec.CurrentPrice
	}
	if rec.PurchasePrice > 0 {
		return rec.PurchasePrice
	}
	return rec.Amount
}

// AcquisitionWorth returns the value the record carried when it entered the
// books: purchase price, falling back to the raw amount.
func AcquisitionWorth(rec AssetRecord) float64 {
	if rec.PurchasePrice > 0 {
		return rec.PurchasePrice
	}
	return rec.Amount
}

// ValueInWindow computes the record's contribution to a wealth bucket.
//
// A record acquired after the bucket end contributes nothing. Records that
// predate the overall filter start contribute their current valuation; records
// acquired inside the filtered period contribute their acquisition-time
// valuation instead, modeling "this asset only carried its entry value up to
// now". The switch is an approximation; it does not interpolate appreciation
// inside the window.
func ValueInWindow(rec AssetRecord, w Window, priorToFilterStart bool) float64 {
	if rec.AcquiredAt.After(w.End) {
		return 0
	}
	if priorToFilterStart {
		return CurrentWorth(rec)
	}
	return AcquisitionWorth(rec)
}
