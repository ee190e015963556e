package service

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finverde/Family-Finance-Backend/internal/finance"
	"github.com/finverde/Family-Finance-Backend/internal/model"
	"github.com/finverde/Family-Finance-Backend/internal/repository"
)

// Default history window when no date filter is applied.
const defaultHistoryMonths = 6

// WealthService computes the wealth evolution chart: one snapshot per time
// bucket, split into investments, real estate, bank accounts and other assets.
type WealthService struct {
	assetRepo *repository.AssetRepository
}

// NewWealthService creates a new WealthService with the provided repository dependency.
func NewWealthService(assetRepo *repository.AssetRepository) *WealthService {
	return &WealthService{assetRepo: assetRepo}
}

// History returns the owner's wealth composition per bucket. With no range the
// window is the last six calendar months; with a range, buckets come from the
// range itself (monthly up to a year, semesters beyond) and are clipped to it.
//
// A collection that fails to load degrades its channel to zero and records a
// warning; every bucket is still emitted.
func (s *WealthService) History(ownerID string, rng *model.DateRange, now time.Time) ([]model.BucketSnapshot, []string, error) {
	var buckets []finance.Bucket
	filterApplied := rng != nil

	if filterApplied {
		buckets = finance.BucketsForRange(rng.Start, rng.End)
		filter := finance.Window{Start: rng.Start, End: rng.End}
		for i := range buckets {
			buckets[i] = buckets[i].ClipTo(filter)
		}
	} else {
		buckets = finance.LastMonths(defaultHistoryMonths, now)
	}

	var (
		investments  []model.Investment
		realEstate   []model.RealEstate
		exoticAssets []model.ExoticAsset
		bankAccounts []model.BankAccount
	)
	fetchErrs := make([]error, 4)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		investments, err = s.assetRepo.GetInvestments(ownerID)
		fetchErrs[0] = err
		return nil
	})
	g.Go(func() error {
		var err error
		realEstate, err = s.assetRepo.GetRealEstate(ownerID)
		fetchErrs[1] = err
		return nil
	})
	g.Go(func() error {
		var err error
		exoticAssets, err = s.assetRepo.GetExoticAssets(ownerID)
		fetchErrs[2] = err
		return nil
	})
	g.Go(func() error {
		var err error
		bankAccounts, err = s.assetRepo.GetBankAccounts(ownerID)
		fetchErrs[3] = err
		return nil
	})
	_ = g.Wait()

	groupNames := []string{"investments", "real estate", "exotic assets", "bank accounts"}
	warnings := []string{}
	for i, err := range fetchErrs {
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to load %s, counted as zero", groupNames[i]))
		}
	}

	snapshots := make([]model.BucketSnapshot, len(buckets))
	for i, bucket := range buckets {
		window := bucket.Window()

		var investmentTotal, realEstateTotal, bankTotal, otherTotal float64

		for _, inv := range investments {
			rec := investmentRecord(inv)
			investmentTotal += finance.ValueInWindow(rec, window, priorToFilter(rec.AcquiredAt, rng))
		}
		for _, prop := range realEstate {
			rec := finance.AssetRecord{
				CurrentValue:  prop.CurrentValue,
				PurchasePrice: prop.PurchasePrice,
				AcquiredAt:    prop.PurchaseDate,
			}
			realEstateTotal += finance.ValueInWindow(rec, window, priorToFilter(rec.AcquiredAt, rng))
		}
		for _, asset := range exoticAssets {
			rec := finance.AssetRecord{
				CurrentValue:  asset.CurrentValue,
				PurchasePrice: asset.PurchasePrice,
				AcquiredAt:    asset.PurchaseDate,
			}
			otherTotal += finance.ValueInWindow(rec, window, priorToFilter(rec.AcquiredAt, rng))
		}
		// Bank balances are point-in-time liquidity, always valued at the
		// current balance once the account exists.
		for _, acc := range bankAccounts {
			if !acc.CreatedAt.After(window.End) {
				bankTotal += acc.Balance
			}
		}

		investmentTotal = math.Round(investmentTotal)
		realEstateTotal = math.Round(realEstateTotal)
		bankTotal = math.Round(bankTotal)
		otherTotal = math.Round(otherTotal)

		snapshots[i] = model.BucketSnapshot{
			Label:        bucket.Label,
			Total:        investmentTotal + realEstateTotal + bankTotal + otherTotal,
			Investments:  investmentTotal,
			RealEstate:   realEstateTotal,
			BankAccounts: bankTotal,
			Other:        otherTotal,
		}
	}

	return snapshots, warnings, nil
}

// priorToFilter reports whether an asset acquired at t predates the filter
// start. Without a filter every asset counts as pre-existing, so it carries
// its current valuation in all buckets it overlaps.
func priorToFilter(t time.Time, rng *model.DateRange) bool {
	if rng == nil {
		return true
	}
	return t.Before(rng.Start)
}
