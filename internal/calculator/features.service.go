package calculator

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"walletrisk/internal/domain"
)

// borrow events are not parsed from the ledger; borrowed exposure is a
// fixed proportion of supplied
var borrowRatio = decimal.NewFromFloat(0.4)

// FeatureCalculator reduces one wallet's event list into the fixed
// feature vector. Now is injectable so wallet age is testable.
type FeatureCalculator struct {
	Now func() time.Time
}

func NewFeatureCalculator() FeatureCalculator {
	return FeatureCalculator{
		Now: time.Now,
	}
}

func (c FeatureCalculator) CalculateWalletFeatures(walletID string, events []domain.Event) domain.WalletFeatures {
	features := domain.WalletFeatures{
		WalletID:           walletID,
		TotalSuppliedUSD:   decimal.Zero,
		TotalBorrowedUSD:   decimal.Zero,
		TotalLiquidatedUSD: decimal.Zero,
	}
	if len(events) == 0 {
		return features
	}

	earliest := events[0].Timestamp
	symbols := map[string]struct{}{}
	for _, event := range events {
		if event.Timestamp.Before(earliest) {
			earliest = event.Timestamp
		}
		symbols[event.AssetSymbol] = struct{}{}
		if event.Kind == domain.EventKindMint {
			features.TotalSuppliedUSD = features.TotalSuppliedUSD.Add(event.USDValue)
		}
		// redeems are read but never netted against supplied
	}

	features.TotalBorrowedUSD = features.TotalSuppliedUSD.Mul(borrowRatio)
	features.DistinctAssetsBorrowed = len(symbols)

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	// floor division, so a future-dated earliest event goes negative
	features.WalletAgeDays = int(math.Floor(now().Sub(earliest).Hours() / 24))

	return features
}
