package calculator

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"walletrisk/internal/domain"
)

// fixed weights, summing to 1.0
const (
	weightLiquidationCount   = 0.40
	weightHealthFactorProxy  = 0.30
	weightTotalLiquidatedUSD = 0.15
	weightDistinctAssets     = 0.10
	weightWalletAge          = 0.05
)

// RiskScorer turns a batch of feature vectors into integer scores in
// [0, 1000]. Scores are batch-relative: every feature is rescaled against
// the batch's own min/max, so a score only means anything next to the
// other wallets scored with it.
type RiskScorer struct{}

func NewRiskScorer() RiskScorer {
	return RiskScorer{}
}

// CalculateRiskScores returns one record per feature vector, in input
// order. An empty batch yields an empty slice.
func (s RiskScorer) CalculateRiskScores(features []domain.WalletFeatures) ([]domain.ScoreRecord, error) {
	records := make([]domain.ScoreRecord, 0, len(features))
	if len(features) == 0 {
		return records, nil
	}

	n := len(features)
	liquidationCounts := make([]float64, n)
	healthFactors := make([]float64, n)
	liquidatedTotals := make([]float64, n)
	distinctAssets := make([]float64, n)
	walletAges := make([]float64, n)
	for i, f := range features {
		liquidationCounts[i] = float64(f.LiquidationCount)
		healthFactors[i] = f.HealthFactorProxy()
		liquidatedTotals[i] = f.TotalLiquidatedUSD.InexactFloat64()
		distinctAssets[i] = float64(f.DistinctAssetsBorrowed)
		walletAges[i] = float64(f.WalletAgeDays)
	}

	var err error
	if liquidationCounts, err = normalizeColumn(liquidationCounts); err != nil {
		return nil, err
	}
	if healthFactors, err = normalizeColumn(healthFactors); err != nil {
		return nil, err
	}
	if liquidatedTotals, err = normalizeColumn(liquidatedTotals); err != nil {
		return nil, err
	}
	if distinctAssets, err = normalizeColumn(distinctAssets); err != nil {
		return nil, err
	}
	if walletAges, err = normalizeColumn(walletAges); err != nil {
		return nil, err
	}

	// younger wallets carry more risk
	for i := range walletAges {
		walletAges[i] = 1 - walletAges[i]
	}

	for i, f := range features {
		weighted := weightLiquidationCount*liquidationCounts[i] +
			weightHealthFactorProxy*healthFactors[i] +
			weightTotalLiquidatedUSD*liquidatedTotals[i] +
			weightDistinctAssets*distinctAssets[i] +
			weightWalletAge*walletAges[i]

		records = append(records, domain.ScoreRecord{
			WalletID: f.WalletID,
			Score:    int(math.Floor(weighted * 1000)),
		})
	}

	return records, nil
}

// normalizeColumn rescales a batch column to [0, 1] against its own
// min/max. A column where every wallet ties carries no discriminating
// signal and collapses to all zeros.
func normalizeColumn(values []float64) ([]float64, error) {
	min, err := stats.Min(values)
	if err != nil {
		return nil, fmt.Errorf("failed to compute column min: %w", err)
	}
	max, err := stats.Max(values)
	if err != nil {
		return nil, fmt.Errorf("failed to compute column max: %w", err)
	}

	normalized := make([]float64, len(values))
	if max == min {
		return normalized, nil
	}
	for i, v := range values {
		normalized[i] = (v - min) / (max - min)
	}
	return normalized, nil
}
