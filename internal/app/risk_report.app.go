package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"walletrisk/internal/calculator"
	"walletrisk/internal/domain"
	"walletrisk/internal/logger"
	"walletrisk/internal/repository"
	"walletrisk/internal/service"
)

// RiskReportHandler wires the full pipeline: wallet list in, fetch fan-out,
// per-wallet feature reduction, batch-relative scoring, score table out.
type RiskReportHandler struct {
	WalletSourceRepository repository.WalletSourceRepository
	ScoreSinkRepository    repository.ScoreSinkRepository
	BatchRetriever         service.BatchRetriever
	FeatureCalculator      calculator.FeatureCalculator
	RiskScorer             calculator.RiskScorer
}

// GenerateRiskScores scores an already-resolved wallet list. Feature
// extraction and scoring run single-threaded over the fully materialized
// batch; the scorer needs every wallet's vector before it can normalize.
func (h RiskReportHandler) GenerateRiskScores(ctx context.Context, walletIDs []string) ([]domain.ScoreRecord, error) {
	eventsByWallet, err := h.BatchRetriever.RetrieveWalletEvents(ctx, walletIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve wallet events: %w", err)
	}

	features := make([]domain.WalletFeatures, 0, len(walletIDs))
	for _, walletID := range walletIDs {
		features = append(features, h.FeatureCalculator.CalculateWalletFeatures(walletID, eventsByWallet[walletID]))
	}

	records, err := h.RiskScorer.CalculateRiskScores(features)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate risk scores: %w", err)
	}

	return records, nil
}

// RunFromFiles is the batch entrypoint: read the wallet CSV, score, write
// the score CSV. An empty wallet file is a no-op, not an error.
func (h RiskReportHandler) RunFromFiles(ctx context.Context, walletsPath string, outputPath string) error {
	start := time.Now()
	runID := uuid.New()

	walletIDs, err := h.WalletSourceRepository.ListWalletIDs(walletsPath)
	if err != nil {
		return fmt.Errorf("failed to load wallet addresses: %w", err)
	}
	if len(walletIDs) == 0 {
		logger.Warn("no wallet addresses found in %s, nothing to score", walletsPath)
		return nil
	}

	records, err := h.GenerateRiskScores(ctx, walletIDs)
	if err != nil {
		return err
	}

	err = h.ScoreSinkRepository.WriteScores(outputPath, records)
	if err != nil {
		return fmt.Errorf("failed to write scores: %w", err)
	}

	logger.Info(
		"run %s scored %d wallets in %.2fs, results saved to %s",
		runID, len(records), time.Since(start).Seconds(), outputPath,
	)

	return nil
}
