package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"walletrisk/internal/calculator"
	"walletrisk/internal/domain"
	"walletrisk/internal/repository"
	mock_repository "walletrisk/internal/repository/mocks"
	"walletrisk/internal/service"
	"walletrisk/pkg/etherscan"
)

const cUsdcContract = "0x39aa39c021dfbae8fac545936693ac917d5e7563"

func newTestHandler(transferRepository repository.TransferRepository, now time.Time) RiskReportHandler {
	registry := domain.NewCompoundV2Registry()
	eventsService := service.NewWalletEventsService(transferRepository, registry)
	return RiskReportHandler{
		WalletSourceRepository: repository.NewWalletSourceRepository(),
		ScoreSinkRepository:    repository.NewScoreSinkRepository(),
		BatchRetriever:         service.NewBatchRetriever(eventsService, "test-key"),
		FeatureCalculator: calculator.FeatureCalculator{
			Now: func() time.Time { return now },
		},
		RiskScorer: calculator.NewRiskScorer(),
	}
}

func TestRunFromFiles(t *testing.T) {
	t.Run("full pipeline writes one score per wallet in input order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transferRepository := mock_repository.NewMockTransferRepository(ctrl)

		// wallet A supplied $1000 of cUSDC 100 days before "now";
		// wallet B's fetch fails and degrades to an all-zero vector
		eventTime := int64(1700000000)
		now := time.Unix(eventTime, 0).UTC().Add(100 * 24 * time.Hour)

		transferRepository.EXPECT().
			GetTokenTransfers("0xaaa").
			Return([]etherscan.TokenTransfer{
				{
					ContractAddress: cUsdcContract,
					To:              "0xaaa",
					Value:           "600000000",
					TimeStamp:       fmt.Sprintf("%d", eventTime),
				},
				{
					ContractAddress: cUsdcContract,
					To:              "0xaaa",
					Value:           "400000000",
					TimeStamp:       fmt.Sprintf("%d", eventTime+3600),
				},
			}, nil)
		transferRepository.EXPECT().
			GetTokenTransfers("0xbbb").
			Return(nil, fmt.Errorf("connection reset"))

		dir := t.TempDir()
		walletsPath := filepath.Join(dir, "wallets.csv")
		outputPath := filepath.Join(dir, "wallet_risk_scores.csv")
		require.NoError(t, os.WriteFile(walletsPath, []byte("wallet_id\n0xaaa\n0xbbb\n"), 0o644))

		handler := newTestHandler(transferRepository, now)
		require.NoError(t, handler.RunFromFiles(context.Background(), walletsPath, outputPath))

		contents, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		require.Equal(t, "wallet_id,score\n0xaaa,400\n0xbbb,50\n", string(contents))
	})

	t.Run("empty wallet file is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transferRepository := mock_repository.NewMockTransferRepository(ctrl)

		dir := t.TempDir()
		walletsPath := filepath.Join(dir, "wallets.csv")
		outputPath := filepath.Join(dir, "wallet_risk_scores.csv")
		require.NoError(t, os.WriteFile(walletsPath, []byte("wallet_id\n"), 0o644))

		handler := newTestHandler(transferRepository, time.Now())
		require.NoError(t, handler.RunFromFiles(context.Background(), walletsPath, outputPath))

		_, err := os.Stat(outputPath)
		require.True(t, os.IsNotExist(err))
	})

	t.Run("missing credentials fail the whole run with no output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transferRepository := mock_repository.NewMockTransferRepository(ctrl)

		dir := t.TempDir()
		walletsPath := filepath.Join(dir, "wallets.csv")
		outputPath := filepath.Join(dir, "wallet_risk_scores.csv")
		require.NoError(t, os.WriteFile(walletsPath, []byte("wallet_id\n0xaaa\n"), 0o644))

		registry := domain.NewCompoundV2Registry()
		eventsService := service.NewWalletEventsService(transferRepository, registry)
		handler := newTestHandler(transferRepository, time.Now())
		handler.BatchRetriever = service.NewBatchRetriever(eventsService, "")

		err := handler.RunFromFiles(context.Background(), walletsPath, outputPath)
		require.ErrorIs(t, err, service.ErrMissingAPIKey)

		_, statErr := os.Stat(outputPath)
		require.True(t, os.IsNotExist(statErr))
	})
}
