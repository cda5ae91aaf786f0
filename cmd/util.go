package cmd

import (
	"fmt"

	"walletrisk/api"
	"walletrisk/internal"
	"walletrisk/internal/app"
	"walletrisk/internal/calculator"
	"walletrisk/internal/domain"
	"walletrisk/internal/repository"
	"walletrisk/internal/service"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	registry := domain.NewCompoundV2Registry()
	transferRepository := repository.NewTransferRepository(secrets.EtherscanApiKey)
	eventsService := service.NewWalletEventsService(transferRepository, registry)
	batchRetriever := service.NewBatchRetriever(eventsService, secrets.EtherscanApiKey)

	riskReportHandler := app.RiskReportHandler{
		WalletSourceRepository: repository.NewWalletSourceRepository(),
		ScoreSinkRepository:    repository.NewScoreSinkRepository(),
		BatchRetriever:         batchRetriever,
		FeatureCalculator:      calculator.NewFeatureCalculator(),
		RiskScorer:             calculator.NewRiskScorer(),
	}

	return &api.ApiHandler{
		RiskReportHandler: riskReportHandler,
	}, nil
}
