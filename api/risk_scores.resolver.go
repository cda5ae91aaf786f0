package api

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"walletrisk/internal/domain"
	"walletrisk/internal/service"
)

type RiskScoresRequest struct {
	Wallets []string `json:"wallets"`
}

type RiskScoresResponse struct {
	RequestID uuid.UUID            `json:"requestID"`
	Scores    []domain.ScoreRecord `json:"scores"`
}

func (m ApiHandler) riskScores(c *gin.Context) {
	var requestBody RiskScoresRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if len(requestBody.Wallets) == 0 {
		returnErrorJsonCode(fmt.Errorf("no wallet addresses provided"), c, 400)
		return
	}

	// the scorer expects an ordered, deduplicated wallet list
	seen := map[string]struct{}{}
	wallets := []string{}
	for _, wallet := range requestBody.Wallets {
		if _, ok := seen[wallet]; ok {
			continue
		}
		seen[wallet] = struct{}{}
		wallets = append(wallets, wallet)
	}

	records, err := m.RiskReportHandler.GenerateRiskScores(c.Request.Context(), wallets)
	if err != nil {
		if errors.Is(err, service.ErrMissingAPIKey) {
			returnErrorJsonCode(err, c, 503)
			return
		}
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, RiskScoresResponse{
		RequestID: uuid.New(),
		Scores:    records,
	})
}
