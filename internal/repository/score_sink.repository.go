package repository

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"walletrisk/internal/domain"
)

// ScoreSinkRepository writes the final score table, one row per wallet in
// input order.
type ScoreSinkRepository interface {
	WriteScores(filePath string, records []domain.ScoreRecord) error
}

type scoreSinkRepositoryHandler struct{}

func NewScoreSinkRepository() ScoreSinkRepository {
	return scoreSinkRepositoryHandler{}
}

func (h scoreSinkRepositoryHandler) WriteScores(filePath string, records []domain.ScoreRecord) error {
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("could not create score file: %w", err)
	}
	defer f.Close()

	err = gocsv.MarshalFile(&records, f)
	if err != nil {
		return fmt.Errorf("could not write score file: %w", err)
	}

	return nil
}
