package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// WalletSourceRepository yields the ordered, deduplicated wallet list to
// score. Prefers a wallet_id column, then address, then falls back to
// whatever the first column holds.
type WalletSourceRepository interface {
	ListWalletIDs(filePath string) ([]string, error)
}

type walletSourceRepositoryHandler struct{}

func NewWalletSourceRepository() WalletSourceRepository {
	return walletSourceRepositoryHandler{}
}

type walletRow struct {
	WalletID string `csv:"wallet_id"`
	Address  string `csv:"address"`
}

func (h walletSourceRepositoryHandler) ListWalletIDs(filePath string) ([]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not open wallet file: %w", err)
	}
	defer f.Close()

	rows := []walletRow{}
	err = gocsv.UnmarshalFile(f, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not parse wallet file: %w", err)
	}

	walletIDs := []string{}
	for _, row := range rows {
		switch {
		case strings.TrimSpace(row.WalletID) != "":
			walletIDs = append(walletIDs, strings.TrimSpace(row.WalletID))
		case strings.TrimSpace(row.Address) != "":
			walletIDs = append(walletIDs, strings.TrimSpace(row.Address))
		}
	}

	if len(walletIDs) == 0 {
		// no recognized column; take the first column as-is
		walletIDs, err = firstColumn(filePath)
		if err != nil {
			return nil, err
		}
	}

	return dedupe(walletIDs), nil
}

func firstColumn(filePath string) ([]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not open wallet file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse wallet file: %w", err)
	}

	values := []string{}
	for i, record := range records {
		if i == 0 {
			// header row
			continue
		}
		if len(record) == 0 {
			continue
		}
		if value := strings.TrimSpace(record[0]); value != "" {
			values = append(values, value)
		}
	}

	return values, nil
}

func dedupe(walletIDs []string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, walletID := range walletIDs {
		if _, ok := seen[walletID]; ok {
			continue
		}
		seen[walletID] = struct{}{}
		out = append(out, walletID)
	}
	return out
}
