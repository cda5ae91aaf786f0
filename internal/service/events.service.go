package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"walletrisk/internal/domain"
	"walletrisk/internal/repository"
)

// FetchResult is the failure-aware outcome of one wallet fetch. The
// batch retriever converts failures to empty event lists; the error does
// not travel further than that boundary.
type FetchResult struct {
	WalletID string
	Events   []domain.Event
	Err      error
}

type WalletEventsService interface {
	FetchWalletEvents(ctx context.Context, walletID string) FetchResult
}

type walletEventsServiceHandler struct {
	TransferRepository repository.TransferRepository
	Registry           domain.AssetRegistry
}

func NewWalletEventsService(
	transferRepository repository.TransferRepository,
	registry domain.AssetRegistry,
) WalletEventsService {
	return walletEventsServiceHandler{
		TransferRepository: transferRepository,
		Registry:           registry,
	}
}

// FetchWalletEvents pulls the wallet's full transfer history, keeps the
// transfers whose contract is a known cToken, and values each in USD.
// A transfer is a Mint when the wallet is the destination, else a Redeem.
// Transfers arrive ascending by block and that order is preserved.
func (h walletEventsServiceHandler) FetchWalletEvents(ctx context.Context, walletID string) FetchResult {
	transfers, err := h.TransferRepository.GetTokenTransfers(walletID)
	if err != nil {
		return FetchResult{
			WalletID: walletID,
			Err:      fmt.Errorf("failed to fetch transfers for %s: %w", walletID, err),
		}
	}

	wallet := strings.ToLower(walletID)
	events := []domain.Event{}
	for _, transfer := range transfers {
		asset, ok := h.Registry.Lookup(transfer.ContractAddress)
		if !ok {
			// not Compound V2 activity
			continue
		}

		rawValue, err := decimal.NewFromString(transfer.Value)
		if err != nil {
			continue
		}
		timestamp, err := strconv.ParseInt(transfer.TimeStamp, 10, 64)
		if err != nil {
			continue
		}

		kind := domain.EventKindRedeem
		if strings.ToLower(transfer.To) == wallet {
			kind = domain.EventKindMint
		}

		events = append(events, domain.Event{
			Timestamp:   time.Unix(timestamp, 0).UTC(),
			Kind:        kind,
			AssetSymbol: asset.Symbol,
			USDValue:    rawValue.Shift(-asset.UnderlyingDecimals).Mul(asset.PriceUSD),
		})
	}

	return FetchResult{
		WalletID: walletID,
		Events:   events,
	}
}
