package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"walletrisk/internal/domain"
	"walletrisk/internal/logger"
)

// ErrMissingAPIKey is the configuration error for absent credentials. It
// is fatal to the whole run, unlike per-wallet fetch failures.
var ErrMissingAPIKey = errors.New("missing etherscan api key")

const defaultNumWorkers = 5

type BatchRetriever interface {
	RetrieveWalletEvents(ctx context.Context, walletIDs []string) (map[string][]domain.Event, error)
}

type batchRetrieverHandler struct {
	EventsService WalletEventsService
	ApiKey        string
	NumWorkers    int
}

func NewBatchRetriever(eventsService WalletEventsService, apiKey string) BatchRetriever {
	return batchRetrieverHandler{
		EventsService: eventsService,
		ApiKey:        apiKey,
		NumWorkers:    defaultNumWorkers,
	}
}

// RetrieveWalletEvents fans the event fetcher out over the wallet list
// with a fixed number of workers. The bound caps in-flight requests; no
// inter-request delay or rate governance is applied. Every input wallet
// gets an entry in the result, with fetch failures degraded to empty
// event lists.
func (h batchRetrieverHandler) RetrieveWalletEvents(ctx context.Context, walletIDs []string) (map[string][]domain.Event, error) {
	if strings.TrimSpace(h.ApiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	eventsByWallet := map[string][]domain.Event{}
	if len(walletIDs) == 0 {
		return eventsByWallet, nil
	}

	inputCh := make(chan string, len(walletIDs))
	resultCh := make(chan FetchResult, len(walletIDs))
	var wg sync.WaitGroup
	for _, walletID := range walletIDs {
		wg.Add(1)
		inputCh <- walletID
	}
	close(inputCh)

	numWorkers := h.NumWorkers
	if numWorkers <= 0 {
		numWorkers = defaultNumWorkers
	}
	for i := 0; i < numWorkers; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case walletID, ok := <-inputCh:
					if !ok {
						return
					}
					resultCh <- h.EventsService.FetchWalletEvents(ctx, walletID)
					wg.Done()
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	for result := range resultCh {
		if result.Err != nil {
			// recoverable - the wallet scores on an all-zero feature vector
			logger.Info("fetch failed for %s, treating as no activity: %v", result.WalletID, result.Err)
			eventsByWallet[result.WalletID] = []domain.Event{}
			continue
		}
		if len(result.Events) == 0 {
			logger.Info("no relevant Compound activity found for %s", result.WalletID)
		} else {
			logger.Info("processed %d transfers for %s", len(result.Events), result.WalletID)
		}
		eventsByWallet[result.WalletID] = result.Events
	}

	return eventsByWallet, nil
}
