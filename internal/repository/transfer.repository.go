package repository

import (
	"net/http"

	"walletrisk/pkg/etherscan"
)

// TransferRepository hands back the raw transfer history for one wallet.
// One outbound call per invocation, no retries, no rate-limit backoff.
type TransferRepository interface {
	GetTokenTransfers(address string) ([]etherscan.TokenTransfer, error)
}

type transferRepositoryHandler struct {
	Client etherscan.Client
}

func NewTransferRepository(apiKey string) TransferRepository {
	return transferRepositoryHandler{
		Client: etherscan.Client{
			HttpClient: http.DefaultClient,
			ApiKey:     apiKey,
		},
	}
}

func (h transferRepositoryHandler) GetTokenTransfers(address string) ([]etherscan.TokenTransfer, error) {
	return h.Client.GetTokenTransfers(address)
}
