package etherscan

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const defaultBaseUrl = "https://api.etherscan.io/api"

type Client struct {
	HttpClient *http.Client
	ApiKey     string
	// BaseUrl overrides the production endpoint, used by tests
	BaseUrl string
}

// TokenTransfer is one raw ERC-20 transfer record as Etherscan returns
// it. Numeric fields come back as strings.
type TokenTransfer struct {
	ContractAddress string `json:"contractAddress"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenDecimal    string `json:"tokenDecimal"`
}

type tokenTxResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	// result is an array on success but a plain string on some error
	// responses, so it's decoded lazily
	Result json.RawMessage `json:"result"`
}

// GetTokenTransfers returns every ERC-20 transfer touching the address,
// ascending by block. Etherscan signals "no transactions found" as a
// non-"1" status; that surfaces as an error here and the caller decides
// how to degrade.
func (c Client) GetTokenTransfers(address string) ([]TokenTransfer, error) {
	baseUrl := c.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}
	requestUrl := fmt.Sprintf(
		"%s?module=account&action=tokentx&address=%s&startblock=0&endblock=99999999&sort=asc&apikey=%s",
		baseUrl,
		url.QueryEscape(address),
		url.QueryEscape(c.ApiKey),
	)

	req, err := http.NewRequest(http.MethodGet, requestUrl, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseJson := tokenTxResponse{}
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, err
	}

	if responseJson.Status != "1" {
		return nil, fmt.Errorf("etherscan returned status %q: %s", responseJson.Status, responseJson.Message)
	}

	transfers := []TokenTransfer{}
	err = json.Unmarshal(responseJson.Result, &transfers)
	if err != nil {
		return nil, err
	}

	return transfers, nil
}
