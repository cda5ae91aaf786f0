package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

type Secrets struct {
	EtherscanApiKey string `json:"etherscan"`
}

// LoadSecrets reads secrets.json (secrets-test.json under RISK_ENV=test)
// and lets ETHERSCAN_API_KEY override the file. A missing key is not an
// error here - the batch retriever rejects empty credentials before any
// fetch is attempted.
func LoadSecrets() (*Secrets, error) {
	secretsFile := "secrets.json"
	if os.Getenv("RISK_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}

	secrets := Secrets{}
	f, err := os.ReadFile(secretsFile)
	if err == nil {
		err = json.Unmarshal(f, &secrets)
		if err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", secretsFile, err)
		}
	}

	if key := os.Getenv("ETHERSCAN_API_KEY"); key != "" {
		secrets.EtherscanApiKey = key
	}

	return &secrets, nil
}
