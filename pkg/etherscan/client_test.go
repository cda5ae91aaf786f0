package etherscan

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetTokenTransfers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "account", r.URL.Query().Get("module"))
			require.Equal(t, "tokentx", r.URL.Query().Get("action"))
			require.Equal(t, "0xabc", r.URL.Query().Get("address"))
			require.Equal(t, "asc", r.URL.Query().Get("sort"))
			require.Equal(t, "test-key", r.URL.Query().Get("apikey"))

			fmt.Fprint(w, `{
				"status": "1",
				"message": "OK",
				"result": [
					{
						"contractAddress": "0x4DDc2D193948926D02f9B1fE9e1daa0718270ED5",
						"from": "0x0000000000000000000000000000000000000000",
						"to": "0xabc",
						"value": "1000000000000000000",
						"timeStamp": "1700000000"
					}
				]
			}`)
		}))
		defer server.Close()

		client := Client{
			HttpClient: server.Client(),
			ApiKey:     "test-key",
			BaseUrl:    server.URL,
		}

		transfers, err := client.GetTokenTransfers("0xabc")
		require.NoError(t, err)
		require.Len(t, transfers, 1)
		require.Equal(t, "0x4DDc2D193948926D02f9B1fE9e1daa0718270ED5", transfers[0].ContractAddress)
		require.Equal(t, "1000000000000000000", transfers[0].Value)
		require.Equal(t, "1700000000", transfers[0].TimeStamp)
	})

	t.Run("non-1 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "0", "message": "No transactions found", "result": []}`)
		}))
		defer server.Close()

		client := Client{
			HttpClient: server.Client(),
			ApiKey:     "test-key",
			BaseUrl:    server.URL,
		}

		_, err := client.GetTokenTransfers("0xabc")
		require.ErrorContains(t, err, "No transactions found")
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			fmt.Fprint(w, "upstream unavailable")
		}))
		defer server.Close()

		client := Client{
			HttpClient: server.Client(),
			ApiKey:     "test-key",
			BaseUrl:    server.URL,
		}

		_, err := client.GetTokenTransfers("0xabc")
		require.ErrorContains(t, err, "status code 502")
	})
}
