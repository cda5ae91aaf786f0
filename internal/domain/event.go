package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventKind string

const (
	// EventKindMint - the wallet received cTokens, i.e. supplied an asset.
	EventKindMint EventKind = "Mint"
	// EventKindRedeem - the wallet sent cTokens back, i.e. withdrew an asset.
	EventKindRedeem EventKind = "Redeem"
)

// Event is one cToken transfer touching a wallet, valued in USD at the
// registry's fixed price. Immutable once created.
type Event struct {
	Timestamp   time.Time
	Kind        EventKind
	AssetSymbol string
	USDValue    decimal.Decimal
}
