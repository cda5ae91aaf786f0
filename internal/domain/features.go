package domain

import "github.com/shopspring/decimal"

// guards exact-zero supplied against division by zero; a wallet with no
// supplies gets a health factor proxy of ~0 rather than undefined
const healthFactorEpsilon = 1e-6

// WalletFeatures is the fixed feature vector reduced from one wallet's
// cToken transfer history. One instance per wallet per batch run.
type WalletFeatures struct {
	WalletID string

	// LiquidationCount and TotalLiquidatedUSD are structural placeholders.
	// No liquidation data exists upstream, so they are always zero.
	LiquidationCount   int
	TotalLiquidatedUSD decimal.Decimal

	TotalSuppliedUSD decimal.Decimal
	// TotalBorrowedUSD is a fixed 40% proxy of TotalSuppliedUSD; borrow
	// events are not observed from the ledger.
	TotalBorrowedUSD decimal.Decimal

	// DistinctAssetsBorrowed counts distinct assets the wallet interacted
	// with across both event kinds, not assets specifically borrowed. The
	// name is kept so downstream column names stay stable.
	DistinctAssetsBorrowed int

	// WalletAgeDays is the floor of days between the earliest event and
	// "now". Zero when the wallet has no events; negative when the
	// earliest event is in the future (no clamping).
	WalletAgeDays int
}

// HealthFactorProxy approximates borrowed/supplied. A real health factor
// would be undefined for zero supplied; the epsilon makes it ~0 instead,
// which is the defined policy here.
func (f WalletFeatures) HealthFactorProxy() float64 {
	return f.TotalBorrowedUSD.InexactFloat64() / (f.TotalSuppliedUSD.InexactFloat64() + healthFactorEpsilon)
}
