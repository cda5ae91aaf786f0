package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Asset describes one Compound V2 cToken contract and the constants used
// to value transfers of it.
type Asset struct {
	ContractAddress    string
	Symbol             string
	UnderlyingDecimals int32
	PriceUSD           decimal.Decimal
}

// AssetRegistry is an immutable lookup table from lower-cased contract
// address to asset. Build it once at startup and pass it explicitly to
// whatever needs it.
type AssetRegistry struct {
	assetsByContract map[string]Asset
}

func NewAssetRegistry(assets []Asset) AssetRegistry {
	assetsByContract := make(map[string]Asset, len(assets))
	for _, asset := range assets {
		assetsByContract[strings.ToLower(asset.ContractAddress)] = asset
	}
	return AssetRegistry{
		assetsByContract: assetsByContract,
	}
}

// Lookup matches the contract address case-insensitively. The second
// return is false when the contract is not a known cToken.
func (r AssetRegistry) Lookup(contractAddress string) (Asset, bool) {
	asset, ok := r.assetsByContract[strings.ToLower(contractAddress)]
	return asset, ok
}

// NewCompoundV2Registry returns the fixed set of Compound V2 cTokens.
// Prices are constants, not oracle reads.
func NewCompoundV2Registry() AssetRegistry {
	return NewAssetRegistry([]Asset{
		{
			ContractAddress:    "0x4ddc2d193948926d02f9b1fe9e1daa0718270ed5",
			Symbol:             "cETH",
			UnderlyingDecimals: 18,
			PriceUSD:           decimal.NewFromInt(3500),
		},
		{
			ContractAddress:    "0x39aa39c021dfbae8fac545936693ac917d5e7563",
			Symbol:             "cUSDC",
			UnderlyingDecimals: 6,
			PriceUSD:           decimal.NewFromInt(1),
		},
		{
			ContractAddress:    "0x5d3a536e4d6dbd6114cc1ead35777bab948e3643",
			Symbol:             "cDAI",
			UnderlyingDecimals: 18,
			PriceUSD:           decimal.NewFromInt(1),
		},
		{
			ContractAddress:    "0xf650c3d88d12db855b8bf7d11be6c55a4e07dcc9",
			Symbol:             "cUSDT",
			UnderlyingDecimals: 6,
			PriceUSD:           decimal.NewFromInt(1),
		},
		{
			ContractAddress:    "0xc11b1268c1a384e55c48c2391d8d480264a3a7f4",
			Symbol:             "cWBTC",
			UnderlyingDecimals: 8,
			PriceUSD:           decimal.NewFromInt(65000),
		},
		{
			ContractAddress:    "0x6c8c6b02e7b2be14d4fa6022dfd6d75921d90e4e",
			Symbol:             "cBAT",
			UnderlyingDecimals: 18,
			PriceUSD:           decimal.NewFromFloat(0.25),
		},
	})
}
