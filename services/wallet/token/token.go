package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/status-im/wallet-swap/services/wallet/bigint"
)

var nativeChainAddress = common.HexToAddress("0x")

type Token struct {
	Address common.Address `json:"address"`
	Name    string         `json:"name"`
	Symbol  string         `json:"symbol"`
	// Decimals defines how divisible the token is. For example, 0 would be
	// indivisible, whereas 18 would allow very small amounts of the token
	// to be traded.
	Decimals uint   `json:"decimals"`
	ChainID  uint64 `json:"chainId"`
}

func (t *Token) IsNative() bool {
	return t.Address == nativeChainAddress
}

// Wrapped returns the ERC-20 representation of the token: the chain's wrapped
// native token for a native currency, the token itself otherwise. It returns nil
// for a native currency on a chain without a known wrapped-native token.
func (t *Token) Wrapped() *Token {
	if t == nil {
		return nil
	}
	if t.IsNative() {
		return WrappedNative(t.ChainID)
	}
	return t
}

// Equals reports whether both tokens denote the same currency.
func (t *Token) Equals(other *Token) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.ChainID == other.ChainID && t.Address == other.Address
}

func (t *Token) String() string {
	return CurrencyID(t)
}

// CurrencyAmount is a raw, integer amount of a currency.
type CurrencyAmount struct {
	Currency *Token         `json:"currency"`
	Amount   *bigint.BigInt `json:"amount"`
}

func NewCurrencyAmount(currency *Token, raw *big.Int) *CurrencyAmount {
	return &CurrencyAmount{
		Currency: currency,
		Amount:   bigint.NewBigInt(new(big.Int).Set(raw)),
	}
}

// Quotient returns a copy of the raw amount; zero if unset.
func (a *CurrencyAmount) Quotient() *big.Int {
	if a == nil || a.Amount == nil || a.Amount.Int == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.Amount.Int)
}

// ToExact returns the amount scaled down by the currency decimals.
func (a *CurrencyAmount) ToExact() decimal.Decimal {
	var decimals uint
	if a != nil && a.Currency != nil {
		decimals = a.Currency.Decimals
	}
	return decimal.NewFromBigInt(a.Quotient(), -int32(decimals))
}
