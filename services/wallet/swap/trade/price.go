package trade

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/status-im/wallet-swap/services/wallet/token"
)

// priceScale is the number of fraction digits kept when dividing raw amounts.
const priceScale = 40

// Price of one unit of BaseCurrency expressed in QuoteCurrency, kept as the
// ratio of two raw amounts.
type Price struct {
	BaseCurrency  *token.Token
	QuoteCurrency *token.Token
	Denominator   *big.Int
	Numerator     *big.Int
}

func NewPrice(base, quote *token.Token, denominator, numerator *big.Int) *Price {
	return &Price{
		BaseCurrency:  base,
		QuoteCurrency: quote,
		Denominator:   new(big.Int).Set(denominator),
		Numerator:     new(big.Int).Set(numerator),
	}
}

// Invert swaps base and quote.
func (p *Price) Invert() *Price {
	return NewPrice(p.QuoteCurrency, p.BaseCurrency, p.Numerator, p.Denominator)
}

// Value returns the price adjusted for the decimals of both currencies.
func (p *Price) Value() (decimal.Decimal, error) {
	if p.Denominator.Sign() == 0 {
		return decimal.Zero, ErrZeroDenominator
	}
	shift := int32(p.BaseCurrency.Decimals) - int32(p.QuoteCurrency.Decimals)
	numerator := decimal.NewFromBigInt(p.Numerator, shift)
	return numerator.DivRound(decimal.NewFromBigInt(p.Denominator, 0), priceScale), nil
}
