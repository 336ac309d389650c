package trade

import (
	"math/big"

	"github.com/status-im/wallet-swap/services/wallet/token"
)

// Trade is a quoted swap. Values are treated as immutable once built.
type Trade struct {
	InputAmount  *token.CurrencyAmount `json:"inputAmount"`
	OutputAmount *token.CurrencyAmount `json:"outputAmount"`
	TradeType    TradeType             `json:"tradeType"`
	Route        Route                 `json:"route"`
	// SlippageTolerance is a percentage, 0.5 means 0.5%.
	SlippageTolerance float64 `json:"slippageTolerance"`
	Quote             *Quote  `json:"quote,omitempty"`
}

func (t *Trade) InputCurrency() *token.Token {
	if t.InputAmount == nil {
		return nil
	}
	return t.InputAmount.Currency
}

func (t *Trade) OutputCurrency() *token.Token {
	if t.OutputAmount == nil {
		return nil
	}
	return t.OutputAmount.Currency
}

// Validate checks the trade is complete enough to be mapped or encoded.
func (t *Trade) Validate() error {
	if t.TradeType != TradeTypeExactInput && t.TradeType != TradeTypeExactOutput {
		return ErrUnknownTradeType.WithDetails(uint8(t.TradeType))
	}
	in, out := t.InputCurrency(), t.OutputCurrency()
	if in == nil || out == nil || !hasAmount(t.InputAmount) || !hasAmount(t.OutputAmount) {
		return ErrMissingAmount
	}
	if t.InputAmount.Amount.Sign() < 0 || t.OutputAmount.Amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	if in.ChainID != out.ChainID {
		return ErrChainMismatch
	}
	if t.SlippageTolerance < 0 || t.SlippageTolerance > 100 {
		return ErrInvalidSlippage.WithDetails(t.SlippageTolerance)
	}
	if err := t.Route.Validate(); err != nil {
		return err
	}

	first, last := t.Route.Path[0], t.Route.Path[len(t.Route.Path)-1]
	if !first.Equals(in.Wrapped()) {
		return ErrInvalidRoute.WithDetails("path does not start with the input currency")
	}
	if !last.Equals(out.Wrapped()) {
		return ErrInvalidRoute.WithDetails("path does not end with the output currency")
	}
	return nil
}

// MinimumAmountOut returns the least output amount acceptable under the given
// slippage: out / (1 + slippage), rounded down. Exact output trades return the
// output amount unchanged.
func (t *Trade) MinimumAmountOut(slippage *Percent) *token.CurrencyAmount {
	amountOut := t.OutputAmount.Quotient()
	if t.TradeType == TradeTypeExactOutput {
		return token.NewCurrencyAmount(t.OutputCurrency(), amountOut)
	}
	numerator := new(big.Int).Mul(amountOut, slippage.Denominator)
	denominator := new(big.Int).Add(slippage.Denominator, slippage.Numerator)
	return token.NewCurrencyAmount(t.OutputCurrency(), numerator.Quo(numerator, denominator))
}

// MaximumAmountIn returns the most input amount acceptable under the given
// slippage: in * (1 + slippage), rounded down. Exact input trades return the
// input amount unchanged.
func (t *Trade) MaximumAmountIn(slippage *Percent) *token.CurrencyAmount {
	amountIn := t.InputAmount.Quotient()
	if t.TradeType == TradeTypeExactInput {
		return token.NewCurrencyAmount(t.InputCurrency(), amountIn)
	}
	numerator := new(big.Int).Add(slippage.Denominator, slippage.Numerator)
	numerator.Mul(numerator, amountIn)
	return token.NewCurrencyAmount(t.InputCurrency(), numerator.Quo(numerator, slippage.Denominator))
}

// ExecutionPrice is the output amount received per unit of input.
func (t *Trade) ExecutionPrice() *Price {
	return NewPrice(t.InputCurrency(), t.OutputCurrency(), t.InputAmount.Quotient(), t.OutputAmount.Quotient())
}

// Calldata returns the quoted router calldata, nil when the trade has none.
func (t *Trade) Calldata() []byte {
	if t == nil || t.Quote == nil || t.Quote.MethodParameters == nil {
		return nil
	}
	return t.Quote.MethodParameters.Calldata
}

func hasAmount(a *token.CurrencyAmount) bool {
	return a.Amount != nil && a.Amount.Int != nil
}
