package swap

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/status-im/wallet-swap/services/wallet/swap/trade"
	"github.com/status-im/wallet-swap/services/wallet/token"
)

const slippageDenominator = 10000

type TransactionType string

const TransactionTypeSwap TransactionType = "swap"

// SwapTransactionInfo describes a submitted swap. Exact input swaps fill the
// input, expected output and minimum output amounts, exact output swaps the
// output, expected input and maximum input amounts. Amounts are raw integers
// written in decimal.
type SwapTransactionInfo struct {
	Type              TransactionType `json:"type"`
	TradeType         trade.TradeType `json:"tradeType"`
	InputCurrencyID   string          `json:"inputCurrencyId"`
	OutputCurrencyID  string          `json:"outputCurrencyId"`
	SlippageTolerance float64         `json:"slippageTolerance"`
	QuoteID           string          `json:"quoteId,omitempty"`
	RouteString       string          `json:"routeString,omitempty"`
	GasUseEstimate    string          `json:"gasUseEstimate,omitempty"`

	InputCurrencyAmountRaw          string `json:"inputCurrencyAmountRaw,omitempty"`
	ExpectedOutputCurrencyAmountRaw string `json:"expectedOutputCurrencyAmountRaw,omitempty"`
	MinimumOutputCurrencyAmountRaw  string `json:"minimumOutputCurrencyAmountRaw,omitempty"`

	OutputCurrencyAmountRaw        string `json:"outputCurrencyAmountRaw,omitempty"`
	ExpectedInputCurrencyAmountRaw string `json:"expectedInputCurrencyAmountRaw,omitempty"`
	MaximumInputCurrencyAmountRaw  string `json:"maximumInputCurrencyAmountRaw,omitempty"`
}

// SlippageToleranceToPercent converts a percentage such as 0.5 into basis
// points over 10000. Halves round up.
func SlippageToleranceToPercent(slippage float64) (*trade.Percent, error) {
	if math.IsNaN(slippage) || math.IsInf(slippage, 0) || slippage < 0 {
		return nil, ErrInvalidSlippage.WithDetails(slippage)
	}
	bps := decimal.NewFromFloat(slippage).Mul(decimal.NewFromInt(100)).Round(0)
	return &trade.Percent{
		Numerator:   bps.BigInt(),
		Denominator: big.NewInt(slippageDenominator),
	}, nil
}

// TradeToTransactionInfo maps a trade to the record stored with its transaction.
func TradeToTransactionInfo(t *trade.Trade) (*SwapTransactionInfo, error) {
	if t == nil {
		return nil, ErrMissingTrade
	}
	if t.TradeType != trade.TradeTypeExactInput && t.TradeType != trade.TradeTypeExactOutput {
		return nil, trade.ErrUnknownTradeType.WithDetails(uint8(t.TradeType))
	}
	if t.InputCurrency() == nil || t.OutputCurrency() == nil {
		return nil, trade.ErrMissingAmount
	}
	slippage, err := SlippageToleranceToPercent(t.SlippageTolerance)
	if err != nil {
		return nil, err
	}

	info := &SwapTransactionInfo{
		Type:              TransactionTypeSwap,
		TradeType:         t.TradeType,
		InputCurrencyID:   token.CurrencyID(t.InputCurrency()),
		OutputCurrencyID:  token.CurrencyID(t.OutputCurrency()),
		SlippageTolerance: t.SlippageTolerance,
	}
	if t.Quote != nil {
		info.QuoteID = t.Quote.QuoteID
		info.RouteString = t.Quote.RouteString
		info.GasUseEstimate = t.Quote.GasUseEstimate
	}

	if t.TradeType == trade.TradeTypeExactInput {
		info.InputCurrencyAmountRaw = t.InputAmount.Quotient().String()
		info.ExpectedOutputCurrencyAmountRaw = t.OutputAmount.Quotient().String()
		info.MinimumOutputCurrencyAmountRaw = t.MinimumAmountOut(slippage).Quotient().String()
	} else {
		info.OutputCurrencyAmountRaw = t.OutputAmount.Quotient().String()
		info.ExpectedInputCurrencyAmountRaw = t.InputAmount.Quotient().String()
		info.MaximumInputCurrencyAmountRaw = t.MaximumAmountIn(slippage).Quotient().String()
	}
	return info, nil
}
