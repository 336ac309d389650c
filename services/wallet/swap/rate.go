package swap

import (
	"fmt"

	"github.com/status-im/wallet-swap/services/wallet/swap/trade"
)

// GetRateToDisplay formats the execution price of t as "1 X = Y Z". With
// showInverseRate the price of one output unit in input units is shown,
// otherwise the price of one input unit in output units.
func GetRateToDisplay(formatter NumberFormatter, t *trade.Trade, showInverseRate bool) (string, error) {
	if t == nil {
		return "", ErrMissingTrade
	}
	if t.InputCurrency() == nil || t.OutputCurrency() == nil {
		return "", trade.ErrMissingAmount
	}

	executionPrice := t.ExecutionPrice()
	price := executionPrice
	if showInverseRate {
		price = executionPrice.Invert()
	}
	value, err := price.Value()
	if err != nil {
		return "", err
	}
	formattedPrice := formatter.FormatNumber(value, NumberTypeSwapPrice)

	quoteSymbol := GetSymbolDisplayText(executionPrice.QuoteCurrency.Symbol)
	baseSymbol := GetSymbolDisplayText(executionPrice.BaseCurrency.Symbol)
	if showInverseRate {
		return fmt.Sprintf("1 %s = %s %s", quoteSymbol, formattedPrice, baseSymbol), nil
	}
	return fmt.Sprintf("1 %s = %s %s", baseSymbol, formattedPrice, quoteSymbol), nil
}
