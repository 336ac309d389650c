package swap

import (
	"bytes"

	walletCommon "github.com/status-im/wallet-swap/services/wallet/common"
	"github.com/status-im/wallet-swap/services/wallet/swap/trade"
	"github.com/status-im/wallet-swap/services/wallet/token"
)

// ClearStaleTrades drops a trade quoted for currencies that are no longer
// selected. Native currencies compare through their wrapped form.
func ClearStaleTrades(t *trade.Trade, currencyIn, currencyOut *token.Token) *trade.Trade {
	if t == nil || currencyIn == nil || currencyOut == nil {
		return nil
	}
	tradeIn, tradeOut := t.InputCurrency().Wrapped(), t.OutputCurrency().Wrapped()
	selectedIn, selectedOut := currencyIn.Wrapped(), currencyOut.Wrapped()
	if tradeIn == nil || tradeOut == nil || selectedIn == nil || selectedOut == nil {
		return nil
	}

	if walletCommon.AreAddressesEqual(selectedIn.Address.Hex(), tradeIn.Address.Hex()) &&
		walletCommon.AreAddressesEqual(selectedOut.Address.Hex(), tradeOut.Address.Hex()) {
		return t
	}
	return nil
}

// RequireAcceptNewTrade reports whether the user has to confirm newTrade
// because its quoted calldata changed. Missing calldata equals missing calldata.
func RequireAcceptNewTrade(oldTrade, newTrade *trade.Trade) bool {
	return !bytes.Equal(oldTrade.Calldata(), newTrade.Calldata())
}
