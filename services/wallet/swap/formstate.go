package swap

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/status-im/wallet-swap/services/wallet/token"
)

type AssetType string

const AssetTypeCurrency AssetType = "currency"

type CurrencyField string

const (
	CurrencyFieldInput  CurrencyField = "input"
	CurrencyFieldOutput CurrencyField = "output"
)

type TradeableAsset struct {
	Address string    `json:"address"`
	ChainID uint64    `json:"chainId"`
	Type    AssetType `json:"type"`
}

// TransactionState is the state of the swap form.
type TransactionState struct {
	Input              *TradeableAsset `json:"input"`
	Output             *TradeableAsset `json:"output"`
	ExactCurrencyField CurrencyField   `json:"exactCurrencyField"`
	ExactAmountToken   string          `json:"exactAmountToken"`
}

// PrepareSwapFormState seeds the swap form with inputCurrencyID on the input
// side. An empty id yields no state.
func PrepareSwapFormState(inputCurrencyID string) (*TransactionState, error) {
	if inputCurrencyID == "" {
		return nil, nil
	}
	chainID, err := token.CurrencyIDToChain(inputCurrencyID)
	if err != nil {
		return nil, err
	}
	address := token.CurrencyIDToAddress(inputCurrencyID)
	if !common.IsHexAddress(address) {
		return nil, token.ErrInvalidCurrencyID.WithDetails(inputCurrencyID)
	}

	return &TransactionState{
		Input: &TradeableAsset{
			Address: address,
			ChainID: chainID,
			Type:    AssetTypeCurrency,
		},
		Output:             nil,
		ExactCurrencyField: CurrencyFieldInput,
		ExactAmountToken:   "",
	}, nil
}
