package token

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/status-im/wallet-swap/errors"
)

// Abbreviation `WT` for the error code stands for Wallet Token
var (
	ErrInvalidCurrencyID = &errors.ErrorResponse{Code: errors.ErrorCode("WT-001"), Details: "invalid currency id: %s"}
)

const currencyIDSeparator = "-"

// CurrencyID builds the "<chainId>-<address>" identifier of a currency.
func CurrencyID(t *Token) string {
	if t == nil {
		return ""
	}
	return strconv.FormatUint(t.ChainID, 10) + currencyIDSeparator + t.Address.Hex()
}

// ParseCurrencyID splits a currency identifier into chain id and address.
func ParseCurrencyID(id string) (uint64, common.Address, error) {
	chainPart, addressPart, found := strings.Cut(id, currencyIDSeparator)
	if !found {
		return 0, common.Address{}, ErrInvalidCurrencyID.WithDetails(id)
	}
	chainID, err := strconv.ParseUint(chainPart, 10, 64)
	if err != nil {
		return 0, common.Address{}, ErrInvalidCurrencyID.WithDetails(id)
	}
	if !common.IsHexAddress(addressPart) {
		return 0, common.Address{}, ErrInvalidCurrencyID.WithDetails(id)
	}
	return chainID, common.HexToAddress(addressPart), nil
}

// CurrencyIDToAddress returns the address part of a currency identifier as written.
func CurrencyIDToAddress(id string) string {
	_, address, _ := strings.Cut(id, currencyIDSeparator)
	return address
}

// CurrencyIDToChain returns the chain part of a currency identifier.
func CurrencyIDToChain(id string) (uint64, error) {
	chainPart, _, _ := strings.Cut(id, currencyIDSeparator)
	chainID, err := strconv.ParseUint(chainPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCurrencyID.WithDetails(id), err)
	}
	return chainID, nil
}
