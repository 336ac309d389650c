package swap

import (
	"math/big"

	"github.com/status-im/wallet-swap/services/wallet/bigint"
)

// SumGasFees adds two optional gas fees written as integers. An empty string is
// an absent fee: a single present fee is returned as given, none gives "".
func SumGasFees(gasFee1, gasFee2 string) (string, error) {
	if gasFee1 == "" || gasFee2 == "" {
		return gasFee1 + gasFee2, nil
	}
	a, err := bigint.ParseInteger(gasFee1)
	if err != nil {
		return "", ErrInvalidGasFee.WithDetails(gasFee1)
	}
	b, err := bigint.ParseInteger(gasFee2)
	if err != nil {
		return "", ErrInvalidGasFee.WithDetails(gasFee2)
	}
	return new(big.Int).Add(a, b).String(), nil
}
