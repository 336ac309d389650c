package common

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var zeroAddress = common.Address{}

func ZeroAddress() common.Address {
	return zeroAddress
}

// AreAddressesEqual compares two hex encoded addresses ignoring case and the 0x
// prefix. Empty strings never match.
func AreAddressesEqual(a, b string) bool {
	a = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(a)), "0x")
	b = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(b)), "0x")
	if a == "" || b == "" {
		return false
	}
	return a == b
}
