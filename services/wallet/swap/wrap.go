package swap

import (
	walletCommon "github.com/status-im/wallet-swap/services/wallet/common"
	"github.com/status-im/wallet-swap/services/wallet/token"
)

type WrapType int

const (
	WrapTypeNotApplicable WrapType = iota
	WrapTypeWrap
	WrapTypeUnwrap
)

func (w WrapType) String() string {
	switch w {
	case WrapTypeWrap:
		return "wrap"
	case WrapTypeUnwrap:
		return "unwrap"
	}
	return "not-applicable"
}

const (
	ElementNameSwap   = "swap"
	ElementNameWrap   = "wrap"
	ElementNameUnwrap = "unwrap"
)

// GetWrapType tells whether moving from in to out is a plain wrap or unwrap of
// the chain's native currency rather than a routed trade.
func GetWrapType(in, out *token.Token) WrapType {
	if in == nil || out == nil || in.ChainID != out.ChainID {
		return WrapTypeNotApplicable
	}
	wrapped, ok := token.WrappedNativeAddress(in.ChainID)
	if !ok {
		return WrapTypeNotApplicable
	}
	wrappedAddress := wrapped.Hex()

	if in.IsNative() && walletCommon.AreAddressesEqual(out.Address.Hex(), wrappedAddress) {
		return WrapTypeWrap
	}
	if walletCommon.AreAddressesEqual(in.Address.Hex(), wrappedAddress) && out.IsNative() {
		return WrapTypeUnwrap
	}
	return WrapTypeNotApplicable
}

func IsWrapAction(wrapType WrapType) bool {
	return wrapType == WrapTypeWrap || wrapType == WrapTypeUnwrap
}

// GetActionElementName returns the analytics element name of the submit action.
func GetActionElementName(wrapType WrapType) string {
	switch wrapType {
	case WrapTypeWrap:
		return ElementNameWrap
	case WrapTypeUnwrap:
		return ElementNameUnwrap
	}
	return ElementNameSwap
}
