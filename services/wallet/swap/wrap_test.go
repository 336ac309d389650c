package swap

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	walletCommon "github.com/status-im/wallet-swap/services/wallet/common"
	"github.com/status-im/wallet-swap/services/wallet/testutils"
	"github.com/status-im/wallet-swap/services/wallet/token"
)

func TestGetWrapType(t *testing.T) {
	optimismETH := token.NativeCurrency(walletCommon.OptimismMainnet)
	optimismWETH := token.WrappedNative(walletCommon.OptimismMainnet)
	matic := token.NativeCurrency(walletCommon.PolygonMainnet)
	wmatic := token.WrappedNative(walletCommon.PolygonMainnet)
	unknownChainNative := &token.Token{Symbol: "XYZ", Decimals: 18, ChainID: 999999}

	tests := []struct {
		name     string
		in       *token.Token
		out      *token.Token
		expected WrapType
	}{
		{"native to wrapped", testutils.ETH, testutils.WETH, WrapTypeWrap},
		{"wrapped to native", testutils.WETH, testutils.ETH, WrapTypeUnwrap},
		{"polygon wrap", matic, wmatic, WrapTypeWrap},
		{"optimism unwrap", optimismWETH, optimismETH, WrapTypeUnwrap},
		{"native to token", testutils.ETH, testutils.USDC, WrapTypeNotApplicable},
		{"token to token", testutils.USDC, testutils.DAI, WrapTypeNotApplicable},
		{"different chains", testutils.ETH, optimismWETH, WrapTypeNotApplicable},
		{"native to native", testutils.ETH, testutils.ETH, WrapTypeNotApplicable},
		{"missing input", nil, testutils.WETH, WrapTypeNotApplicable},
		{"missing output", testutils.ETH, nil, WrapTypeNotApplicable},
		{"unknown chain", unknownChainNative, unknownChainNative, WrapTypeNotApplicable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, GetWrapType(tt.in, tt.out))
		})
	}
}

func TestGetWrapTypeIgnoresAddressCase(t *testing.T) {
	lowerWETH := *testutils.WETH
	lowerWETH.Address = common.HexToAddress(strings.ToLower(testutils.WETH.Address.Hex()))
	require.Equal(t, WrapTypeWrap, GetWrapType(testutils.ETH, &lowerWETH))
}

func TestIsWrapAction(t *testing.T) {
	require.True(t, IsWrapAction(WrapTypeWrap))
	require.True(t, IsWrapAction(WrapTypeUnwrap))
	require.False(t, IsWrapAction(WrapTypeNotApplicable))
}

func TestGetActionElementName(t *testing.T) {
	require.Equal(t, ElementNameWrap, GetActionElementName(WrapTypeWrap))
	require.Equal(t, ElementNameUnwrap, GetActionElementName(WrapTypeUnwrap))
	require.Equal(t, ElementNameSwap, GetActionElementName(WrapTypeNotApplicable))
}
