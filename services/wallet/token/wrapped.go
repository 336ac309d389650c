package token

import (
	"github.com/ethereum/go-ethereum/common"

	walletCommon "github.com/status-im/wallet-swap/services/wallet/common"
)

type nativeInfo struct {
	symbol        string
	name          string
	wrapped       common.Address
	wrappedSymbol string
	wrappedName   string
}

var natives = map[uint64]nativeInfo{
	walletCommon.EthereumMainnet: {"ETH", "Ethereum", common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), "WETH", "Wrapped Ether"},
	walletCommon.EthereumGoerli:  {"ETH", "Ethereum", common.HexToAddress("0xB4FBF271143F4FBf7B91A5ded31805e42b2208d6"), "WETH", "Wrapped Ether"},
	walletCommon.EthereumSepolia: {"ETH", "Ethereum", common.HexToAddress("0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14"), "WETH", "Wrapped Ether"},
	walletCommon.OptimismMainnet: {"ETH", "Ethereum", common.HexToAddress("0x4200000000000000000000000000000000000006"), "WETH", "Wrapped Ether"},
	walletCommon.OptimismGoerli:  {"ETH", "Ethereum", common.HexToAddress("0x4200000000000000000000000000000000000006"), "WETH", "Wrapped Ether"},
	walletCommon.ArbitrumMainnet: {"ETH", "Ethereum", common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"), "WETH", "Wrapped Ether"},
	walletCommon.ArbitrumGoerli:  {"ETH", "Ethereum", common.HexToAddress("0xe39Ab88f8A4777030A534146A9Ca3B52bd5D43A3"), "WETH", "Wrapped Ether"},
	walletCommon.BaseMainnet:     {"ETH", "Ethereum", common.HexToAddress("0x4200000000000000000000000000000000000006"), "WETH", "Wrapped Ether"},
	walletCommon.PolygonMainnet:  {"MATIC", "Polygon Matic", common.HexToAddress("0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270"), "WMATIC", "Wrapped Matic"},
	walletCommon.PolygonMumbai:   {"MATIC", "Polygon Matic", common.HexToAddress("0x9c3C9283D3e44854697Cd22D3Faa240Cfb032889"), "WMATIC", "Wrapped Matic"},
	walletCommon.BSCMainnet:      {"BNB", "BNB", common.HexToAddress("0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c"), "WBNB", "Wrapped BNB"},
}

// NativeCurrency returns the native currency of chainID, nil for unknown chains.
func NativeCurrency(chainID uint64) *Token {
	info, ok := natives[chainID]
	if !ok {
		return nil
	}
	return &Token{
		Address:  nativeChainAddress,
		Name:     info.name,
		Symbol:   info.symbol,
		Decimals: 18,
		ChainID:  chainID,
	}
}

// WrappedNative returns the canonical wrapped-native token of chainID, nil for
// unknown chains.
func WrappedNative(chainID uint64) *Token {
	info, ok := natives[chainID]
	if !ok {
		return nil
	}
	return &Token{
		Address:  info.wrapped,
		Name:     info.wrappedName,
		Symbol:   info.wrappedSymbol,
		Decimals: 18,
		ChainID:  chainID,
	}
}

// WrappedNativeAddress returns the wrapped-native token address of chainID.
func WrappedNativeAddress(chainID uint64) (common.Address, bool) {
	info, ok := natives[chainID]
	return info.wrapped, ok
}
