package testutils

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	walletCommon "github.com/status-im/wallet-swap/services/wallet/common"
	"github.com/status-im/wallet-swap/services/wallet/swap/trade"
	"github.com/status-im/wallet-swap/services/wallet/token"
)

const EthSymbol = "ETH"
const UsdcSymbol = "USDC"
const DaiSymbol = "DAI"

var (
	ETH  = token.NativeCurrency(walletCommon.EthereumMainnet)
	WETH = token.WrappedNative(walletCommon.EthereumMainnet)
	USDC = &token.Token{
		Address:  common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"),
		Name:     "USD Coin",
		Symbol:   UsdcSymbol,
		Decimals: 6,
		ChainID:  walletCommon.EthereumMainnet,
	}
	DAI = &token.Token{
		Address:  common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"),
		Name:     "Dai Stablecoin",
		Symbol:   DaiSymbol,
		Decimals: 18,
		ChainID:  walletCommon.EthereumMainnet,
	}
	OptimismUSDC = &token.Token{
		Address:  common.HexToAddress("0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85"),
		Name:     "USD Coin",
		Symbol:   UsdcSymbol,
		Decimals: 6,
		ChainID:  walletCommon.OptimismMainnet,
	}

	Recipient = common.HexToAddress("0x1111111111111111111111111111111111111111")
)

// BigInt parses a decimal literal and panics on malformed input.
func BigInt(s string) *big.Int {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid integer literal " + s)
	}
	return z
}

// NewTrade builds a trade over a single V3 pool with the 0.05% fee tier.
func NewTrade(tradeType trade.TradeType, in *token.Token, amountIn string, out *token.Token, amountOut string, slippage float64) *trade.Trade {
	return &trade.Trade{
		InputAmount:  token.NewCurrencyAmount(in, BigInt(amountIn)),
		OutputAmount: token.NewCurrencyAmount(out, BigInt(amountOut)),
		TradeType:    tradeType,
		Route: trade.Route{
			Protocol: trade.ProtocolV3,
			Path:     []*token.Token{in.Wrapped(), out.Wrapped()},
			Fees:     []uint32{500},
		},
		SlippageTolerance: slippage,
	}
}

// WithCalldata returns a copy of t quoting the given calldata.
func WithCalldata(t *trade.Trade, calldata []byte) *trade.Trade {
	c := *t
	c.Quote = &trade.Quote{
		QuoteID:          "quote-id",
		MethodParameters: &trade.MethodParameters{Calldata: calldata},
	}
	return &c
}
