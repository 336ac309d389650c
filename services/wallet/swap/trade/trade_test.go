package trade_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/status-im/wallet-swap/services/wallet/swap/trade"
	"github.com/status-im/wallet-swap/services/wallet/testutils"
	"github.com/status-im/wallet-swap/services/wallet/token"
)

func TestMinimumAmountOut(t *testing.T) {
	tr := testutils.NewTrade(trade.TradeTypeExactInput, testutils.USDC, "1000000000", testutils.DAI, "999000000000000000000", 0.5)

	minOut := tr.MinimumAmountOut(trade.NewPercent(50, 10000))
	// 999e18 * 10000 / 10050
	require.Equal(t, "994029850746268656716", minOut.Quotient().String())
	require.True(t, minOut.Currency.Equals(testutils.DAI))
	require.LessOrEqual(t, minOut.Quotient().Cmp(tr.OutputAmount.Quotient()), 0)

	// exact input trades keep the input as is
	require.Equal(t, "1000000000", tr.MaximumAmountIn(trade.NewPercent(50, 10000)).Quotient().String())
}

func TestMaximumAmountIn(t *testing.T) {
	tr := testutils.NewTrade(trade.TradeTypeExactOutput, testutils.USDC, "1000000001", testutils.DAI, "1000000000000000000000", 1)

	maxIn := tr.MaximumAmountIn(trade.NewPercent(100, 10000))
	// 1000000001 * 10100 / 10000, rounded down
	require.Equal(t, "1010000001", maxIn.Quotient().String())
	require.GreaterOrEqual(t, maxIn.Quotient().Cmp(tr.InputAmount.Quotient()), 0)

	require.Equal(t, "1000000000000000000000", tr.MinimumAmountOut(trade.NewPercent(100, 10000)).Quotient().String())
}

func TestZeroSlippageBounds(t *testing.T) {
	in := testutils.NewTrade(trade.TradeTypeExactInput, testutils.USDC, "10", testutils.DAI, "77", 0)
	require.Equal(t, "77", in.MinimumAmountOut(trade.NewPercent(0, 10000)).Quotient().String())

	out := testutils.NewTrade(trade.TradeTypeExactOutput, testutils.USDC, "10", testutils.DAI, "77", 0)
	require.Equal(t, "10", out.MaximumAmountIn(trade.NewPercent(0, 10000)).Quotient().String())
}

func TestExecutionPrice(t *testing.T) {
	// 2000 USDC for 1 WETH
	tr := testutils.NewTrade(trade.TradeTypeExactInput, testutils.USDC, "2000000000", testutils.WETH, "1000000000000000000", 0.5)

	value, err := tr.ExecutionPrice().Value()
	require.NoError(t, err)
	require.Equal(t, "0.0005", value.String())

	value, err = tr.ExecutionPrice().Invert().Value()
	require.NoError(t, err)
	require.Equal(t, "2000", value.String())

	zero := testutils.NewTrade(trade.TradeTypeExactInput, testutils.USDC, "0", testutils.WETH, "1", 0.5)
	_, err = zero.ExecutionPrice().Value()
	require.ErrorIs(t, err, trade.ErrZeroDenominator)
}

func TestValidate(t *testing.T) {
	valid := testutils.NewTrade(trade.TradeTypeExactInput, testutils.ETH, "1000000000000000000", testutils.USDC, "2000000000", 0.5)
	require.NoError(t, valid.Validate())

	badType := *valid
	badType.TradeType = trade.TradeType(7)
	require.ErrorIs(t, badType.Validate(), trade.ErrUnknownTradeType)

	badSlippage := *valid
	badSlippage.SlippageTolerance = -1
	require.ErrorIs(t, badSlippage.Validate(), trade.ErrInvalidSlippage)

	missing := *valid
	missing.OutputAmount = nil
	require.ErrorIs(t, missing.Validate(), trade.ErrMissingAmount)

	crossChain := testutils.NewTrade(trade.TradeTypeExactInput, testutils.USDC, "1", testutils.OptimismUSDC, "1", 0.5)
	require.ErrorIs(t, crossChain.Validate(), trade.ErrChainMismatch)

	wrongPath := *valid
	wrongPath.Route = trade.Route{Protocol: trade.ProtocolV3, Path: []*token.Token{testutils.DAI, testutils.USDC}, Fees: []uint32{100}}
	require.ErrorIs(t, wrongPath.Validate(), trade.ErrInvalidRoute)

	missingFee := *valid
	missingFee.Route = trade.Route{Protocol: trade.ProtocolV3, Path: []*token.Token{testutils.WETH, testutils.USDC}}
	require.ErrorIs(t, missingFee.Validate(), trade.ErrInvalidRoute)

	nativeInPath := *valid
	nativeInPath.Route = trade.Route{Protocol: trade.ProtocolV2, Path: []*token.Token{testutils.ETH, testutils.USDC}}
	require.ErrorIs(t, nativeInPath.Validate(), trade.ErrInvalidRoute)

	unknownProtocol := *valid
	unknownProtocol.Route = trade.Route{Protocol: "V4", Path: []*token.Token{testutils.WETH, testutils.USDC}}
	require.ErrorIs(t, unknownProtocol.Validate(), trade.ErrUnsupportedProtocol)
}

func TestTradeJSON(t *testing.T) {
	raw := `{
		"inputAmount": {"currency": {"address": "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", "symbol": "USDC", "decimals": 6, "chainId": 1}, "amount": "1000000"},
		"outputAmount": {"currency": {"address": "0x6B175474E89094C44Da98b954EedeAC495271d0F", "symbol": "DAI", "decimals": 18, "chainId": 1}, "amount": "999000000000000000"},
		"tradeType": "EXACT_OUTPUT",
		"route": {"protocol": "V2", "path": [
			{"address": "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", "symbol": "USDC", "decimals": 6, "chainId": 1},
			{"address": "0x6B175474E89094C44Da98b954EedeAC495271d0F", "symbol": "DAI", "decimals": 18, "chainId": 1}
		]},
		"slippageTolerance": 0.5,
		"quote": {"quoteId": "abc", "methodParameters": {"calldata": "0x1234", "value": "0x0"}}
	}`

	var tr trade.Trade
	require.NoError(t, json.Unmarshal([]byte(raw), &tr))
	require.NoError(t, tr.Validate())
	require.Equal(t, trade.TradeTypeExactOutput, tr.TradeType)
	require.Equal(t, []byte{0x12, 0x34}, tr.Calldata())
	require.Equal(t, "999000000000000000", tr.OutputAmount.Quotient().String())

	out, err := json.Marshal(tr.TradeType)
	require.NoError(t, err)
	require.Equal(t, `"EXACT_OUTPUT"`, string(out))

	var numeric trade.TradeType
	require.NoError(t, json.Unmarshal([]byte(`0`), &numeric))
	require.Equal(t, trade.TradeTypeExactInput, numeric)
	require.Error(t, json.Unmarshal([]byte(`"EXACT_SOMETHING"`), &numeric))
	require.Error(t, json.Unmarshal([]byte(`3`), &numeric))
}

func TestCalldataOfNilTrade(t *testing.T) {
	var tr *trade.Trade
	require.Nil(t, tr.Calldata())
	require.Nil(t, (&trade.Trade{}).Calldata())
}

func TestPercent(t *testing.T) {
	p := trade.NewPercent(50, 10000)
	require.True(t, p.Equals(trade.NewPercent(1, 200)))
	require.False(t, p.Equals(trade.NewPercent(51, 10000)))
	require.Equal(t, "0.5", p.ToDecimal().String())
	require.Equal(t, "50/10000", p.String())
}
