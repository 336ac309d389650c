package swap

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/status-im/wallet-swap/services/wallet/swap/trade"
	"github.com/status-im/wallet-swap/services/wallet/testutils"
	"github.com/status-im/wallet-swap/services/wallet/token"
)

type recordingFormatter struct {
	values []decimal.Decimal
	types  []NumberType
}

func (f *recordingFormatter) FormatNumber(value decimal.Decimal, numberType NumberType) string {
	f.values = append(f.values, value)
	f.types = append(f.types, numberType)
	return value.StringFixed(4)
}

func TestGetRateToDisplay(t *testing.T) {
	usdcToDai := testutils.NewTrade(trade.TradeTypeExactInput, testutils.USDC, "1000000000", testutils.DAI, "999000000000000000000", 0.5)
	ethToUsdc := testutils.NewTrade(trade.TradeTypeExactOutput, testutils.ETH, "1000000000000000000", testutils.USDC, "3000000000", 0.5)

	tests := []struct {
		name        string
		trade       *trade.Trade
		showInverse bool
		expected    string
	}{
		{"input priced in output", usdcToDai, false, "1 USDC = 0.999 DAI"},
		{"output priced in input", usdcToDai, true, "1 DAI = 1.001 USDC"},
		{"native input", ethToUsdc, false, "1 ETH = 3,000.00 USDC"},
		{"native input inverted", ethToUsdc, true, "1 USDC = 0.000333333 ETH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := GetRateToDisplay(DefaultFormatter{}, tt.trade, tt.showInverse)
			require.NoError(t, err)
			require.Equal(t, tt.expected, rate)
		})
	}
}

func TestGetRateToDisplayUsesSwapPriceFormat(t *testing.T) {
	tr := testutils.NewTrade(trade.TradeTypeExactInput, testutils.USDC, "2000000", testutils.DAI, "1000000000000000000", 0.5)
	formatter := &recordingFormatter{}

	rate, err := GetRateToDisplay(formatter, tr, true)
	require.NoError(t, err)
	require.Equal(t, "1 DAI = 2.0000 USDC", rate)
	require.Equal(t, []NumberType{NumberTypeSwapPrice}, formatter.types)
	require.True(t, formatter.values[0].Equal(decimal.NewFromInt(2)))
}

func TestGetRateToDisplayShortensSymbols(t *testing.T) {
	longToken := &token.Token{
		Address:  testutils.DAI.Address,
		Symbol:   "LONGSYMBOL",
		Decimals: 18,
		ChainID:  testutils.DAI.ChainID,
	}
	tr := testutils.NewTrade(trade.TradeTypeExactInput, testutils.USDC, "1000000", longToken, "1000000000000000000", 0.5)

	rate, err := GetRateToDisplay(DefaultFormatter{}, tr, false)
	require.NoError(t, err)
	require.Equal(t, "1 USDC = 1.00 LONGSY…", rate)
}

func TestGetRateToDisplayErrors(t *testing.T) {
	_, err := GetRateToDisplay(DefaultFormatter{}, nil, false)
	require.ErrorIs(t, err, ErrMissingTrade)

	zeroIn := testutils.NewTrade(trade.TradeTypeExactInput, testutils.USDC, "0", testutils.DAI, "1", 0.5)
	_, err = GetRateToDisplay(DefaultFormatter{}, zeroIn, false)
	require.ErrorIs(t, err, trade.ErrZeroDenominator)
}
