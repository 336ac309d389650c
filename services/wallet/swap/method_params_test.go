package swap

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/status-im/wallet-swap/logutils"
	mock_swap "github.com/status-im/wallet-swap/services/wallet/swap/mock"
	"github.com/status-im/wallet-swap/services/wallet/swap/routers"
	"github.com/status-im/wallet-swap/services/wallet/swap/trade"
	"github.com/status-im/wallet-swap/services/wallet/testutils"
)

func TestUseUniversalRouter(t *testing.T) {
	require.False(t, UseUniversalRouter(false, false))
	require.True(t, UseUniversalRouter(true, false))
	require.True(t, UseUniversalRouter(false, true))
	require.True(t, UseUniversalRouter(true, true))
}

type builderFixture struct {
	legacy    *mock_swap.MockRouterSDK
	universal *mock_swap.MockRouterSDK
	builder   *MethodParametersBuilder
}

func newBuilderFixture(t *testing.T) *builderFixture {
	ctrl := gomock.NewController(t)
	legacy := mock_swap.NewMockRouterSDK(ctrl)
	universal := mock_swap.NewMockRouterSDK(ctrl)
	legacy.EXPECT().Name().Return(routers.LegacyRouterName).AnyTimes()
	universal.EXPECT().Name().Return(routers.UniversalRouterName).AnyTimes()
	return &builderFixture{
		legacy:    legacy,
		universal: universal,
		builder:   NewMethodParametersBuilder(legacy, universal),
	}
}

func sampleTrade() *trade.Trade {
	return testutils.NewTrade(trade.TradeTypeExactInput, testutils.USDC, "1000000000", testutils.DAI, "999000000000000000000", 0.5)
}

func TestBuildUsesLegacyRouterWithPermit(t *testing.T) {
	f := newBuilderFixture(t)
	tr := sampleTrade()
	permit := &routers.PermitOptions{V: 27, Nonce: big.NewInt(1), Expiry: big.NewInt(2)}
	expected := &trade.MethodParameters{Calldata: hexutil.Bytes{0x01}, Value: (*hexutil.Big)(big.NewInt(0))}

	f.legacy.EXPECT().SwapCallParameters(tr, gomock.Any()).DoAndReturn(
		func(_ *trade.Trade, options routers.SwapOptions) (*trade.MethodParameters, error) {
			require.True(t, options.SlippageTolerance.Equals(trade.NewPercent(50, 10000)))
			require.Equal(t, testutils.Recipient, options.Recipient)
			require.Equal(t, permit, options.InputTokenPermit)
			require.Nil(t, options.Permit2Permit)
			require.Nil(t, options.Deadline)
			return expected, nil
		})

	params, err := f.builder.Build(SwapMethodParametersInput{
		Trade:   tr,
		Address: testutils.Recipient,
		Permit:  permit,
	})
	require.NoError(t, err)
	require.Equal(t, expected, params)
}

func TestBuildUsesUniversalRouterWhenEnabled(t *testing.T) {
	f := newBuilderFixture(t)
	tr := sampleTrade()
	deadline := big.NewInt(1700000000)
	expected := &trade.MethodParameters{Calldata: hexutil.Bytes{0x02}, Value: (*hexutil.Big)(big.NewInt(0))}

	f.universal.EXPECT().SwapCallParameters(tr, gomock.Any()).DoAndReturn(
		func(_ *trade.Trade, options routers.SwapOptions) (*trade.MethodParameters, error) {
			require.Nil(t, options.InputTokenPermit)
			require.Equal(t, deadline, options.Deadline)
			return expected, nil
		})

	params, err := f.builder.Build(SwapMethodParametersInput{
		Trade:                  tr,
		Address:                testutils.Recipient,
		Permit:                 &routers.PermitOptions{},
		UniversalRouterEnabled: true,
		Deadline:               deadline,
	})
	require.NoError(t, err)
	require.Equal(t, expected, params)
}

func TestBuildUsesUniversalRouterForPermit2Signature(t *testing.T) {
	f := newBuilderFixture(t)
	tr := sampleTrade()
	permit2 := &routers.Permit2Permit{Signature: hexutil.Bytes{0xaa}}

	f.universal.EXPECT().SwapCallParameters(tr, gomock.Any()).DoAndReturn(
		func(_ *trade.Trade, options routers.SwapOptions) (*trade.MethodParameters, error) {
			require.Equal(t, permit2, options.Permit2Permit)
			return &trade.MethodParameters{}, nil
		})

	before := testutil.ToFloat64(methodParametersCounter.WithLabelValues(routers.UniversalRouterName))
	_, err := f.builder.Build(SwapMethodParametersInput{Trade: tr, Permit2Signature: permit2})
	require.NoError(t, err)
	require.Equal(t, before+1, testutil.ToFloat64(methodParametersCounter.WithLabelValues(routers.UniversalRouterName)))
}

func TestBuildPropagatesRouterError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logutils.OverrideRootLogger(zap.New(core))
	defer logutils.OverrideRootLogger(nil)

	f := newBuilderFixture(t)
	routerErr := errors.New("encoding failed")
	f.legacy.EXPECT().SwapCallParameters(gomock.Any(), gomock.Any()).Return(nil, routerErr)

	before := testutil.ToFloat64(methodParametersCounter.WithLabelValues(routers.LegacyRouterName))
	_, err := f.builder.Build(SwapMethodParametersInput{Trade: sampleTrade()})
	require.ErrorIs(t, err, routerErr)
	require.Equal(t, before, testutil.ToFloat64(methodParametersCounter.WithLabelValues(routers.LegacyRouterName)))

	entries := logs.FilterMessage("failed to build swap method parameters").All()
	require.Len(t, entries, 1)
	require.Equal(t, routers.LegacyRouterName, entries[0].ContextMap()["router"])
}

func TestBuildRequiresTrade(t *testing.T) {
	f := newBuilderFixture(t)
	_, err := f.builder.Build(SwapMethodParametersInput{})
	require.ErrorIs(t, err, ErrMissingTrade)
}

func TestGetSwapMethodParameters(t *testing.T) {
	tr := testutils.NewTrade(trade.TradeTypeExactInput, testutils.ETH, "1000000000000000000", testutils.USDC, "3000000000", 0.5)

	legacy, err := GetSwapMethodParameters(SwapMethodParametersInput{Trade: tr, Address: testutils.Recipient})
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000", legacy.Value.ToInt().String())
	require.Equal(t, crypto.Keccak256([]byte("exactInputSingle((address,address,uint24,address,uint256,uint256,uint160))"))[:4], []byte(legacy.Calldata[:4]))

	universal, err := GetSwapMethodParameters(SwapMethodParametersInput{
		Trade:                  tr,
		Address:                testutils.Recipient,
		UniversalRouterEnabled: true,
		Deadline:               big.NewInt(1700000000),
	})
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000", universal.Value.ToInt().String())
	require.Equal(t, crypto.Keccak256([]byte("execute(bytes,bytes[],uint256)"))[:4], []byte(universal.Calldata[:4]))
	require.NotEqual(t, common.Bytes2Hex(legacy.Calldata), common.Bytes2Hex(universal.Calldata))
}
