package swap

//go:generate mockgen -package=mock_swap -source=method_params.go -destination=mock/router_sdk.go

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/status-im/wallet-swap/logutils"
	"github.com/status-im/wallet-swap/services/wallet/swap/routers"
	"github.com/status-im/wallet-swap/services/wallet/swap/trade"
)

// RouterSDK encodes a trade into a router call.
type RouterSDK interface {
	// Name returns the name of the router
	Name() string
	// SwapCallParameters returns the calldata and value executing the trade
	SwapCallParameters(t *trade.Trade, options routers.SwapOptions) (*trade.MethodParameters, error)
}

type SwapMethodParametersInput struct {
	Trade *trade.Trade
	// Address receives the swap output.
	Address common.Address
	// Permit2Signature is a signed Permit2 permit for the universal router.
	Permit2Signature *routers.Permit2Permit
	// Permit is a raw token permit for the legacy router.
	Permit                 *routers.PermitOptions
	UniversalRouterEnabled bool
	// Deadline is an optional unix timestamp after which the swap reverts.
	Deadline *big.Int
}

// UseUniversalRouter picks the universal router when it is enabled or when the
// swap is authorized with a Permit2 signature, which only it understands.
func UseUniversalRouter(universalRouterEnabled bool, hasPermit2Signature bool) bool {
	return universalRouterEnabled || hasPermit2Signature
}

type MethodParametersBuilder struct {
	legacy    RouterSDK
	universal RouterSDK
}

func NewMethodParametersBuilder(legacy, universal RouterSDK) *MethodParametersBuilder {
	return &MethodParametersBuilder{
		legacy:    legacy,
		universal: universal,
	}
}

func (b *MethodParametersBuilder) Build(params SwapMethodParametersInput) (*trade.MethodParameters, error) {
	if params.Trade == nil {
		return nil, ErrMissingTrade
	}
	slippage, err := SlippageToleranceToPercent(params.Trade.SlippageTolerance)
	if err != nil {
		return nil, err
	}

	options := routers.SwapOptions{
		SlippageTolerance: slippage,
		Recipient:         params.Address,
		Deadline:          params.Deadline,
	}
	router := b.legacy
	if UseUniversalRouter(params.UniversalRouterEnabled, params.Permit2Signature != nil) {
		router = b.universal
		options.Permit2Permit = params.Permit2Signature
	} else {
		options.InputTokenPermit = params.Permit
	}

	logger := logutils.ZapLogger().Named("swap")
	methodParameters, err := router.SwapCallParameters(params.Trade, options)
	if err != nil {
		logger.Error("failed to build swap method parameters",
			zap.String("router", router.Name()),
			zap.Stringer("tradeType", params.Trade.TradeType),
			zap.Error(err))
		return nil, err
	}

	methodParametersCounter.WithLabelValues(router.Name()).Inc()
	logger.Debug("built swap method parameters",
		zap.String("router", router.Name()),
		zap.Stringer("tradeType", params.Trade.TradeType),
		zap.String("slippagePercent", slippage.ToDecimal().String()),
		zap.Int("calldataSize", len(methodParameters.Calldata)))
	return methodParameters, nil
}

var defaultBuilder = NewMethodParametersBuilder(routers.NewLegacyRouter(), routers.NewUniversalRouter())

// GetSwapMethodParameters builds the router call executing params.Trade.
func GetSwapMethodParameters(params SwapMethodParametersInput) (*trade.MethodParameters, error) {
	return defaultBuilder.Build(params)
}
