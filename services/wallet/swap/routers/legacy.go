package routers

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/status-im/wallet-swap/services/wallet/swap/trade"
)

type exactInputSingleParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	Fee               *big.Int
	Recipient         common.Address
	AmountIn          *big.Int
	AmountOutMinimum  *big.Int
	SqrtPriceLimitX96 *big.Int
}

type exactInputParams struct {
	Path             []byte
	Recipient        common.Address
	AmountIn         *big.Int
	AmountOutMinimum *big.Int
}

type exactOutputSingleParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	Fee               *big.Int
	Recipient         common.Address
	AmountOut         *big.Int
	AmountInMaximum   *big.Int
	SqrtPriceLimitX96 *big.Int
}

type exactOutputParams struct {
	Path            []byte
	Recipient       common.Address
	AmountOut       *big.Int
	AmountInMaximum *big.Int
}

// LegacyRouter encodes calls to SwapRouter02.
type LegacyRouter struct{}

func NewLegacyRouter() *LegacyRouter {
	return &LegacyRouter{}
}

func (r *LegacyRouter) Name() string {
	return LegacyRouterName
}

// SwapCallParameters builds the calldata and value swapping t through
// SwapRouter02. Multiple calls are batched with multicall, which also carries
// the deadline when one is set.
func (r *LegacyRouter) SwapCallParameters(t *trade.Trade, options SwapOptions) (*trade.MethodParameters, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := options.validate(); err != nil {
		return nil, err
	}

	inputIsNative := t.InputCurrency().IsNative()
	outputIsNative := t.OutputCurrency().IsNative()
	amounts := slippageAdjusted(t, options.SlippageTolerance)

	calls := make([][]byte, 0, 4)

	if options.InputTokenPermit != nil {
		if inputIsNative {
			return nil, ErrPermitOnNativeInput
		}
		call, err := encodeSelfPermit(t.InputCurrency().Address, options.InputTokenPermit)
		if err != nil {
			return nil, err
		}
		calls = append(calls, call)
	}

	// Native output is received by the router first and unwrapped afterwards.
	recipient := options.Recipient
	if outputIsNative {
		recipient = AddressThis
	} else if recipient == (common.Address{}) {
		recipient = MsgSender
	}

	swapCall, err := encodeLegacySwap(t, recipient, amounts)
	if err != nil {
		return nil, err
	}
	calls = append(calls, swapCall)

	if outputIsNative {
		var unwrap []byte
		if options.Recipient == (common.Address{}) {
			unwrap, err = encodeCall(swapRouter02, "unwrapWETH9(uint256)", amounts.minOut)
		} else {
			unwrap, err = encodeCall(swapRouter02, "unwrapWETH9(uint256,address)", amounts.minOut, options.Recipient)
		}
		if err != nil {
			return nil, err
		}
		calls = append(calls, unwrap)
	}

	// Whatever was not spent of an exact output native input goes back.
	if inputIsNative && t.TradeType == trade.TradeTypeExactOutput {
		refund, err := encodeCall(swapRouter02, "refundETH()")
		if err != nil {
			return nil, err
		}
		calls = append(calls, refund)
	}

	calldata, err := encodeMulticall(calls, options.Deadline)
	if err != nil {
		return nil, err
	}

	return &trade.MethodParameters{
		Calldata: calldata,
		Value:    nativeValue(t, amounts),
	}, nil
}

func encodeSelfPermit(tokenAddress common.Address, permit *PermitOptions) ([]byte, error) {
	if err := permit.validate(); err != nil {
		return nil, err
	}
	if permit.isAllowed() {
		return encodeCall(swapRouter02, "selfPermitAllowed(address,uint256,uint256,uint8,bytes32,bytes32)",
			tokenAddress, permit.Nonce, permit.Expiry, permit.V, [32]byte(permit.R), [32]byte(permit.S))
	}
	return encodeCall(swapRouter02, "selfPermit(address,uint256,uint256,uint8,bytes32,bytes32)",
		tokenAddress, permit.Amount, permit.Deadline, permit.V, [32]byte(permit.R), [32]byte(permit.S))
}

func encodeLegacySwap(t *trade.Trade, recipient common.Address, amounts swapAmounts) ([]byte, error) {
	route := t.Route
	exactInput := t.TradeType == trade.TradeTypeExactInput

	if route.Protocol == trade.ProtocolV2 {
		if exactInput {
			return encodeCall(swapRouter02, "swapExactTokensForTokens(uint256,uint256,address[],address)",
				amounts.maxIn, amounts.minOut, v2Path(route), recipient)
		}
		return encodeCall(swapRouter02, "swapTokensForExactTokens(uint256,uint256,address[],address)",
			amounts.minOut, amounts.maxIn, v2Path(route), recipient)
	}

	if isSingleHop(route) {
		tokenIn, tokenOut := route.Path[0].Address, route.Path[1].Address
		fee := new(big.Int).SetUint64(uint64(route.Fees[0]))
		if exactInput {
			return encodeCall(swapRouter02, "exactInputSingle((address,address,uint24,address,uint256,uint256,uint160))",
				exactInputSingleParams{
					TokenIn:           tokenIn,
					TokenOut:          tokenOut,
					Fee:               fee,
					Recipient:         recipient,
					AmountIn:          amounts.maxIn,
					AmountOutMinimum:  amounts.minOut,
					SqrtPriceLimitX96: new(big.Int),
				})
		}
		return encodeCall(swapRouter02, "exactOutputSingle((address,address,uint24,address,uint256,uint256,uint160))",
			exactOutputSingleParams{
				TokenIn:           tokenIn,
				TokenOut:          tokenOut,
				Fee:               fee,
				Recipient:         recipient,
				AmountOut:         amounts.minOut,
				AmountInMaximum:   amounts.maxIn,
				SqrtPriceLimitX96: new(big.Int),
			})
	}

	if exactInput {
		return encodeCall(swapRouter02, "exactInput((bytes,address,uint256,uint256))",
			exactInputParams{
				Path:             encodeV3Path(route, false),
				Recipient:        recipient,
				AmountIn:         amounts.maxIn,
				AmountOutMinimum: amounts.minOut,
			})
	}
	return encodeCall(swapRouter02, "exactOutput((bytes,address,uint256,uint256))",
		exactOutputParams{
			Path:            encodeV3Path(route, true),
			Recipient:       recipient,
			AmountOut:       amounts.minOut,
			AmountInMaximum: amounts.maxIn,
		})
}

func encodeMulticall(calls [][]byte, deadline *big.Int) ([]byte, error) {
	if deadline != nil {
		return encodeCall(swapRouter02, "multicall(uint256,bytes[])", deadline, calls)
	}
	if len(calls) == 1 {
		return calls[0], nil
	}
	return encodeCall(swapRouter02, "multicall(bytes[])", calls)
}
