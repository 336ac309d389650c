package routers

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/status-im/wallet-swap/services/wallet/swap/trade"
)

type permitDetails struct {
	Token      common.Address
	Amount     *big.Int
	Expiration *big.Int
	Nonce      *big.Int
}

type permitSingle struct {
	Details     permitDetails
	Spender     common.Address
	SigDeadline *big.Int
}

// commandPlanner accumulates universal router commands and their inputs.
type commandPlanner struct {
	commands []byte
	inputs   [][]byte
}

func (p *commandPlanner) add(command CommandType, layout string, args ...interface{}) error {
	input, err := encodeCommandInput(layout, args...)
	if err != nil {
		return err
	}
	p.commands = append(p.commands, byte(command))
	p.inputs = append(p.inputs, input)
	return nil
}

// UniversalRouter encodes calls to the Universal Router, paying through Permit2.
type UniversalRouter struct{}

func NewUniversalRouter() *UniversalRouter {
	return &UniversalRouter{}
}

func (r *UniversalRouter) Name() string {
	return UniversalRouterName
}

// SwapCallParameters builds an execute call swapping t. Native input is wrapped
// by the router, native output is unwrapped to the recipient.
func (r *UniversalRouter) SwapCallParameters(t *trade.Trade, options SwapOptions) (*trade.MethodParameters, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := options.validate(); err != nil {
		return nil, err
	}

	inputIsNative := t.InputCurrency().IsNative()
	outputIsNative := t.OutputCurrency().IsNative()
	amounts := slippageAdjusted(t, options.SlippageTolerance)
	planner := &commandPlanner{}

	if options.Permit2Permit != nil {
		if inputIsNative {
			return nil, ErrPermitOnNativeInput
		}
		if err := addPermit2Permit(planner, t, options.Permit2Permit); err != nil {
			return nil, err
		}
	}

	if inputIsNative {
		if err := planner.add(CommandWrapETH, "wrapETH", AddressThis, amounts.maxIn); err != nil {
			return nil, err
		}
	}

	recipient := options.Recipient
	if outputIsNative {
		recipient = AddressThis
	} else if recipient == (common.Address{}) {
		recipient = MsgSender
	}
	if err := addSwap(planner, t, recipient, amounts, !inputIsNative); err != nil {
		return nil, err
	}

	if outputIsNative {
		unwrapTo := options.Recipient
		if unwrapTo == (common.Address{}) {
			unwrapTo = MsgSender
		}
		if err := planner.add(CommandUnwrapWETH, "unwrapWETH", unwrapTo, amounts.minOut); err != nil {
			return nil, err
		}
	}

	// Leftover wrapped input of an exact output swap goes back to the sender.
	if inputIsNative && t.TradeType == trade.TradeTypeExactOutput {
		if err := planner.add(CommandUnwrapWETH, "unwrapWETH", MsgSender, new(big.Int)); err != nil {
			return nil, err
		}
	}

	var (
		calldata []byte
		err      error
	)
	if options.Deadline != nil {
		calldata, err = encodeCall(universalRouter, "execute(bytes,bytes[],uint256)", planner.commands, planner.inputs, options.Deadline)
	} else {
		calldata, err = encodeCall(universalRouter, "execute(bytes,bytes[])", planner.commands, planner.inputs)
	}
	if err != nil {
		return nil, err
	}

	return &trade.MethodParameters{
		Calldata: calldata,
		Value:    nativeValue(t, amounts),
	}, nil
}

func addPermit2Permit(planner *commandPlanner, t *trade.Trade, permit *Permit2Permit) error {
	if err := permit.validate(); err != nil {
		return err
	}
	inputToken := t.InputCurrency().Address
	if permit.Details.Token != inputToken {
		return ErrPermitTokenMismatch.WithDetails(permit.Details.Token.Hex(), inputToken.Hex())
	}
	single := permitSingle{
		Details: permitDetails{
			Token:      permit.Details.Token,
			Amount:     permit.Details.Amount,
			Expiration: permit.Details.Expiration,
			Nonce:      permit.Details.Nonce,
		},
		Spender:     permit.Spender,
		SigDeadline: permit.SigDeadline,
	}
	return planner.add(CommandPermit2Permit, "permit2Permit", single, []byte(permit.Signature))
}

func addSwap(planner *commandPlanner, t *trade.Trade, recipient common.Address, amounts swapAmounts, payerIsUser bool) error {
	route := t.Route
	exactInput := t.TradeType == trade.TradeTypeExactInput

	switch {
	case route.Protocol == trade.ProtocolV2 && exactInput:
		return planner.add(CommandV2SwapExactIn, "v2SwapExactIn", recipient, amounts.maxIn, amounts.minOut, v2Path(route), payerIsUser)
	case route.Protocol == trade.ProtocolV2:
		return planner.add(CommandV2SwapExactOut, "v2SwapExactOut", recipient, amounts.minOut, amounts.maxIn, v2Path(route), payerIsUser)
	case exactInput:
		return planner.add(CommandV3SwapExactIn, "v3SwapExactIn", recipient, amounts.maxIn, amounts.minOut, encodeV3Path(route, false), payerIsUser)
	default:
		return planner.add(CommandV3SwapExactOut, "v3SwapExactOut", recipient, amounts.minOut, amounts.maxIn, encodeV3Path(route, true), payerIsUser)
	}
}
