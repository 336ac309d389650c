package routers

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/status-im/wallet-swap/services/wallet/swap/trade"
)

// PermitOptions is an EIP-2612 permit signed for the legacy router. Nonce and
// Expiry are set for DAI-style "allowed" permits, Amount and Deadline otherwise.
type PermitOptions struct {
	V        uint8       `json:"v"`
	R        common.Hash `json:"r"`
	S        common.Hash `json:"s"`
	Amount   *big.Int    `json:"amount,omitempty"`
	Deadline *big.Int    `json:"deadline,omitempty"`
	Nonce    *big.Int    `json:"nonce,omitempty"`
	Expiry   *big.Int    `json:"expiry,omitempty"`
}

func (p *PermitOptions) isAllowed() bool {
	return p.Nonce != nil && p.Expiry != nil
}

func (p *PermitOptions) validate() error {
	if p.isAllowed() {
		return nil
	}
	if p.Amount == nil {
		return ErrIncompletePermit.WithDetails("amount")
	}
	if p.Deadline == nil {
		return ErrIncompletePermit.WithDetails("deadline")
	}
	return nil
}

// PermitDetails mirrors the Permit2 PermitDetails struct.
type PermitDetails struct {
	Token      common.Address `json:"token"`
	Amount     *big.Int       `json:"amount"`
	Expiration *big.Int       `json:"expiration"`
	Nonce      *big.Int       `json:"nonce"`
}

// Permit2Permit is a signed Permit2 PermitSingle.
type Permit2Permit struct {
	Details     PermitDetails  `json:"details"`
	Spender     common.Address `json:"spender"`
	SigDeadline *big.Int       `json:"sigDeadline"`
	Signature   hexutil.Bytes  `json:"signature"`
}

func (p *Permit2Permit) validate() error {
	switch {
	case p.Details.Amount == nil:
		return ErrIncompletePermit.WithDetails("details.amount")
	case p.Details.Expiration == nil:
		return ErrIncompletePermit.WithDetails("details.expiration")
	case p.Details.Nonce == nil:
		return ErrIncompletePermit.WithDetails("details.nonce")
	case p.SigDeadline == nil:
		return ErrIncompletePermit.WithDetails("sigDeadline")
	case len(p.Signature) == 0:
		return ErrIncompletePermit.WithDetails("signature")
	}
	return nil
}

// SwapOptions are the encoding options shared by both routers.
type SwapOptions struct {
	SlippageTolerance *trade.Percent
	// Recipient receives the output. The zero address means the caller.
	Recipient common.Address
	// Deadline is a unix timestamp. Nil means no deadline is encoded.
	Deadline *big.Int
	// InputTokenPermit is only understood by the legacy router.
	InputTokenPermit *PermitOptions
	// Permit2Permit is only understood by the universal router.
	Permit2Permit *Permit2Permit
}

func (o *SwapOptions) validate() error {
	if o.SlippageTolerance == nil || o.SlippageTolerance.Denominator == nil || o.SlippageTolerance.Numerator == nil {
		return ErrMissingSlippageTolerance
	}
	if o.SlippageTolerance.Denominator.Sign() <= 0 || o.SlippageTolerance.Numerator.Sign() < 0 {
		return trade.ErrInvalidSlippage.WithDetails(o.SlippageTolerance.String())
	}
	if o.Deadline != nil && o.Deadline.Sign() < 0 {
		return ErrNegativeDeadline
	}
	return nil
}

// swapAmounts are the slippage adjusted amounts both routers encode.
type swapAmounts struct {
	maxIn  *big.Int
	minOut *big.Int
}

func slippageAdjusted(t *trade.Trade, slippage *trade.Percent) swapAmounts {
	return swapAmounts{
		maxIn:  t.MaximumAmountIn(slippage).Quotient(),
		minOut: t.MinimumAmountOut(slippage).Quotient(),
	}
}

func nativeValue(t *trade.Trade, amounts swapAmounts) *hexutil.Big {
	if t.InputCurrency().IsNative() {
		return (*hexutil.Big)(new(big.Int).Set(amounts.maxIn))
	}
	return (*hexutil.Big)(new(big.Int))
}
