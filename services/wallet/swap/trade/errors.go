package trade

import (
	"github.com/status-im/wallet-swap/errors"
)

// Abbreviation `WTR` for the error code stands for Wallet TRade
var (
	ErrUnknownTradeType    = &errors.ErrorResponse{Code: errors.ErrorCode("WTR-001"), Details: "unknown trade type: %v"}
	ErrMissingAmount       = &errors.ErrorResponse{Code: errors.ErrorCode("WTR-002"), Details: "trade input and output amounts are required"}
	ErrInvalidSlippage     = &errors.ErrorResponse{Code: errors.ErrorCode("WTR-003"), Details: "slippage tolerance must be between 0 and 100, got %v"}
	ErrInvalidRoute        = &errors.ErrorResponse{Code: errors.ErrorCode("WTR-004"), Details: "invalid route: %s"}
	ErrChainMismatch       = &errors.ErrorResponse{Code: errors.ErrorCode("WTR-005"), Details: "input and output currencies are on different chains"}
	ErrZeroDenominator     = &errors.ErrorResponse{Code: errors.ErrorCode("WTR-006"), Details: "price denominator is zero"}
	ErrUnsupportedProtocol = &errors.ErrorResponse{Code: errors.ErrorCode("WTR-007"), Details: "unsupported protocol: %s"}
	ErrNegativeAmount      = &errors.ErrorResponse{Code: errors.ErrorCode("WTR-008"), Details: "trade amounts must not be negative"}
)
