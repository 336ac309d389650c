package swap

import (
	"github.com/status-im/wallet-swap/errors"
)

// Abbreviation `WS` for the error code stands for Wallet Swap
var (
	ErrMissingTrade       = &errors.ErrorResponse{Code: errors.ErrorCode("WS-001"), Details: "trade is required"}
	ErrInvalidGasFee      = &errors.ErrorResponse{Code: errors.ErrorCode("WS-002"), Details: "invalid gas fee %q"}
	ErrUnknownWrapType    = &errors.ErrorResponse{Code: errors.ErrorCode("WS-003"), Details: "unknown wrap type %d"}
	ErrLocalizationFailed = &errors.ErrorResponse{Code: errors.ErrorCode("WS-004"), Details: "cannot localize %s: %v"}
	ErrInvalidSlippage    = &errors.ErrorResponse{Code: errors.ErrorCode("WS-005"), Details: "invalid slippage tolerance %v"}
)
