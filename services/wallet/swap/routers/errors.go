package routers

import (
	"github.com/status-im/wallet-swap/errors"
)

// Abbreviation `WSR` for the error code stands for Wallet Swap Router
var (
	ErrMissingSlippageTolerance = &errors.ErrorResponse{Code: errors.ErrorCode("WSR-001"), Details: "slippage tolerance is required"}
	ErrPermitOnNativeInput      = &errors.ErrorResponse{Code: errors.ErrorCode("WSR-002"), Details: "permits cannot be used when the input currency is native"}
	ErrIncompletePermit         = &errors.ErrorResponse{Code: errors.ErrorCode("WSR-003"), Details: "permit is missing %s"}
	ErrPermitTokenMismatch      = &errors.ErrorResponse{Code: errors.ErrorCode("WSR-004"), Details: "permit2 token %s does not match the trade input %s"}
	ErrNegativeDeadline         = &errors.ErrorResponse{Code: errors.ErrorCode("WSR-005"), Details: "deadline must not be negative"}
)
