package params

import (
	"github.com/status-im/wallet-swap/errors"
)

// Abbreviation `CFG` for the error code stands for Configuration
var (
	ErrInvalidConfig    = &errors.ErrorResponse{Code: errors.ErrorCode("CFG-001"), Details: "invalid config: %v"}
	ErrDuplicateNetwork = &errors.ErrorResponse{Code: errors.ErrorCode("CFG-002"), Details: "network %d is configured more than once"}
	ErrUnknownNetwork   = &errors.ErrorResponse{Code: errors.ErrorCode("CFG-003"), Details: "network %d is not configured"}
)
