package routers

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

const swapRouter02ABI = `[
{"type":"function","name":"exactInputSingle","stateMutability":"payable","inputs":[{"name":"params","type":"tuple","components":[{"name":"tokenIn","type":"address"},{"name":"tokenOut","type":"address"},{"name":"fee","type":"uint24"},{"name":"recipient","type":"address"},{"name":"amountIn","type":"uint256"},{"name":"amountOutMinimum","type":"uint256"},{"name":"sqrtPriceLimitX96","type":"uint160"}]}],"outputs":[{"name":"amountOut","type":"uint256"}]},
{"type":"function","name":"exactInput","stateMutability":"payable","inputs":[{"name":"params","type":"tuple","components":[{"name":"path","type":"bytes"},{"name":"recipient","type":"address"},{"name":"amountIn","type":"uint256"},{"name":"amountOutMinimum","type":"uint256"}]}],"outputs":[{"name":"amountOut","type":"uint256"}]},
{"type":"function","name":"exactOutputSingle","stateMutability":"payable","inputs":[{"name":"params","type":"tuple","components":[{"name":"tokenIn","type":"address"},{"name":"tokenOut","type":"address"},{"name":"fee","type":"uint24"},{"name":"recipient","type":"address"},{"name":"amountOut","type":"uint256"},{"name":"amountInMaximum","type":"uint256"},{"name":"sqrtPriceLimitX96","type":"uint160"}]}],"outputs":[{"name":"amountIn","type":"uint256"}]},
{"type":"function","name":"exactOutput","stateMutability":"payable","inputs":[{"name":"params","type":"tuple","components":[{"name":"path","type":"bytes"},{"name":"recipient","type":"address"},{"name":"amountOut","type":"uint256"},{"name":"amountInMaximum","type":"uint256"}]}],"outputs":[{"name":"amountIn","type":"uint256"}]},
{"type":"function","name":"swapExactTokensForTokens","stateMutability":"payable","inputs":[{"name":"amountIn","type":"uint256"},{"name":"amountOutMin","type":"uint256"},{"name":"path","type":"address[]"},{"name":"to","type":"address"}],"outputs":[{"name":"amountOut","type":"uint256"}]},
{"type":"function","name":"swapTokensForExactTokens","stateMutability":"payable","inputs":[{"name":"amountOut","type":"uint256"},{"name":"amountInMax","type":"uint256"},{"name":"path","type":"address[]"},{"name":"to","type":"address"}],"outputs":[{"name":"amountIn","type":"uint256"}]},
{"type":"function","name":"unwrapWETH9","stateMutability":"payable","inputs":[{"name":"amountMinimum","type":"uint256"},{"name":"recipient","type":"address"}],"outputs":[]},
{"type":"function","name":"unwrapWETH9","stateMutability":"payable","inputs":[{"name":"amountMinimum","type":"uint256"}],"outputs":[]},
{"type":"function","name":"refundETH","stateMutability":"payable","inputs":[],"outputs":[]},
{"type":"function","name":"selfPermit","stateMutability":"payable","inputs":[{"name":"token","type":"address"},{"name":"value","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[]},
{"type":"function","name":"selfPermitAllowed","stateMutability":"payable","inputs":[{"name":"token","type":"address"},{"name":"nonce","type":"uint256"},{"name":"expiry","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[]},
{"type":"function","name":"multicall","stateMutability":"payable","inputs":[{"name":"data","type":"bytes[]"}],"outputs":[{"name":"results","type":"bytes[]"}]},
{"type":"function","name":"multicall","stateMutability":"payable","inputs":[{"name":"deadline","type":"uint256"},{"name":"data","type":"bytes[]"}],"outputs":[{"name":"results","type":"bytes[]"}]}
]`

const universalRouterABI = `[
{"type":"function","name":"execute","stateMutability":"payable","inputs":[{"name":"commands","type":"bytes"},{"name":"inputs","type":"bytes[]"}],"outputs":[]},
{"type":"function","name":"execute","stateMutability":"payable","inputs":[{"name":"commands","type":"bytes"},{"name":"inputs","type":"bytes[]"},{"name":"deadline","type":"uint256"}],"outputs":[]}
]`

// commandInputsABI describes the abi.encode layout of each universal router
// command input. The entries are not contract functions, only argument lists.
const commandInputsABI = `[
{"type":"function","name":"v3SwapExactIn","inputs":[{"name":"recipient","type":"address"},{"name":"amountIn","type":"uint256"},{"name":"amountOutMin","type":"uint256"},{"name":"path","type":"bytes"},{"name":"payerIsUser","type":"bool"}]},
{"type":"function","name":"v3SwapExactOut","inputs":[{"name":"recipient","type":"address"},{"name":"amountOut","type":"uint256"},{"name":"amountInMax","type":"uint256"},{"name":"path","type":"bytes"},{"name":"payerIsUser","type":"bool"}]},
{"type":"function","name":"v2SwapExactIn","inputs":[{"name":"recipient","type":"address"},{"name":"amountIn","type":"uint256"},{"name":"amountOutMin","type":"uint256"},{"name":"path","type":"address[]"},{"name":"payerIsUser","type":"bool"}]},
{"type":"function","name":"v2SwapExactOut","inputs":[{"name":"recipient","type":"address"},{"name":"amountOut","type":"uint256"},{"name":"amountInMax","type":"uint256"},{"name":"path","type":"address[]"},{"name":"payerIsUser","type":"bool"}]},
{"type":"function","name":"wrapETH","inputs":[{"name":"recipient","type":"address"},{"name":"amountMin","type":"uint256"}]},
{"type":"function","name":"unwrapWETH","inputs":[{"name":"recipient","type":"address"},{"name":"amountMin","type":"uint256"}]},
{"type":"function","name":"permit2Permit","inputs":[{"name":"permitSingle","type":"tuple","components":[{"name":"details","type":"tuple","components":[{"name":"token","type":"address"},{"name":"amount","type":"uint160"},{"name":"expiration","type":"uint48"},{"name":"nonce","type":"uint48"}]},{"name":"spender","type":"address"},{"name":"sigDeadline","type":"uint256"}]},{"name":"signature","type":"bytes"}]}
]`

var (
	swapRouter02       = mustParseABI(swapRouter02ABI)
	universalRouter    = mustParseABI(universalRouterABI)
	commandInputLayout = mustParseABI(commandInputsABI)
)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("invalid router abi: %v", err))
	}
	return parsed
}

// methodBySig looks a method up by its canonical signature, which stays stable
// for overloaded names.
func methodBySig(contract abi.ABI, sig string) (abi.Method, error) {
	for _, method := range contract.Methods {
		if method.Sig == sig {
			return method, nil
		}
	}
	return abi.Method{}, fmt.Errorf("method %s not found", sig)
}

func encodeCall(contract abi.ABI, sig string, args ...interface{}) ([]byte, error) {
	method, err := methodBySig(contract, sig)
	if err != nil {
		return nil, err
	}
	packed, err := method.Inputs.Pack(args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to pack %s", sig)
	}
	return append(append([]byte{}, method.ID...), packed...), nil
}

func encodeCommandInput(name string, args ...interface{}) ([]byte, error) {
	method, ok := commandInputLayout.Methods[name]
	if !ok {
		return nil, fmt.Errorf("command input %s not found", name)
	}
	packed, err := method.Inputs.Pack(args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s input", name)
	}
	return packed, nil
}
