package routers

import (
	"github.com/ethereum/go-ethereum/common"
)

// Special recipients understood by both router generations.
var (
	MsgSender   = common.HexToAddress("0x0000000000000000000000000000000000000001")
	AddressThis = common.HexToAddress("0x0000000000000000000000000000000000000002")
)

// CommandType is a universal router command byte.
type CommandType byte

const (
	CommandV3SwapExactIn  CommandType = 0x00
	CommandV3SwapExactOut CommandType = 0x01
	CommandV2SwapExactIn  CommandType = 0x08
	CommandV2SwapExactOut CommandType = 0x09
	CommandPermit2Permit  CommandType = 0x0a
	CommandWrapETH        CommandType = 0x0b
	CommandUnwrapWETH     CommandType = 0x0c
)

const (
	LegacyRouterName    = "legacy"
	UniversalRouterName = "universal"
)
