package trade

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/status-im/wallet-swap/services/wallet/token"
)

type TradeType uint8

const (
	TradeTypeExactInput TradeType = iota
	TradeTypeExactOutput
)

func (t TradeType) String() string {
	switch t {
	case TradeTypeExactInput:
		return "EXACT_INPUT"
	case TradeTypeExactOutput:
		return "EXACT_OUTPUT"
	}
	return fmt.Sprintf("TradeType(%d)", uint8(t))
}

func (t TradeType) MarshalJSON() ([]byte, error) {
	if t != TradeTypeExactInput && t != TradeTypeExactOutput {
		return nil, ErrUnknownTradeType.WithDetails(uint8(t))
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts both the symbolic names and the numeric values.
func (t *TradeType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		switch strings.ToUpper(name) {
		case "EXACT_INPUT":
			*t = TradeTypeExactInput
		case "EXACT_OUTPUT":
			*t = TradeTypeExactOutput
		default:
			return ErrUnknownTradeType.WithDetails(name)
		}
		return nil
	}

	var n uint8
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if TradeType(n) != TradeTypeExactInput && TradeType(n) != TradeTypeExactOutput {
		return ErrUnknownTradeType.WithDetails(n)
	}
	*t = TradeType(n)
	return nil
}

type Protocol string

const (
	ProtocolV2 Protocol = "V2"
	ProtocolV3 Protocol = "V3"
)

// maxFee is the exclusive upper bound of a V3 fee tier, which is encoded on
// three bytes in a swap path.
const maxFee = 1 << 24

// Route is a single path through pools of one protocol. Path holds ERC-20
// tokens, so native currencies appear in their wrapped form.
type Route struct {
	Protocol Protocol       `json:"protocol"`
	Path     []*token.Token `json:"path"`
	// Fees holds the V3 fee tier of each hop, in hundredths of a bip.
	Fees []uint32 `json:"fees,omitempty"`
}

func (r *Route) Validate() error {
	if len(r.Path) < 2 {
		return ErrInvalidRoute.WithDetails("path needs at least two tokens")
	}
	for i, t := range r.Path {
		if t == nil {
			return ErrInvalidRoute.WithDetails(fmt.Sprintf("token %d is missing", i))
		}
		if t.IsNative() {
			return ErrInvalidRoute.WithDetails(fmt.Sprintf("token %d is native, route paths use wrapped tokens", i))
		}
	}

	switch r.Protocol {
	case ProtocolV2:
	case ProtocolV3:
		if len(r.Fees) != len(r.Path)-1 {
			return ErrInvalidRoute.WithDetails(fmt.Sprintf("expected %d fee tiers, got %d", len(r.Path)-1, len(r.Fees)))
		}
		for _, fee := range r.Fees {
			if fee >= maxFee {
				return ErrInvalidRoute.WithDetails(fmt.Sprintf("fee tier %d out of range", fee))
			}
		}
	default:
		return ErrUnsupportedProtocol.WithDetails(r.Protocol)
	}
	return nil
}

// MethodParameters are the calldata and native value of a router call.
type MethodParameters struct {
	Calldata hexutil.Bytes `json:"calldata"`
	Value    *hexutil.Big  `json:"value"`
}

// Quote is the pricing service answer a trade was built from.
type Quote struct {
	QuoteID          string            `json:"quoteId,omitempty"`
	GasUseEstimate   string            `json:"gasUseEstimate,omitempty"`
	RouteString      string            `json:"routeString,omitempty"`
	MethodParameters *MethodParameters `json:"methodParameters,omitempty"`
}
