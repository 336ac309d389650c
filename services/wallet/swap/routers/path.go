package routers

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"github.com/status-im/wallet-swap/services/wallet/swap/trade"
	"github.com/status-im/wallet-swap/services/wallet/token"
)

const (
	addressSize = common.AddressLength
	feeSize     = 3
)

// encodeV3Path packs a V3 route as token, fee, token, ... with 3 byte fees.
// Exact output swaps walk the pools backwards, so the path is reversed.
func encodeV3Path(route trade.Route, exactOutput bool) []byte {
	tokens := lo.Map(route.Path, func(t *token.Token, _ int) common.Address {
		return t.Address
	})
	fees := append([]uint32{}, route.Fees...)
	if exactOutput {
		tokens = lo.Reverse(tokens)
		fees = lo.Reverse(fees)
	}

	path := make([]byte, 0, len(tokens)*addressSize+len(fees)*feeSize)
	for i, address := range tokens {
		path = append(path, address.Bytes()...)
		if i < len(fees) {
			fee := fees[i]
			path = append(path, byte(fee>>16), byte(fee>>8), byte(fee))
		}
	}
	return path
}

func v2Path(route trade.Route) []common.Address {
	return lo.Map(route.Path, func(t *token.Token, _ int) common.Address {
		return t.Address
	})
}

func isSingleHop(route trade.Route) bool {
	return len(route.Path) == 2
}
