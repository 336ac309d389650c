package common

const (
	EthereumMainnet uint64 = 1
	EthereumGoerli  uint64 = 5
	EthereumSepolia uint64 = 11155111
	OptimismMainnet uint64 = 10
	OptimismGoerli  uint64 = 420
	ArbitrumMainnet uint64 = 42161
	ArbitrumGoerli  uint64 = 421613
	PolygonMainnet  uint64 = 137
	PolygonMumbai   uint64 = 80001
	BaseMainnet     uint64 = 8453
	BSCMainnet      uint64 = 56
)

// IsTestnet reports whether chainID is one of the known test networks.
func IsTestnet(chainID uint64) bool {
	switch chainID {
	case EthereumGoerli, EthereumSepolia, OptimismGoerli, ArbitrumGoerli, PolygonMumbai:
		return true
	}
	return false
}
