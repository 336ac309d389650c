package params

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/status-im/wallet-swap/logutils"
	walletCommon "github.com/status-im/wallet-swap/services/wallet/common"
)

const (
	swapRouter02Address    = "0x68b3465833fb72A70ecDF485E0e4C7bD8665Fc45"
	universalRouterAddress = "0x3fC91A3afd70395Cd496C647d5a6CC9D4B2b7FAD"
	permit2Address         = "0x000000000022D473030F116dDEE9F6B43aC78BA3"
)

// NetworkConfig holds the swap contracts deployed on a chain.
type NetworkConfig struct {
	ChainID         uint64 `json:"ChainID" validate:"required"`
	Name            string `json:"Name"`
	NativeSymbol    string `json:"NativeSymbol" validate:"required"`
	SwapRouter02    string `json:"SwapRouter02" validate:"required,address"`
	UniversalRouter string `json:"UniversalRouter" validate:"required,address"`
	Permit2         string `json:"Permit2" validate:"required,address"`
}

// RouterAddress returns the contract a swap is sent to.
func (n *NetworkConfig) RouterAddress(universal bool) common.Address {
	if universal {
		return common.HexToAddress(n.UniversalRouter)
	}
	return common.HexToAddress(n.SwapRouter02)
}

// SwapConfig is the configuration of the swap helpers and tooling.
type SwapConfig struct {
	// UniversalRouterEnabled sends swaps through the universal router even
	// without a Permit2 signature.
	UniversalRouterEnabled bool `json:"UniversalRouterEnabled"`

	// DeadlineSeconds is added to the current time to form the swap deadline.
	// Zero encodes no deadline.
	DeadlineSeconds uint64 `json:"DeadlineSeconds"`

	// Locale selects the language of action names.
	Locale string `json:"Locale" validate:"required"`

	Networks []NetworkConfig `json:"Networks" validate:"required,min=1,dive"`

	LogSettings logutils.LogSettings `json:"LogSettings"`
}

func DefaultSwapConfig() *SwapConfig {
	network := func(chainID uint64, name, symbol, swapRouter02 string) NetworkConfig {
		return NetworkConfig{
			ChainID:         chainID,
			Name:            name,
			NativeSymbol:    symbol,
			SwapRouter02:    swapRouter02,
			UniversalRouter: universalRouterAddress,
			Permit2:         permit2Address,
		}
	}

	return &SwapConfig{
		DeadlineSeconds: 30 * 60,
		Locale:          "en",
		Networks: []NetworkConfig{
			network(walletCommon.EthereumMainnet, "Ethereum", "ETH", swapRouter02Address),
			network(walletCommon.OptimismMainnet, "Optimism", "ETH", swapRouter02Address),
			network(walletCommon.ArbitrumMainnet, "Arbitrum", "ETH", swapRouter02Address),
			network(walletCommon.PolygonMainnet, "Polygon", "MATIC", swapRouter02Address),
			network(walletCommon.BaseMainnet, "Base", "ETH", "0x2626664c2603336E57B271c5C0b26F421741e481"),
		},
		LogSettings: logutils.LogSettings{
			Enabled: true,
			Level:   "INFO",
		},
	}
}

// NewSwapConfigFromJSON overrides the defaults with configJSON. Networks given
// in configJSON replace the default list as a whole.
func NewSwapConfigFromJSON(configJSON string) (*SwapConfig, error) {
	config := DefaultSwapConfig()

	var probe struct {
		Networks json.RawMessage
	}
	if err := json.Unmarshal([]byte(configJSON), &probe); err != nil {
		return nil, errors.Wrap(err, "failed to parse swap config")
	}
	if probe.Networks != nil {
		config.Networks = nil
	}

	decoder := json.NewDecoder(strings.NewReader(configJSON))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "failed to parse swap config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func LoadSwapConfigFromFile(path string) (*SwapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read swap config %s", path)
	}
	return NewSwapConfigFromJSON(string(data))
}

// Validate checks the struct tags and that every chain is configured once.
func (c *SwapConfig) Validate() error {
	validate := NewValidator()
	if err := validate.Struct(c); err != nil {
		return ErrInvalidConfig.WithDetails(err)
	}

	seen := make(map[uint64]bool, len(c.Networks))
	for _, network := range c.Networks {
		if seen[network.ChainID] {
			return ErrDuplicateNetwork.WithDetails(network.ChainID)
		}
		seen[network.ChainID] = true
	}
	return nil
}

func (c *SwapConfig) Network(chainID uint64) (*NetworkConfig, error) {
	for i := range c.Networks {
		if c.Networks[i].ChainID == chainID {
			return &c.Networks[i], nil
		}
	}
	return nil, ErrUnknownNetwork.WithDetails(chainID)
}
