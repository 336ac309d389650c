package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/status-im/wallet-swap/logutils"
	"github.com/status-im/wallet-swap/params"
	walletCommon "github.com/status-im/wallet-swap/services/wallet/common"
	"github.com/status-im/wallet-swap/services/wallet/swap/trade"
	"github.com/status-im/wallet-swap/services/wallet/token"
)

func setup(cCtx *cli.Context) error {
	config := params.DefaultSwapConfig()
	if path := cCtx.String(ConfigFlag); path != "" {
		loaded, err := params.LoadSwapConfigFromFile(path)
		if err != nil {
			return err
		}
		config = loaded
	}
	if err := logutils.OverrideRootLogWithConfig(config.LogSettings); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	logutils.ZapLogger().Debug("swap config loaded",
		zap.Bool("universalRouter", config.UniversalRouterEnabled),
		zap.Int("networks", len(config.Networks)))

	cCtx.App.Metadata = map[string]interface{}{"config": config}
	return nil
}

func swapConfig(cCtx *cli.Context) *params.SwapConfig {
	if config, ok := cCtx.App.Metadata["config"].(*params.SwapConfig); ok {
		return config
	}
	return params.DefaultSwapConfig()
}

func readInput(cCtx *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cCtx.App.Reader)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

func readJSON(cCtx *cli.Context, path string, v interface{}) error {
	data, err := readInput(cCtx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "failed to parse %s", path)
	}
	return nil
}

func readTrade(cCtx *cli.Context) (*trade.Trade, error) {
	t := &trade.Trade{}
	if err := readJSON(cCtx, cCtx.String(TradeFlag), t); err != nil {
		return nil, err
	}
	return t, nil
}

func printJSON(cCtx *cli.Context, v interface{}) error {
	encoder := json.NewEncoder(cCtx.App.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// resolveCurrency turns a currency id into a token, recognizing the chain's
// native and wrapped-native currencies.
func resolveCurrency(id string) (*token.Token, error) {
	chainID, address, err := token.ParseCurrencyID(id)
	if err != nil {
		return nil, err
	}
	if address == walletCommon.ZeroAddress() {
		if native := token.NativeCurrency(chainID); native != nil {
			return native, nil
		}
	}
	if wrapped := token.WrappedNative(chainID); wrapped != nil && wrapped.Address == address {
		return wrapped, nil
	}
	return &token.Token{Address: address, ChainID: chainID}, nil
}
