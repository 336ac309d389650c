package main

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	walletCommon "github.com/status-im/wallet-swap/services/wallet/common"
	"github.com/status-im/wallet-swap/services/wallet/swap"
	"github.com/status-im/wallet-swap/services/wallet/swap/routers"
)

type wrapTypeResult struct {
	WrapType    string `json:"wrapType"`
	IsWrap      bool   `json:"isWrap"`
	ActionName  string `json:"actionName"`
	ElementName string `json:"elementName"`
}

func wrapTypeAction(cCtx *cli.Context) error {
	in, err := resolveCurrency(cCtx.String(InFlag))
	if err != nil {
		return err
	}
	out, err := resolveCurrency(cCtx.String(OutFlag))
	if err != nil {
		return err
	}

	localizer, err := swap.NewLocalizer(swapConfig(cCtx).Locale)
	if err != nil {
		return err
	}
	wrapType := swap.GetWrapType(in, out)
	actionName, err := swap.GetActionName(localizer, wrapType)
	if err != nil {
		return err
	}

	return printJSON(cCtx, wrapTypeResult{
		WrapType:    wrapType.String(),
		IsWrap:      swap.IsWrapAction(wrapType),
		ActionName:  actionName,
		ElementName: swap.GetActionElementName(wrapType),
	})
}

func txInfoAction(cCtx *cli.Context) error {
	t, err := readTrade(cCtx)
	if err != nil {
		return err
	}
	info, err := swap.TradeToTransactionInfo(t)
	if err != nil {
		return err
	}
	return printJSON(cCtx, info)
}

type methodParamsResult struct {
	Router   string         `json:"router"`
	ChainID  uint64         `json:"chainId"`
	Testnet  bool           `json:"testnet"`
	To       common.Address `json:"to"`
	Calldata hexutil.Bytes  `json:"calldata"`
	Value    *hexutil.Big   `json:"value"`
	Deadline *big.Int       `json:"deadline,omitempty"`
}

func methodParamsAction(cCtx *cli.Context) error {
	config := swapConfig(cCtx)
	t, err := readTrade(cCtx)
	if err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	network, err := config.Network(t.InputCurrency().ChainID)
	if err != nil {
		return err
	}

	input := swap.SwapMethodParametersInput{
		Trade:                  t,
		UniversalRouterEnabled: config.UniversalRouterEnabled || cCtx.Bool(UniversalFlag),
	}
	if recipient := cCtx.String(RecipientFlag); recipient != "" {
		if !common.IsHexAddress(recipient) {
			return fmt.Errorf("invalid recipient %q", recipient)
		}
		input.Address = common.HexToAddress(recipient)
	}
	if path := cCtx.String(PermitFlag); path != "" {
		input.Permit = &routers.PermitOptions{}
		if err := readJSON(cCtx, path, input.Permit); err != nil {
			return err
		}
	}
	if path := cCtx.String(Permit2Flag); path != "" {
		input.Permit2Signature = &routers.Permit2Permit{}
		if err := readJSON(cCtx, path, input.Permit2Signature); err != nil {
			return err
		}
	}
	if config.DeadlineSeconds > 0 {
		input.Deadline = new(big.Int).SetUint64(uint64(time.Now().Unix()) + config.DeadlineSeconds)
	}

	methodParameters, err := swap.GetSwapMethodParameters(input)
	if err != nil {
		return errors.Wrap(err, "failed to encode swap")
	}

	universal := swap.UseUniversalRouter(input.UniversalRouterEnabled, input.Permit2Signature != nil)
	router := routers.LegacyRouterName
	if universal {
		router = routers.UniversalRouterName
	}
	return printJSON(cCtx, methodParamsResult{
		Router:   router,
		ChainID:  network.ChainID,
		Testnet:  walletCommon.IsTestnet(network.ChainID),
		To:       network.RouterAddress(universal),
		Calldata: methodParameters.Calldata,
		Value:    methodParameters.Value,
		Deadline: input.Deadline,
	})
}

func rateAction(cCtx *cli.Context) error {
	t, err := readTrade(cCtx)
	if err != nil {
		return err
	}
	formatter := swap.DefaultFormatter{}
	rate, err := swap.GetRateToDisplay(formatter, t, cCtx.Bool(InverseFlag))
	if err != nil {
		return err
	}

	w := cCtx.App.Writer
	fmt.Fprintln(w, rate)
	fmt.Fprintf(w, "in:  %s %s\n", formatter.FormatNumber(t.InputAmount.ToExact(), swap.NumberTypeTokenAmount), swap.GetSymbolDisplayText(t.InputCurrency().Symbol))
	fmt.Fprintf(w, "out: %s %s\n", formatter.FormatNumber(t.OutputAmount.ToExact(), swap.NumberTypeTokenAmount), swap.GetSymbolDisplayText(t.OutputCurrency().Symbol))
	return nil
}

func sumGasAction(cCtx *cli.Context) error {
	if cCtx.NArg() > 2 {
		return fmt.Errorf("expected at most two fees, got %d", cCtx.NArg())
	}
	sum, err := swap.SumGasFees(cCtx.Args().Get(0), cCtx.Args().Get(1))
	if err != nil {
		return err
	}
	fmt.Fprintln(cCtx.App.Writer, sum)
	return nil
}

func formStateAction(cCtx *cli.Context) error {
	state, err := swap.PrepareSwapFormState(cCtx.String(CurrencyIDFlag))
	if err != nil {
		return err
	}
	return printJSON(cCtx, state)
}
