package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	ConfigFlag     = "config"
	TradeFlag      = "trade"
	InFlag         = "in"
	OutFlag        = "out"
	RecipientFlag  = "recipient"
	UniversalFlag  = "universal"
	PermitFlag     = "permit"
	Permit2Flag    = "permit2"
	InverseFlag    = "inverse"
	CurrencyIDFlag = "currency-id"
)

func newApp() *cli.App {
	tradeFlag := &cli.StringFlag{
		Name:     TradeFlag,
		Aliases:  []string{"t"},
		Usage:    "Path of the trade JSON, - reads stdin",
		Required: true,
	}

	return &cli.App{
		Name:  "swap-tool",
		Usage: "Inspect and encode wallet swaps",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    ConfigFlag,
				Aliases: []string{"c"},
				Usage:   "Path of a swap config JSON overriding the defaults",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:  "wrap-type",
				Usage: "Classify a currency pair as wrap, unwrap or swap",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: InFlag, Usage: "Input currency id, e.g. 1-0x0000000000000000000000000000000000000000", Required: true},
					&cli.StringFlag{Name: OutFlag, Usage: "Output currency id", Required: true},
				},
				Action: wrapTypeAction,
			},
			{
				Name:   "tx-info",
				Usage:  "Print the transaction info recorded for a trade",
				Flags:  []cli.Flag{tradeFlag},
				Action: txInfoAction,
			},
			{
				Name:  "method-params",
				Usage: "Encode the router call executing a trade",
				Flags: []cli.Flag{
					tradeFlag,
					&cli.StringFlag{Name: RecipientFlag, Usage: "Address receiving the output, defaults to the sender"},
					&cli.BoolFlag{Name: UniversalFlag, Usage: "Use the universal router"},
					&cli.StringFlag{Name: PermitFlag, Usage: "Path of a token permit JSON for the legacy router"},
					&cli.StringFlag{Name: Permit2Flag, Usage: "Path of a signed Permit2 permit JSON"},
				},
				Action: methodParamsAction,
			},
			{
				Name:  "rate",
				Usage: "Print the execution rate and amounts of a trade",
				Flags: []cli.Flag{
					tradeFlag,
					&cli.BoolFlag{Name: InverseFlag, Aliases: []string{"i"}, Usage: "Show the price of the output currency"},
				},
				Action: rateAction,
			},
			{
				Name:      "sum-gas",
				Usage:     "Add two gas fees",
				ArgsUsage: "[fee] [fee]",
				Action:    sumGasAction,
			},
			{
				Name:  "form-state",
				Usage: "Print the swap form state seeded with a currency",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: CurrencyIDFlag, Usage: "Currency id of the input side"},
				},
				Action: formStateAction,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
