package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/status-im/wallet-swap/logutils"
	"github.com/status-im/wallet-swap/services/wallet/swap"
)

const usdcDaiTrade = "testdata/usdc_dai.json"

func run(t *testing.T, args ...string) (string, error) {
	t.Cleanup(func() { logutils.OverrideRootLogger(nil) })

	app := newApp()
	out := &bytes.Buffer{}
	app.Writer = out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"swap-tool"}, args...))
	return out.String(), err
}

func TestSumGasCommand(t *testing.T) {
	out, err := run(t, "sum-gas", "21000", "0x10")
	require.NoError(t, err)
	require.Equal(t, "21016\n", out)

	out, err = run(t, "sum-gas", "", "5")
	require.NoError(t, err)
	require.Equal(t, "5\n", out)

	_, err = run(t, "sum-gas", "abc", "1")
	require.ErrorIs(t, err, swap.ErrInvalidGasFee)
}

func TestWrapTypeCommand(t *testing.T) {
	out, err := run(t, "wrap-type",
		"--in", "1-0x0000000000000000000000000000000000000000",
		"--out", "1-0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	require.NoError(t, err)

	var result wrapTypeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, wrapTypeResult{WrapType: "wrap", IsWrap: true, ActionName: "Wrap", ElementName: swap.ElementNameWrap}, result)
}

func TestWrapTypeCommandUsesConfiguredLocale(t *testing.T) {
	config := filepath.Join(t.TempDir(), "swap.json")
	require.NoError(t, os.WriteFile(config, []byte(`{"Locale": "de", "LogSettings": {"Enabled": false}}`), 0600))

	out, err := run(t, "--config", config, "wrap-type",
		"--in", "1-0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		"--out", "1-0x6B175474E89094C44Da98b954EedeAC495271d0F")
	require.NoError(t, err)
	require.Contains(t, out, `"actionName": "Tauschen"`)
	require.Contains(t, out, `"wrapType": "not-applicable"`)
}

func TestTxInfoCommand(t *testing.T) {
	out, err := run(t, "tx-info", "--trade", usdcDaiTrade)
	require.NoError(t, err)

	var info swap.SwapTransactionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.Equal(t, "1000000000", info.InputCurrencyAmountRaw)
	require.Equal(t, "994029850746268656716", info.MinimumOutputCurrencyAmountRaw)
	require.Equal(t, "quote-1", info.QuoteID)
}

func TestRateCommand(t *testing.T) {
	out, err := run(t, "rate", "--trade", usdcDaiTrade)
	require.NoError(t, err)
	require.Equal(t, "1 USDC = 0.999 DAI\nin:  1,000 USDC\nout: 999 DAI\n", out)

	out, err = run(t, "rate", "--trade", usdcDaiTrade, "--inverse")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "1 DAI = 1.001 USDC\n"))
}

func TestMethodParamsCommand(t *testing.T) {
	out, err := run(t, "method-params", "--trade", usdcDaiTrade, "--universal",
		"--recipient", "0x1111111111111111111111111111111111111111")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, "universal", result["router"])
	require.Equal(t, "0x3fc91a3afd70395cd496c647d5a6cc9d4b2b7fad", result["to"])
	require.Equal(t, "0x0", result["value"])
	require.True(t, strings.HasPrefix(result["calldata"].(string), "0x3593564c"))
	require.NotNil(t, result["deadline"])
}

func TestMethodParamsCommandRejectsBadRecipient(t *testing.T) {
	_, err := run(t, "method-params", "--trade", usdcDaiTrade, "--recipient", "bob")
	require.Error(t, err)
}

func TestFormStateCommand(t *testing.T) {
	out, err := run(t, "form-state", "--currency-id", "10-0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85")
	require.NoError(t, err)
	require.JSONEq(t, `{
		"input": {"address": "0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85", "chainId": 10, "type": "currency"},
		"output": null,
		"exactCurrencyField": "input",
		"exactAmountToken": ""
	}`, out)

	out, err = run(t, "form-state")
	require.NoError(t, err)
	require.Equal(t, "null\n", out)
}
