package swap

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

type NumberType int

const (
	NumberTypeSwapPrice NumberType = iota
	NumberTypeTokenAmount
)

// NumberFormatter renders numbers for display.
type NumberFormatter interface {
	FormatNumber(value decimal.Decimal, numberType NumberType) string
}

const (
	significantDigits  = 6
	priceFractionMin   = 2
	compactFractionLen = 2
	maxSymbolLength    = 6
)

var (
	minSwapPrice     = decimal.New(1, -5)
	compactThreshold = decimal.New(1, 5)
	maxCompactPrice  = decimal.New(1, 15)
	thousand         = decimal.New(1, 3)

	compactSuffixes = []string{"", "K", "M", "B", "T"}
)

// DefaultFormatter formats numbers in the en-US style.
type DefaultFormatter struct{}

func (DefaultFormatter) FormatNumber(value decimal.Decimal, numberType NumberType) string {
	switch numberType {
	case NumberTypeTokenAmount:
		return formatTokenAmount(value)
	default:
		return formatSwapPrice(value)
	}
}

func formatSwapPrice(value decimal.Decimal) string {
	switch {
	case value.IsZero():
		return "0"
	case value.LessThan(minSwapPrice):
		return "<" + minSwapPrice.String()
	case value.LessThan(compactThreshold):
		return formatSignificant(value, significantDigits, priceFractionMin)
	case value.LessThan(maxCompactPrice):
		return formatCompact(value)
	default:
		return ">999T"
	}
}

func formatTokenAmount(value decimal.Decimal) string {
	if value.IsZero() {
		return "0"
	}
	return formatSignificant(value, significantDigits, 0)
}

// roundSignificant rounds value to sig significant digits.
func roundSignificant(value decimal.Decimal, sig int32) decimal.Decimal {
	mostSignificant := int32(value.NumDigits()) + value.Exponent() - 1
	return value.Round(sig - 1 - mostSignificant)
}

func formatSignificant(value decimal.Decimal, sig int32, minFraction int32) string {
	rounded := roundSignificant(value, sig)
	text := rounded.String()
	if _, fraction, _ := strings.Cut(text, "."); int32(len(fraction)) < minFraction {
		text = rounded.StringFixed(minFraction)
	}
	return groupThousands(text)
}

// formatCompact writes value with a K, M, B or T suffix and two fraction digits.
func formatCompact(value decimal.Decimal) string {
	scaled := value.Round(compactFractionLen)
	suffix := 0
	for suffix < len(compactSuffixes)-1 && scaled.Abs().GreaterThanOrEqual(thousand) {
		value = value.Div(thousand)
		scaled = value.Round(compactFractionLen)
		suffix++
	}
	return scaled.StringFixed(compactFractionLen) + compactSuffixes[suffix]
}

func groupThousands(text string) string {
	integer, fraction, hasFraction := strings.Cut(text, ".")
	parsed, err := decimal.NewFromString(integer)
	if err != nil {
		return text
	}
	grouped := humanize.BigComma(parsed.BigInt())
	if hasFraction {
		return grouped + "." + fraction
	}
	return grouped
}

// GetSymbolDisplayText shortens long symbols to six characters and an ellipsis.
func GetSymbolDisplayText(symbol string) string {
	runes := []rune(symbol)
	if len(runes) > maxSymbolLength {
		return string(runes[:maxSymbolLength]) + "…"
	}
	return symbol
}
