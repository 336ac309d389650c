package bigint

import (
	"fmt"
	"math/big"
	"strings"
)

// BigInt marshals to and from a JSON decimal string.
type BigInt struct {
	*big.Int
}

func NewBigInt(i *big.Int) *BigInt {
	return &BigInt{Int: i}
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	if b.Int == nil {
		return []byte("null"), nil
	}
	return []byte("\"" + b.String() + "\""), nil
}

func (b *BigInt) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	z, err := ParseInteger(strings.Trim(string(p), "\""))
	if err != nil {
		return err
	}
	b.Int = z
	return nil
}

// ParseInteger parses a decimal or 0x prefixed hexadecimal integer. Leading
// zeros in decimal input are not treated as an octal prefix.
func ParseInteger(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}
	z, ok := new(big.Int).SetString(digits, base)
	if !ok || digits == "" {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return z, nil
}
