package trade

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Percent is an unreduced fraction of one hundred percent.
type Percent struct {
	Numerator   *big.Int
	Denominator *big.Int
}

func NewPercent(numerator, denominator int64) *Percent {
	return &Percent{
		Numerator:   big.NewInt(numerator),
		Denominator: big.NewInt(denominator),
	}
}

// Equals compares the values of both fractions.
func (p *Percent) Equals(other *Percent) bool {
	left := new(big.Int).Mul(p.Numerator, other.Denominator)
	right := new(big.Int).Mul(other.Numerator, p.Denominator)
	return left.Cmp(right) == 0
}

// ToDecimal returns the percentage value, e.g. 0.5 for 50/10000.
func (p *Percent) ToDecimal() decimal.Decimal {
	if p.Denominator.Sign() == 0 {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(p.Numerator, 2).DivRound(decimal.NewFromBigInt(p.Denominator, 0), 18)
}

func (p *Percent) String() string {
	return fmt.Sprintf("%s/%s", p.Numerator, p.Denominator)
}
