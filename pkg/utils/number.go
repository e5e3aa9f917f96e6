package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// PercentChange retorna a variação percentual de current sobre baseline,
// ou nil quando a base é zero.
func PercentChange(current, baseline decimal.Decimal) *float64 {
	if baseline.IsZero() {
		return nil
	}

	change, _ := current.Sub(baseline).Div(baseline).Mul(decimal.NewFromInt(100)).Float64()
	change = RoundWithTwoDecimalPlace(change)
	return &change
}
