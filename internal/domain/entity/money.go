package entity

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places stored for every amount.
const MoneyScale = 2

// FitsMoneyScale reports whether d can be stored without losing precision.
// Trailing zeros are fine: 10.500 fits, 10.505 does not.
func FitsMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}
