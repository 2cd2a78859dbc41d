package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var money = accounting.Accounting{Symbol: "$", Precision: 2}

// Money renders a decimal amount for display, e.g. "$1,234.50".
func Money(amount decimal.Decimal) string {
	return money.FormatMoneyDecimal(amount)
}
