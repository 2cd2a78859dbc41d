package calc

import "github.com/shopspring/decimal"

func CalculateDiscount(baseTotal, discountPercent decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(discountPercent).Div(decimal.NewFromInt(100)).Round(2)
}

func CartTotal(lineTotals []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, t := range lineTotals {
		total = total.Add(t)
	}
	return total.Round(2)
}
