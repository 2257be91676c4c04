package display

import (
	"fmt"

	"PaperFund/internal/model"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatBalance renders an amount in the selected display currency.
// BTC shows all eight decimal places; USD converts through the fixed
// exchange rate and renders as money.
func FormatBalance(amount float64, cur model.Currency, usdRate float64) string {
	if cur == model.CurrencyUSD {
		cents := decimal.NewFromFloat(amount).
			Mul(decimal.NewFromFloat(usdRate)).
			Mul(decimal.NewFromInt(100)).
			Round(0).IntPart()
		return money.New(cents, money.USD).Display()
	}
	return "₿ " + decimal.NewFromFloat(amount).StringFixed(8)
}

// FormatPercent renders a signed percentage with two decimals.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatAmount renders a raw BTC quantity without the currency marker.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(8)
}
