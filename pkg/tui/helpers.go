package tui

import (
	"time"

	"github.com/shopspring/decimal"
)

// currencySymbols covers the selectable currencies; anything else falls
// back to the code itself.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

func fmtMoney(d decimal.Decimal, currency string) string {
	sym, ok := currencySymbols[currency]
	if !ok {
		return currency + " " + d.StringFixed(2)
	}
	return sym + d.StringFixed(2)
}

// fmtChange renders a period-over-period delta with its sign, e.g. "+4.2%".
func fmtChange(d decimal.Decimal) string {
	s := d.StringFixed(1) + "%"
	if d.Sign() >= 0 {
		return "+" + s
	}
	return s
}

func fmtDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}
