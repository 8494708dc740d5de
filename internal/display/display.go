// Package display formats amounts for people.
package display

import (
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatAmount formats amount in the currency and locale of prefs, e.g.
// "$ 1,234.50" for USD in American English.
//
// Unknown currencies are printed with two decimals and their code.
func FormatAmount(amount decimal.Decimal, prefs models.Prefs) string {
	p := message.NewPrinter(prefs.Locale)

	unit, err := currency.ParseISO(prefs.Currency)
	if err != nil {
		return p.Sprintf("%s %v", prefs.Currency, number.Decimal(amount.InexactFloat64(), number.Scale(2)))
	}

	scale, _ := currency.Standard.Rounding(unit)
	symbol := p.Sprint(currency.Symbol(unit))

	return p.Sprintf("%s %v", symbol, number.Decimal(amount.Round(int32(scale)).InexactFloat64(), number.Scale(scale)))
}
