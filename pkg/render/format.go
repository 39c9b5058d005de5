// Package render formats tax results for people: amounts in 10,000-yen units
// for Japan, whole Australian dollars for Australia.
package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English) //nolint: gochecknoglobals

// Yen10k formats v (in 10,000-yen units) with thousands separators and the
// given number of decimals, e.g. "1,234.57 万円".
func Yen10k(v float64, decimals int) string {
	return printer.Sprintf("%v 万円", number.Decimal(v, number.Scale(decimals)))
}

// AUD formats v as whole dollars, e.g. "$60,000 AUD".
func AUD(v float64) string {
	return printer.Sprintf("$%v AUD", number.Decimal(v, number.Scale(0)))
}
