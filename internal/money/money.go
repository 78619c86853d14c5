// Package money renders monetary amounts with two decimals and the locale's
// number separators (e.g. "1 282,86" under fr, "1,282.86" under en).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts for one locale and currency.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// NewFormatter builds a Formatter for a BCP 47 locale tag. An unparseable
// tag falls back to French.
func NewFormatter(locale, currency string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.French
	}
	return &Formatter{printer: message.NewPrinter(tag), currency: currency}
}

// Format renders d with exactly two fraction digits.
func (f *Formatter) Format(d decimal.Decimal) string {
	v, _ := d.RoundBank(2).Float64()
	return f.printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatWithCurrency renders d followed by the currency symbol.
func (f *Formatter) FormatWithCurrency(d decimal.Decimal) string {
	return f.Format(d) + " " + f.currency
}
