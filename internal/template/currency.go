package template

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter renders currency-typed values for one locale and
// currency unit. The default pair is kk-KZ / KZT; both are parametric
// through config.
type CurrencyFormatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewCurrencyFormatter parses a BCP 47 locale tag and an ISO 4217
// currency code.
func NewCurrencyFormatter(locale, code string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}
	return &CurrencyFormatter{unit: unit, printer: message.NewPrinter(tag)}, nil
}

// MustCurrencyFormatter is for built-in defaults known to be valid.
func MustCurrencyFormatter(locale, code string) *CurrencyFormatter {
	f, err := NewCurrencyFormatter(locale, code)
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders an amount with the currency symbol and no fraction
// digits, matching the product's tenge formatting.
func (f *CurrencyFormatter) Format(amount float64) string {
	rounded := int64(math.Round(amount))
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(rounded)))
}
