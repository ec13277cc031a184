// Package format holds the single canonical presentation of money and dates.
// Every surface that shows a value (report responses, receipts, the PDF
// exporter) goes through the same Formatter so outputs never drift apart.
package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ErrInvalidCurrency = errors.New("invalid currency value")

// Formatter renders currency and dates for one locale. The zero value is not
// usable; construct with New or Default.
type Formatter struct {
	printer    *message.Printer
	symbol     string
	dateLayout string
	months     [12]string
}

// Default returns the pt-BR formatter used by the app: "R$ 1.234,56" and
// dd/mm/yyyy dates, matching the receipts the business already hands out.
func Default() *Formatter {
	return New(language.BrazilianPortuguese, "R$", "02/01/2006", [12]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	})
}

func New(tag language.Tag, symbol, dateLayout string, months [12]string) *Formatter {
	return &Formatter{
		printer:    message.NewPrinter(tag),
		symbol:     symbol,
		dateLayout: dateLayout,
		months:     months,
	}
}

// Currency renders a monetary value with the locale's digit grouping and two
// fraction digits, e.g. 1234.5 -> "R$ 1.234,50".
func (f *Formatter) Currency(v float64) string {
	n := f.printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
	return f.symbol + " " + n
}

// ParseCurrency is the inverse of Currency within two-decimal precision. It
// accepts the symbol and grouping separators Currency emits.
func (f *Formatter) ParseCurrency(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, f.symbol)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, ErrInvalidCurrency
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidCurrency
	}
	return v, nil
}

// Date renders a calendar date, e.g. 2026-08-31 -> "31/08/2026".
func (f *Formatter) Date(t time.Time) string {
	return t.Format(f.dateLayout)
}

// MonthLabel renders a report heading such as "agosto de 2026".
func (f *Formatter) MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s de %d", f.months[month-1], year)
}
