package commons

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"senthur/internal/domain"
)

var indianEnglish = language.MustParse("en-IN")

// FormatAmount renders a rupee figure with Indian digit grouping and at most
// two fraction digits, e.g. 150000 -> "1,50,000".
func FormatAmount(v float64) string {
	return message.NewPrinter(indianEnglish).Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatDate turns a YYYY-MM-DD date into DD-MM-YYYY. Empty input renders as
// "---"; unparseable input is returned unchanged.
func FormatDate(v string) string {
	if v == "" {
		return "---"
	}
	t, err := time.Parse(domain.DateLayout, v)
	if err != nil {
		return v
	}
	return t.Format("02-01-2006")
}
