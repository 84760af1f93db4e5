package format

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money renders an amount with two decimals and thousands grouping, e.g. 1,234.50.
func Money(d decimal.Decimal) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// SignClass is the css class used for revenue colouring.
func SignClass(d decimal.Decimal) string {
	if d.IsNegative() {
		return "negative"
	}
	return "positive"
}

// RateBadge turns a rate group such as "35%" into its badge key "35".
func RateBadge(rateGroup string) string {
	return strings.ReplaceAll(rateGroup, "%", "")
}
