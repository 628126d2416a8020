package products

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Summary reports the combined profit of an owner's catalog.
type Summary struct {
	Total     decimal.Decimal `json:"total"`
	Formatted string          `json:"formatted"`
	Count     int             `json:"count"`
}

// TotalProfit sums price times units sold across items. Empty input yields zero.
func TotalProfit(items []Product) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Profit())
	}
	return total
}

func NewSummary(items []Product) *Summary {
	total := TotalProfit(items)
	return &Summary{
		Total:     total,
		Formatted: FormatPrice(total),
		Count:     len(items),
	}
}

// FormatPrice renders an amount as US dollars, e.g. "$1,234.50".
func FormatPrice(amount decimal.Decimal) string {
	return printer.Sprintf("$%.2f", amount.Round(2).InexactFloat64())
}
