package ledger

import (
	"time" // Date parsing and formatting

	"golang.org/x/text/language" // en-US locale tag
	"golang.org/x/text/message"  // Locale-aware number formatting
)

// Display layout for dates: year, abbreviated month, day, hour, minute
const dateLayout = "Jan 2, 2006, 03:04 PM"

// Printer for fixed en-US formatting
var usd = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount as US dollars with grouped thousands and
// two decimals, e.g. "$1,234.50". Pure; no side effects.
func FormatCurrency(amount float64) string {
	// Negative amounts carry a leading sign outside the currency symbol
	if amount < 0 {
		return "-" + FormatCurrency(-amount)
	}
	return usd.Sprintf("$%.2f", amount) // Grouped per the en-US locale
}

// FormatDate renders an ISO-8601 timestamp in the fixed human-readable
// display format, e.g. "Jan 1, 2024, 12:00 AM". Unparseable input passes
// through unchanged. Pure; no side effects.
func FormatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso) // ISO-8601 creation timestamp
	if err != nil {
		return iso // Leave anything unparseable as-is
	}
	return t.Format(dateLayout)
}
