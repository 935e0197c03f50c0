package ledger

import (
	"strconv" // Amount formatting
	"strings" // CSV assembly
	"time"    // Filename date

	"wallet_tracker/internal/domain" // Importing domain models
)

// CSV header row
const csvHeader = "Date,Type,Amount\n"

// BuildCSV renders transactions as a Date,Type,Amount document in the order
// supplied by the caller. Fields are comma-separated with no quoting; every
// field is machine-generated, never free text, so delimiter escaping is not
// needed even though formatted dates themselves contain commas.
func BuildCSV(transactions []domain.Transaction) []byte {
	var b strings.Builder
	b.WriteString(csvHeader) // Header line first
	for _, t := range transactions {
		b.WriteString(FormatDate(t.Date)) // Human-readable date
		b.WriteByte(',')
		b.WriteString(t.Type) // Literal type string
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(t.Amount, 'f', -1, 64)) // Decimal amount as text
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// CSVFilename returns the export attachment name for the given time,
// e.g. wallet-transactions-2024-01-31.csv.
func CSVFilename(now time.Time) string {
	return "wallet-transactions-" + now.Format("2006-01-02") + ".csv"
}
