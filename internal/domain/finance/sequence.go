package finance

import (
	"fmt"
	"time"
)

// Document number prefixes
const (
	PrefixInvoice = "INV"
	PrefixReceipt = "RCP"
)

// FormatDocumentNumber renders a sequenced number as
// {PREFIX}-{YYYYMMDD}-{NNNN}, zero-padding the suffix to 4 digits.
func FormatDocumentNumber(prefix string, day time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, day.Format("20060102"), seq)
}
