package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GSTNilOnReverseCharge is the sentinel applicableGST value meaning the tax
// liability shifts to the counterparty. When set, the submitted gstAmount is
// taken as-is instead of being derived from a percentage.
const GSTNilOnReverseCharge = "NIL (On reverse charge)"

// ParseGSTPercent extracts the percentage from an applicableGST string such as
// "18.0%" or "12%". Returns ok=false for the NIL sentinel, empty strings, and
// anything that does not parse as a number.
func ParseGSTPercent(applicableGST string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(applicableGST)
	if s == "" || strings.EqualFold(s, GSTNilOnReverseCharge) || strings.HasPrefix(strings.ToUpper(s), "NIL") {
		return decimal.Zero, false
	}
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	pct, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return pct, true
}
