// Package report filters the sales ledger and assembles the report model.
package report

import (
	"time"

	"github.com/bussepricing/contractsheet/internal/domain"
)

// Aggregate sums quantity and revenue for one item over an inclusive date
// window, restricted to the contract's customer codes. Item match is exact
// text; the customer number is reduced to its code before the membership
// test. No matches means zero sums.
func Aggregate(records []domain.SalesRecord, item string, codes map[string]bool, start, end time.Time) (qty, sales float64) {
	for _, rec := range records {
		if rec.Item != item {
			continue
		}
		if !codes[domain.CustomerCode(rec.CustNbr)] {
			continue
		}
		if rec.InvoiceDate.Before(start) || rec.InvoiceDate.After(end) {
			continue
		}
		qty += rec.Quantity
		sales += rec.Sales
	}
	return qty, sales
}

func codeSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}
