// Package window computes the rolling sales windows the report aggregates
// over. Every date here is a pure function of "today" so the loader's
// operator instructions and the aggregator always agree.
package window

import "time"

// Windows holds the two 12-month aggregation windows. Both are month
// aligned and inclusive on both ends: the current window runs from the
// first day of the month 12 months back through the last day of the
// previous month, and the prior window is the 12 months before that.
type Windows struct {
	CurrentStart time.Time
	CurrentEnd   time.Time
	PriorStart   time.Time
	PriorEnd     time.Time
}

// Compute derives the windows from today. Anchoring on the first of the
// current month keeps the math correct across month-length differences
// (a February end date stays in February).
func Compute(today time.Time) Windows {
	anchor := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	currentStart := anchor.AddDate(0, -12, 0)
	return Windows{
		CurrentStart: currentStart,
		CurrentEnd:   anchor.AddDate(0, 0, -1),
		PriorStart:   anchor.AddDate(0, -24, 0),
		PriorEnd:     currentStart.AddDate(0, 0, -1),
	}
}

// ExportStart is the start date the operator should feed the sales export:
// the full 24-month span begins where the prior window does.
func (w Windows) ExportStart() time.Time { return w.PriorStart }

// ExportEnd is the end date for the sales export.
func (w Windows) ExportEnd() time.Time { return w.CurrentEnd }
