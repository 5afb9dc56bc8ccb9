package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name         string
		today        time.Time
		currentStart time.Time
		currentEnd   time.Time
		priorStart   time.Time
		priorEnd     time.Time
	}{
		{
			name:         "mid month",
			today:        date(2026, time.August, 15),
			currentStart: date(2025, time.August, 1),
			currentEnd:   date(2026, time.July, 31),
			priorStart:   date(2024, time.August, 1),
			priorEnd:     date(2025, time.July, 31),
		},
		{
			name:         "first of month",
			today:        date(2026, time.January, 1),
			currentStart: date(2025, time.January, 1),
			currentEnd:   date(2025, time.December, 31),
			priorStart:   date(2024, time.January, 1),
			priorEnd:     date(2024, time.December, 31),
		},
		{
			name:         "february end stays in february",
			today:        date(2026, time.March, 10),
			currentStart: date(2025, time.March, 1),
			currentEnd:   date(2026, time.February, 28),
			priorStart:   date(2024, time.March, 1),
			priorEnd:     date(2025, time.February, 28),
		},
		{
			name:         "leap february",
			today:        date(2024, time.March, 5),
			currentStart: date(2023, time.March, 1),
			currentEnd:   date(2024, time.February, 29),
			priorStart:   date(2022, time.March, 1),
			priorEnd:     date(2023, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Compute(tt.today)
			assert.Equal(t, tt.currentStart, w.CurrentStart)
			assert.Equal(t, tt.currentEnd, w.CurrentEnd)
			assert.Equal(t, tt.priorStart, w.PriorStart)
			assert.Equal(t, tt.priorEnd, w.PriorEnd)
		})
	}
}

func TestComputeWindowsAreDisjointAndTwelveMonths(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		w := Compute(date(2026, month, 17))

		// The prior window ends the day before the current one starts.
		assert.Equal(t, w.CurrentStart, w.PriorEnd.AddDate(0, 0, 1))

		// Each window spans exactly 12 calendar months, boundaries inclusive.
		assert.Equal(t, w.CurrentEnd, w.CurrentStart.AddDate(0, 12, 0).AddDate(0, 0, -1))
		assert.Equal(t, w.PriorEnd, w.PriorStart.AddDate(0, 12, 0).AddDate(0, 0, -1))
	}
}

func TestExportRangeCoversBothWindows(t *testing.T) {
	w := Compute(date(2026, time.August, 15))
	assert.Equal(t, w.PriorStart, w.ExportStart())
	assert.Equal(t, w.CurrentEnd, w.ExportEnd())
}
