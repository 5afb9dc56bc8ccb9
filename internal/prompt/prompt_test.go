package prompt

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, time.August, d, 9, 0, 0, 0, time.UTC)
}

func TestReminderEarlyInMonth(t *testing.T) {
	var out bytes.Buffer
	Reminder(&out, day(3))
	assert.Contains(t, out.String(), "GET.SALES.FOR.MDB")
}

func TestReminderLaterInMonth(t *testing.T) {
	var out bytes.Buffer
	Reminder(&out, day(10))
	assert.Empty(t, out.String())
}

func TestConfirmAcceptsYes(t *testing.T) {
	var out bytes.Buffer
	ok := Confirm(strings.NewReader("yes\n"), &out, day(15))

	assert.True(t, ok)
	assert.Contains(t, out.String(), "Step 0: run `GET.SALES.FOR.MDB` in ROI")
	assert.Contains(t, out.String(), "Are you ready to continue? (y/n):")
}

func TestConfirmRepromptsUntilYes(t *testing.T) {
	var out bytes.Buffer
	ok := Confirm(strings.NewReader("n\nmaybe\nY\n"), &out, day(15))

	assert.True(t, ok)
	// The runbook is reprinted on every refusal.
	assert.Equal(t, 3, strings.Count(out.String(), "Are you ready to continue?"))
}

func TestConfirmFalseOnEOF(t *testing.T) {
	var out bytes.Buffer
	ok := Confirm(strings.NewReader("n\n"), &out, day(15))
	assert.False(t, ok)
}
