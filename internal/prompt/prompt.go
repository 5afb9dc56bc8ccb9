// Package prompt handles the operator-facing terminal flow: the monthly
// reminder banner and the confirmation gate that blocks processing until
// the operator acknowledges the runbook.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bussepricing/contractsheet/internal/loader"
	"github.com/bussepricing/contractsheet/internal/window"
)

const reminderBanner = `
                        *-*-*-*-*-*-*-*-*-*-*-*-*
                        *                       *
                        *  Make Sure to Re-Run  *
                        *  ` + "`GET.SALES.FOR.MDB`" + `  *
                        *                       *
                        *-*-*-*-*-*-*-*-*-*-*-*-*
`

// Reminder prints the re-run banner during the first days of the month,
// when the monthly sales export is due.
func Reminder(w io.Writer, today time.Time) {
	if today.Day() <= 5 {
		fmt.Fprint(w, reminderBanner)
	}
}

// Confirm prints the full runbook and blocks until the operator answers
// with something starting with "y". Returns false when input ends first.
func Confirm(r io.Reader, w io.Writer, today time.Time) bool {
	win := window.Compute(today)
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, loader.CombinedInstructions(win))
		fmt.Fprintf(w, "    %s --\n        Are you ready to continue? (y/n):\t", today.Format("01/02/2006 15:04:05"))
		if !scanner.Scan() {
			return false
		}
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(scanner.Text())), "y") {
			return true
		}
	}
}
