package loader

import (
	"fmt"
	"strings"

	"github.com/bussepricing/contractsheet/internal/window"
)

// The instruction blocks below are an operator-facing contract: they tell a
// non-technical user exactly which ROI report to run and what to type. Keep
// the wording stable.

const bannerLine = "**********************************************************************"

const contractSteps = `    Step 1: run ` + "`GET.CONTRACT.INFO`" + ` in ROI

        * Input Contract Number
        * Hit "Enter" and Hit "F3" to continue

    Step 2: Type "y" and hit "Enter" to continue below`

func salesSteps(w window.Windows) string {
	return fmt.Sprintf(`    Step 0: run `+"`GET.SALES.FOR.MDB`"+` in ROI

        > Perform step 0 *ONCE A MONTH* on/about 1st of the month <

        Calculating dates for you to use...

        * Input Sales Start Date -> %s  <- and Hit "Enter"
        * Input Sales End Date -> %s  <- and Hit "Enter"
        * Accept `+"`ALL`"+` for customers and hit "Enter"
        * Accept `+"`ALL`"+` for items and hit "Enter"
        * Hit "F3" to continue

        (This should take 2-3 minutes as it is a large query)`,
		w.ExportStart().Format("010206"), w.ExportEnd().Format("010206"))
}

func banner(body string) string {
	return bannerLine + "\n\n" + body + "\n\n" + bannerLine + "\n"
}

// ContractInstructions is the remedial text shown when the contract export
// is missing.
func ContractInstructions() string {
	return banner(contractSteps)
}

// SalesInstructions is the remedial text shown when the sales export is
// missing, including the suggested export date range.
func SalesInstructions(w window.Windows) string {
	return banner(salesSteps(w))
}

// CombinedInstructions is the full step 0/1/2 runbook printed before the
// confirmation gate.
func CombinedInstructions(w window.Windows) string {
	return banner(strings.Join([]string{salesSteps(w), contractSteps}, "\n\n"))
}
