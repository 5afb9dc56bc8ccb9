package loader

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bussepricing/contractsheet/internal/window"
)

func testWindows() window.Windows {
	return window.Compute(time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC))
}

func TestLoadSales(t *testing.T) {
	csv := "ITEM_PART_NBR,CUST_NBR,INV_SO_DATE,QUANTITY,SALES,EXTRA\n" +
		"A100,00123*1,03-15-26,5,125.50,x\n" +
		"A200,00456,11-02-25,,,\n"

	records, err := LoadSales(writeFile(t, "sales.for.period.csv", csv), testWindows())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "A100", records[0].Item)
	assert.Equal(t, "00123*1", records[0].CustNbr)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), records[0].InvoiceDate)
	assert.Equal(t, 5.0, records[0].Quantity)
	assert.Equal(t, 125.50, records[0].Sales)

	// Blank numeric cells read as zero.
	assert.Equal(t, 0.0, records[1].Quantity)
	assert.Equal(t, 0.0, records[1].Sales)
}

func TestLoadSalesMissingRequiredColumn(t *testing.T) {
	csv := "ITEM_PART_NBR,CUST_NBR,QUANTITY,SALES\nA100,123,5,10\n"
	_, err := LoadSales(writeFile(t, "sales.for.period.csv", csv), testWindows())

	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "INV_SO_DATE", malformed.Column)
}

func TestLoadSalesBadDate(t *testing.T) {
	csv := "ITEM_PART_NBR,CUST_NBR,INV_SO_DATE,QUANTITY,SALES\n" +
		"A100,123,2026-03-15,5,10\n"
	_, err := LoadSales(writeFile(t, "sales.for.period.csv", csv), testWindows())

	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "INV_SO_DATE", malformed.Column)
	assert.Equal(t, 2, malformed.Row)
}

func TestLoadSalesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.for.period.csv")
	_, err := LoadSales(path, testWindows())

	var missing *MissingInputError
	require.ErrorAs(t, err, &missing)

	// The instructions include the suggested export dates: a 24-month span
	// ending on the last day of July 2026.
	assert.Contains(t, err.Error(), "GET.SALES.FOR.MDB")
	assert.Contains(t, err.Error(), "080124")
	assert.Contains(t, err.Error(), "073126")
}

func TestCombinedInstructionsListAllSteps(t *testing.T) {
	text := CombinedInstructions(testWindows())
	assert.Contains(t, text, "Step 0: run `GET.SALES.FOR.MDB` in ROI")
	assert.Contains(t, text, "Step 1: run `GET.CONTRACT.INFO` in ROI")
	assert.Contains(t, text, `Step 2: Type "y" and hit "Enter" to continue below`)
}
