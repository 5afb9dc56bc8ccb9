// Package render lays out the pricing sheet workbook.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bussepricing/contractsheet/internal/domain"
)

const sheetName = "Sheet1"

// ColumnLabels is the fixed item-table header, in column order A through L.
var ColumnLabels = []string{
	"Item",
	"Description",
	"Min Qty",
	"UOM",
	"Unit Price",
	"Unit Cost",
	"Loaded Cost",
	"GP %",
	"Current Year CS",
	"Current Year $",
	"Previous Year CS",
	"Previous Year $",
}

var dateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"2006-01-02",
	"01-02-06",
	"1/2/06",
}

// Render builds the workbook and writes it to outDir as
// <contract number>.xlsx, overwriting any previous run. The contract number
// is the text before the first space in the header's contract field.
func Render(header domain.ContractHeader, rows []domain.ReportRow, outDir string) (string, error) {
	f, err := Workbook(header, rows, time.Now())
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(outDir, contractNumber(header.Number)+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// Workbook builds the single-sheet workbook in memory. asOf stamps the
// trailing cost footnote; everything else is a pure function of the inputs.
func Workbook(header domain.ContractHeader, rows []domain.ReportRow, asOf time.Time) (*excelize.File, error) {
	b := &builder{f: excelize.NewFile(), widths: make([]int, 12)}

	lastItemRow := 4 + len(rows)
	footnoteRow := lastItemRow + 4
	lastRow := lastItemRow + 5

	// Row 1: contract identity and term dates.
	b.setCell(1, 1, "Contract #")
	b.setCell(2, 1, header.Number)
	b.setCell(9, 1, "Contract Start:")
	b.setCell(10, 1, formatDate(header.StartDate))
	b.setCell(11, 1, "Contract End:")
	b.setCell(12, 1, formatDate(header.EndDate))

	// Row 2: customers, freight terms, and the two editable rate cells.
	b.setCell(1, 2, "Customers")
	b.setCell(2, 2, header.Customers)
	b.setCell(7, 2, "Freight Terms:")
	b.setCell(8, 2, header.FreightTerms)
	b.setCell(9, 2, "Commission %:")
	b.setCell(10, 2, header.Commission)
	b.setCell(11, 2, "Giveback %:")
	b.setCell(12, 2, header.Giveback)

	// Row 3 is a spacer; row 4 is the item-table header.
	for col, label := range ColumnLabels {
		b.setCell(col+1, 4, label)
	}

	for i, row := range rows {
		r := 5 + i
		b.setCell(1, r, row.Item)
		b.setCell(2, r, row.Description)
		b.setCell(3, r, row.MinQty)
		b.setCell(4, r, row.UOM)
		b.setCell(5, r, row.UnitPrice)
		b.setCell(6, r, row.UnitCost)
		b.setFormula(7, r, row.LoadedCostFormula)
		b.setFormula(8, r, row.GrossProfitFormula)
		b.setCell(9, r, row.CurrentQty)
		b.setCell(10, r, row.CurrentSales)
		b.setCell(11, r, row.PriorQty)
		b.setCell(12, r, row.PriorSales)
	}

	// Widths are sized to the table content only; the footnote below the
	// table does not stretch its column.
	b.applyWidths()
	b.setCell(2, footnoteRow, fmt.Sprintf("* costs as of %s", asOf.Format("01/02/2006")))

	b.applyStyles(len(rows), lastRow)
	b.pageSetup(lastRow)

	if b.err != nil {
		b.f.Close()
		return nil, fmt.Errorf("build workbook: %w", b.err)
	}
	return b.f, nil
}

// builder wraps the excelize file with sticky error handling so the layout
// code reads top to bottom.
type builder struct {
	f      *excelize.File
	err    error
	widths []int
}

func (b *builder) setCell(col, row int, v any) {
	if b.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		b.err = err
		return
	}
	if err := b.f.SetCellValue(sheetName, cell, v); err != nil {
		b.err = err
		return
	}
	if n := len(fmt.Sprint(v)); n > b.widths[col-1] {
		b.widths[col-1] = n
	}
}

func (b *builder) setFormula(col, row int, formula string) {
	if b.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		b.err = err
		return
	}
	b.err = b.f.SetCellFormula(sheetName, cell, strings.TrimPrefix(formula, "="))
}

func (b *builder) style(s *excelize.Style) int {
	if b.err != nil {
		return 0
	}
	id, err := b.f.NewStyle(s)
	if err != nil {
		b.err = err
	}
	return id
}

func (b *builder) setStyle(hCell, vCell string, styleID int) {
	if b.err != nil {
		return
	}
	b.err = b.f.SetCellStyle(sheetName, hCell, vCell, styleID)
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	border := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		border = append(border, excelize.Border{Type: side, Color: "000000", Style: 1})
	}
	return border
}

func (b *builder) applyStyles(itemCount, lastRow int) {
	currencyFmt := "$#,##0.00"
	percentFmt := "0.00%"
	integerFmt := "#,##0"

	base := b.style(&excelize.Style{Border: thinBorder()})
	bold := b.style(&excelize.Style{Border: thinBorder(), Font: &excelize.Font{Bold: true}})
	right := b.style(&excelize.Style{Border: thinBorder(), Alignment: &excelize.Alignment{Horizontal: "right"}})
	boldRight := b.style(&excelize.Style{
		Border:    thinBorder(),
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	currency := b.style(&excelize.Style{Border: thinBorder(), CustomNumFmt: &currencyFmt})
	percent := b.style(&excelize.Style{Border: thinBorder(), CustomNumFmt: &percentFmt})
	integer := b.style(&excelize.Style{Border: thinBorder(), CustomNumFmt: &integerFmt})
	// The two operator-editable rate cells get a yellow fill so they stand
	// out on the sheet.
	editableRate := b.style(&excelize.Style{
		Border:       thinBorder(),
		Alignment:    &excelize.Alignment{Horizontal: "right"},
		CustomNumFmt: &percentFmt,
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"FFFF00"}, Pattern: 1},
	})

	// Thin border over the whole print area; specific ranges override below.
	b.setStyle("A1", fmt.Sprintf("L%d", lastRow), base)

	// Header rows: label columns bold, value columns right-aligned, odd
	// columns past B both.
	for row := 1; row <= 2; row++ {
		b.setStyle(fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), bold)
		for col := 3; col <= 12; col++ {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			if col%2 == 1 {
				b.setStyle(cell, cell, boldRight)
			} else {
				b.setStyle(cell, cell, right)
			}
		}
	}

	b.setStyle("A4", "L4", bold)

	if itemCount > 0 {
		first, last := 5, 4+itemCount
		for _, col := range []string{"E", "F", "G", "J", "L"} {
			b.setStyle(fmt.Sprintf("%s%d", col, first), fmt.Sprintf("%s%d", col, last), currency)
		}
		b.setStyle(fmt.Sprintf("H%d", first), fmt.Sprintf("H%d", last), percent)
		for _, col := range []string{"I", "K"} {
			b.setStyle(fmt.Sprintf("%s%d", col, first), fmt.Sprintf("%s%d", col, last), integer)
		}
	}

	b.setStyle("J2", "J2", editableRate)
	b.setStyle("L2", "L2", editableRate)
}

func (b *builder) applyWidths() {
	if b.err != nil {
		return
	}
	for i, width := range b.widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			b.err = err
			return
		}
		if err := b.f.SetColWidth(sheetName, name, name, float64(width+2)); err != nil {
			b.err = err
			return
		}
	}
	// Fixed overrides keep the narrow UOM column and the numeric columns
	// readable regardless of content.
	if err := b.f.SetColWidth(sheetName, "D", "D", 8); err != nil {
		b.err = err
		return
	}
	b.err = b.f.SetColWidth(sheetName, "E", "L", 18)
}

func (b *builder) pageSetup(lastRow int) {
	if b.err != nil {
		return
	}

	landscape := "landscape"
	fitToWidth := 1
	fitToHeight := 0
	if err := b.f.SetPageLayout(sheetName, &excelize.PageLayoutOptions{
		Orientation: &landscape,
		FitToWidth:  &fitToWidth,
		FitToHeight: &fitToHeight,
	}); err != nil {
		b.err = err
		return
	}

	side := 0.25
	topBottom := 0.5
	if err := b.f.SetPageMargins(sheetName, &excelize.PageLayoutMarginsOptions{
		Left:   &side,
		Right:  &side,
		Top:    &topBottom,
		Bottom: &topBottom,
	}); err != nil {
		b.err = err
		return
	}

	if err := b.f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("'%s'!$A$1:$L$%d", sheetName, lastRow),
		Scope:    sheetName,
	}); err != nil {
		b.err = err
		return
	}
	b.err = b.f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Titles",
		RefersTo: fmt.Sprintf("'%s'!$1:$4", sheetName),
		Scope:    sheetName,
	})
}

// contractNumber is the text before the first space of the header's
// contract field; it names the output file.
func contractNumber(number string) string {
	n, _, _ := strings.Cut(number, " ")
	return n
}

// formatDate normalizes a contract date to mm/dd/yyyy when it parses under
// a known export layout, and passes it through verbatim otherwise.
func formatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("01/02/2006")
		}
	}
	return s
}
