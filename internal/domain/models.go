package domain

import (
	"strings"
	"time"
)

// ContractLine is one row of the special-pricing contract export. All
// identifier and date columns stay text exactly as exported; only the
// commercial terms are coerced.
type ContractLine struct {
	Contract     string
	Item         string
	ContractName string
	StartDate    string
	EndDate      string
	MinQuantity  int
	UOM          string
	UnitPrice    float64
	PriorSold    string
	CurrentSold  string
	CustNbr      string
	CustName     string
}

// ContractHeader summarizes the whole contract for the workbook header rows.
type ContractHeader struct {
	// Number is "<contract> (<contract name>)" from the first line.
	Number string
	// Customers is the display form of the customer list: the first distinct
	// name, followed by ", ..." when the contract covers more than one.
	Customers     string
	CustomerCodes []string
	StartDate     string
	EndDate       string
	Commission    float64
	Giveback      float64
	FreightTerms  string
}

// SalesRecord is one row of the rolling sales-history export.
type SalesRecord struct {
	Item        string
	CustNbr     string
	InvoiceDate time.Time
	Quantity    float64
	Sales       float64
}

// ReportRow is one output line of the pricing sheet. The two formula fields
// carry spreadsheet formulas with cost and price baked in and live references
// to the commission and giveback rate cells.
type ReportRow struct {
	Item               string
	Description        string
	MinQty             int
	UOM                string
	UnitPrice          float64
	UnitCost           float64
	LoadedCostFormula  string
	GrossProfitFormula string
	CurrentQty         float64
	CurrentSales       float64
	PriorQty           float64
	PriorSales         float64
}

// CustomerCode strips the branch suffix from a customer number: "123*4"
// and "123" both map to code "123".
func CustomerCode(custNbr string) string {
	code, _, _ := strings.Cut(custNbr, "*")
	return code
}
