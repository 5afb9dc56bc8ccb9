package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bussepricing/contractsheet/internal/domain"
	"github.com/bussepricing/contractsheet/internal/window"
)

// invoiceDateLayout matches the export's two-digit-year MM-DD-YY dates.
const invoiceDateLayout = "01-02-06"

var salesRequiredColumns = []string{"ITEM_PART_NBR", "CUST_NBR", "INV_SO_DATE", "QUANTITY", "SALES"}

// LoadSales reads the sales-history export. The file carries a header row;
// extra columns are ignored and the required ones are resolved by name.
// Identifier columns stay text to preserve leading zeros.
func LoadSales(path string, w window.Windows) ([]domain.SalesRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingInputError{Path: path, Instructions: SalesInstructions(w)}
		}
		return nil, fmt.Errorf("open sales export: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read sales export header: %w", err)
	}

	colMap := make(map[string]int, len(header))
	for i, col := range header {
		colMap[strings.TrimSpace(col)] = i
	}
	for _, col := range salesRequiredColumns {
		if _, ok := colMap[col]; !ok {
			return nil, &MalformedInputError{
				File:   path,
				Row:    1,
				Column: col,
				Err:    errors.New("required column missing from header"),
			}
		}
	}

	getValue := func(record []string, colName string) string {
		if idx, ok := colMap[colName]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}

	var records []domain.SalesRecord
	row := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read sales export: %w", err)
		}
		row++

		date, err := time.Parse(invoiceDateLayout, getValue(record, "INV_SO_DATE"))
		if err != nil {
			return nil, &MalformedInputError{File: path, Row: row, Column: "INV_SO_DATE", Err: err}
		}
		qty, err := parseAmount(getValue(record, "QUANTITY"))
		if err != nil {
			return nil, &MalformedInputError{File: path, Row: row, Column: "QUANTITY", Err: err}
		}
		sales, err := parseAmount(getValue(record, "SALES"))
		if err != nil {
			return nil, &MalformedInputError{File: path, Row: row, Column: "SALES", Err: err}
		}

		records = append(records, domain.SalesRecord{
			Item:        getValue(record, "ITEM_PART_NBR"),
			CustNbr:     getValue(record, "CUST_NBR"),
			InvoiceDate: date,
			Quantity:    qty,
			Sales:       sales,
		})
	}

	return records, nil
}

// parseAmount treats an empty cell as zero; the export leaves sparse
// numeric columns blank rather than writing zeros.
func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
