// Package loader parses the two manual exports into typed records. Both
// loaders fail loudly with operator instructions when an export is absent;
// there is no partial-success path.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bussepricing/contractsheet/internal/domain"
)

// The contract export is headerless with twelve fixed columns.
const contractColumns = 12

const (
	colContract = iota
	colItem
	colContractName
	colStartDate
	colEndDate
	colMinQuantity
	colUOM
	colUnitPrice
	colPriorSold
	colCurrentSold
	colCustNbr
	colCustName
)

// LoadContract reads the contract export. Rows without an item number are
// dropped; identifier and date columns stay text, min quantity and unit
// price are coerced.
func LoadContract(path string) ([]domain.ContractLine, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingInputError{Path: path, Instructions: ContractInstructions()}
		}
		return nil, fmt.Errorf("open contract export: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var lines []domain.ContractLine
	row := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read contract export: %w", err)
		}
		row++

		if len(record) < contractColumns {
			return nil, &MalformedInputError{
				File:   path,
				Row:    row,
				Column: "record",
				Err:    fmt.Errorf("expected %d columns, got %d", contractColumns, len(record)),
			}
		}

		item := strings.TrimSpace(record[colItem])
		if item == "" {
			continue
		}

		minQty, err := strconv.Atoi(strings.TrimSpace(record[colMinQuantity]))
		if err != nil {
			return nil, &MalformedInputError{File: path, Row: row, Column: "min quantity", Err: err}
		}
		unitPrice, err := strconv.ParseFloat(strings.TrimSpace(record[colUnitPrice]), 64)
		if err != nil {
			return nil, &MalformedInputError{File: path, Row: row, Column: "unit price", Err: err}
		}

		lines = append(lines, domain.ContractLine{
			Contract:     strings.TrimSpace(record[colContract]),
			Item:         item,
			ContractName: strings.TrimSpace(record[colContractName]),
			StartDate:    strings.TrimSpace(record[colStartDate]),
			EndDate:      strings.TrimSpace(record[colEndDate]),
			MinQuantity:  minQty,
			UOM:          strings.TrimSpace(record[colUOM]),
			UnitPrice:    unitPrice,
			PriorSold:    strings.TrimSpace(record[colPriorSold]),
			CurrentSold:  strings.TrimSpace(record[colCurrentSold]),
			CustNbr:      strings.TrimSpace(record[colCustNbr]),
			CustName:     strings.TrimSpace(record[colCustName]),
		})
	}

	return lines, nil
}
