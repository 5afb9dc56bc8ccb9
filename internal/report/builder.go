package report

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bussepricing/contractsheet/internal/domain"
	"github.com/bussepricing/contractsheet/internal/enrich"
	"github.com/bussepricing/contractsheet/internal/window"
)

// ErrEmptyContract means the contract export parsed to zero usable rows
// (every row was missing an item number).
var ErrEmptyContract = errors.New("contract export contains no usable line items; re-run GET.CONTRACT.INFO and check the contract number")

// Fixed header-row rates. The formulas reference the rendered rate cells so
// the operator can adjust them after generation and watch GP% recompute;
// cost and price are baked in at build time.
const (
	commissionRate = 0.04
	givebackRate   = 0.03
	commissionCell = "J2"
	givebackCell   = "L2"
	freightTerms   = "FOB HAUPPAUGE"
)

// Build assembles the contract header and one report row per distinct item,
// in contract order. Each item costs one cost lookup, one description
// lookup, and two window aggregations. onItem, when non-nil, is called after
// each completed item for progress reporting.
func Build(ctx context.Context, lines []domain.ContractLine, sales []domain.SalesRecord, store enrich.Store, w window.Windows, onItem func(done, total int)) (domain.ContractHeader, []domain.ReportRow, error) {
	if len(lines) == 0 {
		return domain.ContractHeader{}, nil, ErrEmptyContract
	}

	header := buildHeader(lines)
	codes := codeSet(header.CustomerCodes)

	// Distinct items keep their first-seen position; a later duplicate line
	// for the same item overrides its commercial terms.
	var order []string
	byItem := make(map[string]domain.ContractLine, len(lines))
	for _, line := range lines {
		if _, seen := byItem[line.Item]; !seen {
			order = append(order, line.Item)
		}
		byItem[line.Item] = line
	}

	rows := make([]domain.ReportRow, 0, len(order))
	for i, item := range order {
		line := byItem[item]

		cost, err := store.Cost(ctx, item)
		if err != nil {
			return domain.ContractHeader{}, nil, fmt.Errorf("enrich item %s: %w", item, err)
		}
		desc, err := store.Description(ctx, item)
		if err != nil {
			return domain.ContractHeader{}, nil, fmt.Errorf("enrich item %s: %w", item, err)
		}

		currentQty, currentSales := Aggregate(sales, item, codes, w.CurrentStart, w.CurrentEnd)
		priorQty, priorSales := Aggregate(sales, item, codes, w.PriorStart, w.PriorEnd)

		rows = append(rows, domain.ReportRow{
			Item:               item,
			Description:        desc,
			MinQty:             line.MinQuantity,
			UOM:                line.UOM,
			UnitPrice:          line.UnitPrice,
			UnitCost:           cost,
			LoadedCostFormula:  loadedCostFormula(cost, line.UnitPrice),
			GrossProfitFormula: grossProfitFormula(cost, line.UnitPrice),
			CurrentQty:         currentQty,
			CurrentSales:       currentSales,
			PriorQty:           priorQty,
			PriorSales:         priorSales,
		})

		if onItem != nil {
			onItem(i+1, len(order))
		}
	}

	return header, rows, nil
}

func buildHeader(lines []domain.ContractLine) domain.ContractHeader {
	first := lines[0]

	var names, codes []string
	seenName := make(map[string]bool)
	seenCode := make(map[string]bool)
	for _, line := range lines {
		if !seenName[line.CustName] {
			seenName[line.CustName] = true
			names = append(names, line.CustName)
		}
		code := domain.CustomerCode(line.CustNbr)
		if !seenCode[code] {
			seenCode[code] = true
			codes = append(codes, code)
		}
	}

	customers := names[0]
	if len(names) > 1 {
		customers += ", ..."
	}

	return domain.ContractHeader{
		Number:        fmt.Sprintf("%s (%s)", first.Contract, first.ContractName),
		Customers:     customers,
		CustomerCodes: codes,
		StartDate:     first.StartDate,
		EndDate:       first.EndDate,
		Commission:    commissionRate,
		Giveback:      givebackRate,
		FreightTerms:  freightTerms,
	}
}

// loadedCostFormula is unit cost plus the commission and giveback amounts,
// with the rates read live from the header cells.
func loadedCostFormula(cost, price float64) string {
	c, p := num(cost), num(price)
	return fmt.Sprintf("=(%s + (%s * %s) + (%s * %s))", c, commissionCell, p, givebackCell, p)
}

// grossProfitFormula is the margin after loaded cost as a fraction of unit
// price; the rendered cell carries the percentage format.
func grossProfitFormula(cost, price float64) string {
	c, p := num(cost), num(price)
	return fmt.Sprintf("=(%s-%s - (%s * %s) - (%s * %s)) / %s", p, c, commissionCell, p, givebackCell, p, p)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
