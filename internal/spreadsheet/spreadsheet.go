// Package spreadsheet moves batch tables in and out of .xlsx workbooks.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/batch"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Batches"

var (
	ErrInvalidWorkbook = errors.New("invalid workbook")
	ErrMissingColumn   = errors.New("missing required column")
)

// Header spellings accepted besides the field names themselves.
var aliases = map[string]batch.Field{
	"mrp":      batch.FieldMRPPrice,
	"mrp_rs":   batch.FieldMRPPrice,
	"cost":     batch.FieldCostPrice,
	"selling":  batch.FieldSellingPrice,
	"gst":      batch.FieldGSTPercent,
	"gst_%":    batch.FieldGSTPercent,
	"qty":      batch.FieldStock,
	"quantity": batch.FieldStock,
	"sold":     batch.FieldUnitsSold,
}

var exportHeader = []interface{}{
	"variant_id", "variant", "batchId", "active",
	"stock", "mrp_price", "cost_price", "selling_price", "gst_percent",
	"gst_amount", "profit", "net_cost", "net_amt", "units_sold",
}

func resolveHeader(name string) (batch.Field, bool) {
	if f, ok := batch.ParseField(name); ok {
		return f, true
	}
	key := strings.Join(strings.Fields(strings.ToLower(name)), "_")
	f, ok := aliases[key]
	return f, ok
}

// Import reads the first sheet of an xlsx workbook and appends its rows to
// sheet. The first row is the header; columns are matched to fields by name
// and unknown columns are ignored. Values go through Sheet.UpdateField, so a
// variant loses its whitespace and derived columns are computed as if typed.
// When replace is set, or when sheet holds only blank rows, the existing
// rows are dropped first. Import returns the number of rows added.
func Import(sheet *batch.Sheet, r io.Reader, replace bool) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return 0, fmt.Errorf("%w: no sheets", ErrInvalidWorkbook)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: empty sheet", ErrInvalidWorkbook)
	}

	columns := make(map[int]batch.Field)
	hasVariant := false
	for i, name := range rows[0] {
		if field, ok := resolveHeader(name); ok {
			columns[i] = field
			hasVariant = hasVariant || field == batch.FieldVariant
		}
	}
	if !hasVariant {
		return 0, fmt.Errorf("%w: %s", ErrMissingColumn, batch.FieldVariant)
	}

	if replace || onlyBlank(sheet.Rows()) {
		*sheet = *batch.SheetFromRows(nil)
	}

	added := 0
	for _, record := range rows[1:] {
		if blankRecord(record) {
			continue
		}
		sheet.AddRow()
		idx := sheet.Len() - 1
		for col, field := range columns {
			if col >= len(record) {
				continue
			}
			if _, err := sheet.UpdateField(idx, field, strings.TrimSpace(record[col])); err != nil {
				return added, err
			}
		}
		added++
	}
	return added, nil
}

// Export writes finalized variant groups as a workbook with one row per batch.
func Export(groups []batch.VariantGroup) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
	if err := f.SetCellStyle(exportSheet, "A1", last, style); err != nil {
		return nil, err
	}

	line := 2
	for _, g := range groups {
		for _, b := range g.Batches {
			cell, _ := excelize.CoordinatesToCellName(1, line)
			values := []interface{}{
				g.ID, g.Variant, b.BatchID, b.Active,
				b.Stock, b.MRPPrice, b.CostPrice, b.SellingPrice, b.GSTPercent,
				b.GSTAmount, b.Profit, b.NetCost, b.NetAmt, b.UnitsSold,
			}
			if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
				return nil, err
			}
			line++
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(exportHeader))
	if err := f.SetColWidth(exportSheet, "A", lastCol, 14); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func blankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func onlyBlank(rows []batch.BatchRow) bool {
	for i := range rows {
		for _, f := range batch.Fields {
			if rows[i].Get(f) != "" {
				return false
			}
		}
	}
	return true
}
