package batch

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// BatchRecord is a batch as the product API returns it. Absent numbers stay
// nil so they load as empty cells rather than zeros.
type BatchRecord struct {
	BatchID      string   `json:"batchId,omitempty"`
	MongoID      string   `json:"_id,omitempty"`
	Active       *bool    `json:"active,omitempty"`
	Stock        *float64 `json:"stock,omitempty"`
	MRPPrice     *float64 `json:"mrp_price,omitempty"`
	CostPrice    *float64 `json:"cost_price,omitempty"`
	SellingPrice *float64 `json:"selling_price,omitempty"`
	GSTPercent   *float64 `json:"gst_percent,omitempty"`
	GSTAmount    *float64 `json:"gst_amount,omitempty"`
	Profit       *float64 `json:"profit,omitempty"`
	NetCost      *float64 `json:"net_cost,omitempty"`
	NetAmt       *float64 `json:"net_amt,omitempty"`
	UnitsSold    *float64 `json:"units_sold,omitempty"`
}

// VariantRecord is a stored variant. Products saved before batches existed
// carry their prices on the variant itself and have no Batches.
type VariantRecord struct {
	Variant string        `json:"variant"`
	Batches []BatchRecord `json:"batches,omitempty"`
	BatchRecord
}

// RowsFromVariants turns a stored product's variants back into editable
// rows with ids 1..n. Stored derived values are kept as they are except amt,
// which is recomputed. Rows come back grouped by variant with exactly one
// active row per variant.
func RowsFromVariants(variants []VariantRecord) []BatchRow {
	var rows []BatchRow
	id := 1
	for _, v := range variants {
		if len(v.Batches) == 0 {
			row := recordRow(id, v.Variant, v.BatchRecord)
			row.BatchID = firstNonEmpty(v.BatchID, v.MongoID, fmt.Sprintf("BATCH-%d-0", id+1))
			row.Active = v.Active == nil || *v.Active
			rows = append(rows, row)
			id++
			continue
		}
		for bi, b := range v.Batches {
			row := recordRow(id, v.Variant, b)
			row.BatchID = firstNonEmpty(b.BatchID, b.MongoID, fmt.Sprintf("BATCH-%d-%d", id+1, bi))
			if b.Active != nil {
				row.Active = *b.Active
			} else {
				row.Active = bi == 0
			}
			rows = append(rows, row)
			id++
		}
	}
	return groupContiguous(NormalizeActive(rows))
}

// RecordsFromGroups converts finalized groups into the stored shape, which
// is how a product read back from the API looks.
func RecordsFromGroups(groups []VariantGroup) []VariantRecord {
	out := make([]VariantRecord, 0, len(groups))
	for _, g := range groups {
		rec := VariantRecord{Variant: g.Variant}
		for _, b := range g.Batches {
			active := b.Active
			units := float64(b.UnitsSold)
			rec.Batches = append(rec.Batches, BatchRecord{
				BatchID:      b.BatchID,
				Active:       &active,
				Stock:        floatPtr(b.Stock),
				MRPPrice:     floatPtr(b.MRPPrice),
				CostPrice:    floatPtr(b.CostPrice),
				SellingPrice: floatPtr(b.SellingPrice),
				GSTPercent:   floatPtr(b.GSTPercent),
				GSTAmount:    floatPtr(b.GSTAmount),
				Profit:       floatPtr(b.Profit),
				NetCost:      floatPtr(b.NetCost),
				NetAmt:       floatPtr(b.NetAmt),
				UnitsSold:    &units,
			})
		}
		out = append(out, rec)
	}
	return out
}

func recordRow(id int, variant string, b BatchRecord) BatchRow {
	row := BatchRow{
		ID:           id,
		Variant:      variant,
		Stock:        cell(b.Stock),
		MRPPrice:     cell(b.MRPPrice),
		CostPrice:    cell(b.CostPrice),
		SellingPrice: cell(b.SellingPrice),
		GSTPercent:   cell(b.GSTPercent),
		UnitsSold:    cell(b.UnitsSold),
	}
	row.GSTAmount = stored(b.GSTAmount)
	row.Profit = stored(b.Profit)
	row.NetCost = stored(b.NetCost)
	row.NetAmt = stored(b.NetAmt)
	if b.CostPrice != nil && b.Stock != nil && *b.CostPrice != 0 && *b.Stock != 0 {
		row.Amt = decimal.NewFromFloat(*b.CostPrice).Mul(decimal.NewFromFloat(*b.Stock)).Round(moneyPlaces)
	}
	return row
}

// groupContiguous reorders rows so that rows of one variant sit together,
// variants in order of first appearance.
func groupContiguous(rows []BatchRow) []BatchRow {
	var order []string
	byVariant := make(map[string][]BatchRow)
	for _, r := range rows {
		if _, ok := byVariant[r.Variant]; !ok {
			order = append(order, r.Variant)
		}
		byVariant[r.Variant] = append(byVariant[r.Variant], r)
	}
	out := make([]BatchRow, 0, len(rows))
	for _, v := range order {
		out = append(out, byVariant[v]...)
	}
	return out
}

func cell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func stored(v *float64) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*v)
}

func floatPtr(v float64) *float64 { return &v }

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
