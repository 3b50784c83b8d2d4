package batch

// Batch is one stock lot as the product API expects it in a request body.
type Batch struct {
	BatchID      string  `json:"batchId"`
	Active       bool    `json:"active"`
	CostPrice    float64 `json:"cost_price"`
	SellingPrice float64 `json:"selling_price"`
	MRPPrice     float64 `json:"mrp_price"`
	GSTPercent   float64 `json:"gst_percent"`
	GSTAmount    float64 `json:"gst_amount"`
	Profit       float64 `json:"profit"`
	Stock        float64 `json:"stock"`
	NetCost      float64 `json:"net_cost"`
	NetAmt       float64 `json:"net_amt"`
	UnitsSold    int64   `json:"units_sold"`
}

// VariantGroup collects the batches of one variant. After GroupVariants
// exactly one of them is active.
type VariantGroup struct {
	ID      int     `json:"id"`
	Variant string  `json:"variant"`
	Batches []Batch `json:"batches"`
}

// Active returns the active batch of the group.
func (g VariantGroup) Active() (Batch, bool) {
	for _, b := range g.Batches {
		if b.Active {
			return b, true
		}
	}
	return Batch{}, false
}

// NormalizeActive returns a copy of rows in which every variant has exactly
// one active row: the first row flagged active wins, and when none is
// flagged the variant's first row is chosen.
func NormalizeActive(rows []BatchRow) []BatchRow {
	out := cloneRows(rows)
	first := make(map[string]int)
	settled := make(map[string]bool)
	for i := range out {
		v := out[i].Variant
		if _, ok := first[v]; !ok {
			first[v] = i
		}
		if !out[i].Active {
			continue
		}
		if settled[v] {
			out[i].Active = false
			continue
		}
		settled[v] = true
	}
	for v, i := range first {
		if !settled[v] {
			out[i].Active = true
		}
	}
	return out
}

// GroupVariants folds rows into variant groups in order of first appearance,
// keeping row order inside each group. Group ids start at 1. It never fails:
// missing or duplicate active flags are resolved by NormalizeActive.
func GroupVariants(rows []BatchRow) []VariantGroup {
	normalized := NormalizeActive(rows)
	groups := make([]VariantGroup, 0)
	index := make(map[string]int)
	for _, row := range normalized {
		gi, ok := index[row.Variant]
		if !ok {
			gi = len(groups)
			index[row.Variant] = gi
			groups = append(groups, VariantGroup{ID: gi + 1, Variant: row.Variant})
		}
		groups[gi].Batches = append(groups[gi].Batches, row.toBatch())
	}
	return groups
}

// Finalize codes and groups rows for submission. It does not modify rows.
// Running it again on its own normalized output gives the same groups.
func Finalize(rows []BatchRow) []VariantGroup {
	return GroupVariants(AssignBatchCodes(rows))
}

// FinalizeRows is Finalize that also returns the coded, normalized rows, so
// a caller holding the table can keep what was submitted.
func FinalizeRows(rows []BatchRow) ([]BatchRow, []VariantGroup) {
	coded := NormalizeActive(AssignBatchCodes(rows))
	return coded, GroupVariants(coded)
}

func (r BatchRow) toBatch() Batch {
	return Batch{
		BatchID:      r.BatchID,
		Active:       r.Active,
		CostPrice:    ParseNumber(r.CostPrice).InexactFloat64(),
		SellingPrice: ParseNumber(r.SellingPrice).InexactFloat64(),
		MRPPrice:     ParseNumber(r.MRPPrice).InexactFloat64(),
		GSTPercent:   ParseNumber(r.GSTPercent).InexactFloat64(),
		GSTAmount:    r.GSTAmount.InexactFloat64(),
		Profit:       r.Profit.InexactFloat64(),
		Stock:        ParseNumber(r.Stock).InexactFloat64(),
		NetCost:      r.NetCost.InexactFloat64(),
		NetAmt:       r.NetAmt.InexactFloat64(),
		UnitsSold:    ParseNumber(r.UnitsSold).IntPart(),
	}
}
