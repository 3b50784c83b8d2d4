package batch

import (
	"strconv"
	"strings"
	"unicode"
)

// Field names a column of the batch table, spelled the way the product API spells it.
type Field string

const (
	FieldVariant      Field = "variant"
	FieldStock        Field = "stock"
	FieldCostPrice    Field = "cost_price"
	FieldSellingPrice Field = "selling_price"
	FieldMRPPrice     Field = "mrp_price"
	FieldGSTPercent   Field = "gst_percent"
	FieldUnitsSold    Field = "units_sold"
)

// Fields lists the editable columns in table order.
var Fields = []Field{
	FieldVariant,
	FieldStock,
	FieldMRPPrice,
	FieldCostPrice,
	FieldSellingPrice,
	FieldGSTPercent,
	FieldUnitsSold,
}

// ParseField resolves a column name, ignoring case and surrounding whitespace.
// Spaces inside the name are read as underscores ("cost price" -> cost_price).
func ParseField(name string) (Field, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.Join(strings.Fields(n), "_")
	for _, f := range Fields {
		if string(f) == n {
			return f, true
		}
	}
	return "", false
}

// recomputes reports whether a change to f invalidates the derived columns.
func (f Field) recomputes() bool {
	switch f {
	case FieldStock, FieldCostPrice, FieldSellingPrice, FieldGSTPercent:
		return true
	}
	return false
}

// BatchRow is one row of the editable batch table. Raw inputs are kept exactly
// as typed; numbers are only coerced when derived columns are computed.
type BatchRow struct {
	ID           int    `json:"id"`
	Variant      string `json:"variant"`
	Stock        string `json:"stock"`
	CostPrice    string `json:"cost_price"`
	SellingPrice string `json:"selling_price"`
	MRPPrice     string `json:"mrp_price"`
	GSTPercent   string `json:"gst_percent"`
	UnitsSold    string `json:"units_sold"`

	Derived

	BatchID string `json:"batch_id,omitempty"`
	Active  bool   `json:"active"`
}

// NewRow returns an empty row carrying the given session identifier.
func NewRow(id int) BatchRow {
	return BatchRow{ID: id}
}

// Identifier is what the active radio button refers to: the batch code once
// one is assigned, the row id before that.
func (r BatchRow) Identifier() string {
	if r.BatchID != "" {
		return r.BatchID
	}
	return strconv.Itoa(r.ID)
}

// Get returns the raw value of a column.
func (r *BatchRow) Get(f Field) string {
	switch f {
	case FieldVariant:
		return r.Variant
	case FieldStock:
		return r.Stock
	case FieldCostPrice:
		return r.CostPrice
	case FieldSellingPrice:
		return r.SellingPrice
	case FieldMRPPrice:
		return r.MRPPrice
	case FieldGSTPercent:
		return r.GSTPercent
	case FieldUnitsSold:
		return r.UnitsSold
	}
	return ""
}

func (r *BatchRow) set(f Field, value string) {
	switch f {
	case FieldVariant:
		r.Variant = StripSpaces(value)
	case FieldStock:
		r.Stock = value
	case FieldCostPrice:
		r.CostPrice = value
	case FieldSellingPrice:
		r.SellingPrice = value
	case FieldMRPPrice:
		r.MRPPrice = value
	case FieldGSTPercent:
		r.GSTPercent = value
	case FieldUnitsSold:
		r.UnitsSold = value
	}
}

// Recalculate refreshes the derived columns from the row's raw inputs.
func (r *BatchRow) Recalculate() {
	r.Derived = ComputeDerivedFields(
		ParseNumber(r.Stock),
		ParseNumber(r.CostPrice),
		ParseNumber(r.SellingPrice),
		ParseNumber(r.GSTPercent),
	)
}

// StripSpaces removes every whitespace rune, so "5 0 0 g" becomes "500g".
func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
