package batch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storedProduct = `[
  {"id": 1, "variant": "500g", "batches": [
    {"batchId": "A1", "stock": 10, "cost_price": 100, "selling_price": 150, "gst_percent": 5,
     "gst_amount": 5, "profit": 50, "net_cost": 105, "net_amt": 1507.5, "active": false},
    {"_id": "66ab", "stock": 2, "cost_price": 90, "selling_price": 150, "active": true},
    {"stock": 1, "active": true}
  ]},
  {"id": 2, "variant": "1kg", "stock": 4, "cost_price": 180, "selling_price": 250},
  {"id": 3, "variant": "2kg", "batches": [{"batchId": "A1"}, {"batchId": "B1"}]}
]`

func TestRowsFromVariants(t *testing.T) {
	var variants []VariantRecord
	require.NoError(t, json.Unmarshal([]byte(storedProduct), &variants))

	rows := RowsFromVariants(variants)

	require.Len(t, rows, 6)

	ids := make([]int, 0, len(rows))
	codes := make([]string, 0, len(rows))
	active := make([]bool, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
		codes = append(codes, r.BatchID)
		active = append(active, r.Active)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids)
	assert.Equal(t, []string{"A1", "66ab", "BATCH-4-2", "BATCH-5-0", "A1", "B1"}, codes)
	assert.Equal(t, []bool{false, true, false, true, true, false}, active)

	first := rows[0]
	assert.Equal(t, "10", first.Stock)
	assert.Equal(t, "1507.5", first.NetAmt.String())
	assert.Equal(t, "1000.00", first.Amt.StringFixed(2))
	assert.Equal(t, "", first.MRPPrice)

	legacy := rows[3]
	assert.Equal(t, "1kg", legacy.Variant)
	assert.Equal(t, "180", legacy.CostPrice)
	assert.Equal(t, "720.00", legacy.Amt.StringFixed(2))

	assert.True(t, rows[5].Amt.IsZero())
}

func TestRowsFromVariants_GroupsDuplicateVariantsTogether(t *testing.T) {
	variants := []VariantRecord{
		{Variant: "X", Batches: []BatchRecord{{BatchID: "A1"}}},
		{Variant: "Y", Batches: []BatchRecord{{BatchID: "A1"}}},
		{Variant: "X", Batches: []BatchRecord{{BatchID: "B1"}}},
	}

	rows := RowsFromVariants(variants)

	var order []string
	for _, r := range rows {
		order = append(order, r.Variant+r.BatchID)
	}
	assert.Equal(t, []string{"XA1", "XB1", "YA1"}, order)
	assert.True(t, rows[0].Active)
	assert.False(t, rows[1].Active)
}

func TestRecordsFromGroups_RoundTrip(t *testing.T) {
	s := NewSheet()
	s.AddRow()
	for i, v := range []string{"500g", "500g"} {
		_, err := s.UpdateField(i, FieldVariant, v)
		require.NoError(t, err)
		_, err = s.UpdateField(i, FieldCostPrice, "100")
		require.NoError(t, err)
		_, err = s.UpdateField(i, FieldStock, "10")
		require.NoError(t, err)
	}
	s.SetActive("500g", "2")
	groups := s.Finalize()

	rows := RowsFromVariants(RecordsFromGroups(groups))

	assert.Equal(t, groups, Finalize(rows))
}
