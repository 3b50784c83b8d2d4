package batch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowsOf(variants ...string) []BatchRow {
	rows := make([]BatchRow, 0, len(variants))
	for i, s := range variants {
		rows = append(rows, BatchRow{ID: i + 1, Variant: s})
	}
	return rows
}

func activeCount(g VariantGroup) int {
	n := 0
	for _, b := range g.Batches {
		if b.Active {
			n++
		}
	}
	return n
}

func TestBatchCode(t *testing.T) {
	tests := map[int]string{
		-3:  "A1",
		0:   "A1",
		1:   "B1",
		25:  "Z1",
		26:  "AA1",
		27:  "AB1",
		51:  "AZ1",
		52:  "BA1",
		701: "ZZ1",
		702: "AAA1",
	}
	for n, want := range tests {
		assert.Equal(t, want, BatchCode(n), "BatchCode(%d)", n)
	}
}

func TestAssignBatchCodes_PerVariant(t *testing.T) {
	rows := rowsOf("500g", "1kg", "500g", "500g", "1kg")

	coded := AssignBatchCodes(rows)

	got := make([]string, 0, len(coded))
	for _, r := range coded {
		got = append(got, r.Variant+":"+r.BatchID)
	}
	assert.Equal(t, []string{"500g:A1", "1kg:A1", "500g:B1", "500g:C1", "1kg:B1"}, got)
	for _, r := range rows {
		assert.Empty(t, r.BatchID, "input rows must not be modified")
	}
}

func TestAssignBatchCodes_UniqueWithinVariant(t *testing.T) {
	var variants []string
	for i := 0; i < 60; i++ {
		variants = append(variants, "500g")
	}
	coded := AssignBatchCodes(rowsOf(variants...))

	seen := make(map[string]bool)
	for i, r := range coded {
		assert.Equal(t, BatchCode(i), r.BatchID)
		assert.False(t, seen[r.BatchID], "duplicate code %s", r.BatchID)
		seen[r.BatchID] = true
	}
	assert.Len(t, seen, 60)
}

func TestGroupVariants_SingleActiveForEveryFlagCombination(t *testing.T) {
	variants := []string{"X", "Y", "X", "Y", "X"}
	for mask := 0; mask < 1<<len(variants); mask++ {
		rows := rowsOf(variants...)
		for i := range rows {
			rows[i].Active = mask&(1<<i) != 0
		}

		groups := GroupVariants(rows)

		require.Len(t, groups, 2, "mask %b", mask)
		for _, g := range groups {
			assert.Equal(t, 1, activeCount(g), "mask %b variant %s", mask, g.Variant)
		}
	}
}

func TestGroupVariants_FirstActiveWins(t *testing.T) {
	rows := rowsOf("X", "X", "X")
	rows[1].Active = true
	rows[2].Active = true
	rows = AssignBatchCodes(rows)

	groups := GroupVariants(rows)

	require.Len(t, groups, 1)
	var flags []bool
	for _, b := range groups[0].Batches {
		flags = append(flags, b.Active)
	}
	assert.Equal(t, []bool{false, true, false}, flags)
	active, ok := groups[0].Active()
	require.True(t, ok)
	assert.Equal(t, "B1", active.BatchID)
}

func TestGroupVariants_DefaultsToFirst(t *testing.T) {
	groups := GroupVariants(rowsOf("Y", "Y"))

	require.Len(t, groups, 1)
	assert.True(t, groups[0].Batches[0].Active)
	assert.False(t, groups[0].Batches[1].Active)
}

func TestGroupVariants_IDsAndOrder(t *testing.T) {
	groups := GroupVariants(rowsOf("1kg", "500g", "1kg", "2kg"))

	require.Len(t, groups, 3)
	for i, want := range []string{"1kg", "500g", "2kg"} {
		assert.Equal(t, i+1, groups[i].ID)
		assert.Equal(t, want, groups[i].Variant)
	}
	assert.Len(t, groups[0].Batches, 2)
}

func TestGroupVariants_Empty(t *testing.T) {
	groups := GroupVariants(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestFinalize_BatchPayload(t *testing.T) {
	s := NewSheet()
	for field, value := range map[Field]string{
		FieldVariant:      "500g",
		FieldStock:        "10",
		FieldCostPrice:    "100",
		FieldSellingPrice: "150",
		FieldGSTPercent:   "5",
		FieldMRPPrice:     "175",
		FieldUnitsSold:    "3.9",
	} {
		_, err := s.UpdateField(0, field, value)
		require.NoError(t, err)
	}

	groups := Finalize(s.Rows())

	require.Len(t, groups, 1)
	assert.Equal(t, Batch{
		BatchID:      "A1",
		Active:       true,
		CostPrice:    100,
		SellingPrice: 150,
		MRPPrice:     175,
		GSTPercent:   5,
		GSTAmount:    5,
		Profit:       50,
		Stock:        10,
		NetCost:      105,
		NetAmt:       1507.5,
		UnitsSold:    3,
	}, groups[0].Batches[0])
}

func TestFinalize_Idempotent(t *testing.T) {
	rows := rowsOf("500g", "1kg", "500g", "1kg", "1kg")
	rows[3].Active = true
	rows[4].Active = true
	for i := range rows {
		rows[i].CostPrice = fmt.Sprint(10 * (i + 1))
		rows[i].Recalculate()
	}

	coded, first := FinalizeRows(rows)
	second := Finalize(coded)

	assert.Equal(t, first, second)
	assert.Equal(t, first, Finalize(rows))
}
