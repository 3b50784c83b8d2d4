package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSheet_StartsWithOneEmptyRow(t *testing.T) {
	s := NewSheet()

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, NewRow(1), rows[0])
	assert.False(t, rows[0].Active)
	assert.Empty(t, rows[0].BatchID)
}

func TestSheet_AddRowUsesPosition(t *testing.T) {
	s := NewSheet()
	assert.Equal(t, 2, s.AddRow().ID)
	assert.Equal(t, 3, s.AddRow().ID)

	require.NoError(t, s.DeleteRow(0))
	assert.Equal(t, 3, s.AddRow().ID)

	var ids []int
	for _, r := range s.Rows() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{2, 3, 3}, ids)
}

func TestSheet_UpdateFieldStripsVariantWhitespace(t *testing.T) {
	s := NewSheet()

	row, err := s.UpdateField(0, FieldVariant, "5 0 0 g")

	require.NoError(t, err)
	assert.Equal(t, "500g", row.Variant)
	assert.Equal(t, "500g", s.Rows()[0].Variant)
}

func TestSheet_UpdateFieldRecomputesOnlyForPricingInputs(t *testing.T) {
	s := NewSheet()
	_, err := s.UpdateField(0, FieldStock, "10")
	require.NoError(t, err)
	_, err = s.UpdateField(0, FieldCostPrice, "100")
	require.NoError(t, err)
	_, err = s.UpdateField(0, FieldSellingPrice, "150")
	require.NoError(t, err)
	row, err := s.UpdateField(0, FieldGSTPercent, "5")
	require.NoError(t, err)
	assert.Equal(t, "1507.50", row.NetAmt.StringFixed(2))

	// A stale derived value survives edits to non-pricing columns.
	s.rows[0].Profit = dec("999")
	row, err = s.UpdateField(0, FieldMRPPrice, "200")
	require.NoError(t, err)
	assert.Equal(t, "999.00", row.Profit.StringFixed(2))
	row, err = s.UpdateField(0, FieldVariant, "1kg")
	require.NoError(t, err)
	assert.Equal(t, "999.00", row.Profit.StringFixed(2))

	row, err = s.UpdateField(0, FieldStock, "garbage")
	require.NoError(t, err)
	assert.Equal(t, "garbage", row.Stock)
	assert.Equal(t, "50.00", row.Profit.StringFixed(2))
	assert.Equal(t, "0.00", row.Amt.StringFixed(2))
}

func TestSheet_UpdateFieldErrors(t *testing.T) {
	s := NewSheet()

	_, err := s.UpdateField(1, FieldStock, "1")
	assert.ErrorIs(t, err, ErrRowOutOfRange)
	_, err = s.UpdateField(-1, FieldStock, "1")
	assert.ErrorIs(t, err, ErrRowOutOfRange)
	_, err = s.UpdateField(0, Field("colour"), "red")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.ErrorIs(t, s.DeleteRow(4), ErrRowOutOfRange)
}

func TestSheet_SetActiveIsPerVariant(t *testing.T) {
	s := NewSheet()
	s.AddRow()
	s.AddRow()
	for i, v := range []string{"500g", "500g", "1kg"} {
		_, err := s.UpdateField(i, FieldVariant, v)
		require.NoError(t, err)
	}
	s.SetActive("1kg", "3")
	s.SetActive("500g", "1")
	s.SetActive("500g", "2")

	rows := s.Rows()
	assert.False(t, rows[0].Active)
	assert.True(t, rows[1].Active)
	assert.True(t, rows[2].Active)
}

func TestSheet_SetActiveUsesBatchIDOnceAssigned(t *testing.T) {
	s := NewSheet()
	s.AddRow()
	for i := 0; i < 2; i++ {
		_, err := s.UpdateField(i, FieldVariant, "X")
		require.NoError(t, err)
	}
	s.Finalize()

	s.SetActive("X", "B1")
	rows := s.Rows()
	assert.False(t, rows[0].Active)
	assert.True(t, rows[1].Active)

	s.SetActive("X", "1")
	for _, r := range s.Rows() {
		assert.False(t, r.Active, "row ids no longer address coded rows")
	}
}

func TestSheet_SetActiveWithRepeatedIDFinalizesToFirst(t *testing.T) {
	s := NewSheet()
	s.AddRow()
	s.AddRow()
	require.NoError(t, s.DeleteRow(0))
	s.AddRow()
	for i := 0; i < s.Len(); i++ {
		_, err := s.UpdateField(i, FieldVariant, "X")
		require.NoError(t, err)
	}

	s.SetActive("X", "3")
	rows := s.Rows()
	assert.Equal(t, []int{2, 3, 3}, []int{rows[0].ID, rows[1].ID, rows[2].ID})
	assert.False(t, rows[0].Active)
	assert.True(t, rows[1].Active)
	assert.True(t, rows[2].Active)

	groups := s.Finalize()
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Batches, 3)
	assert.False(t, groups[0].Batches[0].Active)
	assert.True(t, groups[0].Batches[1].Active)
	assert.False(t, groups[0].Batches[2].Active)
}

func TestSheet_FinalizeTwiceIsStable(t *testing.T) {
	s := NewSheet()
	s.AddRow()
	s.AddRow()
	for i, v := range []string{"X", "X", "Y"} {
		_, err := s.UpdateField(i, FieldVariant, v)
		require.NoError(t, err)
		_, err = s.UpdateField(i, FieldCostPrice, "12.5")
		require.NoError(t, err)
	}
	s.SetActive("X", "2")

	first := s.Finalize()
	second := s.Finalize()

	assert.Equal(t, first, second)
	assert.Equal(t, "B1", s.Rows()[1].BatchID)
	assert.True(t, s.Rows()[1].Active)
}

func TestParseField(t *testing.T) {
	f, ok := ParseField(" Cost Price ")
	assert.True(t, ok)
	assert.Equal(t, FieldCostPrice, f)

	f, ok = ParseField("GST_PERCENT")
	assert.True(t, ok)
	assert.Equal(t, FieldGSTPercent, f)

	_, ok = ParseField("profit")
	assert.False(t, ok)
}
