package batch

import (
	"errors"
	"fmt"
)

var (
	ErrRowOutOfRange = errors.New("row index out of range")
	ErrUnknownField  = errors.New("unknown field")
)

// Sheet is the batch table of one editing session. It is a plain value owned
// by the caller and is not safe for concurrent use.
type Sheet struct {
	rows []BatchRow
}

// NewSheet starts a session with a single empty row.
func NewSheet() *Sheet {
	s := &Sheet{}
	s.AddRow()
	return s
}

// SheetFromRows wraps rows that were saved or loaded earlier.
func SheetFromRows(rows []BatchRow) *Sheet {
	return &Sheet{rows: cloneRows(rows)}
}

// Rows returns a copy of the current rows.
func (s *Sheet) Rows() []BatchRow {
	return cloneRows(s.rows)
}

// Len returns the number of rows.
func (s *Sheet) Len() int { return len(s.rows) }

// AddRow appends an empty inactive row whose id is its 1-based position at
// the time of the call, and returns that row.
func (s *Sheet) AddRow() BatchRow {
	row := NewRow(len(s.rows) + 1)
	s.rows = append(s.rows, row)
	return row
}

// UpdateField stores value in one column of the row at rowIndex (0-based).
// Variant names lose all whitespace, and a change to stock, cost price,
// selling price or GST percent refreshes the derived columns.
func (s *Sheet) UpdateField(rowIndex int, field Field, value string) (BatchRow, error) {
	if rowIndex < 0 || rowIndex >= len(s.rows) {
		return BatchRow{}, fmt.Errorf("%w: %d", ErrRowOutOfRange, rowIndex)
	}
	if _, ok := ParseField(string(field)); !ok {
		return BatchRow{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	row := &s.rows[rowIndex]
	row.set(field, value)
	if field.recomputes() {
		row.Recalculate()
	}
	return *row, nil
}

// SetActive marks the row of variant whose Identifier equals identifier as
// the active batch and clears the flag on every other row of that variant.
// Rows of other variants are untouched. Row ids can repeat after DeleteRow
// and AddRow, so before batch codes exist an id may select more than one
// row; Finalize keeps only the first of them active.
func (s *Sheet) SetActive(variant, identifier string) {
	for i := range s.rows {
		if s.rows[i].Variant != variant {
			continue
		}
		s.rows[i].Active = s.rows[i].Identifier() == identifier
	}
}

// DeleteRow removes the row at rowIndex. Remaining rows keep their ids.
func (s *Sheet) DeleteRow(rowIndex int) error {
	if rowIndex < 0 || rowIndex >= len(s.rows) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, rowIndex)
	}
	s.rows = append(s.rows[:rowIndex], s.rows[rowIndex+1:]...)
	return nil
}

// Finalize assigns batch codes, settles the active flags and returns the
// variant groups to submit. The sheet keeps the coded rows, so finalizing
// twice without edits in between returns identical groups.
func (s *Sheet) Finalize() []VariantGroup {
	rows, groups := FinalizeRows(s.rows)
	s.rows = rows
	return groups
}
