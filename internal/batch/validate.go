package batch

import (
	"fmt"
	"strings"
)

// RowProblem describes one offending cell found by Validate.
type RowProblem struct {
	Row     int    `json:"row"`
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every problem found in a table, in row order.
type ValidationError struct {
	Problems []RowProblem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, fmt.Sprintf("row %d: %s %s", p.Row, p.Field, p.Message))
	}
	return "invalid batch rows: " + strings.Join(parts, "; ")
}

var requiredFields = []Field{FieldVariant, FieldStock, FieldCostPrice, FieldSellingPrice}

// Validate is an optional strict check run before Finalize. It never changes
// rows; a nil result means every row has a variant, non-negative numeric
// stock, cost and selling price, and a non-negative profit.
func Validate(rows []BatchRow) error {
	var problems []RowProblem
	for i := range rows {
		row := &rows[i]
		n := i + 1
		bad := false
		for _, f := range requiredFields {
			raw := strings.TrimSpace(row.Get(f))
			if raw == "" {
				problems = append(problems, RowProblem{Row: n, Field: f, Message: "is required"})
				bad = true
				continue
			}
			if f == FieldVariant {
				continue
			}
			v, err := ParseNumberStrict(raw)
			if err != nil {
				problems = append(problems, RowProblem{Row: n, Field: f, Message: "must be a number"})
				bad = true
				continue
			}
			if v.IsNegative() {
				problems = append(problems, RowProblem{Row: n, Field: f, Message: "must be zero or more"})
				bad = true
			}
		}
		if bad {
			continue
		}
		profit := ParseNumber(row.SellingPrice).Sub(ParseNumber(row.CostPrice))
		if profit.IsNegative() {
			problems = append(problems, RowProblem{Row: n, Field: "profit", Message: "cannot be negative"})
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
