package batch

// batchSuffix is appended to every generated code.
const batchSuffix = "1"

// BatchCode returns the code for the n-th (0-based) batch of a variant:
// spreadsheet column letters followed by the suffix, so 0 is "A1", 25 is
// "Z1" and 26 is "AA1". Negative n is treated as 0.
func BatchCode(n int) string {
	if n < 0 {
		n = 0
	}
	var buf [16]byte
	i := len(buf)
	for n >= 0 {
		i--
		buf[i] = byte('A' + n%26)
		n = n/26 - 1
	}
	return string(buf[i:]) + batchSuffix
}

// AssignBatchCodes returns a copy of rows where each row carries the next
// code of its variant, counted in slice order. Codes repeat across variants
// but never within one.
func AssignBatchCodes(rows []BatchRow) []BatchRow {
	out := cloneRows(rows)
	counters := make(map[string]int)
	for i := range out {
		v := out[i].Variant
		out[i].BatchID = BatchCode(counters[v])
		counters[v]++
	}
	return out
}

func cloneRows(rows []BatchRow) []BatchRow {
	out := make([]BatchRow, len(rows))
	copy(out, rows)
	return out
}
