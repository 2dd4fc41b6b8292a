package format

import (
	"fmt"
	"strconv"
)

// Truncate returns s truncated to max runes with "..." suffix.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// Score formats a ranking score with three decimals.
func Score(f float64) string {
	return fmt.Sprintf("%.3f", f)
}

// IntPtr formats a nullable int. Returns "" for nil.
func IntPtr(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// Cell renders an arbitrary table value for plain-text output. Nil renders
// as "", whole floats render without a fractional part.
func Cell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
