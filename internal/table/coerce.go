package table

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// DecodeJSON decodes a single JSON document into generic values, keeping
// numbers as json.Number so large counts survive intact.
func DecodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// IsNull reports whether v is an absent value.
func IsNull(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(val)
	}
	return false
}

// ToFloat coerces v to a finite float64. Nil, blank strings, NaN, infinities
// and anything cast cannot read as a number report false.
func ToFloat(v any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch val := v.(type) {
	case nil:
		return 0, false
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		f, err = strconv.ParseFloat(s, 64)
	case json.Number:
		f, err = val.Float64()
	default:
		f, err = cast.ToFloat64E(v)
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToInt coerces v to an int64. Strings must hold a base-10 integer; floats
// are truncated.
func ToInt(v any) (int64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		return n, err == nil
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n, true
		}
		f, err := val.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int64(f), true
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, false
		}
		return int64(val), true
	}
	n, err := cast.ToInt64E(v)
	return n, err == nil
}

// numeric returns v as a float64, or nil when it is not a number.
func numeric(v any) any {
	if f, ok := ToFloat(v); ok {
		return f
	}
	return nil
}

// truthy follows the usual loose truthiness of dynamically typed records:
// nil, false, zero, and empty strings or containers are false.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case map[string]any:
		return len(val) > 0
	case []any:
		return len(val) > 0
	}
	if f, ok := ToFloat(v); ok {
		return f != 0
	}
	return true
}

// firstTruthy returns the first truthy value, or nil.
func firstTruthy(vals ...any) any {
	for _, v := range vals {
		if truthy(v) {
			return v
		}
	}
	return nil
}

// flag reads a boolean cell. Strings such as "true" or "False" parse,
// numbers are true when non-zero.
func flag(v any) bool {
	if s, ok := v.(string); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		return err == nil && b
	}
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return err == nil && f != 0
	}
	return cast.ToBool(v)
}

func object(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}
