package table

import (
	"cmp"
	"encoding/json"
	"slices"

	"github.com/spf13/cast"
)

// SortKey orders rows by one column.
type SortKey struct {
	Column string
	Desc   bool
}

// Sort returns the rows ordered by keys, first key most significant. Nulls
// sort last in either direction and ties keep their input order. Keys naming
// absent columns are ignored.
func Sort(t Table, keys ...SortKey) Table {
	out := t.Clone()
	active := keys[:0:0]
	for _, k := range keys {
		if out.Has(k.Column) {
			active = append(active, k)
		}
	}
	if len(active) == 0 {
		return out
	}
	slices.SortStableFunc(out.Rows, func(a, b Row) int {
		for _, k := range active {
			if c := compareCells(a[k.Column], b[k.Column], k.Desc); c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}

func compareCells(a, b any, desc bool) int {
	an, bn := IsNull(a), IsNull(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	c := compareValues(a, b)
	if desc {
		return -c
	}
	return c
}

// compareValues orders numbers numerically, then booleans, then everything
// else by its string form. Mixed kinds order by that kind rank.
func compareValues(a, b any) int {
	ra, rb := kindRank(a), kindRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case 0:
		fa, _ := ToFloat(a)
		fb, _ := ToFloat(b)
		return cmp.Compare(fa, fb)
	case 1:
		return cmp.Compare(boolRank(a.(bool)), boolRank(b.(bool)))
	}
	return cmp.Compare(cast.ToString(a), cast.ToString(b))
}

func kindRank(v any) int {
	switch v.(type) {
	case float64, float32, int, int32, int64, json.Number:
		if _, ok := ToFloat(v); ok {
			return 0
		}
	case bool:
		return 1
	}
	return 2
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
