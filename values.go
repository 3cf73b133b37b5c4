package schemaguard

import (
	"encoding/json"
	"math"
)

// jsonTypeName classifies v the way draft-07's "type" keyword does:
// null, boolean, object, array, number, integer or string. "integer" is
// reported in addition to "number" by typeMatches, never by this function
// alone, since a value is simultaneously both.
func jsonTypeName(v any) string {
	switch vv := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string, []byte:
		return "string"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case json.Number, float64, float32, int, int64:
		_ = vv
		return "number"
	default:
		return "unknown"
	}
}

// typeMatches reports whether v satisfies the named draft-07 primitive
// type, treating "integer" as a number with a zero fractional part.
func typeMatches(v any, name string) bool {
	switch name {
	case "integer":
		f, ok := asFloat64(v)
		return ok && isIntegerValue(f)
	default:
		return jsonTypeName(v) == name
	}
}

func isIntegerValue(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && math.Trunc(f) == f
}

// asFloat64 extracts a numeric value regardless of whether the instance
// tree carries json.Number (the document loaders' convention) or a plain
// float64/int (what a caller building an instance by hand would use).
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// deepEqual implements draft-07's instance-equality rule used by "enum"
// and "const": structural equality where numbers compare by value
// regardless of representation, object key order is irrelevant, and array
// element order matters.
func deepEqual(a, b any) bool {
	af, aIsNum := asFloat64(a)
	bf, bIsNum := asFloat64(b)
	if aIsNum && bIsNum {
		return af == bf
	}
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, aval := range av {
			bval, ok := bv[k]
			if !ok || !deepEqual(aval, bval) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	default:
		return false
	}
}
