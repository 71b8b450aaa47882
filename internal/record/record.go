// Package record reconciles raw collection records, as exported by the
// hosted backend this system replaced, into the canonical entity shape.
// Legacy rows carry alternate timestamp field names, 0/1 integer flags and
// list fields serialized as JSON text; everything here is a pure transform
// and idempotent, so normalizing an already-canonical record is a no-op.
package record

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Raw is one record as it arrives from a legacy export: string keys,
// primitive values.
type Raw map[string]any

// Bool01 coerces a 0/1-persisted flag to bool; any nonzero value is true.
func Bool01(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return false
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n != 0
		}
		return s == "true"
	default:
		return false
	}
}

// StringList decodes a list-valued field. Native lists pass through,
// JSON-encoded text is parsed, missing or empty yields an empty list.
// Malformed text is an error local to the record, never a panic.
func StringList(v any) ([]string, error) {
	switch x := v.(type) {
	case nil:
		return []string{}, nil
	case []string:
		out := make([]string, len(x))
		copy(out, x)
		return out, nil
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("list element %T is not a string", e)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		if strings.TrimSpace(x) == "" {
			return []string{}, nil
		}
		var out []string
		if err := json.Unmarshal([]byte(x), &out); err != nil {
			return nil, fmt.Errorf("decode list field: %w", err)
		}
		if out == nil {
			out = []string{}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("list field has unsupported type %T", v)
	}
}

// EncodeList is the storage-side inverse of StringList: a JSON-encoded
// text value, "[]" for an empty list.
func EncodeList(v []string) string {
	if len(v) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(v)
	return string(b)
}

// SplitCSV turns a comma-separated user input into trimmed elements.
// Empty elements pass through; no de-duplication.
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// clone gives normalizers a fresh map so callers' input is never mutated.
func clone(r Raw) Raw {
	out := make(Raw, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// collapse moves alt into canonical and drops the alt key. When both are
// present the more specific legacy name wins; an empty legacy string is
// discarded rather than clobbering canonical.
func collapse(r Raw, alt, canonical string) {
	if v, ok := r[alt]; ok {
		if s, isStr := v.(string); !isStr || s != "" {
			r[canonical] = v
		}
		delete(r, alt)
	}
}

func str(r Raw, key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

// Decode maps a canonical record onto a typed entity.
func Decode[T any](r Raw, out *T) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
