/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package arguments

import (
	"encoding/json"
	"math"
	"time"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/maps"
)

// mapReader reads typed values out of a loosely typed mapping and records
// every type mismatch instead of stopping at the first one.
// Absent and null values read as the zero value without error.
type mapReader struct {
	raw  map[string]interface{}
	path *field.Path
	errs field.ErrorList
}

func newMapReader(raw map[string]interface{}, path *field.Path) *mapReader {
	return &mapReader{raw: raw, path: path}
}

func (r *mapReader) child(key string) *field.Path {
	if r.path == nil {
		return field.NewPath(key)
	}
	return r.path.Child(key)
}

func (r *mapReader) has(key string) bool {
	_, ok := r.raw[key]
	return ok
}

func (r *mapReader) str(key string) string {
	return r.strOr(key, "")
}

// strOr falls back to def when the key is absent or null.
func (r *mapReader) strOr(key, def string) string {
	val := r.raw[key]
	if val == nil {
		return def
	}
	s, ok := val.(string)
	if !ok {
		r.errs = append(r.errs, field.Invalid(r.child(key), val, "must be a string"))
		return def
	}
	return s
}

func (r *mapReader) strings(key string) []string {
	val := r.raw[key]
	if val == nil {
		return nil
	}
	result, ok := toStringSlice(val)
	if !ok {
		r.errs = append(r.errs, field.Invalid(r.child(key), val, "must be a list of strings"))
		return nil
	}
	return result
}

func (r *mapReader) integer(key string) int {
	val := r.raw[key]
	if val == nil {
		return 0
	}
	n, ok := toInt(val)
	if !ok {
		r.errs = append(r.errs, field.Invalid(r.child(key), val, "must be an integer"))
		return 0
	}
	return n
}

func (r *mapReader) mapping(key string) map[string]interface{} {
	val := r.raw[key]
	if val == nil {
		return nil
	}
	m, ok := val.(map[string]interface{})
	if !ok {
		r.errs = append(r.errs, field.Invalid(r.child(key), val, "must be a mapping"))
		return nil
	}
	return maps.DeepCopy(m)
}

func toStringSlice(val interface{}) ([]string, bool) {
	switch v := val.(type) {
	case []string:
		if v == nil {
			return nil, true
		}
		result := make([]string, len(v))
		copy(result, v)
		return result, true
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			result = append(result, s)
		}
		return result, true
	default:
		return nil, false
	}
}

func toInt(val interface{}) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) || v < float64(math.MinInt) || v >= -float64(math.MinInt) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// toTime accepts parsed times as they are; the bool is false for any other type.
func toTime(val interface{}) (time.Time, bool) {
	switch v := val.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	default:
		return time.Time{}, false
	}
}
