/*
 * Copyright (C) 2025-2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package maps

import (
	"sort"
	"strings"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// PathSeparator joins the levels of a nested key, e.g. "train_settings/start_date".
const PathSeparator = "/"

// MergeNested overlays updates onto a deep copy of defaults.
// Where both sides hold a map the merge recurses, otherwise the value from updates wins.
// Keys present only in updates are kept. Neither input is modified.
func MergeNested(defaults, updates map[string]interface{}) map[string]interface{} {
	result := DeepCopy(defaults)
	if result == nil {
		result = make(map[string]interface{})
	}
	for key, val := range updates {
		updateMap, ok1 := val.(map[string]interface{})
		defaultMap, ok2 := result[key].(map[string]interface{})
		if ok1 && ok2 {
			result[key] = MergeNested(defaultMap, updateMap)
			continue
		}
		result[key] = deepCopyValue(val)
	}
	return result
}

// DeepCopy copies nested maps and slices. Leaf values are copied by assignment.
func DeepCopy(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	result := make(map[string]interface{}, len(m))
	for key, val := range m {
		result[key] = deepCopyValue(val)
	}
	return result
}

func deepCopyValue(val interface{}) interface{} {
	switch v := val.(type) {
	case map[string]interface{}:
		return DeepCopy(v)
	case []interface{}:
		result := make([]interface{}, len(v))
		for i := range v {
			result[i] = deepCopyValue(v[i])
		}
		return result
	case []string:
		result := make([]string, len(v))
		copy(result, v)
		return result
	default:
		return v
	}
}

// Lookup resolves a slash separated path. A level that is not a map stops the lookup.
func Lookup(m map[string]interface{}, path string) (interface{}, bool) {
	if m == nil || path == "" {
		return nil, false
	}
	val, found, err := unstructured.NestedFieldNoCopy(m, strings.Split(path, PathSeparator)...)
	if err != nil || !found {
		return nil, false
	}
	return val, true
}

// MissingPaths returns the paths that do not resolve to a non-nil value, in input order.
func MissingPaths(m map[string]interface{}, paths []string) []string {
	var result []string
	for _, path := range paths {
		if val, ok := Lookup(m, path); !ok || val == nil {
			result = append(result, path)
		}
	}
	return result
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
