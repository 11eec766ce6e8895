/*
 * Copyright (C) 2025-2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package maps

import (
	"reflect"
	"testing"

	"gotest.tools/assert"
)

func TestMergeNested(t *testing.T) {
	defaults := map[string]interface{}{
		"file_format": "auto",
		"train_settings": map[string]interface{}{
			"file_format": "auto",
			"shuffle":     false,
		},
	}
	updates := map[string]interface{}{
		"name": "ml-100k",
		"train_settings": map[string]interface{}{
			"start_date": "2024-01-01",
			"shuffle":    true,
		},
	}
	result := MergeNested(defaults, updates)
	expected := map[string]interface{}{
		"name":        "ml-100k",
		"file_format": "auto",
		"train_settings": map[string]interface{}{
			"file_format": "auto",
			"shuffle":     true,
			"start_date":  "2024-01-01",
		},
	}
	assert.Equal(t, reflect.DeepEqual(result, expected), true)

	// inputs untouched
	assert.Equal(t, len(defaults["train_settings"].(map[string]interface{})), 2)
	_, ok := defaults["name"]
	assert.Equal(t, ok, false)

	// a scalar replaces a nested default
	result = MergeNested(defaults, map[string]interface{}{"train_settings": "none"})
	assert.Equal(t, result["train_settings"], "none")

	result = MergeNested(nil, nil)
	assert.Equal(t, len(result), 0)
}

func TestDeepCopy(t *testing.T) {
	src := map[string]interface{}{
		"labels": []interface{}{"click"},
		"nested": map[string]interface{}{"k": []string{"a"}},
	}
	dst := DeepCopy(src)
	dst["labels"].([]interface{})[0] = "like"
	dst["nested"].(map[string]interface{})["k"].([]string)[0] = "b"
	assert.Equal(t, src["labels"].([]interface{})[0], "click")
	assert.Equal(t, src["nested"].(map[string]interface{})["k"].([]string)[0], "a")
	assert.Equal(t, DeepCopy(nil) == nil, true)
}

func TestLookup(t *testing.T) {
	m := map[string]interface{}{
		"name": "ml-100k",
		"train_settings": map[string]interface{}{
			"start_date": "2024-01-01",
			"end_date":   nil,
		},
	}
	val, ok := Lookup(m, "train_settings/start_date")
	assert.Equal(t, ok, true)
	assert.Equal(t, val, "2024-01-01")

	_, ok = Lookup(m, "name/start_date")
	assert.Equal(t, ok, false)
	_, ok = Lookup(m, "test_settings/start_date")
	assert.Equal(t, ok, false)
	_, ok = Lookup(m, "")
	assert.Equal(t, ok, false)

	missing := MissingPaths(m, []string{"name", "train_settings/end_date", "url", "train_settings/start_date"})
	assert.Equal(t, reflect.DeepEqual(missing, []string{"train_settings/end_date", "url"}), true)
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]interface{}{"b": 1, "a": 2, "c": 3})
	assert.Equal(t, reflect.DeepEqual(keys, []string{"a", "b", "c"}), true)
}
