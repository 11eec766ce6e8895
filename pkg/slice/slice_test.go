/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package slice

import (
	"reflect"
	"testing"

	"gotest.tools/assert"
)

func TestContainsString(t *testing.T) {
	slice1 := []string{"relu", "tanh"}
	assert.Equal(t, ContainsString(slice1, "relu"), true)
	assert.Equal(t, ContainsString(slice1, "gelu"), false)
	assert.Equal(t, ContainsString(nil, ""), false)
	assert.Equal(t, ContainsInt([]int{1, 5, 10}, 5), true)
	assert.Equal(t, ContainsInt([]int{1, 5, 10}, 3), false)
}

func TestUnion(t *testing.T) {
	assert.Equal(t, reflect.DeepEqual(Union([]string{"a", "b"}, []string{"b", "c"}, []string{"a", "d"}),
		[]string{"a", "b", "c", "d"}), true)
	assert.Equal(t, reflect.DeepEqual(Union([]string{"a", "a"}), []string{"a"}), true)
	assert.Equal(t, len(Union()), 0)
	assert.Equal(t, len(Union(nil, []string{})), 0)
}

func TestNotIn(t *testing.T) {
	assert.Equal(t, reflect.DeepEqual(NotIn([]string{"1", "2", "3", "3"}, []string{"1"}), []string{"2", "3"}), true)
	assert.Equal(t, len(NotIn([]string{"1", "2"}, []string{"1", "2", "3"})), 0)
	assert.Equal(t, reflect.DeepEqual(NotIn([]string{"1"}, nil), []string{"1"}), true)
}

func TestCopy(t *testing.T) {
	src := []string{"1", "2"}
	dst := Copy(src)
	dst[0] = "x"
	assert.Equal(t, src[0], "1")
	assert.Equal(t, Copy(nil) == nil, true)
	assert.Equal(t, len(Copy([]string{})), 0)
}
