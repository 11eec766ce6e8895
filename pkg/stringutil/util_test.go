/*
 * Copyright (C) 2025-2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package stringutil

import (
	"reflect"
	"testing"

	"gotest.tools/assert"
)

func TestTrimEach(t *testing.T) {
	input := []string{" a ", "b ", "\tc", "b ", " "}
	once := TrimEach(input)
	assert.Equal(t, reflect.DeepEqual(once, []string{"a", "b", "c", "b", ""}), true)
	assert.Equal(t, reflect.DeepEqual(TrimEach(once), once), true)
	assert.Equal(t, input[0], " a ")
	assert.Equal(t, TrimEach(nil) == nil, true)
}
