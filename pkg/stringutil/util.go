/*
 * Copyright (C) 2025-2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package stringutil

import (
	"strings"
)

// TrimEach returns a new slice holding the whitespace-trimmed entries of strs.
// Order, duplicates and entries that trim to "" are preserved.
func TrimEach(strs []string) []string {
	if strs == nil {
		return nil
	}
	result := make([]string, 0, len(strs))
	for _, s := range strs {
		result = append(result, strings.TrimSpace(s))
	}
	return result
}
