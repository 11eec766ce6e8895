/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package slice

import (
	"k8s.io/apimachinery/pkg/util/sets"
)

func ContainsString(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}

func ContainsInt(slice []int, n int) bool {
	for _, item := range slice {
		if item == n {
			return true
		}
	}
	return false
}

// Union concatenates the input slices, keeping only the first occurrence of each string.
// For example:
// Union([a, b], [b, c], [a, d]) = [a, b, c, d]
func Union(slices ...[]string) []string {
	seen := sets.New[string]()
	var result []string
	for _, s := range slices {
		for _, str := range s {
			if seen.Has(str) {
				continue
			}
			seen.Insert(str)
			result = append(result, str)
		}
	}
	return result
}

// NotIn returns the strings of slice1 that are absent from slice2, in slice1 order and without repeats.
func NotIn(slice1, slice2 []string) []string {
	universe := sets.New[string](slice2...)
	reported := sets.New[string]()
	var result []string
	for _, str := range slice1 {
		if universe.Has(str) || reported.Has(str) {
			continue
		}
		reported.Insert(str)
		result = append(result, str)
	}
	return result
}

func Copy(slice []string) []string {
	if slice == nil {
		return nil
	}
	result := make([]string, len(slice))
	copy(result, slice)
	return result
}
