/*
 * Copyright (c) 2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package arguments

import (
	"encoding/json"
	"sort"
	"strings"

	"k8s.io/klog/v2"

	"github.com/AMD-AIG-AIMA/SAFE/uniretrieval/pkg/maps"
)

// Statistics holds free-form dataset statistics such as per-feature cardinality.
// Keys are trimmed and kept sorted, so two stores with the same content are equal.
type Statistics struct {
	keys   []string
	values map[string]interface{}
}

func NewStatistics() *Statistics {
	return &Statistics{values: make(map[string]interface{})}
}

// StatisticsFromMap stores every value of raw under its trimmed key without coercion.
// When two keys trim to the same name, the one that sorts last wins.
func StatisticsFromMap(raw map[string]interface{}) *Statistics {
	s := NewStatistics()
	origin := make(map[string]string, len(raw))
	for _, key := range maps.SortedKeys(raw) {
		name := strings.TrimSpace(key)
		if prev, ok := origin[name]; ok {
			klog.Warningf("statistics key %q collides with %q after trimming, the value of %q is used", key, prev, key)
		}
		origin[name] = key
		s.Set(name, raw[key])
	}
	return s
}

// Set stores value under the trimmed name, replacing any previous value.
func (s *Statistics) Set(name string, value interface{}) {
	name = strings.TrimSpace(name)
	if s.values == nil {
		s.values = make(map[string]interface{})
	}
	if _, ok := s.values[name]; !ok {
		i := sort.SearchStrings(s.keys, name)
		s.keys = append(s.keys, "")
		copy(s.keys[i+1:], s.keys[i:])
		s.keys[i] = name
	}
	s.values[name] = value
}

func (s *Statistics) Get(name string) (interface{}, bool) {
	if s == nil {
		return nil, false
	}
	val, ok := s.values[name]
	return val, ok
}

// GetInt reads integers as well as integral floats produced by JSON decoding.
func (s *Statistics) GetInt(name string) (int, bool) {
	val, ok := s.Get(name)
	if !ok {
		return 0, false
	}
	return toInt(val)
}

func (s *Statistics) GetFloat(name string) (float64, bool) {
	val, ok := s.Get(name)
	if !ok {
		return 0, false
	}
	return toFloat(val)
}

func (s *Statistics) GetString(name string) (string, bool) {
	val, ok := s.Get(name)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

func (s *Statistics) GetBool(name string) (bool, bool) {
	val, ok := s.Get(name)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// Keys returns the statistic names in sorted order.
func (s *Statistics) Keys() []string {
	if s == nil {
		return nil
	}
	result := make([]string, len(s.keys))
	copy(result, s.keys)
	return result
}

func (s *Statistics) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// ToMap returns the underlying mapping. Nested values are copied.
func (s *Statistics) ToMap() map[string]interface{} {
	if s == nil {
		return nil
	}
	result := maps.DeepCopy(s.values)
	if result == nil {
		result = make(map[string]interface{})
	}
	return result
}

func (s *Statistics) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToMap())
}

func (s *Statistics) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = *StatisticsFromMap(raw)
	return nil
}
