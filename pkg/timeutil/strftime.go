/*
 * Copyright (C) 2025-2025, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package timeutil

import (
	"fmt"
	"time"

	"github.com/itchyny/timefmt-go"
)

const DefaultDateFormat = "%Y-%m-%d"

var supportedDirectives = map[byte]struct{}{
	'Y': {}, 'y': {}, 'm': {}, 'd': {}, 'j': {},
	'H': {}, 'I': {}, 'M': {}, 'S': {}, 'f': {}, 'p': {},
	'b': {}, 'B': {}, 'a': {}, 'A': {}, 'z': {}, 'Z': {},
	'%': {},
}

// ValidateFormat reports whether format is a non-empty strftime style format
// built only from supported directives.
func ValidateFormat(format string) error {
	if format == "" {
		return fmt.Errorf("empty date format")
	}
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 >= len(format) {
			return fmt.Errorf("date format %q ends with a dangling '%%'", format)
		}
		i++
		if _, ok := supportedDirectives[format[i]]; !ok {
			return fmt.Errorf("date format %q: unsupported directive %%%c", format, format[i])
		}
	}
	return nil
}

// ParseWithStrftime parses value with a strftime style format. Numeric fields
// accept unpadded values and the whole value must be consumed.
// Values without a zone are returned in UTC.
func ParseWithStrftime(value, format string) (time.Time, error) {
	if err := ValidateFormat(format); err != nil {
		return time.Time{}, err
	}
	t, err := timefmt.Parse(value, format)
	if err != nil {
		return time.Time{}, fmt.Errorf("time data %q does not match format %q", value, format)
	}
	return t, nil
}

func FormatWithStrftime(t time.Time, format string) (string, error) {
	if err := ValidateFormat(format); err != nil {
		return "", err
	}
	return timefmt.Format(t, format), nil
}
