// Copyright (c) 2026 The Oratio Project. All rights reserved.

// Package convert holds fault-tolerant string conversions for query
// parameters, returning zero values instead of errors.
//
// Do not use it where malformed input must be distinguished from a zero
// value; the corpus ingestor deliberately parses with strconv directly for
// that reason.
package convert

import "strconv"

// ToInt parses s as an integer, or 0 when empty or malformed.
func ToInt(s string) int {
	if s == "" {
		return 0
	}

	v, _ := strconv.Atoi(s)
	return v
}

// ToBool parses s as a boolean ("true", "1", "false", "0"), or false when
// empty or malformed.
func ToBool(s string) bool {
	if s == "" {
		return false
	}

	v, _ := strconv.ParseBool(s)
	return v
}
