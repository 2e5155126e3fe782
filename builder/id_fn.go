// SPDX-License-Identifier: MIT
// Package: lvbayes/builder
//
// id_fn.go — deterministic index → ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a node or variable name.
type IDFn func(idx int) string

// DefaultIDFn returns decimal IDs: "0", "1", "2", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns spreadsheet-style IDs: "A", …, "Z", "AA", "AB", ...
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns prefix followed by the decimal index ("x0", "x1", ...).
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs selects PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
