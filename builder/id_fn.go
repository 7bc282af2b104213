// Package builder provides helper functions and types for configuring ID
// schemes in graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero‐based index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
// Panics in implementations indicate programmer error in configuration.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) time where d = number of digits in idx. Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PaddedIDFn returns idx left-padded with zeros to width digits, e.g.
// width 3: 7→"007". Sorted IDs then follow index order, which keeps
// smallest-ID tie-breaks aligned with construction order.
// Panics if width < 1 or idx < 0.
func PaddedIDFn(width int) IDFn {
	if width < 1 {
		panic(fmt.Sprintf("PaddedIDFn: width must be ≥ 1, got %d", width))
	}
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PaddedIDFn: idx must be ≥ 0, got %d", idx))
		}
		return fmt.Sprintf("%0*d", width, idx)
	}
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v0","v1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithPaddedIDs sets the ID scheme to PaddedIDFn(width).
func WithPaddedIDs(width int) BuilderOption {
	return WithIDScheme(PaddedIDFn(width))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}
