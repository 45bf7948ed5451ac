// Package normalize turns loosely formatted spreadsheet cells into plan
// fields. Every field is resolved by an ordered list of rules; the first rule
// that recognises the cell wins.
package normalize

import "strings"

// Rule inspects a cell and reports the value it resolves to, if any.
type Rule[T any] func(cell string) (T, bool)

// FirstMatch runs rules in order and returns the first resolved value.
func FirstMatch[T any](cell string, rules ...Rule[T]) (T, bool) {
	for _, rule := range rules {
		if v, ok := rule(cell); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Clean trims surrounding whitespace, including the full-width space that
// spreadsheets exported from Chinese locales often carry.
func Clean(cell string) string {
	return strings.TrimSpace(strings.Trim(cell, "　"))
}
