// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package books

import "strings"

// ColumnIndex returns the 0-indexed position of name in header, compared
// case-insensitively, or -1 if absent
func ColumnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// FindRow returns the 1-indexed sheet row of the first body row whose title
// cell matches title. Row 1 is the header, so body rows start at 2.
func FindRow(title string, values [][]string, titleIdx int) (int, bool) {
	if titleIdx < 0 || len(values) < 2 {
		return 0, false
	}

	key := TitleKey(title)
	for i, row := range values[1:] {
		if titleIdx >= len(row) {
			continue
		}
		if TitleKey(row[titleIdx]) == key {
			return i + 2, true
		}
	}

	return 0, false
}
