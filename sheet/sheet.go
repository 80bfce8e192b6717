// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidCell        = errors.New("row and column must be 1 or greater")
	ErrInvalidSpreadsheet = errors.New("invalid spreadsheet URL or ID")
)

// Store is a tabular store addressed like a spreadsheet: the first row is the
// header, rows and columns are 1-indexed.
type Store interface {
	// Values returns every row, header included, as raw string cells
	Values(ctx context.Context) ([][]string, error)

	// Update replaces the whole table with rows
	Update(ctx context.Context, rows [][]string) error

	// UpdateCell writes a single cell
	UpdateCell(ctx context.Context, row, col int, value string) error
}

// Records converts a table into one map per body row, keyed by the trimmed,
// lower-cased header name. Missing trailing cells map to "".
func Records(values [][]string) []map[string]string {
	if len(values) == 0 {
		return nil
	}

	header := make([]string, len(values[0]))
	for i, h := range values[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	records := make([]map[string]string, 0, len(values)-1)
	for _, row := range values[1:] {
		rec := make(map[string]string, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(row) {
				rec[key] = row[i]
			} else {
				rec[key] = ""
			}
		}
		records = append(records, rec)
	}

	return records
}

// copyRows deep-copies a table so callers never share backing arrays
func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
