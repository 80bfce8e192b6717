// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"context"
	"sync"
)

// MemSheet keeps the table in memory. Used for local runs and tests.
type MemSheet struct {
	mu     sync.Mutex
	rows   [][]string
	writes int
}

func NewMemSheet(rows [][]string) *MemSheet {
	return &MemSheet{rows: copyRows(rows)}
}

func (m *MemSheet) Values(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return copyRows(m.rows), nil
}

func (m *MemSheet) Update(ctx context.Context, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows = copyRows(rows)
	m.writes++
	return nil
}

func (m *MemSheet) UpdateCell(ctx context.Context, row, col int, value string) error {
	if row < 1 || col < 1 {
		return ErrInvalidCell
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Grow the grid like a spreadsheet would
	for len(m.rows) < row {
		m.rows = append(m.rows, nil)
	}
	for len(m.rows[row-1]) < col {
		m.rows[row-1] = append(m.rows[row-1], "")
	}

	m.rows[row-1][col-1] = value
	m.writes++
	return nil
}

// Writes returns how many Update and UpdateCell calls have succeeded
func (m *MemSheet) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
