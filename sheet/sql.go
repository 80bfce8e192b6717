// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLSheet stores a named grid in the sheet_cell table (see package db).
// Works with both PostgreSQL and SQLite.
type SQLSheet struct {
	db   *sql.DB
	name string
}

func NewSQLSheet(db *sql.DB, name string) *SQLSheet {
	return &SQLSheet{db: db, name: name}
}

func (s *SQLSheet) Values(ctx context.Context) ([][]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT row_num, col_num, value
		FROM sheet_cell
		WHERE sheet = $1
		ORDER BY row_num, col_num
	`, s.name)
	if err != nil {
		return nil, fmt.Errorf("failed to query cells: %w", err)
	}
	defer rows.Close()

	var values [][]string
	for rows.Next() {
		var rowNum, colNum int
		var value string
		if err := rows.Scan(&rowNum, &colNum, &value); err != nil {
			return nil, fmt.Errorf("failed to scan cell: %w", err)
		}

		for len(values) < rowNum {
			values = append(values, []string{})
		}
		for len(values[rowNum-1]) < colNum {
			values[rowNum-1] = append(values[rowNum-1], "")
		}
		values[rowNum-1][colNum-1] = value
	}

	return values, rows.Err()
}

func (s *SQLSheet) Update(ctx context.Context, table [][]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sheet_cell WHERE sheet = $1`, s.name); err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	for i, row := range table {
		for j, value := range row {
			if value == "" {
				continue
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO sheet_cell (sheet, row_num, col_num, value)
				VALUES ($1, $2, $3, $4)
			`, s.name, i+1, j+1, value)
			if err != nil {
				return fmt.Errorf("failed to insert cell (%d, %d): %w", i+1, j+1, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sheet: %w", err)
	}

	return nil
}

func (s *SQLSheet) UpdateCell(ctx context.Context, row, col int, value string) error {
	if row < 1 || col < 1 {
		return ErrInvalidCell
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sheet_cell (sheet, row_num, col_num, value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (sheet, row_num, col_num) DO UPDATE SET value = excluded.value
	`, s.name, row, col, value)
	if err != nil {
		return fmt.Errorf("failed to update cell (%d, %d): %w", row, col, err)
	}

	return nil
}
