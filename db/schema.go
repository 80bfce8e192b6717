// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Driver names registered by lib/pq and modernc.org/sqlite
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// CreateSchema creates all tables needed for the SQL-backed sheet.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Open connects with the driver matching storeType ("postgres" or "sqlite")
// and verifies the connection.
func Open(storeType, url string) (*sql.DB, error) {
	var driver string
	switch storeType {
	case DriverPostgres:
		driver = DriverPostgres
	case DriverSQLite:
		driver = DriverSQLite
	default:
		return nil, fmt.Errorf("unsupported database type %q", storeType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// SQLite allows a single writer; serialize through one connection
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

const schema = `
-- One row per non-empty cell of a named sheet
CREATE TABLE IF NOT EXISTS sheet_cell (
    sheet TEXT NOT NULL,
    row_num INTEGER NOT NULL CHECK (row_num >= 1),
    col_num INTEGER NOT NULL CHECK (col_num >= 1),
    value TEXT NOT NULL,
    PRIMARY KEY (sheet, row_num, col_num)
);

CREATE INDEX IF NOT EXISTS idx_sheet_cell_sheet ON sheet_cell(sheet);
`
