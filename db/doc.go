// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db manages the SQL schema used when the book list lives in a
database instead of a Google spreadsheet.

# Usage

	conn, err := db.Open("sqlite", "file:books.db")
	if err != nil {
		log.Fatal(err)
	}
	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Open accepts "postgres" (github.com/lib/pq) and "sqlite"
(modernc.org/sqlite). The caller blank-imports the driver it needs.

# Tables

sheet_cell stores a spreadsheet grid, one row per non-empty cell:

  - sheet: grid name (the worksheet name, "Books" by default)
  - row_num: 1-indexed row, row 1 is the header
  - col_num: 1-indexed column
  - value: raw cell text

The primary key (sheet, row_num, col_num) makes single-cell writes an
upsert. Queries use $N placeholders, which both drivers accept.

# Idempotency

CreateSchema uses IF NOT EXISTS and is safe to call on every startup.
*/
package db
