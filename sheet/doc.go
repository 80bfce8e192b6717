// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sheet provides the tabular store that holds the book list.

# Store

Store models a spreadsheet worksheet: row 1 is the header, rows and
columns are 1-indexed, and every cell is a raw string.

	values, err := store.Values(ctx)              // header + body rows
	err = store.Update(ctx, rows)                 // replace the whole table
	err = store.UpdateCell(ctx, row, col, "1516") // write one cell

Records turns a table into header-keyed maps (header names trimmed and
lower-cased).

# Implementations

  - GoogleSheet: a worksheet in a Google spreadsheet (sheets/v4 API),
    authenticated with a service account. Writes pass through a rate
    limiter so a burst of votes stays under the API quota.
  - SQLSheet: a named grid in the sheet_cell table, on PostgreSQL or
    SQLite (see package db).
  - MemSheet: an in-memory grid for local runs and tests.

# Consistency

Every UpdateCell is an independent write. There is no locking and no
read-after-write check; callers that need row positions re-read the
table first.
*/
package sheet
