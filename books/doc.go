// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package books loads the book list from a sheet, locates books by title, and
applies votes.

# Loading

	ds, err := books.Load(ctx, store)

Load expects "title" and "elo" columns (any case); "authors" is optional.
Titles and authors are trimmed, ratings that do not parse default to 1500,
and rows with a blank title are skipped. An empty sheet is seeded with the
header row.

# Locating Rows

	row, ok := books.FindRow("dune", values, titleIdx)

Titles are compared trimmed and case-insensitively. The first match wins
and the result is the 1-indexed sheet row (the header is row 1).

# Applying Votes

	p := books.NewProcessor(store, elo.DefaultK)
	res, err := p.Apply(ctx, models.Vote{Winner: a, Loser: b}, ds)

Apply runs in three steps, also exposed separately:

  - Resolve: compute new ratings with elo.Update
  - Dataset.ApplyResult: update every in-memory book with a matching title
  - Sync: re-read the sheet, find both rows, write the two rating cells

Sync problems come back as *SyncError. They are warnings: the in-memory
ratings are not rolled back, so the sheet may lag until the next reload.
Use errors.Is(err, books.ErrRowNotFound) to detect a book that vanished
from the sheet.
*/
package books
