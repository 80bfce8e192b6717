// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Book Rater API.

# Handler Types

RaterHandler drives one rating session. It is created with the session and
the server configuration:

	raterHandler := handlers.NewRaterHandler(s, cfg)

# Comparison Loop

	GET  /pair      → GetPair (current pair and its pair_id)
	POST /pair/skip → SkipPair (draw another pair)
	POST /votes     → SubmitVote (apply a choice, return the next pair)

A vote names the pair it answers. Votes for a pair that is no longer current
get 409, so a double submit cannot count twice.

# Sheet Write Failures

Ratings change in memory before the sheet is written. If the write fails
the vote still succeeds and the response carries a warning:

	{"result": {...}, "message": "You voted for Dune! ...", "warning": "Update failed: ..."}

A reload (POST /reload) re-reads the sheet and replaces the in-memory books.
*/
package handlers
