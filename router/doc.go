// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Book Rater API.

# Route Registration

NewRouter creates a configured http.ServeMux bound to one rating session:

	mux := router.NewRouter(s, cfg)

# Endpoints

Health:

	GET /health

Comparison loop:

	GET  /pair      - Current pair of books
	POST /pair/skip - Draw a different pair without voting
	POST /votes     - Pick a favorite from the current pair

Dataset:

	GET  /leaderboard - Books ordered by rating
	POST /reload      - Re-read the sheet
	GET  /state       - Session state and book count
*/
package router
