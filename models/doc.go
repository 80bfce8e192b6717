// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - VoteRequest: pair_id, choice (0 or 1)

# Response Types

Types for JSON responses:

  - PairResponse: pair_id, books
  - VoteResponse: result, next pair, message, warning
  - LeaderboardResponse: entries, total
  - StateResponse: state, book_count
  - ReloadResponse: book_count, loaded_at
  - ErrorResponse: error, message

# Domain Types

  - Book: title, authors, rating
  - Vote: winner and loser of a single comparison
  - RatingChange: before/after rating and located sheet row
  - VoteResult: both rating changes of an applied vote
  - LeaderboardEntry: ranked book with ordinal place ("1st")

# Constants

Session states:

	StateIdle           = "idle"
	StateAwaitingChoice = "awaiting_choice"
	StateProcessingVote = "processing_vote"

Sheet columns:

	ColumnTitle   = "title"
	ColumnAuthors = "authors"
	ColumnRating  = "elo"

Store backends:

	StoreSheets, StoreSQLite, StorePostgres, StoreMemory
*/
package models
