package models

import "time"

// Session states
const (
	StateIdle           = "idle"
	StateAwaitingChoice = "awaiting_choice"
	StateProcessingVote = "processing_vote"
)

// Sheet column names (matched case-insensitively)
const (
	ColumnTitle   = "title"
	ColumnAuthors = "authors"
	ColumnRating  = "elo"
)

// Store backends
const (
	StoreSheets   = "sheets"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Request types

// choice is the index into the pair's books (0 or 1)
type VoteRequest struct {
	PairID string `json:"pair_id"`
	Choice *int   `json:"choice"`
}

// Response types

type PairResponse struct {
	PairID string `json:"pair_id"`
	Books  []Book `json:"books"`
}

type VoteResponse struct {
	Result  VoteResult    `json:"result"`
	Next    *PairResponse `json:"next,omitempty"`
	Message string        `json:"message"`
	Warning string        `json:"warning,omitempty"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
	Total   int                `json:"total"`
}

type StateResponse struct {
	State     string `json:"state"`
	BookCount int    `json:"book_count"`
}

type ReloadResponse struct {
	BookCount int       `json:"book_count"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// Domain types

type Book struct {
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Rating  int    `json:"rating"`
}

// Vote is one comparison outcome, discarded once applied
type Vote struct {
	Winner Book
	Loser  Book
}

type RatingChange struct {
	Title  string `json:"title"`
	Before int    `json:"before"`
	After  int    `json:"after"`
	Row    int    `json:"row,omitempty"` // 1-indexed sheet row, 0 if not located
}

type VoteResult struct {
	ID      string       `json:"id"`
	Winner  RatingChange `json:"winner"`
	Loser   RatingChange `json:"loser"`
	K       int          `json:"k"`
	VotedAt time.Time    `json:"voted_at"`
}

type LeaderboardEntry struct {
	Rank    int    `json:"rank"` // 1-indexed ranking
	Place   string `json:"place"`
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Rating  int    `json:"rating"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
