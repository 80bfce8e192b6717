// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/book-rater/cliparse"
	"github.com/danielhkuo/book-rater/middleware"
	"github.com/danielhkuo/book-rater/models"
	"github.com/danielhkuo/book-rater/session"
)

type RaterHandler struct {
	session *session.Session
	cfg     cliparse.Config
}

func NewRaterHandler(s *session.Session, cfg cliparse.Config) *RaterHandler {
	return &RaterHandler{session: s, cfg: cfg}
}

// GetPair handles GET /pair
func (h *RaterHandler) GetPair(w http.ResponseWriter, r *http.Request) {
	pair, err := h.session.Pair()
	if err != nil {
		sessionErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, pairResponse(pair))
}

// SkipPair handles POST /pair/skip
func (h *RaterHandler) SkipPair(w http.ResponseWriter, r *http.Request) {
	pair, err := h.session.Skip()
	if err != nil {
		sessionErrorResponse(w, err)
		return
	}

	slog.Info("pair skipped", "pair_id", pair.ID)

	middleware.JSONResponse(w, http.StatusOK, pairResponse(pair))
}

// SubmitVote handles POST /votes
func (h *RaterHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PairID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pair_id is required")
		return
	}
	if req.Choice == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice is required")
		return
	}

	out, err := h.session.Vote(r.Context(), req.PairID, *req.Choice)
	if err != nil {
		sessionErrorResponse(w, err)
		return
	}

	res := out.Result
	resp := models.VoteResponse{
		Result: res,
		Message: fmt.Sprintf("You voted for %s! Elo updated: %d → %d.",
			res.Winner.Title, res.Winner.Before, res.Winner.After),
	}

	if out.SyncErr != nil {
		// Non-fatal: ratings changed in memory, sheet may lag until reload
		slog.Warn("vote not fully written to sheet", "vote_id", res.ID, "error", out.SyncErr)
		resp.Warning = "Update failed: " + out.SyncErr.Error()
	}

	if out.Next != nil {
		next := pairResponse(*out.Next)
		resp.Next = &next
	}

	slog.Info("vote applied",
		"vote_id", res.ID,
		"winner", res.Winner.Title,
		"winner_elo", res.Winner.After,
		"loser", res.Loser.Title,
		"loser_elo", res.Loser.After,
		"synced", out.SyncErr == nil,
	)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetLeaderboard handles GET /leaderboard
func (h *RaterHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries := h.session.Leaderboard()

	middleware.JSONResponse(w, http.StatusOK, models.LeaderboardResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

// Reload handles POST /reload
// Re-reads the sheet; on failure the current books stay loaded
func (h *RaterHandler) Reload(w http.ResponseWriter, r *http.Request) {
	n, err := h.session.Load(r.Context())
	if errors.Is(err, session.ErrVoteInProgress) {
		sessionErrorResponse(w, err)
		return
	}
	if err != nil {
		slog.Error("failed to reload books", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to load books from sheet")
		return
	}

	slog.Info("books reloaded", "count", n, "sheet", h.cfg.SheetName)

	middleware.JSONResponse(w, http.StatusOK, models.ReloadResponse{
		BookCount: n,
		LoadedAt:  h.session.LoadedAt(),
	})
}

// GetState handles GET /state
func (h *RaterHandler) GetState(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.StateResponse{
		State:     h.session.State().String(),
		BookCount: h.session.BookCount(),
	})
}

func pairResponse(p session.Pair) models.PairResponse {
	return models.PairResponse{
		PairID: p.ID,
		Books:  []models.Book{p.Books[0], p.Books[1]},
	}
}

// sessionErrorResponse maps session errors to HTTP status codes
func sessionErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrInvalidChoice):
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice must be 0 or 1")
	case errors.Is(err, session.ErrNotEnoughBooks):
		middleware.ErrorResponse(w, http.StatusConflict, "Need at least two books to compare")
	case errors.Is(err, session.ErrStalePair):
		middleware.ErrorResponse(w, http.StatusConflict, "Pair is no longer current, fetch a new one")
	case errors.Is(err, session.ErrVoteInProgress):
		middleware.ErrorResponse(w, http.StatusConflict, "A vote is already being processed")
	default:
		slog.Error("session error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
