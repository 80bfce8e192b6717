// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/book-rater/models"
	"github.com/danielhkuo/book-rater/session"
	"github.com/danielhkuo/book-rater/sheet"
	"github.com/danielhkuo/book-rater/testutil"
)

var testBooks = []models.Book{
	{Title: "Dune", Authors: "Frank Herbert", Rating: 1500},
	{Title: "Emma", Authors: "Jane Austen", Rating: 1500},
	{Title: "Beloved", Authors: "Toni Morrison", Rating: 1600},
}

func setupHandler(t *testing.T, store sheet.Store) (*RaterHandler, *session.Session) {
	t.Helper()

	s := session.New(store, 32, rand.New(rand.NewPCG(1, 2)))
	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	return NewRaterHandler(s, testutil.GetTestConfig()), s
}

func getPair(t *testing.T, h *RaterHandler) models.PairResponse {
	t.Helper()

	w := httptest.NewRecorder()
	h.GetPair(w, httptest.NewRequest("GET", "/pair", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PairResponse
	testutil.AssertJSON(t, w, &resp)
	return resp
}

func intPtr(i int) *int {
	return &i
}

func TestGetPair(t *testing.T) {
	t.Run("two distinct books", func(t *testing.T) {
		h, _ := setupHandler(t, testutil.NewBookSheet(testBooks...))

		resp := getPair(t, h)
		if resp.PairID == "" {
			t.Error("Expected a pair ID")
		}
		if len(resp.Books) != 2 {
			t.Fatalf("Expected 2 books, got %d", len(resp.Books))
		}
		if resp.Books[0].Title == resp.Books[1].Title {
			t.Errorf("Expected distinct books, got %s twice", resp.Books[0].Title)
		}
	})

	t.Run("same pair until voted or skipped", func(t *testing.T) {
		h, _ := setupHandler(t, testutil.NewBookSheet(testBooks...))

		first := getPair(t, h)
		second := getPair(t, h)
		if first.PairID != second.PairID {
			t.Errorf("Expected pair %s to stay current, got %s", first.PairID, second.PairID)
		}
	})

	t.Run("too few books", func(t *testing.T) {
		h, _ := setupHandler(t, testutil.NewBookSheet(testBooks[0]))

		w := httptest.NewRecorder()
		h.GetPair(w, httptest.NewRequest("GET", "/pair", nil))
		testutil.AssertStatus(t, w, http.StatusConflict)
	})
}

func TestSkipPair(t *testing.T) {
	h, _ := setupHandler(t, testutil.NewBookSheet(testBooks...))
	before := getPair(t, h)

	w := httptest.NewRecorder()
	h.SkipPair(w, httptest.NewRequest("POST", "/pair/skip", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var skipped models.PairResponse
	testutil.AssertJSON(t, w, &skipped)
	if skipped.PairID == before.PairID {
		t.Error("Expected a new pair ID after skip")
	}

	// The old pair can no longer be voted on
	w = httptest.NewRecorder()
	req := testutil.MakeRequest("POST", "/votes", models.VoteRequest{PairID: before.PairID, Choice: intPtr(0)}, nil)
	h.SubmitVote(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestSubmitVote(t *testing.T) {
	tests := []struct {
		name           string
		body           func(pairID string) interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "valid vote",
			body: func(pairID string) interface{} {
				return models.VoteRequest{PairID: pairID, Choice: intPtr(0)}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing pair id",
			body: func(string) interface{} {
				return models.VoteRequest{Choice: intPtr(0)}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "pair_id is required",
		},
		{
			name: "missing choice",
			body: func(pairID string) interface{} {
				return map[string]string{"pair_id": pairID}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "choice is required",
		},
		{
			name: "choice out of range",
			body: func(pairID string) interface{} {
				return models.VoteRequest{PairID: pairID, Choice: intPtr(2)}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "choice must be 0 or 1",
		},
		{
			name: "stale pair",
			body: func(string) interface{} {
				return models.VoteRequest{PairID: "not-the-current-pair", Choice: intPtr(1)}
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupHandler(t, testutil.NewBookSheet(testBooks...))
			pair := getPair(t, h)

			w := httptest.NewRecorder()
			h.SubmitVote(w, testutil.MakeRequest("POST", "/votes", tt.body(pair.PairID), nil))
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedError != "" {
				var errResp models.ErrorResponse
				testutil.AssertJSON(t, w, &errResp)
				if errResp.Message != tt.expectedError {
					t.Errorf("Expected message %q, got %q", tt.expectedError, errResp.Message)
				}
			}
		})
	}
}

func TestSubmitVoteInvalidJSON(t *testing.T) {
	h, _ := setupHandler(t, testutil.NewBookSheet(testBooks...))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/votes", strings.NewReader("{not json"))
	h.SubmitVote(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSubmitVoteUpdatesRatingsAndSheet(t *testing.T) {
	store := testutil.NewBookSheet(testBooks[0], testBooks[1])
	h, _ := setupHandler(t, store)
	pair := getPair(t, h)

	w := httptest.NewRecorder()
	h.SubmitVote(w, testutil.MakeRequest("POST", "/votes", models.VoteRequest{PairID: pair.PairID, Choice: intPtr(1)}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoteResponse
	testutil.AssertJSON(t, w, &resp)

	winner, loser := pair.Books[1].Title, pair.Books[0].Title
	if resp.Result.Winner.Title != winner || resp.Result.Loser.Title != loser {
		t.Fatalf("Expected %s over %s, got %+v", winner, loser, resp.Result)
	}
	if resp.Result.Winner.After != 1516 || resp.Result.Loser.After != 1484 {
		t.Errorf("Expected 1516/1484, got %d/%d", resp.Result.Winner.After, resp.Result.Loser.After)
	}
	if resp.Result.K != 32 {
		t.Errorf("Expected K 32, got %d", resp.Result.K)
	}

	expected := "You voted for " + winner + "! Elo updated: 1500 → 1516."
	if resp.Message != expected {
		t.Errorf("Expected message %q, got %q", expected, resp.Message)
	}
	if resp.Warning != "" {
		t.Errorf("Expected no warning, got %q", resp.Warning)
	}
	if resp.Next == nil || resp.Next.PairID == pair.PairID {
		t.Error("Expected a fresh next pair")
	}

	values, err := store.Values(context.Background())
	if err != nil {
		t.Fatalf("Failed to read sheet: %v", err)
	}
	cells := map[string]string{}
	for _, row := range values[1:] {
		cells[row[0]] = row[2]
	}
	if cells[winner] != "1516" || cells[loser] != "1484" {
		t.Errorf("Expected sheet cells 1516/1484, got %v", cells)
	}
}

func TestSubmitVoteSheetFailureIsWarning(t *testing.T) {
	store := &testutil.FlakySheet{Store: testutil.NewBookSheet(testBooks[0], testBooks[1])}
	h, s := setupHandler(t, store)
	pair := getPair(t, h)

	store.CellErr = errors.New("quota exceeded")

	w := httptest.NewRecorder()
	h.SubmitVote(w, testutil.MakeRequest("POST", "/votes", models.VoteRequest{PairID: pair.PairID, Choice: intPtr(0)}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoteResponse
	testutil.AssertJSON(t, w, &resp)
	if !strings.HasPrefix(resp.Warning, "Update failed: ") {
		t.Errorf("Expected update warning, got %q", resp.Warning)
	}
	if !strings.Contains(resp.Warning, "quota exceeded") {
		t.Errorf("Expected warning to carry the cause, got %q", resp.Warning)
	}

	// Ratings still changed in memory
	board := s.Leaderboard()
	if board[0].Title != pair.Books[0].Title || board[0].Rating != 1516 {
		t.Errorf("Expected %s at 1516 on top, got %+v", pair.Books[0].Title, board[0])
	}
}

func TestGetLeaderboard(t *testing.T) {
	h, _ := setupHandler(t, testutil.NewBookSheet(testBooks...))

	w := httptest.NewRecorder()
	h.GetLeaderboard(w, httptest.NewRequest("GET", "/leaderboard", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LeaderboardResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Total != 3 {
		t.Fatalf("Expected 3 entries, got %d", resp.Total)
	}

	expected := []struct {
		title string
		place string
	}{
		{"Beloved", "1st"},
		{"Dune", "2nd"},
		{"Emma", "3rd"},
	}
	for i, e := range expected {
		got := resp.Entries[i]
		if got.Title != e.title || got.Place != e.place || got.Rank != i+1 {
			t.Errorf("Entry %d: expected %s (%s), got %+v", i, e.title, e.place, got)
		}
	}
}

func TestReload(t *testing.T) {
	t.Run("picks up sheet edits", func(t *testing.T) {
		store := testutil.NewBookSheet(testBooks[0], testBooks[1])
		h, s := setupHandler(t, store)

		rows := testutil.BookTable(testBooks...)
		if err := store.Update(context.Background(), rows); err != nil {
			t.Fatalf("Failed to edit sheet: %v", err)
		}

		w := httptest.NewRecorder()
		h.Reload(w, httptest.NewRequest("POST", "/reload", nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ReloadResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.BookCount != 3 || s.BookCount() != 3 {
			t.Errorf("Expected 3 books, got %d (session %d)", resp.BookCount, s.BookCount())
		}
		if resp.LoadedAt.IsZero() {
			t.Error("Expected loaded_at to be set")
		}
	})

	t.Run("fetch failure keeps old books", func(t *testing.T) {
		store := &testutil.FlakySheet{Store: testutil.NewBookSheet(testBooks...)}
		h, s := setupHandler(t, store)

		store.ValuesErr = errors.New("network down")

		w := httptest.NewRecorder()
		h.Reload(w, httptest.NewRequest("POST", "/reload", nil))
		testutil.AssertStatus(t, w, http.StatusBadGateway)

		if s.BookCount() != 3 {
			t.Errorf("Expected previous 3 books kept, got %d", s.BookCount())
		}
	})
}

func TestGetState(t *testing.T) {
	tests := []struct {
		name          string
		books         []models.Book
		expectedState string
	}{
		{"ready", testBooks, models.StateAwaitingChoice},
		{"one book", testBooks[:1], models.StateIdle},
		{"empty sheet", nil, models.StateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupHandler(t, testutil.NewBookSheet(tt.books...))

			w := httptest.NewRecorder()
			h.GetState(w, httptest.NewRequest("GET", "/state", nil))
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.StateResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.State != tt.expectedState {
				t.Errorf("Expected state %s, got %s", tt.expectedState, resp.State)
			}
			if resp.BookCount != len(tt.books) {
				t.Errorf("Expected %d books, got %d", len(tt.books), resp.BookCount)
			}
		})
	}
}
