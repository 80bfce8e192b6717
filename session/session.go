// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/book-rater/books"
	"github.com/danielhkuo/book-rater/models"
	"github.com/danielhkuo/book-rater/sheet"
)

var (
	ErrNotEnoughBooks = errors.New("need at least two books to compare")
	ErrStalePair      = errors.New("pair is no longer current")
	ErrInvalidChoice  = errors.New("choice must be 0 or 1")
	ErrVoteInProgress = errors.New("a vote is already being processed")
)

type State int

const (
	Idle State = iota
	AwaitingChoice
	ProcessingVote
)

func (s State) String() string {
	switch s {
	case AwaitingChoice:
		return models.StateAwaitingChoice
	case ProcessingVote:
		return models.StateProcessingVote
	default:
		return models.StateIdle
	}
}

// Pair is the two books currently shown to the user
type Pair struct {
	ID    string
	Books [2]models.Book
}

// Outcome is the result of an accepted vote. SyncErr is set when the sheet
// could not be fully updated; the vote still counts in memory.
type Outcome struct {
	Result  models.VoteResult
	Next    *Pair
	SyncErr error
}

// Session holds the loaded books and the pair awaiting a choice.
//
// State changes:
//
//	Idle           --Load (>= 2 titles)-> AwaitingChoice
//	AwaitingChoice --Skip---------------> AwaitingChoice (new pair)
//	AwaitingChoice --Vote---------------> ProcessingVote --> AwaitingChoice
//	any but ProcessingVote --Load (< 2 titles)--> Idle
type Session struct {
	mu        sync.Mutex
	store     sheet.Store
	processor *books.Processor
	rng       *rand.Rand
	dataset   books.Dataset
	state     State
	pair      Pair
	loadedAt  time.Time
}

// New creates an idle session. rng may be nil.
func New(store sheet.Store, k int, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}

	return &Session{
		store:     store,
		processor: books.NewProcessor(store, k),
		rng:       rng,
		state:     Idle,
	}
}

// Load replaces the dataset with a fresh read of the sheet and draws a new
// pair. On error the previous dataset is kept.
func (s *Session) Load(ctx context.Context) (int, error) {
	if s.State() == ProcessingVote {
		return 0, ErrVoteInProgress
	}

	ds, err := books.Load(ctx, s.store)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == ProcessingVote {
		return 0, ErrVoteInProgress
	}

	s.dataset = ds
	s.loadedAt = time.Now()
	s.drawLocked()

	return len(ds), nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) LoadedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadedAt
}

func (s *Session) BookCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dataset)
}

func (s *Session) K() int {
	return s.processor.K()
}

// Pair returns the pair awaiting a choice
func (s *Session) Pair() (Pair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkReadyLocked(); err != nil {
		return Pair{}, err
	}
	return s.pair, nil
}

// Skip discards the current pair and draws another
func (s *Session) Skip() (Pair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkReadyLocked(); err != nil {
		return Pair{}, err
	}

	s.drawLocked()
	return s.pair, nil
}

// Vote picks pair.Books[choice] as the winner of the current pair.
//
// The in-memory ratings change before the sheet is written; the sheet write
// happens without holding the lock, and any other Vote, Skip or Load in that
// window fails with ErrVoteInProgress.
func (s *Session) Vote(ctx context.Context, pairID string, choice int) (Outcome, error) {
	if choice != 0 && choice != 1 {
		return Outcome{}, ErrInvalidChoice
	}

	s.mu.Lock()
	if err := s.checkReadyLocked(); err != nil {
		s.mu.Unlock()
		return Outcome{}, err
	}
	if pairID != s.pair.ID {
		s.mu.Unlock()
		return Outcome{}, ErrStalePair
	}

	vote := models.Vote{
		Winner: s.currentLocked(s.pair.Books[choice]),
		Loser:  s.currentLocked(s.pair.Books[1-choice]),
	}

	res := s.processor.Resolve(vote)
	s.dataset.ApplyResult(res)
	s.state = ProcessingVote
	s.mu.Unlock()

	syncErr := s.processor.Sync(ctx, &res)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := Outcome{Result: res, SyncErr: syncErr}
	if s.drawLocked() {
		next := s.pair
		out.Next = &next
	}
	return out, nil
}

// Leaderboard ranks the loaded books by rating
func (s *Session) Leaderboard() []models.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataset.Leaderboard()
}

func (s *Session) checkReadyLocked() error {
	switch s.state {
	case Idle:
		return ErrNotEnoughBooks
	case ProcessingVote:
		return ErrVoteInProgress
	}
	return nil
}

// currentLocked returns the dataset's copy of b so the vote uses the latest rating
func (s *Session) currentLocked(b models.Book) models.Book {
	if cur, ok := s.dataset.Find(b.Title); ok {
		return cur
	}
	return b
}

// drawLocked picks two books with different titles at random. It reports
// false and moves to Idle when fewer than two distinct titles are loaded.
func (s *Session) drawLocked() bool {
	n := len(s.dataset)
	if n < 2 {
		s.state = Idle
		s.pair = Pair{}
		return false
	}

	i := s.rng.IntN(n)
	first := books.TitleKey(s.dataset[i].Title)

	others := make([]int, 0, n-1)
	for j := range s.dataset {
		if books.TitleKey(s.dataset[j].Title) != first {
			others = append(others, j)
		}
	}
	if len(others) == 0 {
		s.state = Idle
		s.pair = Pair{}
		return false
	}
	j := others[s.rng.IntN(len(others))]

	s.pair = Pair{
		ID:    uuid.NewString(),
		Books: [2]models.Book{s.dataset[i], s.dataset[j]},
	}
	s.state = AwaitingChoice
	return true
}
