// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package books

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/book-rater/elo"
	"github.com/danielhkuo/book-rater/models"
	"github.com/danielhkuo/book-rater/sheet"
)

var ErrRowNotFound = errors.New("book row not found in sheet")

// SyncError reports what went wrong writing a vote to the sheet. It is never
// fatal: the in-memory Dataset already holds the new ratings.
type SyncError struct {
	Errs []error
}

func (e *SyncError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return "sheet sync failed: " + strings.Join(msgs, "; ")
}

func (e *SyncError) Unwrap() []error {
	return e.Errs
}

// Processor applies votes to a Dataset and writes the new ratings back to
// the sheet
type Processor struct {
	store sheet.Store
	k     int
}

func NewProcessor(store sheet.Store, k int) *Processor {
	if k <= 0 {
		k = elo.DefaultK
	}
	return &Processor{store: store, k: k}
}

// K returns the sensitivity constant used for every vote
func (p *Processor) K() int {
	return p.k
}

// Resolve computes the outcome of a vote without touching any state
func (p *Processor) Resolve(v models.Vote) models.VoteResult {
	newWinner, newLoser := elo.Update(v.Winner.Rating, v.Loser.Rating, p.k)

	return models.VoteResult{
		ID: uuid.NewString(),
		Winner: models.RatingChange{
			Title:  v.Winner.Title,
			Before: v.Winner.Rating,
			After:  newWinner,
		},
		Loser: models.RatingChange{
			Title:  v.Loser.Title,
			Before: v.Loser.Rating,
			After:  newLoser,
		},
		K:       p.k,
		VotedAt: time.Now(),
	}
}

// Sync re-reads the sheet, locates both books and writes their new ratings.
// res.Winner.Row and res.Loser.Row are filled in for every located book.
// A book that cannot be located does not stop the other from being written.
func (p *Processor) Sync(ctx context.Context, res *models.VoteResult) error {
	// Row order in memory may have drifted from the sheet; always re-read
	values, err := p.store.Values(ctx)
	if err != nil {
		return &SyncError{Errs: []error{fmt.Errorf("failed to fetch sheet: %w", err)}}
	}

	var header []string
	if len(values) > 0 {
		header = values[0]
	}

	titleIdx := ColumnIndex(header, models.ColumnTitle)
	ratingIdx := ColumnIndex(header, models.ColumnRating)
	if titleIdx < 0 || ratingIdx < 0 {
		return &SyncError{Errs: []error{fmt.Errorf("%w: need %q and %q", ErrMissingColumn, models.ColumnTitle, models.ColumnRating)}}
	}

	var errs []error
	for _, change := range []*models.RatingChange{&res.Winner, &res.Loser} {
		row, ok := FindRow(change.Title, values, titleIdx)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrRowNotFound, change.Title))
			continue
		}
		change.Row = row

		if err := p.store.UpdateCell(ctx, row, ratingIdx+1, strconv.Itoa(change.After)); err != nil {
			errs = append(errs, fmt.Errorf("failed to write rating for %q: %w", change.Title, err))
		}
	}

	if len(errs) > 0 {
		return &SyncError{Errs: errs}
	}
	return nil
}

// Apply resolves a vote, updates ds in place and writes the sheet.
// A non-nil error is always a *SyncError; ds keeps the new ratings either way.
func (p *Processor) Apply(ctx context.Context, v models.Vote, ds Dataset) (models.VoteResult, error) {
	res := p.Resolve(v)
	ds.ApplyResult(res)

	if err := p.Sync(ctx, &res); err != nil {
		return res, err
	}
	return res, nil
}
