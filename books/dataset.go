// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package books

import (
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/book-rater/models"
)

// Dataset is the in-memory copy of the book sheet, in sheet order
type Dataset []models.Book

// TitleKey normalizes a title for comparisons
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Find returns the first book whose title matches
func (d Dataset) Find(title string) (models.Book, bool) {
	key := TitleKey(title)
	for _, b := range d {
		if TitleKey(b.Title) == key {
			return b, true
		}
	}
	return models.Book{}, false
}

// ApplyResult sets the new ratings on every book matching the winner or
// loser title and returns how many entries changed. The winner is applied
// before the loser, the same order Sync writes the sheet, so a title shared
// by both ends at the loser's rating in memory and in the sheet.
func (d Dataset) ApplyResult(res models.VoteResult) int {
	updated := 0
	for _, change := range []models.RatingChange{res.Winner, res.Loser} {
		key := TitleKey(change.Title)
		for i := range d {
			if TitleKey(d[i].Title) == key {
				d[i].Rating = change.After
				updated++
			}
		}
	}
	return updated
}

// Leaderboard ranks books by rating, highest first. Ties keep sheet order.
func (d Dataset) Leaderboard() []models.LeaderboardEntry {
	sorted := make(Dataset, len(d))
	copy(sorted, d)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	entries := make([]models.LeaderboardEntry, len(sorted))
	for i, b := range sorted {
		entries[i] = models.LeaderboardEntry{
			Rank:    i + 1, // 1-indexed ranking
			Place:   humanize.Ordinal(i + 1),
			Title:   b.Title,
			Authors: b.Authors,
			Rating:  b.Rating,
		}
	}
	return entries
}
