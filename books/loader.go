// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package books

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/danielhkuo/book-rater/elo"
	"github.com/danielhkuo/book-rater/models"
	"github.com/danielhkuo/book-rater/sheet"
)

var ErrMissingColumn = errors.New("required column missing from sheet header")

// Header is written to an empty sheet
var Header = []string{models.ColumnTitle, models.ColumnAuthors, models.ColumnRating}

// Load reads the book sheet into a Dataset.
//
// A completely empty sheet is seeded with Header and yields an empty
// Dataset. A sheet with a header but no rows also yields an empty Dataset
// and is left untouched, so repeated loads never write a second header.
func Load(ctx context.Context, store sheet.Store) (Dataset, error) {
	values, err := store.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch books: %w", err)
	}

	if isBlank(values) {
		if err := store.Update(ctx, [][]string{Header}); err != nil {
			return nil, fmt.Errorf("failed to seed sheet header: %w", err)
		}
		slog.Info("seeded empty sheet", "header", strings.Join(Header, ","))
		return Dataset{}, nil
	}

	header := values[0]
	for _, col := range []string{models.ColumnTitle, models.ColumnRating} {
		if ColumnIndex(header, col) < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	records := sheet.Records(values)
	ds := make(Dataset, 0, len(records))
	for _, rec := range records {
		title := strings.TrimSpace(rec[models.ColumnTitle])
		if title == "" {
			continue
		}

		ds = append(ds, models.Book{
			Title:   title,
			Authors: strings.TrimSpace(rec[models.ColumnAuthors]),
			Rating:  ParseRating(rec[models.ColumnRating]),
		})
	}

	return ds, nil
}

// maxRating bounds accepted rating cells; anything further from zero is
// treated as malformed
const maxRating = 1_000_000

// ParseRating reads a rating cell. Decimals are truncated; anything that is
// not a finite number within ±maxRating yields elo.DefaultRating.
func ParseRating(cell string) int {
	s := strings.TrimSpace(cell)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > maxRating {
		return elo.DefaultRating
	}
	return int(f)
}

// isBlank reports whether the sheet has no non-empty cell at all
func isBlank(values [][]string) bool {
	for _, row := range values {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return false
			}
		}
	}
	return true
}
