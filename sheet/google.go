// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Value input options understood by the Sheets API
const (
	inputRaw         = "RAW"
	inputUserEntered = "USER_ENTERED"
)

var spreadsheetURLPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)

// GoogleSheet is a single worksheet of a Google spreadsheet.
// Writes are throttled to stay under the per-user API quota.
type GoogleSheet struct {
	svc           *sheets.Service
	spreadsheetID string
	name          string
	limiter       *rate.Limiter
}

// NewGoogleSheet authenticates with service account credentials and opens the
// named worksheet. spreadsheet may be a full URL or a bare spreadsheet ID.
func NewGoogleSheet(ctx context.Context, credentialsJSON []byte, spreadsheet, name string, writeRPS float64) (*GoogleSheet, error) {
	id, err := SpreadsheetID(spreadsheet)
	if err != nil {
		return nil, err
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return newGoogleSheet(svc, id, name, writeRPS), nil
}

func newGoogleSheet(svc *sheets.Service, spreadsheetID, name string, writeRPS float64) *GoogleSheet {
	return &GoogleSheet{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		name:          name,
		limiter:       rate.NewLimiter(rate.Limit(writeRPS), 1),
	}
}

func (g *GoogleSheet) Values(ctx context.Context) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, quoteSheet(g.name)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", g.name, err)
	}

	values := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		values[i] = make([]string, len(row))
		for j, cell := range row {
			values[i][j] = fmt.Sprint(cell)
		}
	}

	return values, nil
}

func (g *GoogleSheet) Update(ctx context.Context, rows [][]string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := g.svc.Spreadsheets.Values.Clear(g.spreadsheetID, quoteSheet(g.name), &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet %q: %w", g.name, err)
	}

	if len(rows) == 0 {
		return nil
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err = g.svc.Spreadsheets.Values.Update(g.spreadsheetID, cellRef(g.name, 1, 1), &sheets.ValueRange{
		Values: toInterfaceRows(rows),
	}).ValueInputOption(inputRaw).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write sheet %q: %w", g.name, err)
	}

	return nil
}

func (g *GoogleSheet) UpdateCell(ctx context.Context, row, col int, value string) error {
	if row < 1 || col < 1 {
		return ErrInvalidCell
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	ref := cellRef(g.name, row, col)

	// USER_ENTERED so numeric ratings stay numbers in the sheet
	_, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, ref, &sheets.ValueRange{
		Values: [][]interface{}{{value}},
	}).ValueInputOption(inputUserEntered).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update cell %s: %w", ref, err)
	}

	return nil
}

// SpreadsheetID extracts the spreadsheet ID from a sheet URL, or returns
// the input unchanged if it is already a bare ID
func SpreadsheetID(urlOrID string) (string, error) {
	s := strings.TrimSpace(urlOrID)
	if s == "" {
		return "", ErrInvalidSpreadsheet
	}

	if m := spreadsheetURLPattern.FindStringSubmatch(s); m != nil {
		return m[1], nil
	}

	if strings.ContainsAny(s, "/?#: ") {
		return "", fmt.Errorf("%w: %s", ErrInvalidSpreadsheet, s)
	}

	return s, nil
}

// quoteSheet quotes a worksheet name for A1 notation
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// columnName converts a 1-indexed column to its letters (1 → A, 27 → AA)
func columnName(col int) string {
	var letters []byte
	for col > 0 {
		col--
		letters = append([]byte{byte('A' + col%26)}, letters...)
		col /= 26
	}
	return string(letters)
}

func cellRef(name string, row, col int) string {
	return quoteSheet(name) + "!" + columnName(col) + strconv.Itoa(row)
}

func toInterfaceRows(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		out[i] = make([]interface{}, len(row))
		for j, v := range row {
			out[i][j] = v
		}
	}
	return out
}
