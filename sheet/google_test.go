// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// fakeSheetsAPI records requests and serves canned values
type fakeSheetsAPI struct {
	mu       sync.Mutex
	values   [][]string
	requests []string
	bodies   []string
}

func (f *fakeSheetsAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	body, _ := io.ReadAll(r.Body)
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	f.bodies = append(f.bodies, string(body))

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet:
		json.NewEncoder(w).Encode(map[string]interface{}{
			"range":          "Books!A1:C3",
			"majorDimension": "ROWS",
			"values":         f.values,
		})
	case strings.HasSuffix(r.URL.Path, ":clear"):
		json.NewEncoder(w).Encode(map[string]interface{}{"spreadsheetId": "sheet-id"})
	default:
		json.NewEncoder(w).Encode(map[string]interface{}{"spreadsheetId": "sheet-id", "updatedCells": 1})
	}
}

func (f *fakeSheetsAPI) calls() ([]string, []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...), append([]string(nil), f.bodies...)
}

func setupGoogleSheet(t *testing.T, api *fakeSheetsAPI) *GoogleSheet {
	t.Helper()

	ts := httptest.NewServer(api)
	t.Cleanup(ts.Close)

	svc, err := sheets.NewService(context.Background(),
		option.WithEndpoint(ts.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	return newGoogleSheet(svc, "sheet-id", "Books", 1000)
}

func TestGoogleSheetValues(t *testing.T) {
	api := &fakeSheetsAPI{values: [][]string{
		{"title", "authors", "elo"},
		{"Dune", "Herbert", "1500"},
	}}
	g := setupGoogleSheet(t, api)

	values, err := g.Values(context.Background())
	require.NoError(t, err)
	assert.Equal(t, api.values, values)

	requests, _ := api.calls()
	require.Len(t, requests, 1)
	assert.Equal(t, "GET /v4/spreadsheets/sheet-id/values/'Books'", requests[0])
}

func TestGoogleSheetUpdateCell(t *testing.T) {
	api := &fakeSheetsAPI{}
	g := setupGoogleSheet(t, api)

	require.NoError(t, g.UpdateCell(context.Background(), 3, 3, "1516"))

	requests, bodies := api.calls()
	require.Len(t, requests, 1)
	assert.Equal(t, "PUT /v4/spreadsheets/sheet-id/values/'Books'!C3", requests[0])
	assert.Contains(t, bodies[0], `"1516"`)
}

func TestGoogleSheetUpdateClearsFirst(t *testing.T) {
	api := &fakeSheetsAPI{}
	g := setupGoogleSheet(t, api)

	require.NoError(t, g.Update(context.Background(), [][]string{{"title", "authors", "elo"}}))

	requests, bodies := api.calls()
	require.Len(t, requests, 2)
	assert.True(t, strings.HasSuffix(requests[0], ":clear"), "first request should clear, got %s", requests[0])
	assert.Equal(t, "PUT /v4/spreadsheets/sheet-id/values/'Books'!A1", requests[1])
	assert.Contains(t, bodies[1], `"authors"`)
}

func TestGoogleSheetRejectsBadCell(t *testing.T) {
	api := &fakeSheetsAPI{}
	g := setupGoogleSheet(t, api)

	assert.ErrorIs(t, g.UpdateCell(context.Background(), 0, 2, "x"), ErrInvalidCell)
	requests, _ := api.calls()
	assert.Empty(t, requests)
}

func TestSpreadsheetID(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"https://docs.google.com/spreadsheets/d/1AbC_d-9/edit#gid=0", "1AbC_d-9", false},
		{"  1AbC_d-9  ", "1AbC_d-9", false},
		{"", "", true},
		{"https://example.com/not-a-sheet", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			id, err := SpreadsheetID(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSpreadsheet)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestColumnName(t *testing.T) {
	testCases := map[int]string{1: "A", 3: "C", 26: "Z", 27: "AA", 52: "AZ", 703: "AAA"}
	for col, expected := range testCases {
		assert.Equal(t, expected, columnName(col), "column %d", col)
	}
}

func TestCellRef(t *testing.T) {
	assert.Equal(t, "'Books'!C2", cellRef("Books", 2, 3))
	assert.Equal(t, "'Tom''s List'!A1", cellRef("Tom's List", 1, 1))
}
