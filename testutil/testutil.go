// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/book-rater/cliparse"
	"github.com/danielhkuo/book-rater/db"
	"github.com/danielhkuo/book-rater/models"
	"github.com/danielhkuo/book-rater/sheet"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:      8080,
		StoreType: models.StoreMemory,
		SheetName: "Books",
		K:         32,
		WriteRPS:  1000,
	}
}

// BookTable builds a sheet table with the standard header and one row per book
func BookTable(books ...models.Book) [][]string {
	rows := [][]string{{"Title", "Authors", "Elo"}}
	for _, b := range books {
		rows = append(rows, []string{b.Title, b.Authors, strconv.Itoa(b.Rating)})
	}
	return rows
}

// NewBookSheet returns an in-memory sheet holding books
func NewBookSheet(books ...models.Book) *sheet.MemSheet {
	return sheet.NewMemSheet(BookTable(books...))
}

// FlakySheet wraps a Store and fails the calls whose error field is set
type FlakySheet struct {
	sheet.Store

	mu          sync.Mutex
	ValuesErr   error
	UpdateErr   error
	CellErr     error
	ValuesCalls int
	CellCalls   int
}

func (f *FlakySheet) Values(ctx context.Context) ([][]string, error) {
	f.mu.Lock()
	f.ValuesCalls++
	err := f.ValuesErr
	f.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return f.Store.Values(ctx)
}

func (f *FlakySheet) Update(ctx context.Context, rows [][]string) error {
	f.mu.Lock()
	err := f.UpdateErr
	f.mu.Unlock()

	if err != nil {
		return err
	}
	return f.Store.Update(ctx, rows)
}

func (f *FlakySheet) UpdateCell(ctx context.Context, row, col int, value string) error {
	f.mu.Lock()
	f.CellCalls++
	err := f.CellErr
	f.mu.Unlock()

	if err != nil {
		return err
	}
	return f.Store.UpdateCell(ctx, row, col, value)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
