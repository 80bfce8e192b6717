// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Book Rater API server.

Book Rater ranks a reading list by pairwise comparison. It shows two books
from a spreadsheet, asks which one you prefer, moves both ratings with the
Elo formula and writes the new ratings back to the sheet.

# Starting the Server

With a Google Sheet:

	SPREADSHEET_URL=https://docs.google.com/spreadsheets/d/... \
	GOOGLE_APPLICATION_CREDENTIALS=service-account.json go run .

With a local SQLite grid instead of a spreadsheet:

	go run . -t sqlite -d books.db

Settings may also come from a .env or .env.local file.

# Configuration

  - STORE_TYPE (-t): sheets, sqlite, postgres or memory (default: sheets)
  - SPREADSHEET_URL (-s): spreadsheet URL or ID, required for sheets
  - SHEET_NAME (-w): worksheet name (default: Books)
  - GOOGLE_APPLICATION_CREDENTIALS (-creds) or GCP_SERVICE_ACCOUNT:
    service-account key, required for sheets
  - DATABASE_URL (-d): required for sqlite and postgres
  - ELO_K (-k): rating step (default: 32)
  - SHEETS_WRITE_RPS (-rps): sheet write rate limit (default: 1)
  - PORT (-p): server port (default: 8080)

# Architecture

  - elo: rating math
  - books: loading the sheet, finding rows, applying votes
  - sheet: spreadsheet stores (Google Sheets, SQL grid, in-memory)
  - session: current pair and vote state machine
  - handlers, router, middleware: JSON API
  - auth: service-account credential validation
  - db: SQL grid schema
  - cliparse: configuration parsing
*/
package main
