// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - StoreType: sheets, sqlite, postgres or memory (default: sheets)
  - SpreadsheetURL: Google spreadsheet URL or ID (required for sheets)
  - SheetName: Worksheet name (default: Books)
  - CredentialsFile / CredentialsJSON: Service account credentials (sheets)
  - DatabaseURL: Connection string (required for sqlite and postgres)
  - K: Elo sensitivity constant (default: 32)
  - WriteRPS: Max sheet writes per second (default: 1)

# CLI Flags

	-p      Server port
	-t      Store type
	-s      Spreadsheet URL or ID
	-w      Worksheet name
	-d      Database URL
	-creds  Service account JSON file
	-k      Elo sensitivity constant
	-rps    Sheet write rate

# Environment Variables

Flags fall back to environment variables:

	PORT                           → -p
	STORE_TYPE                     → -t
	SPREADSHEET_URL                → -s
	SHEET_NAME                     → -w
	DATABASE_URL                   → -d
	GOOGLE_APPLICATION_CREDENTIALS → -creds
	ELO_K                          → -k
	SHEETS_WRITE_RPS               → -rps

GCP_SERVICE_ACCOUNT holds inline service account JSON and has no flag.

CLI flags take precedence over environment variables. main loads .env and
.env.local before parsing.

# Validation

ParseFlags returns an error if required values are missing:

  - sheets store: a spreadsheet URL and credentials must be provided
  - sqlite and postgres stores: DATABASE_URL must be provided
  - K and WriteRPS must be positive
*/
package cliparse
