// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth loads the Google service account credentials used to reach
the book spreadsheet.

# Loading

	data, sa, err := auth.LoadServiceAccount(cfg.CredentialsFile, cfg.CredentialsJSON)

A file path wins over inline JSON. The JSON is checked before it reaches
the Sheets client so a bad key fails at startup with a clear message:

  - type must be "service_account"
  - client_email must be set
  - private_key must hold a PEM private key

The spreadsheet must be shared with sa.ClientEmail for reads and writes to
succeed.

# Errors

  - ErrMissingCredentials: neither a path nor inline JSON was given
  - ErrInvalidCredentials: the JSON is not a usable service account key
*/
package auth
