// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrMissingCredentials = errors.New("service account credentials not provided")
	ErrInvalidCredentials = errors.New("invalid service account credentials")
)

// ServiceAccount holds the fields of a Google service account key we check
// before handing the raw JSON to the Sheets client
type ServiceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// LoadServiceAccount reads service account JSON from path, or uses rawJSON
// when path is empty. The returned bytes are validated and ready for the
// Sheets client.
func LoadServiceAccount(path, rawJSON string) ([]byte, *ServiceAccount, error) {
	var data []byte
	switch {
	case path != "":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		data = b
	case strings.TrimSpace(rawJSON) != "":
		data = []byte(rawJSON)
	default:
		return nil, nil, ErrMissingCredentials
	}

	sa, err := ParseServiceAccount(data)
	if err != nil {
		return nil, nil, err
	}
	return data, sa, nil
}

// ParseServiceAccount checks that data is a service account key
func ParseServiceAccount(data []byte) (*ServiceAccount, error) {
	var sa ServiceAccount
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	if sa.Type != "service_account" {
		return nil, fmt.Errorf("%w: type must be service_account, got %q", ErrInvalidCredentials, sa.Type)
	}
	if sa.ClientEmail == "" {
		return nil, fmt.Errorf("%w: client_email is empty", ErrInvalidCredentials)
	}
	if !strings.Contains(sa.PrivateKey, "PRIVATE KEY") {
		return nil, fmt.Errorf("%w: private_key is missing or malformed", ErrInvalidCredentials)
	}

	return &sa, nil
}
