package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/danielhkuo/book-rater/elo"
	"github.com/danielhkuo/book-rater/models"
)

type Config struct {
	Port            int
	StoreType       string
	SpreadsheetURL  string
	SheetName       string
	CredentialsFile string
	CredentialsJSON string
	DatabaseURL     string
	K               int
	WriteRPS        float64
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("book-rater", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")

	// Store config
	fs.StringVar(&cfg.StoreType, "t", "", "Store type (sheets, sqlite, postgres or memory)")
	fs.StringVar(&cfg.SpreadsheetURL, "s", "", "Google spreadsheet URL or ID")
	fs.StringVar(&cfg.SheetName, "w", "", "Worksheet name")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite or postgres store)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.CredentialsFile, "creds", "", "Service account JSON file (prefer env)")

	// Rating config
	fs.IntVar(&cfg.K, "k", 0, "Elo sensitivity constant")
	fs.Float64Var(&cfg.WriteRPS, "rps", 0, "Max sheet writes per second")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = models.StoreSheets
		}
	}

	if cfg.SheetName == "" {
		cfg.SheetName = os.Getenv("SHEET_NAME")
		if cfg.SheetName == "" {
			cfg.SheetName = "Books"
		}
	}

	if cfg.K == 0 {
		if kStr := os.Getenv("ELO_K"); kStr != "" {
			k, err := strconv.Atoi(kStr)
			if err != nil {
				return Config{}, errors.New("invalid ELO_K env variable")
			}
			cfg.K = k
		} else {
			cfg.K = elo.DefaultK
		}
	}
	if cfg.K <= 0 {
		return Config{}, errors.New("k must be greater than 0")
	}

	if cfg.WriteRPS == 0 {
		if rpsStr := os.Getenv("SHEETS_WRITE_RPS"); rpsStr != "" {
			rps, err := strconv.ParseFloat(rpsStr, 64)
			if err != nil {
				return Config{}, errors.New("invalid SHEETS_WRITE_RPS env variable")
			}
			cfg.WriteRPS = rps
		} else {
			cfg.WriteRPS = 1
		}
	}
	if cfg.WriteRPS <= 0 {
		return Config{}, errors.New("write rate must be greater than 0")
	}

	switch cfg.StoreType {
	case models.StoreSheets:
		if cfg.SpreadsheetURL == "" {
			cfg.SpreadsheetURL = os.Getenv("SPREADSHEET_URL")
		}
		if cfg.SpreadsheetURL == "" {
			return Config{}, errors.New("spreadsheet URL required (use -s or SPREADSHEET_URL env)")
		}

		// Credentials - MUST be provided
		if cfg.CredentialsFile == "" {
			cfg.CredentialsFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		}
		cfg.CredentialsJSON = os.Getenv("GCP_SERVICE_ACCOUNT")
		if cfg.CredentialsFile == "" && cfg.CredentialsJSON == "" {
			return Config{}, errors.New("GOOGLE_APPLICATION_CREDENTIALS or GCP_SERVICE_ACCOUNT required")
		}

	case models.StoreSQLite, models.StorePostgres:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}

	case models.StoreMemory:
		// nothing to configure

	default:
		return Config{}, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}

	return cfg, nil
}
