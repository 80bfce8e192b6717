package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/book-rater/auth"
	"github.com/danielhkuo/book-rater/cliparse"
	"github.com/danielhkuo/book-rater/db"
	"github.com/danielhkuo/book-rater/middleware"
	"github.com/danielhkuo/book-rater/models"
	"github.com/danielhkuo/book-rater/router"
	"github.com/danielhkuo/book-rater/session"
	"github.com/danielhkuo/book-rater/sheet"
)

func main() {
	// Optional env files; real environment wins
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("store setup failed", "store", cfg.StoreType, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// Initial load; nothing works without the books
	s := session.New(store, cfg.K, nil)
	n, err := s.Load(ctx)
	if err != nil {
		slog.Error("failed to load books", "sheet", cfg.SheetName, "error", err)
		closeStore()
		os.Exit(1)
	}
	slog.Info("Books loaded", "count", n, "sheet", cfg.SheetName, "state", s.State().String())

	// Create router
	mux := router.NewRouter(s, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(middleware.RequestID(mux)),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "store", cfg.StoreType)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openStore builds the sheet store selected by cfg.StoreType
func openStore(ctx context.Context, cfg cliparse.Config) (sheet.Store, func(), error) {
	noop := func() {}

	switch cfg.StoreType {
	case models.StoreSheets:
		creds, sa, err := auth.LoadServiceAccount(cfg.CredentialsFile, cfg.CredentialsJSON)
		if err != nil {
			return nil, noop, err
		}
		gs, err := sheet.NewGoogleSheet(ctx, creds, cfg.SpreadsheetURL, cfg.SheetName, cfg.WriteRPS)
		if err != nil {
			return nil, noop, err
		}
		slog.Info("Google Sheets ready", "account", sa.ClientEmail, "sheet", cfg.SheetName)
		return gs, noop, nil

	case models.StoreSQLite, models.StorePostgres:
		conn, err := db.Open(cfg.StoreType, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := db.CreateSchema(conn); err != nil {
			conn.Close()
			return nil, noop, fmt.Errorf("schema creation failed: %w", err)
		}
		slog.Info("Database schema ready", "driver", cfg.StoreType)
		return sheet.NewSQLSheet(conn, cfg.SheetName), closer(conn), nil

	case models.StoreMemory:
		slog.Warn("Using in-memory sheet; ratings are lost on exit")
		return sheet.NewMemSheet(nil), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown store type %q", cfg.StoreType)
}

func closer(conn *sql.DB) func() {
	return func() { conn.Close() }
}
