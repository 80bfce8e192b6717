// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/book-rater/cliparse"
	"github.com/danielhkuo/book-rater/handlers"
	"github.com/danielhkuo/book-rater/middleware"
	"github.com/danielhkuo/book-rater/session"
)

func NewRouter(s *session.Session, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	raterHandler := handlers.NewRaterHandler(s, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Comparison loop
	mux.HandleFunc("GET /pair", middleware.WithLogging(raterHandler.GetPair))
	mux.HandleFunc("POST /pair/skip", middleware.WithLogging(raterHandler.SkipPair))
	mux.HandleFunc("POST /votes", middleware.WithLogging(raterHandler.SubmitVote))

	// Dataset
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(raterHandler.GetLeaderboard))
	mux.HandleFunc("POST /reload", middleware.WithLogging(raterHandler.Reload))
	mux.HandleFunc("GET /state", middleware.WithLogging(raterHandler.GetState))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("book-rater API v1"))
	})

	return mux
}
