// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /pair", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(duration_ms).

# Request IDs

RequestID reuses an incoming X-Request-Id header or generates a UUID, echoes
it on the response and stores it in the request context:

	id := middleware.RequestIDFromContext(r.Context())

# CORS Middleware

Enable cross-origin requests for a browser frontend:

	server := http.Server{
		Handler: middleware.CORS(middleware.RequestID(mux)),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
