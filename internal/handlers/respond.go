// internal/handlers/respond.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pantryos/pantry-be/internal/core/domain"
)

// respondJSON writes data as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// respondError writes a JSON error envelope.
func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// respondDomainError maps the domain error taxonomy onto HTTP statuses:
// NotFound is 404, validation failures are 400, upstream failures and
// everything unclassified are 500. Upstream failures carry the
// collaborator's message in the body for diagnostics; unclassified
// internal detail never reaches clients.
func respondDomainError(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, err error, fallback string) {
	var validationErr *domain.ValidationError
	var upstreamErr *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, logger, http.StatusNotFound, "Not found")
	case errors.As(err, &validationErr):
		respondError(w, logger, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &upstreamErr):
		logger.ErrorContext(ctx, "upstream service failure",
			slog.String("service", upstreamErr.Service),
			slog.String("error", upstreamErr.Error()))
		respondError(w, logger, http.StatusInternalServerError, fallback+": "+upstreamErr.Error())
	default:
		logger.ErrorContext(ctx, fallback,
			slog.String("error", err.Error()))
		respondError(w, logger, http.StatusInternalServerError, fallback)
	}
}
