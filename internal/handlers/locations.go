// internal/handlers/locations.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pantryos/pantry-be/internal/core/ports"
	"github.com/pantryos/pantry-be/internal/handlers/middleware"
)

// LocationHandler handles location-related HTTP requests
type LocationHandler struct {
	service ports.LocationService
	logger  *slog.Logger
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service ports.LocationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "locations")),
	}
}

// ListLocations handles GET /api/v1/locations
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}

	locations, err := h.service.List(ctx, userID)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err, "Failed to list locations")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, locations)
}

// CreateLocation handles POST /api/v1/locations. Re-submitting a name the
// user already has returns the existing location with 200 instead of 201.
func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	location, created, err := h.service.Create(ctx, userID, req.Name)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err, "Failed to create location")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, h.logger, status, location)
}

// ProvisionLocations handles POST /api/v1/locations/provision. The
// user-creation collaborator calls this once per new account; repeating
// it is harmless.
func (h *LocationHandler) ProvisionLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}

	locations, err := h.service.ProvisionStarterSet(ctx, userID)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err, "Failed to provision locations")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, locations)
}

// CreateLocationRequest represents the request body for creating a location
type CreateLocationRequest struct {
	Name string `json:"name"`
}
