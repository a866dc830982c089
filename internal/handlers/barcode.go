// internal/handlers/barcode.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pantryos/pantry-be/internal/core/ports"
)

// BarcodeHandler handles barcode-image HTTP requests
type BarcodeHandler struct {
	service ports.BarcodeService
	logger  *slog.Logger
}

// NewBarcodeHandler creates a new barcode handler
func NewBarcodeHandler(service ports.BarcodeService, logger *slog.Logger) *BarcodeHandler {
	return &BarcodeHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "barcode")),
	}
}

// ProcessBarcode handles POST /api/v1/barcode/process. A clean image with
// no readable barcode is a 200 with detected=false, not an error.
func (h *BarcodeHandler) ProcessBarcode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProcessBarcodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Process(ctx, req.Image)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err, "Failed to process barcode")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// ProcessBarcodeRequest represents the request body for barcode processing
type ProcessBarcodeRequest struct {
	Image string `json:"image"`
}
