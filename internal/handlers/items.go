// internal/handlers/items.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pantryos/pantry-be/internal/core/domain"
	"github.com/pantryos/pantry-be/internal/core/ports"
	"github.com/pantryos/pantry-be/internal/handlers/middleware"
)

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	service ports.ItemService
	logger  *slog.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(service ports.ItemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "items")),
	}
}

// ListItems handles GET /api/v1/items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}

	result, err := h.service.List(ctx, userID, h.parseListParams(r))
	if err != nil {
		respondDomainError(ctx, w, h.logger, err, "Failed to list items")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// GetItem handles GET /api/v1/items/{id}. A numeric path value is a
// catalog ID retrieve; anything else is treated as a barcode and falls
// back to the legacy lookup-and-create behavior older clients rely on.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}

	idStr := r.PathValue("id")
	itemID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.lookupAndCreate(w, r, idStr)
		return
	}

	item, err := h.service.Get(ctx, userID, itemID)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err, "Failed to retrieve item")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// CreateItem handles POST /api/v1/items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, created, err := h.service.Create(ctx, ports.CreateItemInput{
		Barcode:     req.Barcode,
		Title:       req.Title,
		Description: req.Description,
		Alias:       req.Alias,
	})
	if err != nil {
		respondDomainError(ctx, w, h.logger, err, "Failed to create item")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, h.logger, status, item)
}

// UpdateItem handles PUT /api/v1/items/{id}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}

	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.Update(ctx, userID, itemID, ports.UpdateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Alias:       req.Alias,
		Category:    req.Category,
		Quantity:    req.Quantity,
		LocationID:  req.LocationID,
	})
	if err != nil {
		respondDomainError(ctx, w, h.logger, err, "Failed to update item")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/v1/items/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}

	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	if err := h.service.Delete(ctx, userID, itemID); err != nil {
		respondDomainError(ctx, w, h.logger, err, "Failed to delete item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddToUser handles POST /api/v1/items/{id}/add-to-user
func (h *ItemHandler) AddToUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}

	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	// Body is optional; absence means the default location.
	var req LedgerRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	item, err := h.service.AddToUser(ctx, userID, itemID, req.LocationID)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err, "Failed to add item")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// UpdateQuantity handles PATCH /api/v1/items/{id}/quantity
func (h *ItemHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}

	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var req LedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Quantity == nil {
		respondError(w, h.logger, http.StatusBadRequest, "quantity is required")
		return
	}

	item, err := h.service.UpdateQuantity(ctx, userID, itemID, *req.Quantity, req.LocationID)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err, "Failed to update quantity")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// LookupProduct handles GET /api/v1/items/lookup-product/{upc}. Read-only:
// nothing is written no matter what the external database answers.
func (h *ItemHandler) LookupProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.service.LookupProduct(ctx, r.PathValue("upc"))
	if err != nil {
		respondDomainError(ctx, w, h.logger, err, "Failed to look up product")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// LookupAndCreate handles GET /api/v1/items/lookup/{upc}, the older
// lookup flow that creates the catalog row from the external result.
func (h *ItemHandler) LookupAndCreate(w http.ResponseWriter, r *http.Request) {
	h.lookupAndCreate(w, r, r.PathValue("upc"))
}

func (h *ItemHandler) lookupAndCreate(w http.ResponseWriter, r *http.Request, upc string) {
	ctx := r.Context()

	item, created, productData, err := h.service.LookupAndCreate(ctx, upc)
	if err != nil {
		respondDomainError(ctx, w, h.logger, err, "Failed to look up UPC")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, h.logger, status, LookupAndCreateResponse{
		Created:     created,
		Item:        item,
		ProductData: productData,
	})
}

// parseListParams parses query parameters for listing items
func (h *ItemHandler) parseListParams(r *http.Request) ports.ListParams {
	params := ports.ListParams{
		Page:     1,
		PageSize: 20,
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			params.Page = p
		}
	}
	if size := r.URL.Query().Get("page_size"); size != "" {
		if s, err := strconv.Atoi(size); err == nil && s > 0 {
			params.PageSize = s
		}
	}
	params.Search = r.URL.Query().Get("search")

	return params
}

// Request/Response DTOs

// CreateItemRequest represents the request body for creating an item
type CreateItemRequest struct {
	Barcode     string `json:"barcode"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Alias       string `json:"alias,omitempty"`
}

// UpdateItemRequest represents the request body for updating an item.
// Pointer fields distinguish "absent" from "set to zero value".
type UpdateItemRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Alias       *string `json:"alias,omitempty"`
	Category    *string `json:"category,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
	LocationID  *int64  `json:"location_id,omitempty"`
}

// LedgerRequest carries the optional location and quantity for ledger
// mutations.
type LedgerRequest struct {
	Quantity   *int   `json:"quantity,omitempty"`
	LocationID *int64 `json:"location_id,omitempty"`
}

// LookupAndCreateResponse is the envelope the legacy lookup flow returns.
type LookupAndCreateResponse struct {
	Created     bool                `json:"created"`
	Item        *domain.Item        `json:"item"`
	ProductData *domain.ProductData `json:"product_data"`
}
